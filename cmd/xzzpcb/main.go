package main

import "github.com/xzzpcb/xzzpcb-go/cmd/xzzpcb/cmd"

func main() {
	cmd.Execute()
}
