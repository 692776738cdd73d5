package xzzpcb

// Stage names a well-defined point in the decode pipeline, per spec.md §5.
type Stage string

const (
	StageInit     Stage = "init"
	StageXOR      Stage = "xor"
	StageHeader   Stage = "header"
	StageWalk     Stage = "walk"
	StageComplete Stage = "complete"
)

// Progress is the payload handed to an optional progress callback. It is
// the decoder's sole observable side effect (§5); the decoder never
// inspects or relies on the callback's return value.
type Progress struct {
	Percent int
	Stage   Stage
}

// ProgressFunc is invoked cooperatively from the outer block walker at
// bounded intervals (every progressInterval blocks) and at each Stage
// transition. A nil ProgressFunc is valid and simply disables reporting.
type ProgressFunc func(Progress)

// progressInterval is the suggested block interval at which the outer
// walker reports progress, per spec.md §5 ("every N blocks, suggested N = 100").
const progressInterval = 100

func report(fn ProgressFunc, percent int, stage Stage) {
	if fn == nil {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	fn(Progress{Percent: percent, Stage: stage})
}
