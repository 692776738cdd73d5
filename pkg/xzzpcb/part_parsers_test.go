package xzzpcb

import "testing"

func buildPinBytes(name string, innerDiameter uint32) []byte {
	return concatAll(
		leU32(0),                       // un1
		leU32(10), leU32(20),           // x, y
		leU32(innerDiameter),           // inner_diameter
		leU32(0),                       // rotation
		leU32(uint32(len(name))), []byte(name),
		leU32(5), leU32(5), // width, height
		[]byte{1},          // shape
		make([]byte, pinReservedSize),
		leU32(9), // net_index
		make([]byte, pinTrailingSkip),
	)
}

func TestParsePinDerivesThruHole(t *testing.T) {
	smtPin := buildPinBytes("SMT1", 0)
	c := newCursor(smtPin)
	pin, err := parsePin(c)
	if err != nil {
		t.Fatalf("parsePin() error = %v", err)
	}
	if pin.IsThruHole {
		t.Error("IsThruHole = true for inner_diameter = 0, want false")
	}

	thPin := buildPinBytes("TH1", 7)
	c2 := newCursor(thPin)
	pin2, err := parsePin(c2)
	if err != nil {
		t.Fatalf("parsePin() error = %v", err)
	}
	if !pin2.IsThruHole {
		t.Error("IsThruHole = false for inner_diameter = 7, want true")
	}
	if pin2.Name != "TH1" {
		t.Errorf("Name = %q, want %q", pin2.Name, "TH1")
	}
}

func TestParsePinArrayStopsAtBudget(t *testing.T) {
	pin1 := buildPinBytes("P1", 0)
	pin2 := buildPinBytes("P2", 0)
	blockSize := uint32(len(pin1)) // per spec.md, the termination check
	// reuses the single block_size value read at the array's start.

	payload := concatAll(leU32(blockSize), pin1, pin2)
	c := newCursor(payload)

	arr, err := parsePinArray(c, len(payload))
	if err != nil {
		t.Fatalf("parsePinArray() error = %v", err)
	}
	if len(arr.Pins) != 2 {
		t.Fatalf("Pins = %d, want 2", len(arr.Pins))
	}
	if arr.Pins[0].Name != "P1" || arr.Pins[1].Name != "P2" {
		t.Errorf("Pins = %+v", arr.Pins)
	}
}

func TestParsePinArrayBudgetExcludesPartialPin(t *testing.T) {
	pin1 := buildPinBytes("ONLY", 0)
	blockSize := uint32(len(pin1))

	// budget only covers the first pin plus the block_size field itself.
	payload := concatAll(leU32(blockSize), pin1)
	c := newCursor(payload)

	arr, err := parsePinArray(c, len(payload))
	if err != nil {
		t.Fatalf("parsePinArray() error = %v", err)
	}
	if len(arr.Pins) != 1 {
		t.Fatalf("Pins = %d, want 1", len(arr.Pins))
	}
}

func TestWalkPartBlocksAllSubBlockKinds(t *testing.T) {
	// layer, x, y, radius, angle_start, angle_end, scale, extra
	arcPayload := concatAll(leU32(1), leU32(2), leU32(3), leU32(10), leU32(0), leU32(900000), leU32(1), leU32(0))
	arcBlock := concatAll([]byte{partTagArc}, leU32(uint32(len(arcPayload))), arcPayload)

	// layer, x1, y1, x2, y2, scale, then 4 bytes of trailing padding
	linePayload := concatAll(leU32(0), leU32(1), leU32(1), leU32(2), leU32(2), leU32(1), make([]byte, 4))
	lineBlock := concatAll([]byte{partTagLine}, leU32(uint32(len(linePayload))), linePayload)

	label := "U1"
	// layer, x, y, font_size, font_scale, font_rotation, then visibility+padding, label_size, label
	labelPayload := concatAll(leU32(0), leU32(1), leU32(5), leU32(5), leU32(100), leU32(1), []byte{1, 0}, leU32(uint32(len(label))), []byte(label))
	labelBlock := concatAll([]byte{partTagLabel}, leU32(uint32(len(labelPayload))), labelPayload)

	pin := buildPinBytes("1", 0)
	pinArrayPayload := concatAll(leU32(uint32(len(pin))), pin)
	pinArrayBlock := concatAll([]byte{partTagPins}, pinArrayPayload)

	groupName := "R1"
	header := concatAll(
		leU32(0), // part_size placeholder, fixed below
		make([]byte, 4),
		leU32(1), leU32(2), leU32(0),
		[]byte{1, 0},
		leU32(uint32(len(groupName))), []byte(groupName),
	)

	body := concatAll(arcBlock, lineBlock, labelBlock, pinArrayBlock)
	partSize := uint32(len(header) - 4 + len(body))
	// patch part_size into the header's first 4 bytes
	copy(header[0:4], leU32(partSize))

	plaintext := concatAll(header, body)

	gotHeader, subBlocks := walkPartBlocks(plaintext)
	if gotHeader.GroupName != groupName {
		t.Errorf("GroupName = %q, want %q", gotHeader.GroupName, groupName)
	}

	var kinds []PartSubBlockKind
	for _, sb := range subBlocks {
		kinds = append(kinds, sb.Kind)
	}
	want := []PartSubBlockKind{PartSubArc, PartSubLine, PartSubLabel, PartSubPinArray}
	if len(kinds) != len(want) {
		t.Fatalf("sub-block kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("sub-block %d kind = %v, want %v", i, kinds[i], want[i])
		}
	}

	pinArr := subBlocks[3].PinArray
	if len(pinArr.Pins) != 1 || pinArr.Pins[0].Name != "1" {
		t.Errorf("PinArray = %+v", pinArr)
	}
}

func TestWalkPartBlocksUnknownTagTerminates(t *testing.T) {
	groupName := ""
	header := concatAll(
		leU32(27), // part_size: sized so the view covers the unknown tag byte
		make([]byte, 4),
		leU32(0), leU32(0), leU32(0),
		[]byte{0, 0},
		leU32(uint32(len(groupName))),
	)
	unknown := []byte{0xEE, 0, 0, 0, 0}
	plaintext := concatAll(header, unknown)

	_, subBlocks := walkPartBlocks(plaintext)
	if len(subBlocks) != 0 {
		t.Errorf("subBlocks = %v, want empty (unknown tag terminates the walk)", subBlocks)
	}
}
