package xzzpcb

// Board is the root aggregate produced by Decode. Entities preserve file
// order (spec.md P4); nothing in Board is mutated after decoding (spec.md
// §3 Lifecycle).
type Board struct {
	Entities    []Entity
	Diagnostics []Diagnostic
}

// EntityKind discriminates the Entity tagged-variant, per spec.md §3.
type EntityKind int

const (
	EntityArc EntityKind = iota
	EntityVia
	EntitySegment
	EntityText
	EntityPart
)

// Entity is a tagged variant over the five outer-stream record types.
// Exactly one of the typed fields below is populated, selected by Kind —
// the Go encoding of spec.md's tagged union.
type Entity struct {
	Kind EntityKind

	Arc     *Arc
	Via     *Via
	Segment *Segment
	Text    *Text
	Part    *Part
}

// Arc is outer-stream tag 0x01.
type Arc struct {
	Layer      uint32
	CX         uint32
	CY         uint32
	R          int32
	AngleStart int32
	AngleEnd   int32
	Scale      int32
	NetIndex   int32
}

// DegreesStart and DegreesEnd convert the tenths-of-milli-degree angle
// fields to degrees, per spec.md §3.
func (a Arc) DegreesStart() float64 { return float64(a.AngleStart) / 10000 }
func (a Arc) DegreesEnd() float64   { return float64(a.AngleEnd) / 10000 }

// Via is outer-stream tag 0x02.
type Via struct {
	X            int32
	Y            int32
	OuterRadius  int32
	InnerRadius  int32
	LayerA       uint32
	LayerB       uint32
	NetIndex     uint32
	Text         string
	TextRaw      []byte
}

// Segment is outer-stream tag 0x05.
type Segment struct {
	Layer    uint32
	X1       int32
	Y1       int32
	X2       int32
	Y2       int32
	Scale    int32
	NetIndex uint32
}

// Text is outer-stream tag 0x06. Unknown1, Divider, Empty and One are
// opaque fields of unknown semantic meaning, passed through unchanged per
// spec.md §9.
type Text struct {
	Unknown1 uint32
	PosX     uint32
	PosY     uint32
	TextSize uint32
	Divider  uint32
	Empty    uint32
	One      uint16
	Body     string
	BodyRaw  []byte
}

// Part is outer-stream tag 0x07: a DES-encrypted DATA block whose
// plaintext is itself a nested sub-block stream (§4.6, §4.7). If
// decryption fails, SubBlocks is empty and Ciphertext is preserved, per
// spec.md §4.3 / §4.7's failure semantics; Diagnostics on the enclosing
// Board records a DecryptFailure in that case.
type Part struct {
	Header     PartHeader
	SubBlocks  []PartSubBlock
	Ciphertext []byte
}

// PartHeader is the fixed-layout header at the start of a decrypted DATA
// payload, per spec.md §4.7.
type PartHeader struct {
	PartSize   uint32
	PartX      uint32
	PartY      uint32
	Rotation   uint32
	Visibility uint8
	GroupName  string
	GroupNameRaw []byte
}

// PartSubBlockKind discriminates PartSubBlock, per spec.md §3.
type PartSubBlockKind int

const (
	PartSubArc PartSubBlockKind = iota
	PartSubLine
	PartSubLabel
	PartSubPinArray
)

// PartSubBlock is a tagged variant over the four sub-block record types
// nested inside a decrypted Part payload.
type PartSubBlock struct {
	Kind PartSubBlockKind

	Arc      *PartArc
	Line     *PartLine
	Label    *PartLabel
	PinArray *PinArray
}

// PartArc is part sub-block tag 0x01.
type PartArc struct {
	Layer      uint32
	X          uint32
	Y          uint32
	Radius     uint32
	AngleStart uint32
	AngleEnd   uint32
	Scale      uint32
	Extra      uint32
}

// PartLine is part sub-block tag 0x05.
type PartLine struct {
	Layer uint32
	X1    uint32
	Y1    uint32
	X2    uint32
	Y2    uint32
	Scale uint32
}

// PartLabel is part sub-block tag 0x06.
type PartLabel struct {
	Layer        uint32
	X            uint32
	Y            uint32
	FontSize     uint32
	FontScale    uint32
	FontRotation uint32
	Visibility   uint8
	Text         string
	TextRaw      []byte
}

// PinArray is part sub-block tag 0x09: a run of fixed-layout Pin records
// consumed while cursor+pin_block_size <= part_scope_budget (§4.7, I3).
type PinArray struct {
	Pins []Pin
}

// Pin describes one contact on a Part. IsThruHole is derived, never
// stored on the wire: true iff InnerDiameter != 0 (spec.md P6). Reserved
// is the 23-byte block spec.md §9 leaves unexplained ("shape + repeated
// blocks" in the original tooling) — preserved verbatim for forward
// compatibility rather than discarded.
type Pin struct {
	Un1            uint32
	X              uint32
	Y              uint32
	InnerDiameter  uint32
	Rotation       uint32
	Name           string
	NameRaw        []byte
	Width          uint32
	Height         uint32
	Shape          uint8
	Reserved       [23]byte
	NetIndex       uint32
	IsThruHole     bool
}
