package xzzpcb

// Outer-stream tag bytes, per spec.md §4.4.
const (
	tagArc       = 0x01
	tagVia       = 0x02
	tagSkip3     = 0x03
	tagSentinel4 = 0x04
	tagSegment   = 0x05
	tagText      = 0x06
	tagData      = 0x07
	tagSentinel8 = 0x08
	tagSkip9     = 0x09
)

// parseArc reads outer tag 0x01, per spec.md §4.5.
func parseArc(c *cursor) (*Arc, error) {
	if _, err := c.u32le(); err != nil { // block_size, unused beyond framing
		return nil, err
	}
	layer, err := c.u32le()
	if err != nil {
		return nil, err
	}
	cx, err := c.u32le()
	if err != nil {
		return nil, err
	}
	cy, err := c.u32le()
	if err != nil {
		return nil, err
	}
	r, err := c.i32le()
	if err != nil {
		return nil, err
	}
	angleStart, err := c.i32le()
	if err != nil {
		return nil, err
	}
	angleEnd, err := c.i32le()
	if err != nil {
		return nil, err
	}
	scale, err := c.i32le()
	if err != nil {
		return nil, err
	}
	netIndex, err := c.i32le()
	if err != nil {
		return nil, err
	}
	return &Arc{
		Layer:      layer,
		CX:         cx,
		CY:         cy,
		R:          r,
		AngleStart: angleStart,
		AngleEnd:   angleEnd,
		Scale:      scale,
		NetIndex:   netIndex,
	}, nil
}

// parseVia reads outer tag 0x02, per spec.md §4.5.
func parseVia(c *cursor) (*Via, error) {
	if _, err := c.u32le(); err != nil { // block_size
		return nil, err
	}
	x, err := c.i32le()
	if err != nil {
		return nil, err
	}
	y, err := c.i32le()
	if err != nil {
		return nil, err
	}
	outerR, err := c.i32le()
	if err != nil {
		return nil, err
	}
	innerR, err := c.i32le()
	if err != nil {
		return nil, err
	}
	layerA, err := c.u32le()
	if err != nil {
		return nil, err
	}
	layerB, err := c.u32le()
	if err != nil {
		return nil, err
	}
	netIndex, err := c.u32le()
	if err != nil {
		return nil, err
	}
	textLen, err := c.u32le()
	if err != nil {
		return nil, err
	}
	text, textRaw, err := c.utf8Lossy(int(textLen))
	if err != nil {
		return nil, err
	}
	return &Via{
		X:           x,
		Y:           y,
		OuterRadius: outerR,
		InnerRadius: innerR,
		LayerA:      layerA,
		LayerB:      layerB,
		NetIndex:    netIndex,
		Text:        text,
		TextRaw:     textRaw,
	}, nil
}

// parseSegment reads outer tag 0x05, per spec.md §4.5.
func parseSegment(c *cursor) (*Segment, error) {
	if _, err := c.u32le(); err != nil { // block_size
		return nil, err
	}
	layer, err := c.u32le()
	if err != nil {
		return nil, err
	}
	x1, err := c.i32le()
	if err != nil {
		return nil, err
	}
	y1, err := c.i32le()
	if err != nil {
		return nil, err
	}
	x2, err := c.i32le()
	if err != nil {
		return nil, err
	}
	y2, err := c.i32le()
	if err != nil {
		return nil, err
	}
	scale, err := c.i32le()
	if err != nil {
		return nil, err
	}
	netIndex, err := c.u32le()
	if err != nil {
		return nil, err
	}
	return &Segment{
		Layer:    layer,
		X1:       x1,
		Y1:       y1,
		X2:       x2,
		Y2:       y2,
		Scale:    scale,
		NetIndex: netIndex,
	}, nil
}

// parseText reads outer tag 0x06, per spec.md §4.5.
func parseText(c *cursor) (*Text, error) {
	if _, err := c.u32le(); err != nil { // block_size
		return nil, err
	}
	unknown1, err := c.u32le()
	if err != nil {
		return nil, err
	}
	posX, err := c.u32le()
	if err != nil {
		return nil, err
	}
	posY, err := c.u32le()
	if err != nil {
		return nil, err
	}
	textSize, err := c.u32le()
	if err != nil {
		return nil, err
	}
	divider, err := c.u32le()
	if err != nil {
		return nil, err
	}
	empty, err := c.u32le()
	if err != nil {
		return nil, err
	}
	one, err := c.u16le()
	if err != nil {
		return nil, err
	}
	textLen, err := c.u32le()
	if err != nil {
		return nil, err
	}
	body, bodyRaw, err := c.utf8Lossy(int(textLen))
	if err != nil {
		return nil, err
	}
	return &Text{
		Unknown1: unknown1,
		PosX:     posX,
		PosY:     posY,
		TextSize: textSize,
		Divider:  divider,
		Empty:    empty,
		One:      one,
		Body:     body,
		BodyRaw:  bodyRaw,
	}, nil
}

// skipLengthPrefixed reads a u32 size and advances past it, for outer
// tags 0x03 and 0x09 which carry no structured payload the core
// interprets, per spec.md §4.4. A size of 0 advances only the size
// field, per spec.md §4.7's tie-break note.
func skipLengthPrefixed(c *cursor) error {
	size, err := c.u32le()
	if err != nil {
		return err
	}
	return c.skip(int(size))
}
