package xzzpcb

// pinReservedSize is the width of the unexplained block following Shape in
// a Pin record ("shape + repeated blocks" per spec.md §9's Open Question).
const pinReservedSize = 23

// pinTrailingSkip is the width of the unexplained block following NetIndex
// in a Pin record, per spec.md §4.7.
const pinTrailingSkip = 13

// parsePartHeader reads the fixed-layout header at the start of a
// decrypted DATA payload, per spec.md §4.7. The visibility field reads 2
// bytes of stream (1 byte of value, 1 byte of alignment padding) but
// stores only 1 — intentional, per spec.md §9, and must not change.
func parsePartHeader(c *cursor) (PartHeader, error) {
	partSize, err := c.u32le()
	if err != nil {
		return PartHeader{}, err
	}
	if err := c.skip(4); err != nil { // padding
		return PartHeader{}, err
	}
	partX, err := c.u32le()
	if err != nil {
		return PartHeader{}, err
	}
	partY, err := c.u32le()
	if err != nil {
		return PartHeader{}, err
	}
	rotation, err := c.u32le()
	if err != nil {
		return PartHeader{}, err
	}
	visibility, err := c.u8()
	if err != nil {
		return PartHeader{}, err
	}
	if err := c.skip(1); err != nil { // alignment padding
		return PartHeader{}, err
	}
	groupNameSize, err := c.u32le()
	if err != nil {
		return PartHeader{}, err
	}
	groupName, groupNameRaw, err := c.utf8Lossy(int(groupNameSize))
	if err != nil {
		return PartHeader{}, err
	}

	return PartHeader{
		PartSize:     partSize,
		PartX:        partX,
		PartY:        partY,
		Rotation:     rotation,
		Visibility:   visibility,
		GroupName:    groupName,
		GroupNameRaw: groupNameRaw,
	}, nil
}

// parsePartArc reads part sub-block tag 0x01, per spec.md §4.7.
func parsePartArc(c *cursor) (*PartArc, error) {
	if _, err := c.u32le(); err != nil { // block_size
		return nil, err
	}
	layer, err := c.u32le()
	if err != nil {
		return nil, err
	}
	x, err := c.u32le()
	if err != nil {
		return nil, err
	}
	y, err := c.u32le()
	if err != nil {
		return nil, err
	}
	radius, err := c.u32le()
	if err != nil {
		return nil, err
	}
	angleStart, err := c.u32le()
	if err != nil {
		return nil, err
	}
	angleEnd, err := c.u32le()
	if err != nil {
		return nil, err
	}
	scale, err := c.u32le()
	if err != nil {
		return nil, err
	}
	extra, err := c.u32le()
	if err != nil {
		return nil, err
	}
	return &PartArc{
		Layer:      layer,
		X:          x,
		Y:          y,
		Radius:     radius,
		AngleStart: angleStart,
		AngleEnd:   angleEnd,
		Scale:      scale,
		Extra:      extra,
	}, nil
}

// parsePartLine reads part sub-block tag 0x05, per spec.md §4.7.
func parsePartLine(c *cursor) (*PartLine, error) {
	if _, err := c.u32le(); err != nil { // block_size
		return nil, err
	}
	layer, err := c.u32le()
	if err != nil {
		return nil, err
	}
	x1, err := c.u32le()
	if err != nil {
		return nil, err
	}
	y1, err := c.u32le()
	if err != nil {
		return nil, err
	}
	x2, err := c.u32le()
	if err != nil {
		return nil, err
	}
	y2, err := c.u32le()
	if err != nil {
		return nil, err
	}
	scale, err := c.u32le()
	if err != nil {
		return nil, err
	}
	if err := c.skip(4); err != nil { // trailing padding
		return nil, err
	}
	return &PartLine{
		Layer: layer,
		X1:    x1,
		Y1:    y1,
		X2:    x2,
		Y2:    y2,
		Scale: scale,
	}, nil
}

// parsePartLabel reads part sub-block tag 0x06, per spec.md §4.7.
func parsePartLabel(c *cursor) (*PartLabel, error) {
	if _, err := c.u32le(); err != nil { // block_size
		return nil, err
	}
	layer, err := c.u32le()
	if err != nil {
		return nil, err
	}
	x, err := c.u32le()
	if err != nil {
		return nil, err
	}
	y, err := c.u32le()
	if err != nil {
		return nil, err
	}
	fontSize, err := c.u32le()
	if err != nil {
		return nil, err
	}
	fontScale, err := c.u32le()
	if err != nil {
		return nil, err
	}
	fontRotation, err := c.u32le()
	if err != nil {
		return nil, err
	}
	visibility, err := c.u8()
	if err != nil {
		return nil, err
	}
	if err := c.skip(1); err != nil { // alignment padding
		return nil, err
	}
	labelSize, err := c.u32le()
	if err != nil {
		return nil, err
	}
	text, textRaw, err := c.utf8Lossy(int(labelSize))
	if err != nil {
		return nil, err
	}
	return &PartLabel{
		Layer:        layer,
		X:            x,
		Y:            y,
		FontSize:     fontSize,
		FontScale:    fontScale,
		FontRotation: fontRotation,
		Visibility:   visibility,
		Text:         text,
		TextRaw:      textRaw,
	}, nil
}

// parsePinArray reads part sub-block tag 0x09: a run of fixed-layout Pin
// records, per spec.md §4.7 and I3. budget is the part-scope view length
// (4 + part_size) established by the enclosing walkPartBlocks call.
func parsePinArray(c *cursor, budget int) (*PinArray, error) {
	blockSize, err := c.u32le()
	if err != nil {
		return nil, err
	}

	var pins []Pin
	for c.offset+int(blockSize) <= budget {
		pin, err := parsePin(c)
		if err != nil {
			// Partial PinArray: keep what was decoded, per spec.md §4.7's
			// "overrun aborts the current nesting only".
			return &PinArray{Pins: pins}, nil
		}
		pins = append(pins, pin)
	}

	return &PinArray{Pins: pins}, nil
}

func parsePin(c *cursor) (Pin, error) {
	un1, err := c.u32le()
	if err != nil {
		return Pin{}, err
	}
	x, err := c.u32le()
	if err != nil {
		return Pin{}, err
	}
	y, err := c.u32le()
	if err != nil {
		return Pin{}, err
	}
	innerDiameter, err := c.u32le()
	if err != nil {
		return Pin{}, err
	}
	rotation, err := c.u32le()
	if err != nil {
		return Pin{}, err
	}
	nameSize, err := c.u32le()
	if err != nil {
		return Pin{}, err
	}
	name, nameRaw, err := c.utf8Lossy(int(nameSize))
	if err != nil {
		return Pin{}, err
	}
	width, err := c.u32le()
	if err != nil {
		return Pin{}, err
	}
	height, err := c.u32le()
	if err != nil {
		return Pin{}, err
	}
	shape, err := c.u8()
	if err != nil {
		return Pin{}, err
	}
	reservedBytes, err := c.bytesN(pinReservedSize)
	if err != nil {
		return Pin{}, err
	}
	var reserved [pinReservedSize]byte
	copy(reserved[:], reservedBytes)
	netIndex, err := c.u32le()
	if err != nil {
		return Pin{}, err
	}
	if err := c.skip(pinTrailingSkip); err != nil {
		return Pin{}, err
	}

	return Pin{
		Un1:           un1,
		X:             x,
		Y:             y,
		InnerDiameter: innerDiameter,
		Rotation:      rotation,
		Name:          name,
		NameRaw:       nameRaw,
		Width:         width,
		Height:        height,
		Shape:         shape,
		Reserved:      reserved,
		NetIndex:      netIndex,
		IsThruHole:    innerDiameter != 0,
	}, nil
}
