package xzzpcb

// Part sub-block tag bytes, per spec.md §4.6.
const (
	partTagArc   = 0x01
	partTagLine  = 0x05
	partTagLabel = 0x06
	partTagPins  = 0x09
)

// parseData reads outer tag 0x07 (the DATA/Part block): it takes exactly
// block_size bytes of ciphertext, decrypts them with C3, and feeds the
// plaintext to the C6 part-block walker, per spec.md §4.5. A decrypt
// failure is recovered: the Part's Ciphertext is preserved and its
// SubBlocks stay empty, with a DecryptFailure diagnostic recorded on
// board (spec.md §4.3 / §4.7).
func parseData(c *cursor, board *Board) (*Part, error) {
	blockOffset := c.offset
	blockSize, err := c.u32le()
	if err != nil {
		return nil, err
	}
	ciphertext, err := c.bytesN(int(blockSize))
	if err != nil {
		return nil, err
	}

	part := &Part{Ciphertext: ciphertext}

	plaintext, decErr := decryptPart(ciphertext)
	if decErr != nil {
		board.Diagnostics = append(board.Diagnostics, decryptFailureDiagnostic(blockOffset, decErr))
		return part, nil
	}

	header, subBlocks := walkPartBlocks(plaintext)
	part.Header = header
	part.SubBlocks = subBlocks
	return part, nil
}

// walkPartBlocks consumes the plaintext of a DATA block, per spec.md §4.6.
// It always returns whatever header and sub-blocks were successfully
// decoded, even on overrun partway through (spec.md §4.7: "C6 returns a
// partial Part with the sub-blocks decoded so far").
func walkPartBlocks(plaintext []byte) (PartHeader, []PartSubBlock) {
	c := newCursor(plaintext)
	header, err := parsePartHeader(c)
	if err != nil {
		return header, nil
	}

	// Truncate the view to the header's part_size + 4 bytes, per spec.md
	// §4.6. viewLen bounds the sub-block walk and the pin-array budget;
	// c itself still reads from the whole plaintext, so no second aliased
	// view of the buffer is needed.
	viewLen := int(header.PartSize) + 4
	if viewLen > len(plaintext) {
		viewLen = len(plaintext)
	}
	if viewLen < c.offset {
		viewLen = c.offset
	}

	var subBlocks []PartSubBlock
	for {
		// Termination per spec.md §4.6: "while cursor + pin_block_size <
		// view.len AND cursor < view.len". pin_block_size here is the
		// minimum frame any sub-block needs: one tag byte.
		if c.offset >= viewLen || c.offset+1 >= viewLen {
			break
		}

		tag, err := c.u8()
		if err != nil {
			break
		}

		sub, ok, err := dispatchPartTag(c, tag, viewLen)
		if err != nil {
			// Overrun partway through a sub-block: keep everything decoded
			// so far and stop, per spec.md §4.7.
			break
		}
		if !ok {
			// Unknown sub-tag terminates the walk, per spec.md §4.6.
			break
		}
		if sub != nil {
			subBlocks = append(subBlocks, *sub)
		}
	}

	return header, subBlocks
}

func dispatchPartTag(c *cursor, tag byte, viewLen int) (*PartSubBlock, bool, error) {
	switch tag {
	case partTagArc:
		arc, err := parsePartArc(c)
		if err != nil {
			return nil, true, err
		}
		return &PartSubBlock{Kind: PartSubArc, Arc: arc}, true, nil

	case partTagLine:
		line, err := parsePartLine(c)
		if err != nil {
			return nil, true, err
		}
		return &PartSubBlock{Kind: PartSubLine, Line: line}, true, nil

	case partTagLabel:
		label, err := parsePartLabel(c)
		if err != nil {
			return nil, true, err
		}
		return &PartSubBlock{Kind: PartSubLabel, Label: label}, true, nil

	case partTagPins:
		pins, err := parsePinArray(c, viewLen)
		if err != nil {
			return nil, true, err
		}
		return &PartSubBlock{Kind: PartSubPinArray, PinArray: pins}, true, nil

	default:
		return nil, false, nil
	}
}
