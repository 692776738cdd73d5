package xzzpcb

// mainRegionSizeOffset and mainRegionStart are the two fixed absolute
// offsets the outer block walker anchors on, per spec.md §6.
const (
	mainRegionSizeOffset = 0x40
	mainRegionStart      = 0x44
)

// Decode transforms a raw XZZPCB byte stream into a Board, per spec.md
// §6. It never panics and never returns a non-nil error: every failure is
// recovered locally and recorded in the returned Board's Diagnostics list
// (spec.md §7, P1). progress, if non-nil, is invoked cooperatively at
// well-defined stages and at bounded block intervals (spec.md §5); its
// return value is never inspected.
func Decode(raw []byte, progress ProgressFunc) *Board {
	board := &Board{}

	report(progress, 0, StageInit)

	if len(raw) < minHeaderSize {
		board.Diagnostics = append(board.Diagnostics, overrunDiagnostic(&OverrunError{
			At:     len(raw),
			Wanted: minHeaderSize - len(raw),
		}))
		report(progress, 100, StageComplete)
		return board
	}

	report(progress, 5, StageXOR)
	buf := deobfuscate(raw)

	report(progress, 10, StageHeader)
	c := newCursor(buf)
	c.seek(mainRegionSizeOffset)
	mainSize, err := c.u32le()
	if err != nil {
		board.Diagnostics = append(board.Diagnostics, overrunDiagnostic(err.(*OverrunError)))
		report(progress, 100, StageComplete)
		return board
	}

	end := mainRegionStart + int(mainSize)
	if end > len(buf) {
		end = len(buf)
	}
	c.seek(mainRegionStart)

	report(progress, 15, StageWalk)
	walkOuterBlocks(c, end, board, progress)

	report(progress, 100, StageComplete)
	return board
}

// walkOuterBlocks iterates the main-block region starting at c's current
// offset and dispatches each tagged block to its type parser, per spec.md
// §4.4. Overrun at any level aborts only the outer walk and returns all
// entities decoded so far (spec.md §4.7 failure semantics); an unknown tag
// also terminates the walk (spec.md §4.4 step 3).
func walkOuterBlocks(c *cursor, end int, board *Board, progress ProgressFunc) {
	blocksSeen := 0

	for c.offset < end && c.remaining() > 0 {
		blocksSeen++
		if progress != nil && blocksSeen%progressInterval == 0 {
			pct := 15 + int(float64(c.offset-mainRegionStart)/float64(max(end-mainRegionStart, 1))*80)
			report(progress, pct, StageWalk)
		}

		// Zero padding: a u32 of 0 with no tag byte, per spec.md §4.4 step 1.
		peeked := newCursor(c.buf)
		peeked.seek(c.offset)
		if v, err := peeked.u32le(); err == nil && v == 0 {
			if err := c.skip(4); err != nil {
				board.Diagnostics = append(board.Diagnostics, overrunDiagnostic(err.(*OverrunError)))
				return
			}
			continue
		}

		tagOffset := c.offset
		tag, err := c.u8()
		if err != nil {
			board.Diagnostics = append(board.Diagnostics, overrunDiagnostic(err.(*OverrunError)))
			return
		}

		entity, ok, walkErr := dispatchOuterTag(c, tag, tagOffset, board)
		if walkErr != nil {
			board.Diagnostics = append(board.Diagnostics, overrunDiagnostic(walkErr.(*OverrunError)))
			return
		}
		if !ok {
			// dispatchOuterTag already recorded an UnknownTag diagnostic.
			return
		}
		if entity != nil {
			board.Entities = append(board.Entities, *entity)
		}
	}
}

// dispatchOuterTag parses exactly one tagged block at c's current offset
// (immediately after the tag byte was consumed at tagOffset), per spec.md
// §4.4 step 2. It returns (entity, true, nil) on success, (nil, true, nil)
// for tags that produce no Entity (skips and sentinels), and (nil, false,
// nil) for an unrecognized tag after recording an UnknownTag diagnostic.
func dispatchOuterTag(c *cursor, tag byte, tagOffset int, board *Board) (*Entity, bool, error) {
	switch tag {
	case tagArc:
		arc, err := parseArc(c)
		if err != nil {
			return nil, true, err
		}
		return &Entity{Kind: EntityArc, Arc: arc}, true, nil

	case tagVia:
		via, err := parseVia(c)
		if err != nil {
			return nil, true, err
		}
		return &Entity{Kind: EntityVia, Via: via}, true, nil

	case tagSkip3:
		if err := skipLengthPrefixed(c); err != nil {
			return nil, true, err
		}
		return nil, true, nil

	case tagSentinel4, tagSentinel8:
		// No payload beyond the tag byte, per spec.md §4.4 step 2.
		return nil, true, nil

	case tagSegment:
		seg, err := parseSegment(c)
		if err != nil {
			return nil, true, err
		}
		return &Entity{Kind: EntitySegment, Segment: seg}, true, nil

	case tagText:
		text, err := parseText(c)
		if err != nil {
			return nil, true, err
		}
		return &Entity{Kind: EntityText, Text: text}, true, nil

	case tagData:
		part, err := parseData(c, board)
		if err != nil {
			return nil, true, err
		}
		return &Entity{Kind: EntityPart, Part: part}, true, nil

	case tagSkip9:
		if err := skipLengthPrefixed(c); err != nil {
			return nil, true, err
		}
		return nil, true, nil

	default:
		board.Diagnostics = append(board.Diagnostics, unknownTagDiagnostic(tagOffset, tag))
		return nil, false, nil
	}
}
