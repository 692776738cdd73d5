package xzzpcb

import (
	"fmt"
	"unicode/utf8"
)

// cursor is a bounded little-endian reader over an immutable byte slice.
// It never panics: every read first checks that the requested width fits
// within the remaining buffer and returns an OverrunError otherwise.
type cursor struct {
	buf    []byte
	offset int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.offset
}

func (c *cursor) seek(abs int) {
	c.offset = abs
}

func (c *cursor) skip(n int) error {
	if n < 0 || c.offset+n > len(c.buf) {
		return &OverrunError{At: c.offset, Wanted: n}
	}
	c.offset += n
	return nil
}

func (c *cursor) require(n int) error {
	if n < 0 || c.offset+n > len(c.buf) {
		return &OverrunError{At: c.offset, Wanted: n}
	}
	return nil
}

func (c *cursor) u8() (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.buf[c.offset]
	c.offset++
	return v, nil
}

func (c *cursor) u16le() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := uint16(c.buf[c.offset]) | uint16(c.buf[c.offset+1])<<8
	c.offset += 2
	return v, nil
}

func (c *cursor) u32le() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := uint32(c.buf[c.offset]) |
		uint32(c.buf[c.offset+1])<<8 |
		uint32(c.buf[c.offset+2])<<16 |
		uint32(c.buf[c.offset+3])<<24
	c.offset += 4
	return v, nil
}

func (c *cursor) i32le() (int32, error) {
	v, err := c.u32le()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// bytesN returns a freshly-allocated copy of the next n bytes, per
// spec.md I5 (no entity shares storage with another).
func (c *cursor) bytesN(n int) ([]byte, error) {
	if n < 0 {
		return nil, &OverrunError{At: c.offset, Wanted: n}
	}
	if err := c.require(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, c.buf[c.offset:c.offset+n])
	c.offset += n
	return out, nil
}

// utf8Lossy decodes n raw bytes as UTF-8, replacing invalid sequences with
// U+FFFD rather than failing, per spec.md §4.1. It returns both the decoded
// string and the raw bytes so an external re-interpretation layer (e.g. for
// GB2312 label text, see SPEC_FULL.md §12) has lossless input to work from.
func (c *cursor) utf8Lossy(n int) (string, []byte, error) {
	raw, err := c.bytesN(n)
	if err != nil {
		return "", nil, err
	}
	if utf8.Valid(raw) {
		return string(raw), raw, nil
	}
	return toValidUTF8(raw), raw, nil
}

func toValidUTF8(raw []byte) string {
	var b []byte
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size <= 1 {
			b = append(b, "�"...)
			i++
			continue
		}
		b = append(b, raw[i:i+size]...)
		i += size
	}
	return string(b)
}

func (c *cursor) String() string {
	return fmt.Sprintf("cursor{offset=%d, len=%d}", c.offset, len(c.buf))
}
