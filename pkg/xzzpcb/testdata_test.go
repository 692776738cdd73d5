package xzzpcb

import "encoding/binary"

// leU32/leI32/leU16 are little-endian encoding helpers shared by this
// package's tests, matching spec.md I4 (all integers decode little-endian).

func leU32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func leI32(v int32) []byte {
	return leU32(uint32(v))
}

func leU16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

// buildFileHeader returns a minimal, non-obfuscated header: 0x44 bytes,
// byte 0x10 left at 0, with mainSize written at absolute offset 0x40.
func buildFileHeader(mainSize uint32) []byte {
	buf := make([]byte, minHeaderSize)
	copy(buf[mainRegionSizeOffset:], leU32(mainSize))
	return buf
}

func concatAll(chunks ...[]byte) []byte {
	var out []byte
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
