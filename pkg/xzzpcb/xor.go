package xzzpcb

import "bytes"

// minHeaderSize is the smallest buffer the XOR deobfuscator and outer block
// walker can meaningfully operate on: it must contain the key byte at
// 0x10 and the main-region size at 0x40..0x43, per spec.md §4.2 and §6.
const minHeaderSize = 0x44

// obfuscationSentinel bounds the end of the XOR-obfuscated prefix, per
// spec.md §4.2 / §6. It is the exact 11-byte pattern the spec contract
// names; see SPEC_FULL.md §12 for why the Python reference's longer
// 19-byte "diode reading" variant is not used here.
var obfuscationSentinel = []byte{0x76, 0x36, 0x76, 0x36, 0x35, 0x35, 0x35, 0x76, 0x36, 0x76, 0x36}

// deobfuscate returns a mutable copy of buf with the XOR-obfuscated prefix
// cleared in place, if buf is obfuscated (buf[0x10] != 0x00). If buf is
// too short to carry the key byte, or is not obfuscated, deobfuscate
// returns a copy of buf unchanged — the decoder never mutates the
// caller's slice (§5).
//
// Idempotence (spec.md P3): deobfuscate on an already-clear file
// (buf[0x10] == 0) is a no-op because the function is gated on that exact
// byte before doing any XOR work.
func deobfuscate(buf []byte) []byte {
	out := make([]byte, len(buf))
	copy(out, buf)

	if len(out) < minHeaderSize {
		return out
	}
	key := out[0x10]
	if key == 0x00 {
		return out
	}

	end := bytes.Index(out, obfuscationSentinel)
	if end == -1 {
		end = len(out)
	}
	for i := 0; i < end; i++ {
		out[i] ^= key
	}
	return out
}
