package xzzpcb

import "crypto/des"

// partDESKey is the fixed 8-byte key used for every DATA block in an
// XZZPCB file, per spec.md §4.3 / §6 (the ASCII hex string
// "DCFC12AC00000000").
var partDESKey = []byte{0xDC, 0xFC, 0x12, 0xAC, 0x00, 0x00, 0x00, 0x00}

// decryptPart decrypts a DATA block's ciphertext with DES-ECB and strips
// PKCS#7 padding from the plaintext, per spec.md §4.3. An empty
// ciphertext decrypts to an empty plaintext (spec.md §4.7's "PKCS7
// padding of an empty plaintext produces an empty Part with no
// sub-blocks").
func decryptPart(ciphertext []byte) ([]byte, *DecryptError) {
	if len(ciphertext) == 0 {
		return nil, nil
	}
	if len(ciphertext)%des.BlockSize != 0 {
		return nil, &DecryptError{Kind: DecryptBadLength}
	}

	block, err := des.NewCipher(partDESKey)
	if err != nil {
		// partDESKey is a fixed, valid 8-byte key; des.NewCipher can only
		// fail on key length, which is statically guaranteed above.
		return nil, &DecryptError{Kind: DecryptBadLength}
	}

	plain := make([]byte, len(ciphertext))
	for off := 0; off < len(ciphertext); off += des.BlockSize {
		block.Decrypt(plain[off:off+des.BlockSize], ciphertext[off:off+des.BlockSize])
	}

	return stripPKCS7(plain)
}

// stripPKCS7 removes PKCS#7 padding from plain. If plain is empty or the
// trailing byte does not describe valid padding, the original tooling
// "tries unpadding and falls back to leaving it alone if it fails"
// (original_source/XZZPCB_Decrypt.py); this rework treats an invalid
// padding byte as a hard DecryptError per spec.md §4.3's BadPadding kind,
// since the core must surface that failure as a diagnostic rather than
// silently return mis-unpadded plaintext.
func stripPKCS7(plain []byte) ([]byte, *DecryptError) {
	if len(plain) == 0 {
		return plain, nil
	}
	padLen := int(plain[len(plain)-1])
	if padLen == 0 || padLen > len(plain) || padLen > des.BlockSize {
		return nil, &DecryptError{Kind: DecryptBadPadding}
	}
	for i := len(plain) - padLen; i < len(plain); i++ {
		if plain[i] != byte(padLen) {
			return nil, &DecryptError{Kind: DecryptBadPadding}
		}
	}
	return plain[:len(plain)-padLen], nil
}
