/*
Package strops holds the byte-level string primitives the word counter is
built on: hashing, lexicographic comparison, bounded copying and ASCII
classification.

Words are opaque byte strings. Nothing in here knows about UTF-8.
*/
package strops

import "bytes"

// hashSeed is the start value of Hash (djb2).
const hashSeed uint32 = 5381

// Hash computes the djb2 hash code of w:
//
//	h = 5381
//	for each byte b of w: h = h*33 + b
//
// Bytes are unsigned, arithmetic wraps around at 32 bits.
func Hash(w []byte) uint32 {
	h := hashSeed
	for _, b := range w {
		h = h*33 + uint32(b)
	}
	return h
}

// Compare compares two words byte-wise. It returns a negative value if a < b,
// 0 if a == b and a positive value if a > b. If one word is a proper prefix of
// the other, the shorter one is less: "hi" < "high".
func Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Copy replaces the contents of dst with at most limit bytes of src and
// returns the resulting slice. Longer sources are silently truncated.
// A nil src leaves dst untouched.
func Copy(dst, src []byte, limit int) []byte {
	if src == nil {
		return dst
	}
	if limit >= 0 && len(src) > limit {
		src = src[:limit]
	}
	return append(dst[:0], src...)
}

// IsWhitespace returns true for ' ', '\t', '\r', '\n', '\f' and '\v'.
func IsWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}

// IsAlpha returns true if b is an ASCII letter (A-Z or a-z).
func IsAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
