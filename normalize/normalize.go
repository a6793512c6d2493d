// Package normalize maps raw tokens to their canonical word form.
//
// Normalization is ASCII only: upper case letters are folded to lower case,
// and trailing bytes which are not ASCII letters are stripped.
package normalize

import (
	"bytes"

	"github.com/npillmayer/wordcount/strops"
)

// ToLowercase folds 'A'..'Z' to 'a'..'z' in place. All other bytes are left
// unchanged.
func ToLowercase(w []byte) {
	for i, c := range w {
		if c >= 'A' && c <= 'Z' {
			w[i] = c + ('a' - 'A')
		}
	}
}

// TrimTrailingNonAlpha drops all trailing bytes of w which are not letters
// and returns the shortened slice. If w contains no letter at all, the result
// is empty. Examples:
//
//	"hello!!" => "hello"
//	"wait..." => "wait"
//	"123"     => ""
func TrimTrailingNonAlpha(w []byte) []byte {
	end := len(w)
	for end > 0 && !strops.IsAlpha(w[end-1]) {
		end--
	}
	return w[:end]
}

// Word normalizes a raw token in place and returns the canonical word.
// A token ends at its first NUL byte, if any; then it is lower-cased and
// trailing non-letters are trimmed.
func Word(w []byte) []byte {
	if i := bytes.IndexByte(w, 0); i >= 0 {
		w = w[:i]
	}
	ToLowercase(w)
	return TrimTrailingNonAlpha(w)
}
