// Package tokenize splits a byte stream into whitespace-delimited tokens.
package tokenize

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/wordcount/strops"
)

// DefaultMaxWordLen is the default capacity of the token buffer.
const DefaultMaxWordLen = 63

// Reader streams tokens from an input source.
//
// A token is a run of non-whitespace bytes. Runs longer than the maximum word
// length are clipped: surplus bytes are dropped, but the token still extends
// up to the next whitespace byte or the end of input. A 1000-byte run with a
// limit of 100 therefore yields one 100-byte token.
type Reader struct {
	input     io.ByteReader
	word      []byte
	maxLen    int
	tokens    int
	truncated int
}

// NewReader creates a token reader for input. maxLen is the maximum number
// of bytes kept per token; values <= 0 select DefaultMaxWordLen.
func NewReader(input io.Reader, maxLen int) *Reader {
	if maxLen <= 0 {
		maxLen = DefaultMaxWordLen
	}
	br, ok := input.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(input)
	}
	return &Reader{
		input:  br,
		word:   make([]byte, 0, maxLen),
		maxLen: maxLen,
	}
}

// MaxWordLen returns the token capacity of r.
func (r *Reader) MaxWordLen() int {
	return r.maxLen
}

// Next returns the next token.
// It returns io.EOF when the input is exhausted and no bytes are pending.
// The returned slice is reused by subsequent calls.
func (r *Reader) Next() ([]byte, error) {
	r.word = r.word[:0]
	clipped := false
	for {
		c, err := r.input.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read token: %w", err)
		}
		if strops.IsWhitespace(c) {
			if len(r.word) > 0 {
				return r.emit(clipped), nil
			}
			continue
		}
		if len(r.word) < r.maxLen {
			r.word = append(r.word, c)
		} else {
			clipped = true
		}
	}
	if len(r.word) > 0 {
		return r.emit(clipped), nil
	}
	return nil, io.EOF
}

func (r *Reader) emit(clipped bool) []byte {
	r.tokens++
	if clipped {
		r.truncated++
	}
	return r.word
}

// Tokens returns the number of tokens delivered so far.
func (r *Reader) Tokens() int {
	return r.tokens
}

// Truncated returns the number of tokens which have been clipped to the
// maximum word length so far.
func (r *Reader) Truncated() int {
	return r.truncated
}
