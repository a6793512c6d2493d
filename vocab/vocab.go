// Package vocab builds a prefix index over the words of a finished dictionary.
//
// The index is a snapshot: it holds copies of words and counts and does not
// follow later changes to the dictionary.
package vocab

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/wordcount/dict"
)

// tracer writes to trace with key 'wordcount'
func tracer() tracing.Trace {
	return tracing.Select("wordcount")
}

// WordCount is a word with its occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Index is a prefix index over dictionary words.
type Index struct {
	trie    *trie.Trie
	size    int
	skipped int
}

// Build creates an index for all entries of d.
//
// Words which are not valid UTF-8 cannot be represented in the trie and are
// left out; Skipped reports how many.
func Build(d *dict.Dictionary) *Index {
	idx := &Index{trie: trie.New()}
	d.Each(func(e *dict.Entry) bool {
		if !utf8.Valid(e.Word) {
			idx.skipped++
			return true
		}
		idx.trie.Add(string(e.Word), e.Count)
		idx.size++
		return true
	})
	tracer().Debugf("vocabulary index with %d words, %d skipped", idx.size, idx.skipped)
	return idx
}

// Len returns the number of indexed words.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return idx.size
}

// Skipped returns the number of dictionary words left out of the index.
func (idx *Index) Skipped() int {
	if idx == nil {
		return 0
	}
	return idx.skipped
}

// Count returns the count recorded for word.
func (idx *Index) Count(word string) (int, bool) {
	if idx == nil {
		return 0, false
	}
	node, ok := idx.trie.Find(word)
	if !ok {
		return 0, false
	}
	n, ok := node.Meta().(int)
	return n, ok
}

// HasPrefix reports whether any indexed word starts with prefix.
func (idx *Index) HasPrefix(prefix string) bool {
	if idx == nil {
		return false
	}
	return idx.trie.HasKeysWithPrefix(prefix)
}

// WithPrefix returns all indexed words starting with prefix, in
// lexicographic order.
func (idx *Index) WithPrefix(prefix string) []WordCount {
	if idx == nil {
		return nil
	}
	keys := idx.trie.PrefixSearch(prefix)
	result := make([]WordCount, 0, len(keys))
	for _, k := range keys {
		if n, ok := idx.Count(k); ok {
			result = append(result, WordCount{Word: k, Count: n})
		}
	}
	slices.SortFunc(result, func(a, b WordCount) int {
		return cmp.Compare(a.Word, b.Word)
	})
	return result
}
