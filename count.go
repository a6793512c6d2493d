package wordcount

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/npillmayer/wordcount/dict"
	"github.com/npillmayer/wordcount/normalize"
	"github.com/npillmayer/wordcount/strops"
	"github.com/npillmayer/wordcount/tokenize"
	"github.com/npillmayer/wordcount/vocab"
)

// Stats are the running statistics of a Counter.
type Stats struct {
	TotalWords  int    // number of tokens seen, including ones normalized to ""
	UniqueWords int    // number of distinct words
	BestWord    []byte // most frequent word, least one on ties
	BestCount   int    // occurrences of BestWord
}

// Counter folds tokens into a dictionary and keeps running statistics.
type Counter struct {
	words *dict.Dictionary
	stats Stats
	best  []byte // storage for stats.BestWord, owned by the counter
}

// NewCounter creates a counter over an empty dictionary configured by cfg.
func NewCounter(cfg Config) *Counter {
	return &Counter{
		words: dict.New(
			dict.WithBuckets(cfg.Buckets),
			dict.WithMaxWordLen(cfg.MaxWordLen),
			dict.WithMaxEntries(cfg.MaxEntries),
		),
		best: make([]byte, 0, cfg.MaxWordLen),
	}
}

// Add counts one raw token. The token is normalized in place.
//
// The best word changes if the token's word now has a higher count than the
// best word, or the same count and a lexicographically lower word. Add fails
// only if the dictionary cannot create an entry for a new word; the counter
// is unchanged except for TotalWords in this case.
func (c *Counter) Add(token []byte) error {
	if c == nil || token == nil {
		return nil
	}
	c.stats.TotalWords++
	word := normalize.Word(token)
	entry, err := c.words.FindOrInsert(word)
	if err != nil {
		return err
	}
	if entry.Count == 0 {
		c.stats.UniqueWords++
	}
	entry.Count++
	if entry.Count > c.stats.BestCount ||
		(entry.Count == c.stats.BestCount && strops.Compare(entry.Word, c.best) < 0) {
		c.best = strops.Copy(c.best, entry.Word, c.words.MaxWordLen())
		c.stats.BestCount = entry.Count
	}
	return nil
}

// Stats returns a snapshot of the running statistics. BestWord is a copy.
func (c *Counter) Stats() Stats {
	if c == nil {
		return Stats{BestWord: []byte{}}
	}
	s := c.stats
	s.BestWord = slices.Clone(c.best)
	if s.BestWord == nil {
		s.BestWord = []byte{}
	}
	return s
}

// Dictionary returns the underlying dictionary.
func (c *Counter) Dictionary() *dict.Dictionary {
	if c == nil {
		return nil
	}
	return c.words
}

// Top returns the n most frequent words, ordered by count (descending) and
// then by word (ascending). The first element, if any, is the best word.
func (c *Counter) Top(n int) []vocab.WordCount {
	if c == nil || n <= 0 {
		return nil
	}
	all := make([]vocab.WordCount, 0, c.words.Len())
	c.words.Each(func(e *dict.Entry) bool {
		all = append(all, vocab.WordCount{Word: string(e.Word), Count: e.Count})
		return true
	})
	slices.SortFunc(all, func(a, b vocab.WordCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Word, b.Word)
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// Release drops all dictionary entries. Statistics are kept.
func (c *Counter) Release() {
	if c == nil {
		return
	}
	c.words.Release()
}

// Consume reads tokens from r until it is exhausted and folds them into c.
// ctx is checked between tokens.
func (c *Counter) Consume(ctx context.Context, r *tokenize.Reader) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		token, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err = c.Add(token); err != nil {
			return fmt.Errorf("count token %d: %w", c.stats.TotalWords, err)
		}
	}
}

// Count runs a complete count over input and returns the report.
//
// The dictionary is released before Count returns; the report holds
// everything needed afterwards. If cfg.Top > 0 the report lists the cfg.Top
// most frequent words.
func Count(ctx context.Context, input io.Reader, cfg Config) (*Report, error) {
	report, _, err := count(ctx, input, cfg, false)
	return report, err
}

// CountWithIndex is like Count, but additionally returns a prefix index over
// the counted vocabulary.
func CountWithIndex(ctx context.Context, input io.Reader, cfg Config) (*Report, *vocab.Index, error) {
	return count(ctx, input, cfg, true)
}

func count(ctx context.Context, input io.Reader, cfg Config, withIndex bool) (*Report, *vocab.Index, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	counter := NewCounter(cfg)
	defer counter.Release()
	reader := tokenize.NewReader(input, cfg.MaxWordLen)
	if err := counter.Consume(ctx, reader); err != nil {
		return nil, nil, err
	}
	report := newReport(counter, reader.Truncated(), cfg.Top)
	var idx *vocab.Index
	if withIndex {
		idx = vocab.Build(counter.Dictionary())
	}
	counter.Dictionary().Trace()
	tracer().Infof("counted %d words, %d unique", report.TotalWords, report.UniqueWords)
	return report, idx, nil
}
