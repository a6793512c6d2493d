package wordcount

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/npillmayer/wordcount/dict"
	"github.com/npillmayer/wordcount/vocab"
)

// Report is the outcome of a counting run.
type Report struct {
	TotalWords  int               `json:"total_words"`
	UniqueWords int               `json:"unique_words"`
	BestWord    string            `json:"best_word"`
	BestCount   int               `json:"best_count"`
	Truncated   int               `json:"truncated_tokens"`
	Top         []vocab.WordCount `json:"top,omitempty"`
	Table       dict.TableStats   `json:"table"`
}

func newReport(c *Counter, truncated int, top int) *Report {
	stats := c.Stats()
	return &Report{
		TotalWords:  stats.TotalWords,
		UniqueWords: stats.UniqueWords,
		BestWord:    string(stats.BestWord),
		BestCount:   stats.BestCount,
		Truncated:   truncated,
		Top:         c.Top(top),
		Table:       c.Dictionary().Stats(),
	}
}

// WriteText writes the three summary lines
//
//	Total words read: <N>
//	Unique words read: <N>
//	Most frequent word: <word> (<N>)
//
// followed by the top list, if any.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Total words read: %d\n", r.TotalWords); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Unique words read: %d\n", r.UniqueWords); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Most frequent word: %s (%d)\n", r.BestWord, r.BestCount); err != nil {
		return err
	}
	if len(r.Top) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Top %d words:\n", len(r.Top)); err != nil {
		return err
	}
	for i, wc := range r.Top {
		if _, err := fmt.Fprintf(w, "%4d  %-20s %d\n", i+1, wc.Word, wc.Count); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes r as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteStats writes the dictionary table statistics.
func (r *Report) WriteStats(w io.Writer) error {
	s := r.Table
	_, err := fmt.Fprintf(w, "Buckets: %d, used: %d (%.1f%%), entries: %d, load: %.2f, longest chain: %d, truncated tokens: %d\n",
		s.Buckets, s.UsedBuckets, s.FillRatio()*100, s.Entries, s.LoadFactor(), s.LongestChain, r.Truncated)
	return err
}
