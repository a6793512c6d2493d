package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/npillmayer/wordcount/vocab"
)

// printer handles text or JSON output.
type printer struct {
	w io.Writer
}

// json marshals v as indented JSON.
func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// prefixList writes the words matching prefix as a two-column table.
func (p *printer) prefixList(prefix string, matches []vocab.WordCount) error {
	if _, err := fmt.Fprintf(p.w, "Words with prefix %q: %d\n", prefix, len(matches)); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	for _, m := range matches {
		_, _ = fmt.Fprintf(tw, "  %s\t%d\n", m.Word, m.Count)
	}
	return tw.Flush()
}
