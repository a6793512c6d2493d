package wordcount

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/npillmayer/wordcount/dict"
	"github.com/npillmayer/wordcount/vocab"
)

func mustCount(t *testing.T, input string, cfg Config) *Report {
	t.Helper()
	report, err := Count(context.Background(), strings.NewReader(input), cfg)
	if err != nil {
		t.Fatalf("Count(%q) failed: %v", input, err)
	}
	return report
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		total  int
		unique int
		best   string
		count  int
	}{
		{name: "case folding", input: "The the THE", total: 3, unique: 1, best: "the", count: 3},
		{name: "single letters", input: "a A b", total: 3, unique: 2, best: "a", count: 2},
		{name: "tie picks least word", input: "cat dog cat dog bird", total: 5, unique: 3, best: "cat", count: 2},
		{name: "all non-alpha", input: "!!!", total: 1, unique: 1, best: "", count: 1},
		{name: "empty input", input: "", total: 0, unique: 0, best: "", count: 0},
		{name: "whitespace only", input: " \n\t ", total: 0, unique: 0, best: "", count: 0},
		{name: "punctuation trimmed", input: "hello!! Hello wait... wait", total: 4, unique: 2, best: "hello", count: 2},
		{name: "empty word competes", input: "1 2 3 x", total: 4, unique: 2, best: "", count: 3},
		{name: "embedded NUL ends word", input: "ab\x00cd AB", total: 2, unique: 1, best: "ab", count: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustCount(t, tt.input, DefaultConfig())
			if r.TotalWords != tt.total || r.UniqueWords != tt.unique {
				t.Errorf("total/unique = %d/%d, want %d/%d", r.TotalWords, r.UniqueWords, tt.total, tt.unique)
			}
			if r.BestWord != tt.best || r.BestCount != tt.count {
				t.Errorf("best = %q (%d), want %q (%d)", r.BestWord, r.BestCount, tt.best, tt.count)
			}
		})
	}
}

func TestBestWordChangesMidStream(t *testing.T) {
	c := NewCounter(DefaultConfig())
	steps := []struct {
		token string
		best  string
		count int
	}{
		{"zebra", "zebra", 1},
		{"apple", "apple", 1}, // tie, apple < zebra
		{"zebra", "zebra", 2},
		{"apple", "apple", 2}, // tie again
		{"mango", "apple", 2},
	}
	for _, step := range steps {
		if err := c.Add([]byte(step.token)); err != nil {
			t.Fatal(err)
		}
		s := c.Stats()
		if string(s.BestWord) != step.best || s.BestCount != step.count {
			t.Fatalf("after %q: best = %q (%d), want %q (%d)",
				step.token, s.BestWord, s.BestCount, step.best, step.count)
		}
	}
}

func TestBestWordIsACopy(t *testing.T) {
	c := NewCounter(DefaultConfig())
	token := []byte("word")
	c.Add(token)
	token[0] = 'x'
	s := c.Stats()
	if string(s.BestWord) != "word" {
		t.Fatalf("best word aliases the token buffer: %q", s.BestWord)
	}
	s.BestWord[0] = 'y'
	if string(c.Stats().BestWord) != "word" {
		t.Fatalf("Stats hands out the counter's own storage")
	}
}

func TestUniqueMatchesDictionary(t *testing.T) {
	c := NewCounter(Config{Buckets: 5, MaxWordLen: 8})
	for _, w := range strings.Fields("one two three two one four five six seven one") {
		if err := c.Add([]byte(w)); err != nil {
			t.Fatal(err)
		}
	}
	s := c.Stats()
	if s.UniqueWords != c.Dictionary().Len() {
		t.Fatalf("unique words %d differs from dictionary size %d", s.UniqueWords, c.Dictionary().Len())
	}
	if s.TotalWords != 10 || s.UniqueWords != 7 {
		t.Fatalf("expected 10/7, got %d/%d", s.TotalWords, s.UniqueWords)
	}
}

func TestLongTokenTruncatedBeforeNormalization(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxWordLen = 5
	r := mustCount(t, "ABCDEFGH!!! abcde abc12", cfg)
	if r.UniqueWords != 2 || r.BestWord != "abcde" || r.BestCount != 2 {
		t.Fatalf("unexpected report %+v", r)
	}
	if r.Truncated != 1 {
		t.Fatalf("expected 1 truncated token, got %d", r.Truncated)
	}
}

func TestTop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Top = 3
	r := mustCount(t, "b a c b a d b", cfg)
	want := []vocab.WordCount{
		{Word: "b", Count: 3},
		{Word: "a", Count: 2},
		{Word: "c", Count: 1},
	}
	if !reflect.DeepEqual(r.Top, want) {
		t.Fatalf("top mismatch: got %v, want %v", r.Top, want)
	}
	if r.Top[0].Word != r.BestWord {
		t.Fatalf("first top word %q differs from best word %q", r.Top[0].Word, r.BestWord)
	}
}

func TestAllocationFailureAbortsRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxEntries = 2
	_, err := Count(context.Background(), strings.NewReader("a b a c"), cfg)
	if !errors.Is(err, dict.ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
}

func TestReadErrorAbortsRun(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := Count(context.Background(), iotest.ErrReader(boom), DefaultConfig())
	if !errors.Is(err, boom) {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Count(ctx, strings.NewReader("a b c"), DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestInvalidConfig(t *testing.T) {
	bad := []Config{
		{Buckets: 0, MaxWordLen: 10},
		{Buckets: 10, MaxWordLen: 0},
		{Buckets: 10, MaxWordLen: 10, MaxEntries: -1},
		{Buckets: 10, MaxWordLen: 10, Top: -1},
	}
	for _, cfg := range bad {
		if _, err := Count(context.Background(), strings.NewReader("x"), cfg); err == nil {
			t.Errorf("expected config %+v to be rejected", cfg)
		}
	}
}

func TestNilCounter(t *testing.T) {
	var c *Counter
	if err := c.Add([]byte("x")); err != nil {
		t.Fatalf("nil counter Add returned %v", err)
	}
	if s := c.Stats(); s.TotalWords != 0 || len(s.BestWord) != 0 {
		t.Fatalf("nil counter reported %+v", s)
	}
	c.Release()
}

func TestWriteText(t *testing.T) {
	r := mustCount(t, "cat dog cat dog bird", DefaultConfig())
	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	want := "Total words read: 5\nUnique words read: 3\nMost frequent word: cat (2)\n"
	if buf.String() != want {
		t.Fatalf("report mismatch:\ngot  %q\nwant %q", buf.String(), want)
	}
}

func TestWriteTextEmptyInput(t *testing.T) {
	r := mustCount(t, "", DefaultConfig())
	var buf bytes.Buffer
	r.WriteText(&buf)
	want := "Total words read: 0\nUnique words read: 0\nMost frequent word:  (0)\n"
	if buf.String() != want {
		t.Fatalf("report mismatch:\ngot  %q\nwant %q", buf.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	r := mustCount(t, "The the THE", DefaultConfig())
	var buf bytes.Buffer
	if err := r.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if decoded["best_word"] != "the" || decoded["total_words"] != float64(3) {
		t.Fatalf("unexpected JSON report: %s", buf.String())
	}
}

func TestCountWithIndex(t *testing.T) {
	_, idx, err := CountWithIndex(context.Background(), strings.NewReader("Cart car cat. dog"), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	got := idx.WithPrefix("car")
	want := []vocab.WordCount{{Word: "car", Count: 1}, {Word: "cart", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("prefix search mismatch: got %v, want %v", got, want)
	}
}
