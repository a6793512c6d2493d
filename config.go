package wordcount

import (
	"fmt"

	"github.com/npillmayer/wordcount/dict"
	"github.com/npillmayer/wordcount/tokenize"
)

// Config holds the parameters of a counting run.
type Config struct {
	Buckets    int // number of dictionary buckets, fixed for the run
	MaxWordLen int // maximum bytes kept per token and stored per word
	MaxEntries int // limit on distinct words, 0 = unlimited
	Top        int // number of most frequent words to include in the report
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Buckets:    dict.DefaultBuckets,
		MaxWordLen: tokenize.DefaultMaxWordLen,
	}
}

// Validate checks cfg for values a run cannot work with.
func (cfg Config) Validate() error {
	if cfg.Buckets < 1 {
		return fmt.Errorf("number of buckets must be positive, is %d", cfg.Buckets)
	}
	if cfg.MaxWordLen < 1 {
		return fmt.Errorf("maximum word length must be positive, is %d", cfg.MaxWordLen)
	}
	if cfg.MaxEntries < 0 {
		return fmt.Errorf("maximum number of entries must not be negative, is %d", cfg.MaxEntries)
	}
	if cfg.Top < 0 {
		return fmt.Errorf("top count must not be negative, is %d", cfg.Top)
	}
	return nil
}
