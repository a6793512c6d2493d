// Command wordcount reads text from a file or standard input and reports the
// total number of words, the number of distinct words, and the most frequent
// word.
//
// Logging:
//   - Base logger is created here, writing to stderr
//   - Debug records are enabled with --verbose
//   - The report itself goes to stdout
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/npillmayer/wordcount"
	"github.com/npillmayer/wordcount/internal/logging"
	"github.com/npillmayer/wordcount/vocab"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	defaults := wordcount.DefaultConfig()
	cmd := &cobra.Command{
		Use:     "wordcount [file]",
		Short:   "Count words and report the most frequent one",
		Long:    "Read whitespace-separated words from file, or from standard input if no file is given, and report total, unique and most frequent word.",
		Args:    cobra.MaximumNArgs(1),
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger := logging.Component(logging.New(stderr, verbose), "wordcount")
			cmd.SilenceUsage = true

			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			input, name, closeInput, err := openInput(args, stdin)
			if err != nil {
				return err
			}
			defer closeInput()
			logger.Debug("counting", "input", name, "buckets", cfg.Buckets, "max_word_len", cfg.MaxWordLen)

			prefix, _ := cmd.Flags().GetString("prefix")
			withPrefix := cmd.Flags().Changed("prefix")
			report, idx, err := wordcount.CountWithIndex(cmd.Context(), input, cfg)
			if err != nil {
				logger.Error("count failed", "input", name, "error", err)
				return err
			}
			logger.Debug("count finished", "input", name,
				"total", report.TotalWords, "unique", report.UniqueWords,
				"truncated", report.Truncated, "longest_chain", report.Table.LongestChain)

			var matches []vocab.WordCount
			if withPrefix {
				matches = idx.WithPrefix(prefix)
				if idx.Skipped() > 0 {
					logger.Warn("words not valid UTF-8 are missing from prefix search", "count", idx.Skipped())
				}
			}
			output, _ := cmd.Flags().GetString("output")
			stats, _ := cmd.Flags().GetBool("stats")
			return writeOutput(stdout, output, report, withPrefix, prefix, matches, stats, logger)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().Int("buckets", defaults.Buckets, "number of hash table buckets")
	cmd.Flags().Int("max-word-len", defaults.MaxWordLen, "maximum number of bytes kept per word")
	cmd.Flags().Int("max-entries", 0, "maximum number of distinct words (0 = unlimited)")
	cmd.Flags().Int("top", 0, "also list the N most frequent words")
	cmd.Flags().String("prefix", "", "also list all words starting with this prefix")
	cmd.Flags().StringP("output", "o", "text", "output format: text or json")
	cmd.Flags().Bool("stats", false, "print hash table statistics")
	cmd.Flags().BoolP("verbose", "v", false, "enable debug logging on stderr")
	return cmd
}

func configFromFlags(cmd *cobra.Command) (wordcount.Config, error) {
	cfg := wordcount.DefaultConfig()
	cfg.Buckets, _ = cmd.Flags().GetInt("buckets")
	cfg.MaxWordLen, _ = cmd.Flags().GetInt("max-word-len")
	cfg.MaxEntries, _ = cmd.Flags().GetInt("max-entries")
	cfg.Top, _ = cmd.Flags().GetInt("top")
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openInput opens the file named by args[0], or falls back to stdin.
func openInput(args []string, stdin io.Reader) (io.Reader, string, func(), error) {
	if len(args) == 0 {
		return stdin, "<stdin>", func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", nil, fmt.Errorf("open input %q: %w", args[0], err)
	}
	return f, args[0], func() { _ = f.Close() }, nil
}

func writeOutput(w io.Writer, format string, report *wordcount.Report, withPrefix bool,
	prefix string, matches []vocab.WordCount, stats bool, logger *slog.Logger) error {
	//
	switch format {
	case "json":
		out := struct {
			*wordcount.Report
			Prefix  *string           `json:"prefix,omitempty"`
			Matches []vocab.WordCount `json:"matches,omitempty"`
		}{Report: report}
		if withPrefix {
			out.Prefix = &prefix
			out.Matches = matches
		}
		p := &printer{w: w}
		return p.json(out)
	case "text":
		if err := report.WriteText(w); err != nil {
			return err
		}
		if withPrefix {
			p := &printer{w: w}
			if err := p.prefixList(prefix, matches); err != nil {
				return err
			}
		}
		if stats {
			return report.WriteStats(w)
		}
		return nil
	}
	logger.Debug("unknown output format", "format", format)
	return fmt.Errorf("unknown output format %q (want text or json)", format)
}
