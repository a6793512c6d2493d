/*
Package wordcount counts words in a text stream and reports the most frequent
one.

Input is split into whitespace-delimited tokens (package tokenize). Each
token is normalized to a canonical word (package normalize): it is folded to
ASCII lower case, and trailing bytes which are not letters are stripped.
Words are counted in a hash table with a fixed number of buckets and chained
collisions (package dict). While counting, a Counter keeps running
statistics: the total number of tokens, the number of distinct words, and the
most frequent word, where ties are broken in favour of the lexicographically
least word.

Example:

	report, err := wordcount.Count(ctx, os.Stdin, wordcount.DefaultConfig())
	if err != nil {
		...
	}
	report.WriteText(os.Stdout)

prints

	Total words read: 5
	Unique words read: 3
	Most frequent word: cat (2)

for the input "cat dog cat dog bird".

Neither Counter nor the underlying dictionary is safe for concurrent use.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package wordcount

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wordcount'
func tracer() tracing.Trace {
	return tracing.Select("wordcount")
}
