/*
Package dict implements the word dictionary: a hash table with a fixed number
of buckets and chained collision resolution, mapping words to occurrence
counts.

The table never grows. Entries live in a paged arena and are linked into
their bucket chains by handles rather than by pointers; handle 0 denotes the
end of a chain. New entries become the head of their chain.

A Dictionary is not safe for concurrent use.
*/
package dict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wordcount'
func tracer() tracing.Trace {
	return tracing.Select("wordcount")
}
