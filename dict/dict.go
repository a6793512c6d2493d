package dict

import (
	"errors"
	"fmt"

	"github.com/npillmayer/wordcount/strops"
)

// DefaultBuckets is the default number of buckets. It is prime.
const DefaultBuckets = 13249

// DefaultMaxWordLen is the default maximum number of bytes stored per word.
const DefaultMaxWordLen = 63

// ErrAllocation is returned if the dictionary cannot create another entry.
var ErrAllocation = errors.New("dictionary cannot allocate entry")

// Entry is a word together with its occurrence count.
//
// Word is owned by the dictionary and must not be modified. Count starts at 0
// and is maintained by the caller.
type Entry struct {
	Word  []byte
	Count int
	next  handle
}

// Dictionary maps words to entries. The number of buckets is fixed at
// construction time; skewed or heavy input degrades to long chains.
type Dictionary struct {
	heads      []handle // one chain head per bucket
	entries    arena
	maxWordLen int
	maxEntries int // 0 = unlimited
}

// Option configures a Dictionary.
type Option func(*Dictionary)

// WithBuckets sets the number of buckets. Values < 1 are ignored.
func WithBuckets(n int) Option {
	return func(d *Dictionary) {
		if n > 0 {
			d.heads = make([]handle, n)
		}
	}
}

// WithMaxWordLen sets the maximum number of bytes stored per word. Longer
// words are truncated on insertion.
func WithMaxWordLen(n int) Option {
	return func(d *Dictionary) {
		if n > 0 {
			d.maxWordLen = n
		}
	}
}

// WithMaxEntries limits the number of entries the dictionary will create.
// Once the limit is reached, inserting a new word fails with ErrAllocation.
// 0 means no limit.
func WithMaxEntries(n int) Option {
	return func(d *Dictionary) {
		if n >= 0 {
			d.maxEntries = n
		}
	}
}

// New creates an empty dictionary. All buckets start out empty.
func New(opts ...Option) *Dictionary {
	d := &Dictionary{
		entries:    newArena(),
		maxWordLen: DefaultMaxWordLen,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.heads == nil {
		d.heads = make([]handle, DefaultBuckets)
	}
	tracer().Debugf("dictionary with %d buckets, max word length %d", len(d.heads), d.maxWordLen)
	return d
}

// Buckets returns the fixed number of buckets.
func (d *Dictionary) Buckets() int {
	if d == nil {
		return 0
	}
	return len(d.heads)
}

// MaxWordLen returns the maximum number of bytes stored per word.
func (d *Dictionary) MaxWordLen() int {
	if d == nil {
		return 0
	}
	return d.maxWordLen
}

// Len returns the number of entries in the dictionary.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return d.entries.len()
}

func (d *Dictionary) bucket(word []byte) int {
	return int(strops.Hash(word) % uint32(len(d.heads)))
}

// FindOrInsert returns the entry for word, creating it if necessary.
//
// An existing entry is returned unchanged. A new entry holds a copy of word,
// truncated to the maximum word length, has a count of 0, and becomes the
// head of its bucket's chain. Incrementing the count is the caller's job.
//
// FindOrInsert returns ErrAllocation if a new entry is needed but cannot be
// created. A nil dictionary or a nil word yields (nil, nil).
func (d *Dictionary) FindOrInsert(word []byte) (*Entry, error) {
	if d == nil || word == nil {
		return nil, nil
	}
	if len(word) > d.maxWordLen {
		word = word[:d.maxWordLen]
	}
	b := d.bucket(word)
	for h := d.heads[b]; h != empty; {
		e := d.entries.at(h)
		if strops.Compare(e.Word, word) == 0 {
			return e, nil
		}
		h = e.next
	}
	if d.maxEntries > 0 && d.entries.len() >= d.maxEntries {
		return nil, fmt.Errorf("%w: %q (limit of %d entries reached)", ErrAllocation, word, d.maxEntries)
	}
	h, e, ok := d.entries.alloc()
	if !ok {
		return nil, fmt.Errorf("%w: %q (handle space exhausted)", ErrAllocation, word)
	}
	e.Word = strops.Copy(make([]byte, 0, len(word)), word, d.maxWordLen)
	e.Count = 0
	e.next = d.heads[b]
	d.heads[b] = h
	return e, nil
}

// Find returns the entry for word, or nil if word is not in the dictionary.
func (d *Dictionary) Find(word []byte) *Entry {
	if d == nil || word == nil {
		return nil
	}
	if len(word) > d.maxWordLen {
		word = word[:d.maxWordLen]
	}
	for h := d.heads[d.bucket(word)]; h != empty; {
		e := d.entries.at(h)
		if strops.Compare(e.Word, word) == 0 {
			return e
		}
		h = e.next
	}
	return nil
}

// Each calls fn for every entry, bucket by bucket and within a bucket from
// chain head to tail. If fn returns false, iteration stops early.
func (d *Dictionary) Each(fn func(e *Entry) bool) {
	if d == nil {
		return
	}
	for _, h := range d.heads {
		for h != empty {
			e := d.entries.at(h)
			if !fn(e) {
				return
			}
			h = e.next
		}
	}
}

// Release drops every entry of every chain. The dictionary keeps its buckets
// and may be used again. Entries handed out before are invalid afterwards.
func (d *Dictionary) Release() {
	if d == nil {
		return
	}
	n := d.entries.len()
	clear(d.heads)
	d.entries.reset()
	tracer().Debugf("dictionary released %d entries", n)
}
