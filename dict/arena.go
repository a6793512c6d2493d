package dict

// handle addresses an entry in the arena. 0 is never handed out and marks
// empty buckets and chain ends.
type handle uint32

const empty handle = 0

const (
	pageBits = 8
	pageSize = 1 << pageBits
	pageMask = pageSize - 1
)

// maxHandle is the largest handle the arena is able to produce.
const maxHandle = ^handle(0)

// arena stores entries in pages of 256. Pages never move once allocated,
// so pointers to entries stay valid until the arena is reset.
//
// Lookup is two slice reads: the page by the high bits of a handle, then
// the slot by its low byte.
type arena struct {
	pages []*[pageSize]Entry
	next  handle // next handle to hand out
}

func newArena() arena {
	return arena{next: 1} // slot 0 is reserved for 'empty'
}

// len returns the number of live entries.
func (a *arena) len() int {
	if a.next == 0 {
		return 0
	}
	return int(a.next - 1)
}

// alloc returns a fresh entry and its handle. ok is false if the handle
// space is exhausted.
func (a *arena) alloc() (h handle, e *Entry, ok bool) {
	if a.next == 0 {
		a.next = 1
	}
	if a.next == maxHandle {
		return empty, nil, false
	}
	h = a.next
	pi := int(h >> pageBits)
	for pi >= len(a.pages) {
		a.pages = append(a.pages, new([pageSize]Entry))
	}
	a.next++
	return h, &a.pages[pi][h&pageMask], true
}

// at returns the entry for handle h. h must have been handed out by alloc.
func (a *arena) at(h handle) *Entry {
	return &a.pages[h>>pageBits][h&pageMask]
}

// reset drops all pages.
func (a *arena) reset() {
	clear(a.pages)
	a.pages = a.pages[:0]
	a.next = 1
}

// pageCount returns the number of allocated pages.
func (a *arena) pageCount() int { return len(a.pages) }
