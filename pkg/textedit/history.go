package textedit

// DefaultHistoryLimit is the capacity used when none is configured.
const DefaultHistoryLimit = 64

// History is a bounded ring of past caret positions used to navigate back
// and forth. Once full, each push evicts the oldest entry.
type History struct {
	buf    []int
	head   int // index of the oldest entry in buf
	size   int
	cursor int // position relative to head, valid when size > 0
}

// NewHistory returns a history holding at most limit entries. A limit of
// zero or less uses DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{buf: make([]int, limit)}
}

// Limit returns the capacity.
func (h *History) Limit() int {
	return len(h.buf)
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return h.size
}

// Push records index as the newest entry and moves the cursor onto it.
// Entries after the cursor are kept; navigation only changes the cursor.
func (h *History) Push(index int) {
	if h.size < len(h.buf) {
		h.buf[(h.head+h.size)%len(h.buf)] = index
		h.size++
	} else {
		h.buf[h.head] = index
		h.head = (h.head + 1) % len(h.buf)
	}
	h.cursor = h.size - 1
}

// Back moves the cursor to the previous entry and returns it. At the
// oldest entry it stays put. It reports false when the history is empty.
func (h *History) Back() (int, bool) {
	if h.size == 0 {
		return 0, false
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.at(h.cursor), true
}

// Forward moves the cursor to the next entry and returns it. At the newest
// entry it stays put.
func (h *History) Forward() (int, bool) {
	if h.size == 0 {
		return 0, false
	}
	if h.cursor < h.size-1 {
		h.cursor++
	}
	return h.at(h.cursor), true
}

// Entries returns the stored positions from oldest to newest.
func (h *History) Entries() []int {
	out := make([]int, h.size)
	for i := range out {
		out[i] = h.at(i)
	}
	return out
}

// Reset empties the history.
func (h *History) Reset() {
	h.head, h.size, h.cursor = 0, 0, 0
}

func (h *History) at(i int) int {
	return h.buf[(h.head+i)%len(h.buf)]
}
