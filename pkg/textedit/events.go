package textedit

// Event is one of TextEdited, TextInteracted or Blink.
type Event interface {
	isEvent()
}

// TextEdited is emitted after the document content changed. For inserts
// Text is the inserted text and Previous the full text before the edit.
// For deletions Text is empty and Previous is the removed slice.
type TextEdited struct {
	Text     string
	Previous string
}

// TextInteracted is emitted when the caret or mark moved without a content
// change. Selection is empty when no mark is set.
type TextInteracted struct {
	Index     int
	Selection Selection
}

// Blink is emitted each time the caret toggles visibility.
type Blink struct {
	Visible bool
}

func (TextEdited) isEvent()     {}
func (TextInteracted) isEvent() {}
func (Blink) isEvent()          {}

// Listener receives engine events.
type Listener func(Event)

type listenerEntry struct {
	id int
	fn Listener
}

// listeners dispatches events in registration order.
type listeners struct {
	nextID  int
	entries []listenerEntry
}

func (l *listeners) add(fn Listener) func() {
	id := l.nextID
	l.nextID++
	l.entries = append(l.entries, listenerEntry{id: id, fn: fn})
	return func() {
		for i, e := range l.entries {
			if e.id == id {
				l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
				return
			}
		}
	}
}

func (l *listeners) emit(ev Event) {
	// Copy so a listener may unsubscribe while being notified.
	entries := append([]listenerEntry(nil), l.entries...)
	for _, e := range entries {
		e.fn(ev)
	}
}
