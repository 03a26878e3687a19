package input

// Binding is what a chord resolves to.
type Binding struct {
	Motion Motion
	// Extend grows the selection instead of collapsing it.
	Extend bool
	// Word makes Backspace and Delete remove a whole word.
	Word bool
}

// Keymap maps key chords to bindings.
type Keymap map[KeyEvent]Binding

// Lookup returns the binding for ev.
func (k Keymap) Lookup(ev KeyEvent) (Binding, bool) {
	b, ok := k[ev]
	return b, ok
}

// Bind adds or replaces a binding.
func (k Keymap) Bind(ev KeyEvent, b Binding) {
	k[ev] = b
}

// DefaultKeymap returns the standard bindings. word is the modifier that
// turns character motions into word motions, usually ModCtrl. Caret
// history is bound to Alt+Left/Right, or Ctrl+Alt+Left/Right when Alt is
// the word modifier.
func DefaultKeymap(word Modifiers) Keymap {
	k := Keymap{}
	moves := []struct {
		key    Key
		motion Motion
	}{
		{KeyLeft, MotionLeft},
		{KeyRight, MotionRight},
		{KeyUp, MotionUp},
		{KeyDown, MotionDown},
		{KeyHome, MotionLineStart},
		{KeyEnd, MotionLineEnd},
		{KeyPageUp, MotionPreviousPage},
		{KeyPageDown, MotionNextPage},
	}
	for _, m := range moves {
		k.Bind(KeyEvent{Key: m.key}, Binding{Motion: m.motion})
		k.Bind(KeyEvent{Key: m.key, Mods: ModShift}, Binding{Motion: m.motion, Extend: true})
	}

	wordMoves := []struct {
		key    Key
		motion Motion
	}{
		{KeyLeft, MotionPreviousWord},
		{KeyRight, MotionNextWord},
		{KeyHome, MotionDocumentStart},
		{KeyEnd, MotionDocumentEnd},
	}
	for _, m := range wordMoves {
		k.Bind(KeyEvent{Key: m.key, Mods: word}, Binding{Motion: m.motion})
		k.Bind(KeyEvent{Key: m.key, Mods: word | ModShift}, Binding{Motion: m.motion, Extend: true})
	}

	k.Bind(KeyEvent{Key: KeyBackspace}, Binding{Motion: MotionBackspace})
	k.Bind(KeyEvent{Key: KeyBackspace, Mods: ModShift}, Binding{Motion: MotionBackspace})
	k.Bind(KeyEvent{Key: KeyDelete}, Binding{Motion: MotionDelete})
	k.Bind(KeyEvent{Key: KeyBackspace, Mods: word}, Binding{Motion: MotionBackspace, Word: true})
	k.Bind(KeyEvent{Key: KeyDelete, Mods: word}, Binding{Motion: MotionDelete, Word: true})

	k.Bind(KeyEvent{Key: KeyRune('a'), Mods: ModCtrl}, Binding{Motion: MotionSelectAll})
	k.Bind(KeyEvent{Key: KeyRune('c'), Mods: ModCtrl}, Binding{Motion: MotionCopy})
	k.Bind(KeyEvent{Key: KeyRune('x'), Mods: ModCtrl}, Binding{Motion: MotionCut})
	k.Bind(KeyEvent{Key: KeyRune('v'), Mods: ModCtrl}, Binding{Motion: MotionPaste})

	history := ModAlt
	if word == ModAlt {
		history = ModCtrl | ModAlt
	}
	k.Bind(KeyEvent{Key: KeyLeft, Mods: history}, Binding{Motion: MotionHistoryBack})
	k.Bind(KeyEvent{Key: KeyRight, Mods: history}, Binding{Motion: MotionHistoryForward})
	return k
}
