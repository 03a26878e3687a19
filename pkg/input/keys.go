package input

import (
	"fmt"
	"strings"
	"unicode"
)

// Key identifies a key. Printable keys use their lowercase rune; named keys
// live in the Unicode private use area.
type Key rune

const (
	KeyUnknown Key = 0

	KeyLeft Key = 0xE000 + iota
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBackspace
	KeyDelete
	KeyTab
	KeyEnter
	KeyEscape
	KeySpace
)

var keyNames = map[Key]string{
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyTab:       "tab",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeySpace:     "space",
}

// KeyRune returns the key for a printable character.
func KeyRune(r rune) Key {
	return Key(unicode.ToLower(r))
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k == KeyUnknown {
		return "unknown"
	}
	return string(rune(k))
}

// ParseKey parses a key name such as "left" or "a".
func ParseKey(s string) (Key, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range keyNames {
		if name == s {
			return k, nil
		}
	}
	r := []rune(s)
	if len(r) == 1 && unicode.IsPrint(r[0]) {
		return KeyRune(r[0]), nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", s)
}

// ParseChord parses a chord like "ctrl+shift+left".
func ParseChord(s string) (KeyEvent, error) {
	parts := strings.Split(s, "+")
	var mods Modifiers
	for _, p := range parts[:len(parts)-1] {
		m, ok := ParseModifier(p)
		if !ok {
			return KeyEvent{}, fmt.Errorf("unknown modifier %q in %q", p, s)
		}
		mods |= m
	}
	key, err := ParseKey(parts[len(parts)-1])
	if err != nil {
		return KeyEvent{}, err
	}
	return KeyEvent{Key: key, Mods: mods}, nil
}

func (e KeyEvent) String() string {
	if e.Mods == 0 {
		return e.Key.String()
	}
	return e.Mods.String() + "+" + e.Key.String()
}
