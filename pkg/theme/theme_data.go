// Package theme holds the colours and metrics widgets draw with.
package theme

import "github.com/go-futura/futura/pkg/graphics"

// States is a set of interaction states a widget can be in.
type States uint8

const (
	StateHovered States = 1 << iota
	StatePressed
	StateFocused
	StateDisabled
)

// Has reports whether s contains all of other.
func (s States) Has(other States) bool {
	return s&other == other
}

// Colors holds the text colour of a widget in each interaction state.
type Colors struct {
	Normal  graphics.Color
	Hover   graphics.Color
	Press   graphics.Color
	Disable graphics.Color
}

// Named colours used by the default palette.
var (
	CoolBlack     = graphics.RGB(0, 46, 99)
	DarkSlateGray = graphics.RGB(47, 79, 79)
	DarkGray      = graphics.RGB(169, 169, 169)
	Cornflower    = graphics.RGB(100, 149, 237)
	Gainsboro     = graphics.RGB(220, 220, 220)
)

// DefaultLabelColors returns black text that darkens to cool black on hover,
// slate gray when pressed and gray when disabled.
func DefaultLabelColors() Colors {
	return Colors{
		Normal:  graphics.ColorBlack,
		Hover:   CoolBlack,
		Press:   DarkSlateGray,
		Disable: DarkGray,
	}
}

// Resolve picks the colour for states. Disabled wins over pressed, pressed
// over hovered and focused. Focus renders with the hover colour.
func (c Colors) Resolve(states States) graphics.Color {
	switch {
	case states.Has(StateDisabled):
		return c.Disable
	case states.Has(StatePressed):
		return c.Press
	case states.Has(StateHovered), states.Has(StateFocused):
		return c.Hover
	default:
		return c.Normal
	}
}

// ThemeData contains all theme configuration for an application.
type ThemeData struct {
	// LabelColors are the text colours of labels and widget captions.
	LabelColors Colors

	// Component themes - optional, derived from LabelColors if nil.
	EntryTheme  *EntryThemeData
	ButtonTheme *ButtonThemeData
	ToggleTheme *ToggleThemeData
	SliderTheme *SliderThemeData
}

// DefaultTheme returns the default light theme.
func DefaultTheme() *ThemeData {
	return &ThemeData{LabelColors: DefaultLabelColors()}
}

// EntryThemeOf returns the entry theme, deriving from LabelColors if not set.
func (t *ThemeData) EntryThemeOf() EntryThemeData {
	if t.EntryTheme != nil {
		return *t.EntryTheme
	}
	return DefaultEntryTheme(t.LabelColors)
}

// ButtonThemeOf returns the button theme, deriving from LabelColors if not set.
func (t *ThemeData) ButtonThemeOf() ButtonThemeData {
	if t.ButtonTheme != nil {
		return *t.ButtonTheme
	}
	return DefaultButtonTheme(t.LabelColors)
}

// ToggleThemeOf returns the toggle theme, deriving from LabelColors if not set.
func (t *ThemeData) ToggleThemeOf() ToggleThemeData {
	if t.ToggleTheme != nil {
		return *t.ToggleTheme
	}
	return DefaultToggleTheme(t.LabelColors)
}

// SliderThemeOf returns the slider theme, deriving from LabelColors if not set.
func (t *ThemeData) SliderThemeOf() SliderThemeData {
	if t.SliderTheme != nil {
		return *t.SliderTheme
	}
	return DefaultSliderTheme(t.LabelColors)
}
