package theme

import "github.com/go-futura/futura/pkg/graphics"

// EntryThemeData defines default styling for Entry widgets.
type EntryThemeData struct {
	// BackgroundColor is the field background.
	BackgroundColor graphics.Color
	// BorderColor is the default border color.
	BorderColor graphics.Color
	// FocusColor is the border color when focused.
	FocusColor graphics.Color
	// TextColor is the input text color.
	TextColor graphics.Color
	// PlaceholderColor is the placeholder text color.
	PlaceholderColor graphics.Color
	// SelectionColor highlights the selected range.
	SelectionColor graphics.Color
	// CaretColor is the caret bar color.
	CaretColor graphics.Color
	// Padding is the inner padding on every side.
	Padding float64
	// BorderWidth is the default border stroke width.
	BorderWidth float64
}

// ButtonThemeData defines default styling for Button widgets.
type ButtonThemeData struct {
	// BackgroundColor is the default button background.
	BackgroundColor graphics.Color
	// PressedBackgroundColor is the background while pressed.
	PressedBackgroundColor graphics.Color
	// DisabledBackgroundColor is the background when disabled.
	DisabledBackgroundColor graphics.Color
	// Label colours the caption per state.
	Label Colors
	// Padding is the default button padding.
	Padding float64
}

// ToggleThemeData defines default styling for Toggle widgets.
type ToggleThemeData struct {
	// ActiveTrackColor is the track color when on.
	ActiveTrackColor graphics.Color
	// InactiveTrackColor is the track color when off.
	InactiveTrackColor graphics.Color
	// ThumbColor is the thumb fill color.
	ThumbColor graphics.Color
	// DisabledTrackColor is the track color when disabled.
	DisabledTrackColor graphics.Color
}

// SliderThemeData defines default styling for Slider widgets.
type SliderThemeData struct {
	// TrackColor is the bar color.
	TrackColor graphics.Color
	// KnobColor is the knob fill color.
	KnobColor graphics.Color
	// KnobHoverScale grows the knob while hovered.
	KnobHoverScale float64
	// Label colours the value caption.
	Label Colors
}

// DefaultEntryTheme returns EntryThemeData derived from colors.
func DefaultEntryTheme(colors Colors) EntryThemeData {
	return EntryThemeData{
		BackgroundColor:  graphics.ColorWhite,
		BorderColor:      colors.Disable,
		FocusColor:       colors.Hover,
		TextColor:        colors.Normal,
		PlaceholderColor: colors.Disable,
		SelectionColor:   Cornflower.WithAlpha(0.4),
		CaretColor:       colors.Normal,
		Padding:          4,
		BorderWidth:      1,
	}
}

// DefaultButtonTheme returns ButtonThemeData derived from colors.
func DefaultButtonTheme(colors Colors) ButtonThemeData {
	return ButtonThemeData{
		BackgroundColor:         Gainsboro,
		PressedBackgroundColor:  colors.Disable,
		DisabledBackgroundColor: Gainsboro.WithAlpha(0.5),
		Label:                   colors,
		Padding:                 6,
	}
}

// DefaultToggleTheme returns ToggleThemeData derived from colors.
func DefaultToggleTheme(colors Colors) ToggleThemeData {
	return ToggleThemeData{
		ActiveTrackColor:   Cornflower,
		InactiveTrackColor: colors.Disable,
		ThumbColor:         graphics.ColorWhite,
		DisabledTrackColor: Gainsboro,
	}
}

// DefaultSliderTheme returns SliderThemeData derived from colors.
func DefaultSliderTheme(colors Colors) SliderThemeData {
	return SliderThemeData{
		TrackColor:     colors.Disable,
		KnobColor:      colors.Hover,
		KnobHoverScale: 1.1,
		Label:          colors,
	}
}
