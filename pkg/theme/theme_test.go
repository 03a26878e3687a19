package theme

import (
	"testing"

	"github.com/go-futura/futura/pkg/graphics"
)

func TestColorsResolve(t *testing.T) {
	c := DefaultLabelColors()
	tests := []struct {
		name   string
		states States
		want   graphics.Color
	}{
		{"normal", 0, graphics.ColorBlack},
		{"hover", StateHovered, CoolBlack},
		{"focus", StateFocused, CoolBlack},
		{"press", StateHovered | StatePressed, DarkSlateGray},
		{"disabled wins", StateHovered | StatePressed | StateDisabled, DarkGray},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Resolve(tt.states); got != tt.want {
				t.Errorf("Resolve(%b) = %v, want %v", tt.states, got, tt.want)
			}
		})
	}
}

func TestComponentThemeFallback(t *testing.T) {
	th := DefaultTheme()
	if got := th.EntryThemeOf().TextColor; got != graphics.ColorBlack {
		t.Errorf("derived entry text = %v, want black", got)
	}

	custom := EntryThemeData{TextColor: graphics.ColorRed}
	th.EntryTheme = &custom
	if got := th.EntryThemeOf().TextColor; got != graphics.ColorRed {
		t.Errorf("override entry text = %v, want red", got)
	}
	if got := th.SliderThemeOf().KnobHoverScale; got != 1.1 {
		t.Errorf("knob hover scale = %v, want 1.1", got)
	}
}
