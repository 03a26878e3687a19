package widgets

import (
	"testing"

	"github.com/go-futura/futura/pkg/geometry"
	"github.com/go-futura/futura/pkg/input"
	futuratest "github.com/go-futura/futura/pkg/testing"
)

func TestSliderSetValue(t *testing.T) {
	s := NewSlider(SliderConfig{Size: 100, Length: 200})
	tests := []struct {
		in, want, knob float64
	}{
		{50, 50, 100},
		{150, 100, 200},
		{-3, 0, 0},
		{33.3, 33, 66},
	}
	for _, tt := range tests {
		s.SetValue(tt.in)
		if s.Value() != tt.want || s.Knob() != tt.knob {
			t.Errorf("SetValue(%v): value %v knob %v, want %v knob %v", tt.in, s.Value(), s.Knob(), tt.want, tt.knob)
		}
	}
}

func TestSliderRoundDigits(t *testing.T) {
	s := NewSlider(SliderConfig{Size: 1, Round: 2})
	s.SetValue(0.1234)
	if s.Value() != 0.12 {
		t.Errorf("Value = %v, want 0.12", s.Value())
	}
	if got := s.Caption().Text(); got != "0.12" {
		t.Errorf("caption = %q, want %q", got, "0.12")
	}
}

func TestSliderGlide(t *testing.T) {
	tester := futuratest.NewTester(t)
	s := NewSlider(SliderConfig{Size: 100, Length: 200})
	var starts, motions, finishes []float64
	s.OnSlideStart(func(v float64) { starts = append(starts, v) })
	s.OnSlideMotion(func(v float64) { motions = append(motions, v) })
	s.OnSlideFinish(func(v float64) { finishes = append(finishes, v) })

	s.HandleMouse(press(geometry.Offset{X: 100, Y: 8}))
	if !s.Gliding() || len(starts) != 1 || starts[0] != 0 {
		t.Fatalf("press: gliding %v starts %v", s.Gliding(), starts)
	}

	tester.PumpN(10, s)
	if s.Gliding() || s.Value() != 50 {
		t.Errorf("after glide: gliding %v value %v, want settled on 50", s.Gliding(), s.Value())
	}
	if len(motions) != 10 || motions[0] != 5 {
		t.Errorf("motions = %v, want 10 steps starting at 5", motions)
	}
	if len(finishes) != 1 || finishes[0] != 50 {
		t.Errorf("finishes = %v, want [50]", finishes)
	}

	tester.PumpN(2, s)
	if got := s.Caption().DisplayedText(); got != "50" {
		t.Errorf("caption shows %q, want %q", got, "50")
	}
}

func TestSliderDragClampsToBar(t *testing.T) {
	s := NewSlider(SliderConfig{Size: 100, Length: 200})
	s.HandleMouse(press(geometry.Offset{X: 10, Y: 8}))
	s.HandleMouse(input.MouseEvent{Action: input.MouseDrag, Button: input.ButtonPrimary, Pos: geometry.Offset{X: 900, Y: 8}})
	if s.destination != 200 {
		t.Errorf("destination = %v, want the bar end", s.destination)
	}
}

func TestSliderKeysAndScroll(t *testing.T) {
	s := NewSlider(SliderConfig{Value: 10})
	if s.HandleKey(input.KeyEvent{Key: input.KeyRight}) {
		t.Error("unfocused slider took a key")
	}
	s.SetFocused(true)
	s.HandleKey(input.KeyEvent{Key: input.KeyRight})
	s.HandleKey(input.KeyEvent{Key: input.KeyRight})
	s.HandleKey(input.KeyEvent{Key: input.KeyLeft})
	if s.Value() != 11 {
		t.Errorf("after keys Value = %v, want 11", s.Value())
	}

	s.HandleMouse(input.MouseEvent{Action: input.MouseScroll, Pos: geometry.Offset{X: 5, Y: 5}, Scroll: 3})
	if s.Value() != 14 {
		t.Errorf("after scroll Value = %v, want 14", s.Value())
	}
}
