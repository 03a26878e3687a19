// Package script replays recorded input sessions against a headless entry.
package script

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-futura/futura/pkg/animation"
	"github.com/go-futura/futura/pkg/app"
	"github.com/go-futura/futura/pkg/clipboard"
	"github.com/go-futura/futura/pkg/config"
	"github.com/go-futura/futura/pkg/geometry"
	"github.com/go-futura/futura/pkg/graphics"
	"github.com/go-futura/futura/pkg/input"
	"github.com/go-futura/futura/pkg/textedit"
	"github.com/go-futura/futura/pkg/widgets"
)

// FrameInterval is the simulated time between ticks.
const FrameInterval = 16 * time.Millisecond

// Script is a replayable session.
type Script struct {
	Text        string  `yaml:"text"`
	Width       float64 `yaml:"width,omitempty"`
	Placeholder string  `yaml:"placeholder,omitempty"`
	Password    bool    `yaml:"password,omitempty"`
	MaxLength   int     `yaml:"max_length,omitempty"`
	Clipboard   string  `yaml:"clipboard,omitempty"`
	Steps       []Step  `yaml:"steps"`
}

// Step is one scripted action. Exactly one field is set.
type Step struct {
	Type  string  `yaml:"type,omitempty"`
	Key   string  `yaml:"key,omitempty"`
	Click *Point  `yaml:"click,omitempty"`
	Drag  []Point `yaml:"drag,omitempty"`
	Tick  int     `yaml:"tick,omitempty"`
	Wait  string  `yaml:"wait,omitempty"`
}

// Point is a position in entry-local coordinates.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) offset() geometry.Offset {
	return geometry.Offset{X: p.X, Y: p.Y}
}

// Parse decodes a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

func (s Step) validate() error {
	set := 0
	if s.Type != "" {
		set++
	}
	if s.Key != "" {
		set++
		if _, err := input.ParseChord(s.Key); err != nil {
			return err
		}
	}
	if s.Click != nil {
		set++
	}
	if len(s.Drag) > 0 {
		set++
		if len(s.Drag) < 2 {
			return fmt.Errorf("drag needs at least two points")
		}
	}
	if s.Tick != 0 {
		set++
		if s.Tick < 0 {
			return fmt.Errorf("tick must be positive, got %d", s.Tick)
		}
	}
	if s.Wait != "" {
		set++
		if _, err := time.ParseDuration(s.Wait); err != nil {
			return fmt.Errorf("wait: %w", err)
		}
	}
	if set != 1 {
		return fmt.Errorf("expected exactly one action, got %d", set)
	}
	return nil
}

// Result is the outcome of a replay. The entry keeps its focus, caret and
// selection until Close.
type Result struct {
	Entry  *widgets.Entry
	Events []textedit.Event
	Frames int

	remove func()
}

// Close unsubscribes from the entry and takes its focus, which stops the
// caret blink ticker.
func (r *Result) Close() {
	if r.remove != nil {
		r.remove()
		r.remove = nil
	}
	r.Entry.SetFocused(false)
}

// Run replays s with settings on a simulated clock. Every step is followed
// by one frame so queued input is processed in order. Callers must Close
// the result.
func Run(s *Script, settings config.Settings) *Result {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := animation.SetClock(animation.ClockFunc(func() time.Time { return now }))
	defer animation.SetClock(prev)

	clip := clipboard.NewMemory()
	if s.Clipboard != "" {
		_ = clip.Write(s.Clipboard)
	}
	entry := widgets.NewEntry(s.Text, widgets.EntryConfig{
		Width:       s.Width,
		Settings:    &settings,
		Clipboard:   clip,
		Placeholder: s.Placeholder,
		Password:    s.Password,
	})
	if s.MaxLength > 0 {
		entry.SetMaxLength(s.MaxLength)
	}

	res := &Result{Entry: entry}
	res.remove = entry.AddListener(func(ev textedit.Event) {
		res.Events = append(res.Events, ev)
	})

	host := app.New(nil)
	host.Add(entry)
	frame := func() {
		now = now.Add(FrameInterval)
		host.Tick(now)
	}

	for _, step := range s.Steps {
		switch {
		case step.Type != "":
			host.Post(input.TextEvent{Text: step.Type})
			frame()
		case step.Key != "":
			ev, _ := input.ParseChord(step.Key)
			host.Post(ev)
			host.Post(input.KeyReleaseEvent{Key: ev.Key, Mods: ev.Mods})
			frame()
		case step.Click != nil:
			pos := step.Click.offset()
			host.Post(input.MouseEvent{Action: input.MousePress, Button: input.ButtonPrimary, Pos: pos})
			host.Post(input.MouseEvent{Action: input.MouseRelease, Button: input.ButtonPrimary, Pos: pos})
			frame()
		case len(step.Drag) > 0:
			host.Post(input.MouseEvent{Action: input.MousePress, Button: input.ButtonPrimary, Pos: step.Drag[0].offset()})
			for _, p := range step.Drag[1:] {
				host.Post(input.MouseEvent{Action: input.MouseDrag, Button: input.ButtonPrimary, Pos: p.offset()})
			}
			last := step.Drag[len(step.Drag)-1].offset()
			host.Post(input.MouseEvent{Action: input.MouseRelease, Button: input.ButtonPrimary, Pos: last})
			frame()
		case step.Tick > 0:
			for i, ticks := 0, step.Tick; i < ticks; i++ {
				frame()
			}
		case step.Wait != "":
			d, _ := time.ParseDuration(step.Wait)
			for end := now.Add(d); now.Before(end); {
				frame()
			}
		}
	}
	res.Frames = host.Frames()
	return res
}

// Paint renders the entry into a display list.
func (r *Result) Paint() *graphics.DisplayList {
	var rec graphics.PictureRecorder
	r.Entry.Draw(rec.BeginRecording())
	return rec.EndRecording()
}

// Write prints one line per event followed by the final state.
func (r *Result) Write(w io.Writer) error {
	var b strings.Builder
	for _, ev := range r.Events {
		b.WriteString(FormatEvent(ev))
		b.WriteByte('\n')
	}
	eng := r.Entry.Engine()
	sel := eng.Selection()
	fmt.Fprintf(&b, "text=%q caret=%d selection=[%d,%d) frames=%d\n",
		r.Entry.Text(), eng.CaretIndex(), sel.Start, sel.End, r.Frames)
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatEvent renders an event on one line.
func FormatEvent(ev textedit.Event) string {
	switch ev := ev.(type) {
	case textedit.TextEdited:
		return fmt.Sprintf("edited text=%q previous=%q", ev.Text, ev.Previous)
	case textedit.TextInteracted:
		return fmt.Sprintf("interacted index=%d selection=[%d,%d)", ev.Index, ev.Selection.Start, ev.Selection.End)
	case textedit.Blink:
		return fmt.Sprintf("blink visible=%t", ev.Visible)
	default:
		return fmt.Sprintf("%T", ev)
	}
}
