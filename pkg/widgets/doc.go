// Package widgets provides the interactive components of futura: Label,
// Entry, Button, Toggle and Slider.
//
// Widgets are plain structs driven by a host loop. The host delivers input
// through the capability interfaces a widget implements ([Pointer], [Keyed],
// [Typed]), calls Tick once per frame as the redraw checkpoint and Draw to
// render. No widget starts goroutines.
//
//	entry := widgets.NewEntry("", widgets.EntryConfig{Placeholder: "Name"})
//	entry.SetFocused(true)
//	entry.HandleText(input.TextEvent{Text: "Ada"})
//	entry.Tick(time.Now())
//	entry.Draw(canvas)
//
// Capabilities are discovered with type assertions, the way the app package
// routes events:
//
//	if k, ok := w.(widgets.Keyed); ok {
//	    k.HandleKey(ev)
//	}
package widgets
