// Package testing provides helpers for testing futura widgets headlessly.
//
// # Quick Start
//
// Install a fake clock, drive a widget frame by frame and record what it
// emits:
//
//	func TestEntry(t *testing.T) {
//	    tester := futuratest.NewTester(t)
//	    entry := widgets.NewEntry("", widgets.EntryConfig{})
//	    rec := futuratest.NewRecorder()
//	    entry.AddListener(rec.Listener())
//
//	    entry.SetFocused(true)
//	    entry.HandleText(input.TextEvent{Text: "hi"})
//	    tester.Pump(entry)
//
//	    if got := rec.Edits(); len(got) != 1 {
//	        t.Errorf("edits = %v", got)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare drawing operations:
//
//	snapshot := futuratest.CaptureSnapshot(entry)
//	snapshot.MatchesFile(t, "testdata/entry.snapshot.json")
//
// Update snapshots with:
//
//	FUTURA_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import futuratest "github.com/go-futura/futura/pkg/testing"
package testing
