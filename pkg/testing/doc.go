// Package testing provides helpers for testing widgets without a real
// display.
//
// # Quick Start
//
// Register widgets, drive them with synthetic input, and inspect the
// recorded draw calls:
//
//	func TestSubmit(t *testing.T) {
//	    reg := widgets.NewRegistry(0)
//	    ok := reg.Register(widgets.NewButton(10, 10, 80, 30, "OK"))
//
//	    tester := xitest.NewTester(reg)
//	    tester.Tap(ok)
//
//	    ops := tester.Render()
//	    if ops[0].Op != "drawRect" {
//	        t.Errorf("expected button background first, got %s", ops[0].Op)
//	    }
//	}
//
// # Finders
//
// Locate widgets by kind, text or parent instead of keeping handles:
//
//	tester.TapOn(xitest.ByText("Apply"))
//	labels := tester.Find(xitest.ChildOf(xitest.ByText("Settings"), xitest.ByKind(widgets.KindLabel)))
//
// # Snapshot Testing
//
// Capture and compare the widget set and its display operations:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/form.snapshot.json")
//
// Update snapshots with:
//
//	XIFORM_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import xitest "github.com/xiform/xiform/pkg/testing"
package testing
