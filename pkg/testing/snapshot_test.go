package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xiform/xiform/pkg/graphics"
	"github.com/xiform/xiform/pkg/widgets"
)

func nestedButton() *widgets.Registry {
	reg := widgets.NewRegistry(0)
	c := reg.Register(widgets.NewContainer(10, 20, 200, 100, graphics.ColorGray, "", false))
	reg.Register(widgets.Button{X: 5, Y: 5, Width: 50, Height: 20, Text: "OK", Color: graphics.ColorBlue, Parent: c})
	return reg
}

func TestCaptureSnapshot_Widgets(t *testing.T) {
	snap := CaptureSnapshot(nestedButton())

	if len(snap.Widgets) != 2 {
		t.Fatalf("expected 2 widgets, got %d", len(snap.Widgets))
	}
	btn := snap.Widgets[1]
	if btn.ID != "Button#0" {
		t.Errorf("expected ID Button#0, got %s", btn.ID)
	}
	if btn.Bounds != [4]int{15, 25, 50, 20} {
		t.Errorf("expected resolved bounds, got %v", btn.Bounds)
	}
	if btn.Properties["Text"] != "OK" {
		t.Errorf("expected Text prop, got %v", btn.Properties)
	}
	if len(snap.DisplayOps) != 4 {
		t.Errorf("expected 4 display ops, got %d", len(snap.DisplayOps))
	}
}

func TestCaptureSnapshot_TextEntryState(t *testing.T) {
	reg := widgets.NewRegistry(0)
	reg.Register(widgets.NewTextEntry(0, 0, 100, 30, 16, graphics.ColorBlack, graphics.ColorWhite).WithText("abc"))

	snap := CaptureSnapshot(reg)
	props := snap.Widgets[0].Properties
	if props["Text"] != "abc" || props["Cursor"] != 3 {
		t.Errorf("unexpected entry props %v", props)
	}
}

func TestSnapshot_MatchesGolden(t *testing.T) {
	CaptureSnapshot(nestedButton()).MatchesFile(t, "testdata/nested_button.snapshot.json")
}

func TestSnapshot_Diff(t *testing.T) {
	a := CaptureSnapshot(nestedButton())
	b := CaptureSnapshot(nestedButton())
	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}

	reg := nestedButton()
	reg.Button(2).Text = "Cancel"
	c := CaptureSnapshot(reg)
	diff := a.Diff(c)
	if !strings.Contains(diff, "Cancel") {
		t.Errorf("expected diff to mention the changed text, got:\n%s", diff)
	}
}

func TestSnapshot_UpdateAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "snap.json")
	snap := CaptureSnapshot(nestedButton())
	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}
	loaded, err := loadSnapshot(path)
	if err != nil {
		t.Fatalf("loadSnapshot: %v", err)
	}
	if diff := snap.Diff(loaded); diff != "" {
		t.Errorf("round trip changed snapshot:\n%s", diff)
	}
}

type fakeT struct {
	fatals []string
	errs   []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return "TestFake" }
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errs = append(f.errs, fmt.Sprintf(format, args...))
}

func TestSnapshot_MatchesFileMissing(t *testing.T) {
	if os.Getenv("XIFORM_UPDATE_SNAPSHOTS") == "1" {
		t.Skip("update mode writes instead of comparing")
	}
	ft := &fakeT{}
	CaptureSnapshot(nestedButton()).MatchesFile(ft, filepath.Join(t.TempDir(), "missing.json"))
	if len(ft.fatals) != 1 || !strings.Contains(ft.fatals[0], "XIFORM_UPDATE_SNAPSHOTS=1") {
		t.Errorf("expected missing-file failure with update hint, got %v", ft.fatals)
	}
}
