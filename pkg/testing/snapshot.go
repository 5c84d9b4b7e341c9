package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/xiform/xiform/pkg/graphics"
	"github.com/xiform/xiform/pkg/widgets"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the registered widgets and the display operations of
// one frame.
type Snapshot struct {
	Widgets    []WidgetNode `json:"widgets"`
	DisplayOps []DisplayOp  `json:"displayOps,omitempty"`
}

// WidgetNode is one serialized widget.
type WidgetNode struct {
	ID         string         `json:"id"`
	Kind       string         `json:"kind"`
	Bounds     [4]int         `json:"bounds"`
	Properties map[string]any `json:"props,omitempty"`
}

// propertyWhitelist defines which fields to serialize per widget kind.
// Geometry is covered by Bounds and left out here.
var propertyWhitelist = map[widgets.Kind][]string{
	widgets.KindContainer: {"Title", "Movable", "Color"},
	widgets.KindButton:    {"Text", "Hovered", "Clicked", "Parent"},
	widgets.KindLabel:     {"Text", "Color", "Parent"},
	widgets.KindText:      {"Content", "Color", "Parent"},
	widgets.KindSlider:    {"Min", "Max", "Value", "Dragging", "Parent"},
	widgets.KindTextEntry: {"Active", "Parent"},
	widgets.KindShape:     {"Shape", "Color", "Parent"},
}

// CaptureSnapshot serializes every widget in reg and renders one frame
// into a Recorder to collect its display operations.
func CaptureSnapshot(reg *widgets.Registry) *Snapshot {
	snap := &Snapshot{Widgets: []WidgetNode{}}
	counts := map[widgets.Kind]int{}
	for _, h := range reg.Handles() {
		kind, _ := reg.KindOf(h)
		b := reg.Bounds(h)
		node := WidgetNode{
			ID:         fmt.Sprintf("%s#%d", kind, counts[kind]),
			Kind:       kind.String(),
			Bounds:     [4]int{b.X, b.Y, b.Width, b.Height},
			Properties: extractProperties(reg.Widget(h), propertyWhitelist[kind]),
		}
		counts[kind]++
		if e := reg.TextEntry(h); e != nil {
			if node.Properties == nil {
				node.Properties = map[string]any{}
			}
			node.Properties["Text"] = e.Text()
			node.Properties["Cursor"] = e.Cursor()
			node.Properties["Offset"] = e.Offset()
		}
		snap.Widgets = append(snap.Widgets, node)
	}

	rec := &Recorder{}
	reg.RenderAll(rec)
	snap.DisplayOps = rec.Ops()
	return snap
}

func extractProperties(w widgets.Widget, fields []string) map[string]any {
	if w == nil || len(fields) == 0 {
		return nil
	}
	v := reflect.ValueOf(w)
	props := make(map[string]any)
	for _, name := range fields {
		field := v.FieldByName(name)
		if !field.IsValid() {
			continue
		}
		if val := serializeFieldValue(field); val != nil {
			props[name] = val
		}
	}
	if len(props) == 0 {
		return nil
	}
	return props
}

func serializeFieldValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Type() == reflect.TypeOf(graphics.Color(0)) {
			return serializeColor(graphics.Color(v.Uint()))
		}
		return v.Uint()
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	default:
		return nil
	}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// XIFORM_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("XIFORM_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: XIFORM_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: XIFORM_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other, or the empty
// string if they serialize identically.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
