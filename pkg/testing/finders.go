package testing

import (
	"fmt"
	"strings"

	"github.com/xiform/xiform/pkg/widgets"
)

// Finder locates widgets in a registry.
type Finder interface {
	// Evaluate returns the matching handles in render order.
	Evaluate(reg *widgets.Registry) []widgets.Handle
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	handles []widgets.Handle
	finder  Finder
}

// Find evaluates f against reg.
func Find(reg *widgets.Registry, f Finder) FinderResult {
	return FinderResult{handles: f.Evaluate(reg), finder: f}
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() widgets.Handle {
	if len(r.handles) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.describe()))
	}
	return r.handles[0]
}

// FirstOrZero returns the first match, or the zero handle if none.
func (r FinderResult) FirstOrZero() widgets.Handle {
	if len(r.handles) == 0 {
		return 0
	}
	return r.handles[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) widgets.Handle {
	if index < 0 || index >= len(r.handles) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.handles), r.describe()))
	}
	return r.handles[index]
}

// All returns all matches in render order.
func (r FinderResult) All() []widgets.Handle {
	return r.handles
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.handles)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.handles) > 0
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// predicateFinder matches handles satisfying fn.
type predicateFinder struct {
	fn   func(reg *widgets.Registry, h widgets.Handle) bool
	desc string
}

func (f *predicateFinder) Evaluate(reg *widgets.Registry) []widgets.Handle {
	var out []widgets.Handle
	for _, h := range reg.Handles() {
		if f.fn(reg, h) {
			out = append(out, h)
		}
	}
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches widgets satisfying fn.
func ByPredicate(fn func(reg *widgets.Registry, h widgets.Handle) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// ByKind returns a finder that matches widgets of kind k.
func ByKind(k widgets.Kind) Finder {
	return &predicateFinder{
		fn: func(reg *widgets.Registry, h widgets.Handle) bool {
			got, _ := reg.KindOf(h)
			return got == k
		},
		desc: fmt.Sprintf("ByKind(%s)", k),
	}
}

// ByText returns a finder that matches widgets whose visible text equals
// text: button and label text, text content, entry contents and
// container titles.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(reg *widgets.Registry, h widgets.Handle) bool {
			s, ok := textOf(reg, h)
			return ok && s == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches widgets whose visible
// text contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(reg *widgets.Registry, h widgets.Handle) bool {
			s, ok := textOf(reg, h)
			return ok && strings.Contains(s, substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ChildOf returns a finder that matches widgets satisfying matching whose
// parent container satisfies parent.
func ChildOf(parent, matching Finder) Finder {
	return &childFinder{parent: parent, matching: matching}
}

type childFinder struct {
	parent, matching Finder
}

func (f *childFinder) Evaluate(reg *widgets.Registry) []widgets.Handle {
	parents := map[widgets.Handle]bool{}
	for _, h := range f.parent.Evaluate(reg) {
		parents[h] = true
	}
	if len(parents) == 0 {
		return nil
	}
	var out []widgets.Handle
	for _, h := range f.matching.Evaluate(reg) {
		if parents[reg.Parent(h)] {
			out = append(out, h)
		}
	}
	return out
}

func (f *childFinder) Description() string {
	return fmt.Sprintf("ChildOf(parent: %s, matching: %s)", f.parent.Description(), f.matching.Description())
}

// textOf returns the text a widget displays. Sliders and shapes have none.
func textOf(reg *widgets.Registry, h widgets.Handle) (string, bool) {
	switch w := reg.Widget(h).(type) {
	case widgets.Container:
		return w.Title, true
	case widgets.Button:
		return w.Text, true
	case widgets.Label:
		return w.Text, true
	case widgets.Text:
		return w.Content, true
	case widgets.TextEntry:
		return w.Text(), true
	}
	return "", false
}
