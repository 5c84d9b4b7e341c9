// Package scene builds the demo form shown by the xiform command.
package scene

import (
	"fmt"

	"github.com/xiform/xiform/cmd/xiform/internal/config"
	"github.com/xiform/xiform/pkg/graphics"
	"github.com/xiform/xiform/pkg/widgets"
)

// Handles names the widgets of the demo form.
type Handles struct {
	Window widgets.Handle
	Title  widgets.Handle
	Volume widgets.Handle
	Name   widgets.Handle
	Apply  widgets.Handle
	Status widgets.Handle
	Badge  widgets.Handle
}

// Build registers the demo form: a movable settings window with a volume
// slider, a name field and an Apply button that echoes both into a status
// label.
func Build(cfg *config.Resolved) (*widgets.Registry, Handles) {
	reg := widgets.NewRegistry(cfg.Capacity)
	var h Handles

	h.Title = reg.Register(widgets.NewText(cfg.AppName, 20, 10, graphics.ColorBlack, 0))
	h.Window = reg.Register(widgets.NewContainer(50, 50, 400, 300, graphics.ColorWhite, "Settings", true))

	reg.Register(widgets.Label{X: 20, Y: 50, Width: 100, Height: 30, Text: "Volume", Parent: h.Window})
	h.Volume = reg.Register(widgets.Slider{
		X: 130, Y: 55, Width: 220, Height: 20,
		Min: 0, Max: 100, Value: 50,
		Parent: h.Window,
	})

	reg.Register(widgets.Label{X: 20, Y: 100, Width: 100, Height: 30, Text: "Name", Parent: h.Window})
	name := widgets.NewTextEntry(130, 100, 220, 30, graphics.DefaultFontSize, graphics.ColorBlack, graphics.ColorWhite).
		WithCapacity(cfg.EntryCapacity)
	name.GlyphAdvance = cfg.GlyphAdvance
	name.Padding = cfg.Padding
	name.Parent = h.Window
	h.Name = reg.Register(name)

	h.Status = reg.Register(widgets.Label{
		X: 20, Y: 220, Width: 360, Height: 30,
		Color:  graphics.ColorTransparent,
		Parent: h.Window,
	})

	apply := widgets.NewButton(20, 160, 100, 40, "Apply")
	apply.Parent = h.Window
	apply.OnClick = func() {
		reg.Label(h.Status).Text = Summary(reg, h)
	}
	h.Apply = reg.Register(apply)

	h.Badge = reg.Register(widgets.Shape{
		X: 340, Y: 160, Width: 40, Height: 40,
		Shape:  widgets.ShapeCircle,
		Color:  graphics.ColorGreen,
		Parent: h.Window,
	})

	return reg, h
}

// Summary describes the current form values.
func Summary(reg *widgets.Registry, h Handles) string {
	name := reg.TextEntry(h.Name).Text()
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("%s at volume %d", name, reg.Slider(h.Volume).Value)
}
