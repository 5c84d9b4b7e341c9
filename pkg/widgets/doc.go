// Package widgets provides the retained-mode widget set and the registry
// that owns, updates and renders it.
//
// # Widget Construction
//
// Widgets are plain values. Build them with a struct literal or with the
// NewX constructors, then hand them to a Registry:
//
//	reg := widgets.NewRegistry(widgets.DefaultCapacity)
//	win := reg.Register(widgets.NewContainer(100, 100, 400, 300, graphics.ColorGray, "Settings", true))
//
//	ok := widgets.NewButton(20, 50, 70, 30, "OK")
//	ok.Parent = win
//	reg.Register(ok)
//
// Register copies the value into storage owned by the registry and returns
// a Handle. The caller's copy is not tracked afterwards: read and mutate the
// live widget through the typed accessors (Registry.Button, Registry.Slider,
// ...).
//
// # Coordinates
//
// A widget with a Parent is positioned relative to that container's top-left
// corner. Only containers can be parents and containers cannot be nested, so
// resolving a position is a single addition. Positions are resolved on every
// event and every frame, so dragging a container moves its children at once.
//
// # Frame Order
//
// ProcessEvent runs every widget's update in registration order; RenderAll
// draws in the same order, so later widgets paint over earlier ones. Hit
// testing ignores overlap: every widget under the pointer reacts.
package widgets
