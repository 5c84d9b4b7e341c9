// Package engine runs the single-threaded frame loop that connects an input
// Source, a widgets.Registry and a graphics.Surface.
//
// Each frame drains the pending events (at most MaxEventsPerFrame), delivers
// them to every widget, and then renders all widgets in registration order.
// All updates for a frame finish before any rendering starts. The loop stops
// on a quit event, when its Source is exhausted, or when its context is
// cancelled.
package engine
