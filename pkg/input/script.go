package input

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseScript parses a whitespace-separated list of events in the form
// printed by Event.String:
//
//	down:150,110 move:200,200 up:200,200 text:hi key:left quit
//
// Text events cannot contain spaces; use several text events instead.
func ParseScript(script string) ([]Event, error) {
	var events []Event
	for _, field := range strings.Fields(script) {
		ev, err := parseEvent(field)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseEvent(field string) (Event, error) {
	name, arg, _ := strings.Cut(field, ":")
	switch name {
	case "move", "down", "up":
		x, y, err := parsePoint(arg)
		if err != nil {
			return Event{}, fmt.Errorf("event %q: %w", field, err)
		}
		switch name {
		case "move":
			return Move(x, y), nil
		case "down":
			return Down(x, y), nil
		default:
			return Up(x, y), nil
		}
	case "text":
		if arg == "" {
			return Event{}, fmt.Errorf("event %q: empty text", field)
		}
		return Text(arg), nil
	case "key":
		k, ok := ParseKey(arg)
		if !ok {
			return Event{}, fmt.Errorf("event %q: unknown key %q", field, arg)
		}
		return Press(k), nil
	case "quit":
		return Event{Kind: Quit}, nil
	default:
		return Event{}, fmt.Errorf("unknown event %q", field)
	}
}

func parsePoint(s string) (int, int, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("bad x: %w", err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("bad y: %w", err)
	}
	return x, y, nil
}
