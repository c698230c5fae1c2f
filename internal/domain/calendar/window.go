package calendar

import "errors"

const WindowDays = 7

var ErrInvalidDirection = errors.New("invalid direction, expected next or prev")

type Direction string

const (
	Stay Direction = ""
	Next Direction = "next"
	Prev Direction = "prev"
)

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Stay, Next, Prev:
		return d, nil
	default:
		return "", ErrInvalidDirection
	}
}

// Window is the seven-day range shown when browsing for a free slot.
// It is a value: navigating returns a new window instead of mutating shared state.
type Window struct {
	anchor Date
}

func NewWindow(anchor Date) Window {
	return Window{anchor: anchor}
}

func (w Window) Anchor() Date { return w.anchor }
func (w Window) End() Date    { return w.anchor.AddDays(WindowDays - 1) }

func (w Window) Days() []Date {
	days := make([]Date, WindowDays)
	for i := range days {
		days[i] = w.anchor.AddDays(i)
	}
	return days
}

func (w Window) Shift(dir Direction) Window {
	switch dir {
	case Next:
		return Window{anchor: w.anchor.AddDays(WindowDays)}
	case Prev:
		return Window{anchor: w.anchor.AddDays(-WindowDays)}
	default:
		return w
	}
}

// Clamp moves the anchor forward to earliest when it lies before it.
func (w Window) Clamp(earliest Date) Window {
	if w.anchor.Before(earliest) {
		return Window{anchor: earliest}
	}
	return w
}

func (w Window) Contains(d Date) bool {
	return !d.Before(w.anchor) && !d.After(w.End())
}
