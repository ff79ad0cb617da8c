package ui

import (
	"fmt"
	"strings"
)

// Position is the layout slot a panel is bound to at registration.
type Position int

const (
	PositionLeft Position = iota
	PositionRight
	PositionBottom
	PositionFloating
)

// Positions lists every slot in carving order.
var Positions = []Position{PositionLeft, PositionRight, PositionBottom, PositionFloating}

func (p Position) String() string {
	switch p {
	case PositionLeft:
		return "left"
	case PositionRight:
		return "right"
	case PositionBottom:
		return "bottom"
	case PositionFloating:
		return "floating"
	default:
		return "unknown"
	}
}

// ParsePosition maps a config/CLI name to a Position. Case-insensitive.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return PositionLeft, nil
	case "right":
		return PositionRight, nil
	case "bottom":
		return PositionBottom, nil
	case "floating":
		return PositionFloating, nil
	}
	return 0, fmt.Errorf("unknown panel position %q", s)
}

// Region is a rectangular screen area in character cells.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the region covers no cells.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of cells covered.
func (r Region) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Contains reports whether o lies entirely inside r.
func (r Region) Contains(o Region) bool {
	if o.Empty() {
		return true
	}
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.Width <= r.X+r.Width &&
		o.Y+o.Height <= r.Y+r.Height
}

func (r Region) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
