package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
// The ordinals are stable and may cross a serialization boundary.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// directionCount is the number of valid directions.
const directionCount = 4

// Directions lists every direction in ordinal order.
var Directions = [directionCount]Direction{DirUp, DirDown, DirLeft, DirRight}

// Axis is the grid axis a direction moves along.
type Axis uint8

const (
	AxisVertical   Axis = iota // columns, for Up/Down
	AxisHorizontal             // rows, for Left/Right
)

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d < directionCount
}

// Axis returns the axis the direction acts along.
func (d Direction) Axis() Axis {
	if d == DirUp || d == DirDown {
		return AxisVertical
	}
	return AxisHorizontal
}

// Reverse reports whether tiles pack toward the far end of a line (Down, Right).
func (d Direction) Reverse() bool {
	return d == DirDown || d == DirRight
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// ParseDirection converts a name like "up" or "L" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("parse direction %q: %w", s, ErrInvalidDirection)
}

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}
