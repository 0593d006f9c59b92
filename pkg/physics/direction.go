// pkg/physics/direction.go
package physics

import (
	"fmt"
	"strings"
)

// Direction is one of the eight compass headings. Values live on a
// modulo-8 ring, counter-clockwise from east.
type Direction uint8

const (
	East Direction = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
)

// directionCount is the size of the compass ring
const directionCount = 8

var directionVectors = [directionCount]Vector{
	East:      {X: 1, Y: 0},
	NorthEast: {X: 1, Y: 1},
	North:     {X: 0, Y: 1},
	NorthWest: {X: -1, Y: 1},
	West:      {X: -1, Y: 0},
	SouthWest: {X: -1, Y: -1},
	South:     {X: 0, Y: -1},
	SouthEast: {X: 1, Y: -1},
}

var directionArrows = [directionCount]string{"→", "↗", "↑", "↖", "←", "↙", "↓", "↘"}

var directionNames = [directionCount]string{"E", "NE", "N", "NW", "W", "SW", "S", "SE"}

var directionAliases = map[string]Direction{
	"east":      East,
	"northeast": NorthEast,
	"north":     North,
	"northwest": NorthWest,
	"west":      West,
	"southwest": SouthWest,
	"south":     South,
	"southeast": SouthEast,
	"right":     East,
	"upright":   NorthEast,
	"up":        North,
	"upleft":    NorthWest,
	"left":      West,
	"downleft":  SouthWest,
	"down":      South,
	"downright": SouthEast,
}

// NewDirection maps any integer onto the compass ring
func NewDirection(v int) Direction {
	return Direction(((v % directionCount) + directionCount) % directionCount)
}

// AllDirections returns the eight headings in ring order
func AllDirections() []Direction {
	return []Direction{East, NorthEast, North, NorthWest, West, SouthWest, South, SouthEast}
}

// Valid reports whether d is on the ring
func (d Direction) Valid() bool {
	return d < directionCount
}

// Vector returns the unit or diagonal grid displacement for the heading.
// Directions are only produced by ring arithmetic, so an out-of-range
// value is a programming error.
func (d Direction) Vector() Vector {
	if !d.Valid() {
		panic(fmt.Sprintf("invalid direction: %d", uint8(d)))
	}
	return directionVectors[d]
}

// Add rotates d counter-clockwise by other steps
func (d Direction) Add(other Direction) Direction {
	return Direction((uint(d) + uint(other)) % directionCount)
}

// Sub returns the ring distance from other to d, expressed as a direction.
// It is not vector subtraction.
func (d Direction) Sub(other Direction) Direction {
	return Direction((uint(d) + directionCount - uint(other)%directionCount) % directionCount)
}

// Reverse returns the opposite point of the compass
func (d Direction) Reverse() Direction {
	return d.Add(West)
}

// Interpolate returns the headings visited when turning from d to target one
// ring step at a time along the shorter arc, both endpoints included.
// A reversal has two equally long arcs and cannot be interpolated; in that
// case ok is false.
func (d Direction) Interpolate(target Direction) (steps []Direction, ok bool) {
	n := uint8(target.Sub(d))
	switch {
	case n == 4:
		return nil, false
	case n < 4:
		steps = make([]Direction, 0, n+1)
		for i := uint8(0); i <= n; i++ {
			steps = append(steps, d.Add(Direction(i)))
		}
	default:
		back := directionCount - n
		steps = make([]Direction, 0, back+1)
		for i := uint8(0); i <= back; i++ {
			steps = append(steps, d.Sub(Direction(i)))
		}
	}
	return steps, true
}

// String returns the arrow glyph for the heading
func (d Direction) String() string {
	if !d.Valid() {
		panic(fmt.Sprintf("invalid direction: %d", uint8(d)))
	}
	return directionArrows[d]
}

// Name returns the compass abbreviation, e.g. "NE"
func (d Direction) Name() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection accepts compass abbreviations ("ne"), full names
// ("northeast", "north-east") and screen names ("upright"), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for i, name := range directionNames {
		if strings.EqualFold(name, key) {
			return Direction(i), nil
		}
	}
	if d, ok := directionAliases[key]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction: %d", uint8(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
