// pkg/physics/vector.go
package physics

import (
	"fmt"
	"math"
)

// Vector represents a 2D grid displacement with x and y components.
// X grows to the right and Y grows upwards.
type Vector struct {
	X int8
	Y int8
}

// Add returns the sum of two vectors. It panics if either component
// leaves the int8 range.
func (v Vector) Add(other Vector) Vector {
	sum, ok := v.CheckedAdd(other)
	if !ok {
		panic(fmt.Sprintf("vector overflow: %v + %v", v, other))
	}
	return sum
}

// Sub returns the difference between two vectors. It panics if either
// component leaves the int8 range.
func (v Vector) Sub(other Vector) Vector {
	x, okX := checkedInt8(int(v.X) - int(other.X))
	y, okY := checkedInt8(int(v.Y) - int(other.Y))
	if !okX || !okY {
		panic(fmt.Sprintf("vector overflow: %v - %v", v, other))
	}
	return Vector{X: x, Y: y}
}

// CheckedAdd returns the sum of two vectors and whether it fits in int8.
func (v Vector) CheckedAdd(other Vector) (Vector, bool) {
	x, okX := checkedInt8(int(v.X) + int(other.X))
	y, okY := checkedInt8(int(v.Y) + int(other.Y))
	if !okX || !okY {
		return v, false
	}
	return Vector{X: x, Y: y}, true
}

// IsZero reports whether both components are zero
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// String formats the vector as (x, y)
func (v Vector) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

func checkedInt8(n int) (int8, bool) {
	if n < math.MinInt8 || n > math.MaxInt8 {
		return 0, false
	}
	return int8(n), true
}
