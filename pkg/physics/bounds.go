// pkg/physics/bounds.go
package physics

// Rect represents a square area of the grid centered on Center.
// Tiles within Radius of the center on both axes are inside.
type Rect struct {
	Center Vector
	Radius int8
}

// NewRect creates a square area around the origin
func NewRect(radius int8) Rect {
	return Rect{Radius: radius}
}

// Contains reports whether point lies inside the area, edges included
func (r Rect) Contains(point Vector) bool {
	dx := int(point.X) - int(r.Center.X)
	dy := int(point.Y) - int(r.Center.Y)
	radius := int(r.Radius)
	return dx >= -radius && dx <= radius &&
		dy >= -radius && dy <= radius
}

// Width returns the number of tiles along one side
func (r Rect) Width() int {
	return 2*int(r.Radius) + 1
}
