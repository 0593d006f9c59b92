// pkg/physics/pointofsail.go
package physics

import "fmt"

// PointOfSail classifies how a heading sits relative to the wind
type PointOfSail uint8

const (
	Running PointOfSail = iota + 1
	BroadReach
	BeamReach
	CloseHauled
	InIrons
)

type pointOfSailInfo struct {
	rank int
	cost uint8
	name string
}

// pointsOfSail holds the canonical order: a higher rank is harder sailing.
var pointsOfSail = map[PointOfSail]pointOfSailInfo{
	Running:     {rank: 0, cost: 0, name: "running"},
	BroadReach:  {rank: 1, cost: 1, name: "broad reach"},
	BeamReach:   {rank: 2, cost: 2, name: "beam reach"},
	CloseHauled: {rank: 3, cost: 4, name: "close hauled"},
	InIrons:     {rank: 4, cost: 8, name: "in irons"},
}

// windOffsets maps (wind - heading) on the ring to the point of sail.
// The table is symmetric around running (0) and in irons (4).
var windOffsets = [directionCount]PointOfSail{
	Running,
	BroadReach,
	BeamReach,
	CloseHauled,
	InIrons,
	CloseHauled,
	BeamReach,
	BroadReach,
}

// Classify returns the point of sail for a vessel on heading under wind
func Classify(heading, wind Direction) PointOfSail {
	return windOffsets[wind.Sub(heading)]
}

func (p PointOfSail) info() pointOfSailInfo {
	info, ok := pointsOfSail[p]
	if !ok {
		panic(fmt.Sprintf("invalid point of sail: %d", uint8(p)))
	}
	return info
}

// Cost returns the maneuver points charged for moving into this point of sail
func (p PointOfSail) Cost() uint8 {
	return p.info().cost
}

// Rank returns the position of p in the difficulty order
func (p PointOfSail) Rank() int {
	return p.info().rank
}

// Compare returns -1, 0 or +1 as p is easier than, equal to, or harder than other
func (p PointOfSail) Compare(other PointOfSail) int {
	a, b := p.Rank(), other.Rank()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether p is easier sailing than other
func (p PointOfSail) Less(other PointOfSail) bool {
	return p.Compare(other) < 0
}

// CanSail reports whether a vessel makes way on this point of sail
func (p PointOfSail) CanSail() bool {
	return p != InIrons
}

func (p PointOfSail) String() string {
	info, ok := pointsOfSail[p]
	if !ok {
		return fmt.Sprintf("PointOfSail(%d)", uint8(p))
	}
	return info.name
}
