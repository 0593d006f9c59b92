package physics

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection_Vector(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Vector
	}{
		{East, Vector{X: 1, Y: 0}},
		{NorthEast, Vector{X: 1, Y: 1}},
		{North, Vector{X: 0, Y: 1}},
		{NorthWest, Vector{X: -1, Y: 1}},
		{West, Vector{X: -1, Y: 0}},
		{SouthWest, Vector{X: -1, Y: -1}},
		{South, Vector{X: 0, Y: -1}},
		{SouthEast, Vector{X: 1, Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.Name(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dir.Vector())
		})
	}
}

func TestDirection_VectorPanicsOffRing(t *testing.T) {
	assert.Panics(t, func() { Direction(8).Vector() })
	assert.Panics(t, func() { _ = Direction(200).String() })
}

func TestNewDirection_Normalizes(t *testing.T) {
	tests := []struct {
		in   int
		want Direction
	}{
		{0, East},
		{7, SouthEast},
		{8, East},
		{10, North},
		{-1, SouthEast},
		{-4, West},
		{-17, SouthEast},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, NewDirection(tt.in))
		})
	}
}

func TestDirection_AddSub(t *testing.T) {
	for _, a := range AllDirections() {
		for _, b := range AllDirections() {
			sum := a.Add(b)
			diff := a.Sub(b)
			require.True(t, sum.Valid())
			require.True(t, diff.Valid())
			assert.Equal(t, Direction((int(a)+int(b))%8), sum, "%d+%d", a, b)
			assert.Equal(t, Direction((int(a)-int(b)+8)%8), diff, "%d-%d", a, b)
			assert.Equal(t, a, diff.Add(b), "(a-b)+b should be a")
		}
	}
}

func TestDirection_Reverse(t *testing.T) {
	for _, d := range AllDirections() {
		assert.Equal(t, d, d.Reverse().Reverse(), d.Name())
		assert.Equal(t, d.Add(4), d.Reverse(), d.Name())

		v, r := d.Vector(), d.Reverse().Vector()
		assert.Equal(t, Vector{}, v.Add(r), "opposite vectors cancel for %s", d.Name())
	}
}

func TestDirection_InterpolateExhaustive(t *testing.T) {
	for _, a := range AllDirections() {
		for _, b := range AllDirections() {
			n := int(b.Sub(a))
			t.Run(a.Name()+"_to_"+b.Name(), func(t *testing.T) {
				steps, ok := a.Interpolate(b)
				if n == 4 {
					assert.False(t, ok)
					assert.Nil(t, steps)
					return
				}

				require.True(t, ok)
				assert.Len(t, steps, min(n, 8-n)+1)
				assert.Equal(t, a, steps[0])
				assert.Equal(t, b, steps[len(steps)-1])

				step := Direction(1)
				if n > 4 {
					step = Direction(7)
				}
				for i := 1; i < len(steps); i++ {
					assert.Equal(t, step, steps[i].Sub(steps[i-1]), "step %d", i)
				}
			})
		}
	}
}

func TestDirection_InterpolateExamples(t *testing.T) {
	tests := []struct {
		name string
		from Direction
		to   Direction
		want []Direction
	}{
		{"same", North, North, []Direction{North}},
		{"forward", East, North, []Direction{East, NorthEast, North}},
		{"backward", North, East, []Direction{North, NorthEast, East}},
		{"wraps_forward", SouthEast, NorthEast, []Direction{SouthEast, East, NorthEast}},
		{"wraps_backward", NorthEast, South, []Direction{NorthEast, East, SouthEast, South}},
		{"three_steps", East, NorthWest, []Direction{East, NorthEast, North, NorthWest}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.from.Interpolate(tt.to)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"E", East, false},
		{"ne", NorthEast, false},
		{"North", North, false},
		{"north-west", NorthWest, false},
		{" w ", West, false},
		{"south_west", SouthWest, false},
		{"down", South, false},
		{"downright", SouthEast, false},
		{"", 0, true},
		{"sideways", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirection_TextRoundTrip(t *testing.T) {
	type payload struct {
		Wind Direction `json:"wind"`
	}

	data, err := json.Marshal(payload{Wind: SouthWest})
	require.NoError(t, err)
	assert.JSONEq(t, `{"wind":"SW"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"wind":"northeast"}`), &decoded))
	assert.Equal(t, NorthEast, decoded.Wind)

	assert.Error(t, json.Unmarshal([]byte(`{"wind":"nowhere"}`), &decoded))
}

func TestDirection_StringAndName(t *testing.T) {
	assert.Equal(t, "↑", North.String())
	assert.Equal(t, "↘", SouthEast.String())
	assert.Equal(t, "NW", NorthWest.Name())
	assert.Equal(t, "Direction(9)", Direction(9).Name())
}
