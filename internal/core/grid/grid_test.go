package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareNeighbourCount(t *testing.T) {
	assert.Equal(t, 4, NewSquare(3, 3, false).NeighbourCount())
	assert.Equal(t, 8, NewSquare(3, 3, true).NeighbourCount())
}

func TestSquareNeighbour(t *testing.T) {
	b := NewSquare(3, 3, true)
	centre := Point{X: 1, Y: 1}

	tests := []struct {
		dir  int
		want Point
	}{
		{North, Point{1, 0}},
		{East, Point{2, 1}},
		{South, Point{1, 2}},
		{West, Point{0, 1}},
		{NorthEast, Point{2, 0}},
		{SouthEast, Point{2, 2}},
		{SouthWest, Point{0, 2}},
		{NorthWest, Point{0, 0}},
	}
	for _, tt := range tests {
		got, ok := b.Neighbour(centre, tt.dir)
		require.True(t, ok, "direction %d should resolve", tt.dir)
		assert.Equal(t, tt.want, got, "direction %d", tt.dir)
	}
}

func TestSquareNeighbourOffBoard(t *testing.T) {
	b := NewSquare(3, 3, false)

	_, ok := b.Neighbour(Point{0, 0}, North)
	assert.False(t, ok, "north of the top row is off the board")

	_, ok = b.Neighbour(Point{0, 0}, West)
	assert.False(t, ok, "west of the left column is off the board")

	_, ok = b.Neighbour(Point{1, 1}, NorthEast)
	assert.False(t, ok, "diagonals are not available without diagonal moves")

	_, ok = b.Neighbour(Point{1, 1}, -1)
	assert.False(t, ok)
}

func TestSquareIsLegal(t *testing.T) {
	b := NewSquare(4, 2, false)
	assert.True(t, b.IsLegal(Point{0, 0}))
	assert.True(t, b.IsLegal(Point{3, 1}))
	assert.False(t, b.IsLegal(Point{4, 1}))
	assert.False(t, b.IsLegal(Point{0, -1}))
}
