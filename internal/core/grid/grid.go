// Package grid provides board geometry for the organism simulation.
// Cells are addressed by integer coordinates and neighbours by direction index.
package grid

import "fmt"

// Point is a board cell.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Board is the geometry the simulation runs on.
type Board interface {
	// NeighbourCount returns how many direction indices the board supports.
	NeighbourCount() int

	// Neighbour resolves the cell next to p in direction dir.
	// It reports false when there is no such cell.
	Neighbour(p Point, dir int) (Point, bool)

	// IsLegal reports whether p may be occupied.
	IsLegal(p Point) bool
}

// Direction indices on a Square board. The first four are always present,
// the diagonals only when the board is built with diagonal moves.
const (
	North = iota
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

// deltas is indexed by direction
var deltas = [...][2]int{
	North:     {0, -1},
	East:      {1, 0},
	South:     {0, 1},
	West:      {-1, 0},
	NorthEast: {1, -1},
	SouthEast: {1, 1},
	SouthWest: {-1, 1},
	NorthWest: {-1, -1},
}

// Square is a rectangular board.
type Square struct {
	width    int
	height   int
	diagonal bool
}

// NewSquare creates a width x height board. With diagonal set the board
// exposes eight neighbours per cell instead of four.
func NewSquare(width, height int, diagonal bool) *Square {
	return &Square{width: width, height: height, diagonal: diagonal}
}

// Size returns the board dimensions.
func (s *Square) Size() (width, height int) {
	return s.width, s.height
}

// NeighbourCount returns 4, or 8 with diagonals.
func (s *Square) NeighbourCount() int {
	if s.diagonal {
		return 8
	}
	return 4
}

// Neighbour returns the adjacent cell, or false when it falls off the board.
func (s *Square) Neighbour(p Point, dir int) (Point, bool) {
	if dir < 0 || dir >= s.NeighbourCount() {
		return Point{}, false
	}
	d := deltas[dir]
	n := p.Add(d[0], d[1])
	if !s.contains(n) {
		return Point{}, false
	}
	return n, true
}

// IsLegal reports whether p lies on the board.
func (s *Square) IsLegal(p Point) bool {
	return s.contains(p)
}

func (s *Square) contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.width && p.Y < s.height
}
