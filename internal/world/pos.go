package world

import "fmt"

// Pos is a grid coordinate. Row 0 is the bottom row of the world and Y grows
// upward. Negative components are never inside a grid.
type Pos struct {
	X int
	Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns a new Pos offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Below returns the position directly underneath p.
func (p Pos) Below() Pos {
	return Pos{X: p.X, Y: p.Y - 1}
}
