package topology

import "github.com/pkg/errors"

// ErrInvalidDimensions is returned when a grid side is smaller than one cell
var ErrInvalidDimensions = errors.New("invalid dimensions")

// Dimensions is the fixed size of a toroidal grid, build it with NewDimensions
type Dimensions struct {
	Width  int
	Height int
}

// NewDimensions validates width and height, both must be at least 1
func NewDimensions(width, height int) (Dimensions, error) {
	d := Dimensions{Width: width, Height: height}
	if !d.Valid() {
		return Dimensions{}, errors.Wrapf(ErrInvalidDimensions,
			"[NewDimensions] width=%d height=%d", width, height)
	}
	return d, nil
}

// Area returns the number of cells in the grid
func (d Dimensions) Area() int {
	return d.Width * d.Height
}

// Contains reports whether c lies inside the grid
func (d Dimensions) Contains(c Coordinate) bool {
	return c.X >= 0 && c.X < d.Width && c.Y >= 0 && c.Y < d.Height
}

// Valid reports whether both sides are at least one cell long
func (d Dimensions) Valid() bool {
	return d.Width >= 1 && d.Height >= 1
}

// Wrap folds arbitrary integer coordinates back onto the torus, invalid dimensions wrap everything to the origin
func (d Dimensions) Wrap(x, y int) Coordinate {
	if !d.Valid() {
		return Coordinate{}
	}
	return Coordinate{
		X: (x%d.Width + d.Width) % d.Width,
		Y: (y%d.Height + d.Height) % d.Height,
	}
}

// Coordinate is a cell position, origin top-left
type Coordinate struct {
	X int
	Y int
}

// StepUp moves one row up, row 0 wraps to the last row
func StepUp(c Coordinate, d Dimensions) Coordinate {
	if c.Y == 0 {
		c.Y = d.Height - 1
	} else {
		c.Y--
	}
	return c
}

// StepDown moves one row down, the last row wraps to row 0
func StepDown(c Coordinate, d Dimensions) Coordinate {
	if c.Y == d.Height-1 {
		c.Y = 0
	} else {
		c.Y++
	}
	return c
}

// StepLeft moves one column left, column 0 wraps to the last column
func StepLeft(c Coordinate, d Dimensions) Coordinate {
	if c.X == 0 {
		c.X = d.Width - 1
	} else {
		c.X--
	}
	return c
}

// StepRight moves one column right, the last column wraps to column 0
func StepRight(c Coordinate, d Dimensions) Coordinate {
	if c.X == d.Width-1 {
		c.X = 0
	} else {
		c.X++
	}
	return c
}

/*
Neighbors returns the Moore neighbourhood of c in the order
N, NE, E, SE, S, SW, W, NW.

Positions are never deduplicated: on a grid one cell wide or high several
entries coincide, and some of them are c itself.
*/
func Neighbors(c Coordinate, d Dimensions) [8]Coordinate {
	var (
		up   = StepUp(c, d)
		down = StepDown(c, d)
	)
	return [8]Coordinate{
		up,
		StepRight(up, d),
		StepRight(c, d),
		StepRight(down, d),
		down,
		StepLeft(down, d),
		StepLeft(c, d),
		StepLeft(up, d),
	}
}
