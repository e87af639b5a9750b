package model

import (
	"cmp"
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/topology"
)

// AliveThreshold is the uniform draw a cell must exceed to start alive when randomized
const AliveThreshold = 0.8

/*
Board is a toroidal Game of Life world that only stores its living cells.

Create boards with NewBoard or Load. The zero value is an empty board with no
cells that ignores writes.
*/
type Board struct {
	dims  topology.Dimensions
	alive map[topology.Coordinate]struct{}
}

// NewBoard creates an empty board with the specified dimensions
func NewBoard(width, height int) (*Board, error) {
	dims, err := topology.NewDimensions(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewBoard] failed to create board")
	}
	return &Board{
		dims:  dims,
		alive: make(map[topology.Coordinate]struct{}),
	}, nil
}

/*
Load builds a board shaped like pattern: one row per slice, one column per
entry, origin top-left. Any non-zero entry is a living cell.
*/
func Load(pattern [][]uint8) (*Board, error) {
	var width int
	if len(pattern) > 0 {
		width = len(pattern[0])
	}

	b, err := NewBoard(width, len(pattern))
	if err != nil {
		return nil, errors.Wrap(err, "[Load] failed to load pattern")
	}

	for y, row := range pattern {
		if len(row) != width {
			return nil, errors.Wrapf(ErrRaggedPattern, "[Load] row %d has %d cells, want %d", y, len(row), width)
		}
		for x, cell := range row {
			if cell != 0 {
				b.alive[topology.Coordinate{X: x, Y: y}] = struct{}{}
			}
		}
	}
	return b, nil
}

// Dimensions returns the fixed size of the board
func (b *Board) Dimensions() topology.Dimensions {
	return b.dims
}

// Population returns the number of living cells
func (b *Board) Population() int {
	return len(b.alive)
}

// IsAlive reports whether the cell at c is alive
func (b *Board) IsAlive(c topology.Coordinate) bool {
	_, ok := b.alive[c]
	return ok
}

// Cells returns a copy of the living cells sorted row by row
func (b *Board) Cells() []topology.Coordinate {
	cells := make([]topology.Coordinate, 0, len(b.alive))
	for c := range b.alive {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, func(p, q topology.Coordinate) int {
		if n := cmp.Compare(p.Y, q.Y); n != 0 {
			return n
		}
		return cmp.Compare(p.X, q.X)
	})
	return cells
}

// Set sets a cell to alive (true) or dead (false), wrapping x and y onto the board
func (b *Board) Set(x, y int, alive bool) {
	if b.alive == nil {
		return
	}
	c := b.dims.Wrap(x, y)
	if alive {
		b.alive[c] = struct{}{}
	} else {
		delete(b.alive, c)
	}
}

// Clear kills every cell
func (b *Board) Clear() {
	clear(b.alive)
}

// Randomize reseeds the board from a nondeterministic source
func (b *Board) Randomize() {
	b.RandomizeWith(NewRNG(0))
}

// RandomizeWith replaces every cell, each one alive with probability 1-AliveThreshold
func (b *Board) RandomizeWith(r *rand.Rand) {
	b.Clear()
	for y := range b.dims.Height {
		for x := range b.dims.Width {
			if r.Float64() > AliveThreshold {
				b.alive[topology.Coordinate{X: x, Y: y}] = struct{}{}
			}
		}
	}
}

// InjectRandomLife brings count random cells to life
func (b *Board) InjectRandomLife(r *rand.Rand, count int) {
	if b.alive == nil {
		return
	}
	for range count {
		b.Set(r.IntN(b.dims.Width), r.IntN(b.dims.Height), true)
	}
}

// CountAliveNeighbors counts the living cells among the 8 neighbor slots of c
func (b *Board) CountAliveNeighbors(c topology.Coordinate) (count int) {
	for _, n := range topology.Neighbors(c, b.dims) {
		if b.IsAlive(n) {
			count++
		}
	}
	return
}

/*
Advance moves the board forward exactly one generation.

Every neighbor count is taken against the current generation; deaths and
births are collected first and only then applied to the alive set. Birth
candidates are the dead neighbors of living cells, so the work done is
proportional to the population rather than the board area.
*/
func (b *Board) Advance() {
	var (
		deaths     []topology.Coordinate
		births     []topology.Coordinate
		candidates = make(map[topology.Coordinate]struct{}, len(b.alive)*8)
	)

	for c := range b.alive {
		for _, n := range topology.Neighbors(c, b.dims) {
			if !b.IsAlive(n) {
				candidates[n] = struct{}{}
			}
		}
		if !rules.Survives(b.CountAliveNeighbors(c)) {
			deaths = append(deaths, c)
		}
	}

	for c := range candidates {
		if rules.Born(b.CountAliveNeighbors(c)) {
			births = append(births, c)
		}
	}

	for _, c := range deaths {
		delete(b.alive, c)
	}
	for _, c := range births {
		b.alive[c] = struct{}{}
	}
}

// Render draws the board, one line per row and two characters per cell
func (b *Board) Render() string {
	var sb strings.Builder
	sb.Grow(b.dims.Height * (b.dims.Width*len(gridPosBlock) + 1))
	for y := range b.dims.Height {
		for x := range b.dims.Width {
			if b.IsAlive(topology.Coordinate{X: x, Y: y}) {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements fmt.Stringer
func (b *Board) String() string {
	return b.Render()
}

// Fingerprint returns an MD5 hash of the board size and its living cells
func (b *Board) Fingerprint() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d|", b.dims.Width, b.dims.Height)
	for _, c := range b.Cells() {
		fmt.Fprintf(h, "%d,%d;", c.X, c.Y)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
