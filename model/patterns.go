package model

import (
	"github.com/pkg/errors"
)

var (
	// ErrRaggedPattern is returned when pattern rows differ in length
	ErrRaggedPattern = errors.New("pattern rows differ in length")
	// ErrUnknownGlyph is returned by ParsePattern for characters that are neither alive nor dead
	ErrUnknownGlyph = errors.New("unknown pattern glyph")
)

// Glider returns a glider heading down and to the right
func Glider() [][]uint8 {
	return [][]uint8{
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}
}

// Blinker returns a horizontal blinker oscillator
func Blinker() [][]uint8 {
	return [][]uint8{
		{1, 1, 1},
	}
}

// Block returns the 2x2 still life
func Block() [][]uint8 {
	return [][]uint8{
		{1, 1},
		{1, 1},
	}
}

/*
ParsePattern converts text rows into a pattern accepted by Load.

Alive cells are written as '1', '#', 'O' or '*'; dead cells as '0', '.' or ' '.
*/
func ParsePattern(rows ...string) ([][]uint8, error) {
	pattern := make([][]uint8, 0, len(rows))
	for y, row := range rows {
		cells := make([]uint8, 0, len(row))
		for x, r := range []rune(row) {
			switch r {
			case '1', '#', 'O', '*':
				cells = append(cells, 1)
			case '0', '.', ' ':
				cells = append(cells, 0)
			default:
				return nil, errors.Wrapf(ErrUnknownGlyph, "[ParsePattern] %q at row %d column %d", r, y, x)
			}
		}
		pattern = append(pattern, cells)
	}
	return pattern, nil
}

// Place stamps pattern onto the board with its top-left corner at (startX, startY), wrapping at the edges
func (b *Board) Place(pattern [][]uint8, startX, startY int) {
	for y, row := range pattern {
		for x, cell := range row {
			b.Set(startX+x, startY+y, cell != 0)
		}
	}
}

// AddInterestingPatterns places gliders and blinkers sized to fit the board
func (b *Board) AddInterestingPatterns() {
	w, h := b.dims.Width, b.dims.Height
	if w < 10 || h < 10 {
		return
	}

	b.Place(Glider(), 5, 5)
	if w >= 20 && h >= 15 {
		b.Place(Glider(), w-8, 5)
	}

	b.Place(Blinker(), w/4, h/4)
	if w >= 30 {
		b.Place(Blinker(), 3*w/4, 3*h/4)
	}
}
