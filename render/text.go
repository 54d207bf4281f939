// Package render draws boards with a set of highlighted destination squares,
// as a plain-text diagram or as SVG.
package render

import (
	"fmt"
	"strings"

	"chessmoves/board"
)

const (
	emptySquare     = '.'
	highlightSquare = '*'
	captureSquare   = 'x'
)

// Text returns a diagram with the highest row on top. Highlighted empty
// squares are drawn as '*', highlighted occupied squares as 'x'.
func Text(b board.Board, highlight board.LocationSet) string {
	width := len(fmt.Sprintf("%d", b.Rows()))

	var sb strings.Builder
	for row := b.Rows() - 1; row >= 0; row-- {
		sb.WriteString(fmt.Sprintf("%*d: ", width, row+1))
		for file := 0; file < b.Files(); file++ {
			if file != 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cell(b, highlight, board.Loc(row, file)))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(strings.Repeat(" ", width+2))
	for file := 0; file < b.Files(); file++ {
		if file != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(fileLetter(file))
	}
	sb.WriteByte('\n')

	return sb.String()
}

func cell(b board.Board, highlight board.LocationSet, loc board.Location) byte {
	p, occupied := b.OccupantAt(loc)
	switch {
	case highlight.Contains(loc) && occupied:
		return captureSquare
	case highlight.Contains(loc):
		return highlightSquare
	case occupied:
		return p.Letter()
	}
	return emptySquare
}

func fileLetter(file int) byte {
	if file < 26 {
		return byte('a' + file)
	}
	return '?'
}
