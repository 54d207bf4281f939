package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"chessmoves/board"
)

type SVGOptions struct {
	SquareSize int
	Light      string
	Dark       string
	Highlight  string
	Capture    string
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		SquareSize: 48,
		Light:      "#f0d9b5",
		Dark:       "#b58863",
		Highlight:  "#2e8b57",
		Capture:    "#c0392b",
	}
}

var glyphs = map[board.Kind][2]string{
	board.King:   {"♔", "♚"},
	board.Queen:  {"♕", "♛"},
	board.Rook:   {"♖", "♜"},
	board.Bishop: {"♗", "♝"},
	board.Knight: {"♘", "♞"},
	board.Pawn:   {"♙", "♟"},
}

// SVG writes b as an SVG document. Row 0 is drawn at the bottom, a margin
// on the left and bottom carries rank numbers and file letters.
func SVG(w io.Writer, b board.Board, highlight board.LocationSet, opts SVGOptions) error {
	if opts.SquareSize <= 0 {
		opts.SquareSize = DefaultSVGOptions().SquareSize
	}
	size := opts.SquareSize
	margin := size / 2

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(margin+b.Files()*size, b.Rows()*size+margin)

	for row := 0; row < b.Rows(); row++ {
		y := (b.Rows() - 1 - row) * size
		for file := 0; file < b.Files(); file++ {
			x := margin + file*size
			loc := board.Loc(row, file)

			fill := opts.Dark
			if (row+file)%2 == 1 {
				fill = opts.Light
			}
			canvas.Rect(x, y, size, size, "fill:"+fill)

			p, occupied := b.OccupantAt(loc)
			if highlight.Contains(loc) {
				if occupied {
					canvas.Rect(x+2, y+2, size-4, size-4, fmt.Sprintf("fill:none;stroke:%s;stroke-width:4", opts.Capture))
				} else {
					canvas.Circle(x+size/2, y+size/2, size/6, "fill:"+opts.Highlight)
				}
			}
			if occupied {
				canvas.Text(x+size/2, y+size*3/4, glyph(p), fmt.Sprintf("text-anchor:middle;font-size:%dpx", size*3/4))
			}
		}

		canvas.Text(margin/2, y+size/2+margin/4, fmt.Sprintf("%d", row+1), fmt.Sprintf("text-anchor:middle;font-size:%dpx", margin/2))
	}

	for file := 0; file < b.Files(); file++ {
		x := margin + file*size + size/2
		canvas.Text(x, b.Rows()*size+margin*3/4, string(fileLetter(file)), fmt.Sprintf("text-anchor:middle;font-size:%dpx", margin/2))
	}

	canvas.End()
	return ew.err
}

func glyph(p board.Piece) string {
	g, ok := glyphs[p.Kind]
	if !ok {
		return string(p.Letter())
	}
	if p.Color == board.Black {
		return g[1]
	}
	return g[0]
}

// errWriter keeps the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
