package setup

import (
	"fmt"

	"chessmoves/board"
	"chessmoves/fen"
)

type Position struct {
	Name      string      `yaml:"name"`
	Placement string      `yaml:"placement,omitempty"`
	Rows      int         `yaml:"rows,omitempty"`
	Files     int         `yaml:"files,omitempty"`
	Pieces    []PieceSpec `yaml:"pieces,omitempty"`
	Squares   []string    `yaml:"squares,omitempty,flow"`
	Results   []*Result   `yaml:"results,omitempty"`
}

type PieceSpec struct {
	Kind   string `yaml:"kind"`
	Color  string `yaml:"color"`
	Square string `yaml:"square"`
}

type Result struct {
	Square string   `yaml:"square"`
	Piece  string   `yaml:"piece"`
	Moves  []string `yaml:"moves,flow"`
}

// Board builds the snapshot the position describes. A placement string sets
// the size unless rows and files are given, in which case they must agree.
// Explicit pieces are placed on top of the placement.
func (p *Position) Board() (board.Board, error) {
	var (
		b   board.Board
		err error
	)

	if p.Placement != "" {
		b, err = fen.Parse(p.Placement)
		if err != nil {
			return board.Board{}, fmt.Errorf("position '%s': %w", p.Name, err)
		}
		if (p.Rows != 0 && p.Rows != b.Rows()) || (p.Files != 0 && p.Files != b.Files()) {
			return board.Board{}, fmt.Errorf("position '%s': placement is %dx%d but rows/files say %dx%d",
				p.Name, b.Rows(), b.Files(), p.Rows, p.Files)
		}
	} else {
		rows, files := p.Rows, p.Files
		if rows == 0 && files == 0 {
			rows, files = board.DefaultRows, board.DefaultFiles
		}
		b, err = board.New(rows, files)
		if err != nil {
			return board.Board{}, fmt.Errorf("position '%s': %w", p.Name, err)
		}
	}

	pieces := make([]board.Piece, 0, len(p.Pieces))
	for i, spec := range p.Pieces {
		piece, err := spec.Piece()
		if err != nil {
			return board.Board{}, fmt.Errorf("position '%s' piece %d: %w", p.Name, i+1, err)
		}
		pieces = append(pieces, piece)
	}

	b, err = b.PlaceAll(pieces...)
	if err != nil {
		return board.Board{}, fmt.Errorf("position '%s': %w", p.Name, err)
	}

	return b, nil
}

// Targets returns the pieces whose moves were asked for, every piece on the
// board when Squares is empty.
func (p *Position) Targets(b board.Board) ([]board.Piece, error) {
	if len(p.Squares) == 0 {
		return b.Pieces(), nil
	}

	pieces := make([]board.Piece, 0, len(p.Squares))
	for _, sq := range p.Squares {
		loc, err := fen.ParseSquare(sq)
		if err != nil {
			return nil, fmt.Errorf("position '%s': %w", p.Name, err)
		}
		piece, ok := b.OccupantAt(loc)
		if !ok {
			return nil, fmt.Errorf("position '%s': %s: %w", p.Name, sq, board.ErrEmptySquare)
		}
		pieces = append(pieces, piece)
	}

	return pieces, nil
}

// SetResult records the destinations of piece, replacing an earlier result
// for the same square.
func (p *Position) SetResult(piece board.Piece, moves board.LocationSet) {
	r := &Result{
		Square: fen.SquareName(piece.Location),
		Piece:  fmt.Sprintf("%s %s", piece.Color, piece.Kind),
		Moves:  fen.SquareNames(moves.Sorted()),
	}

	for i := range p.Results {
		if p.Results[i].Square == r.Square {
			p.Results[i] = r
			return
		}
	}
	p.Results = append(p.Results, r)
}

func (p *Position) Result(square string) (*Result, bool) {
	for _, r := range p.Results {
		if r.Square == square {
			return r, true
		}
	}
	return nil, false
}

func (s PieceSpec) Piece() (board.Piece, error) {
	kind, ok := board.ParseKind(s.Kind)
	if !ok {
		return board.Piece{}, fmt.Errorf("unknown kind '%s'", s.Kind)
	}
	color, ok := board.ParseColor(s.Color)
	if !ok {
		return board.Piece{}, fmt.Errorf("unknown color '%s'", s.Color)
	}
	loc, err := fen.ParseSquare(s.Square)
	if err != nil {
		return board.Piece{}, err
	}
	return board.NewPiece(kind, color, loc), nil
}
