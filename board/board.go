package board

import (
	"errors"
	"fmt"
	"sort"
)

const (
	DefaultRows  = 8
	DefaultFiles = 8
)

var (
	ErrConfig      = errors.New("invalid board configuration")
	ErrOutOfBounds = errors.New("location out of bounds")
	ErrEmptySquare = errors.New("no piece at location")
)

// ConfigError reports board dimensions that cannot describe a board.
type ConfigError struct {
	Rows  int
	Files int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid board dimensions %dx%d: rows and files must be positive", e.Rows, e.Files)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// Board is an immutable snapshot of occupancy. Place, Remove and Relocate
// return new values and never write to the receiver's map, so a Board may be
// shared by any number of readers.
type Board struct {
	rows      int
	files     int
	occupants map[Location]Piece
}

func New(rows, files int) (Board, error) {
	if rows <= 0 || files <= 0 {
		return Board{}, &ConfigError{Rows: rows, Files: files}
	}
	return Board{
		rows:      rows,
		files:     files,
		occupants: make(map[Location]Piece),
	}, nil
}

// Standard returns an empty 8x8 board.
func Standard() Board {
	b, _ := New(DefaultRows, DefaultFiles)
	return b
}

func (b Board) Rows() int  { return b.rows }
func (b Board) Files() int { return b.files }
func (b Board) Len() int   { return len(b.occupants) }

func (b Board) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < b.rows && loc.File >= 0 && loc.File < b.files
}

// OccupantAt never fails; off-board squares are simply empty.
func (b Board) OccupantAt(loc Location) (Piece, bool) {
	p, ok := b.occupants[loc]
	return p, ok
}

func (b Board) Place(p Piece) (Board, error) {
	if !b.InBounds(p.Location) {
		return b, fmt.Errorf("place %s: %w", p, ErrOutOfBounds)
	}
	nb := b.clone(1)
	nb.occupants[p.Location] = p
	return nb, nil
}

// PlaceAll places pieces in order; a later piece replaces an earlier one on
// the same square.
func (b Board) PlaceAll(pieces ...Piece) (Board, error) {
	nb := b.clone(len(pieces))
	for _, p := range pieces {
		if !nb.InBounds(p.Location) {
			return b, fmt.Errorf("place %s: %w", p, ErrOutOfBounds)
		}
		nb.occupants[p.Location] = p
	}
	return nb, nil
}

func (b Board) Remove(loc Location) Board {
	if _, ok := b.occupants[loc]; !ok {
		return b
	}
	nb := b.clone(0)
	delete(nb.occupants, loc)
	return nb
}

// Relocate moves the piece at from to to, replacing whatever stood there.
func (b Board) Relocate(from, to Location) (Board, error) {
	p, ok := b.occupants[from]
	if !ok {
		return b, fmt.Errorf("relocate %s: %w", from, ErrEmptySquare)
	}
	if !b.InBounds(to) {
		return b, fmt.Errorf("relocate %s to %s: %w", from, to, ErrOutOfBounds)
	}
	nb := b.clone(0)
	delete(nb.occupants, from)
	nb.occupants[to] = p.At(to)
	return nb, nil
}

// Pieces lists the occupants in row-major order.
func (b Board) Pieces() []Piece {
	pieces := make([]Piece, 0, len(b.occupants))
	for _, p := range b.occupants {
		pieces = append(pieces, p)
	}
	sort.Slice(pieces, func(i, j int) bool {
		return pieces[i].Location.less(pieces[j].Location)
	})
	return pieces
}

func (b Board) clone(extra int) Board {
	nb := Board{
		rows:      b.rows,
		files:     b.files,
		occupants: make(map[Location]Piece, len(b.occupants)+extra),
	}
	for loc, p := range b.occupants {
		nb.occupants[loc] = p
	}
	return nb
}

func (b Board) isEnemyPiece(loc Location, c Color) bool {
	p, ok := b.occupants[loc]
	return ok && p.Color != c
}

func (b Board) isEmpty(loc Location) bool {
	_, ok := b.occupants[loc]
	return !ok
}
