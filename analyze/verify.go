package analyze

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/dylhunn/dragontoothmg"

	"chessmoves/board"
	"chessmoves/fen"
)

var ErrMismatch = errors.New("moves differ from reference")

// CrossCheck compares the moves of a sliding piece with the magic-bitboard
// attack sets of dragontoothmg. Only 8x8 boards can be expressed as
// bitboards; other boards and non-sliding pieces are accepted unchecked.
func CrossCheck(b board.Board, p board.Piece, moves board.LocationSet) error {
	if b.Rows() != 8 || b.Files() != 8 || !b.InBounds(p.Location) {
		return nil
	}

	var all, own uint64
	for _, q := range b.Pieces() {
		bit := uint64(1) << squareIndex(q.Location)
		all |= bit
		if q.Color == p.Color {
			own |= bit
		}
	}

	sq := squareIndex(p.Location)
	var want uint64
	switch p.Kind {
	case board.Rook:
		want = dragontoothmg.CalculateRookMoveBitboard(sq, all)
	case board.Bishop:
		want = dragontoothmg.CalculateBishopMoveBitboard(sq, all)
	case board.Queen:
		want = dragontoothmg.CalculateRookMoveBitboard(sq, all) | dragontoothmg.CalculateBishopMoveBitboard(sq, all)
	default:
		return nil
	}
	want &^= own

	var got uint64
	for loc := range moves {
		if !b.InBounds(loc) {
			return fmt.Errorf("%s: off-board destination %s: %w", p, loc, ErrMismatch)
		}
		got |= uint64(1) << squareIndex(loc)
	}

	if got != want {
		return fmt.Errorf("%s: missing %v extra %v: %w", p, bitboardSquares(want&^got), bitboardSquares(got&^want), ErrMismatch)
	}

	return nil
}

// squareIndex uses dragontoothmg's numbering, a1 = 0 through h8 = 63.
func squareIndex(loc board.Location) uint8 {
	return uint8(loc.Row*8 + loc.File)
}

func bitboardSquares(bb uint64) []string {
	var squares []string
	for bb != 0 {
		i := bits.TrailingZeros64(bb)
		squares = append(squares, fen.SquareName(board.Loc(i/8, i%8)))
		bb &= bb - 1
	}
	return squares
}
