package fen

import (
	"fmt"
	"strconv"
	"strings"

	"chessmoves/board"
)

const StartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Parse reads the piece-placement field of a FEN string into a board. The
// board takes its size from the input: one row per '/'-separated rank and as
// many files as each rank describes. Runs of empty squares may use more than
// one digit, so wide boards such as "10/10/..." are accepted. Anything after
// the first space (side to move, castling, clocks) is ignored.
func Parse(placement string) (board.Board, error) {
	if placement == "" {
		placement = StartPos
	}
	if i := strings.IndexByte(placement, ' '); i >= 0 {
		placement = placement[:i]
	}

	ranks := strings.Split(placement, "/")
	rows := len(ranks)

	var (
		pieces []board.Piece
		files  = -1
	)

	for i, rank := range ranks {
		row := rows - 1 - i
		file := 0

		for j := 0; j < len(rank); {
			c := rank[j]
			if isDigit(c) {
				k := j
				for k < len(rank) && isDigit(rank[k]) {
					k++
				}
				n, err := strconv.Atoi(rank[j:k])
				if err != nil || n == 0 {
					return board.Board{}, fmt.Errorf("'%s': bad empty-square count '%s' in rank %d", placement, rank[j:k], i+1)
				}
				file += n
				j = k
				continue
			}

			kind, ok := board.KindFromLetter(c)
			if !ok {
				return board.Board{}, fmt.Errorf("'%s': unknown piece '%c' in rank %d", placement, c, i+1)
			}
			color := board.White
			if c >= 'a' && c <= 'z' {
				color = board.Black
			}
			pieces = append(pieces, board.NewPiece(kind, color, board.Loc(row, file)))
			file++
			j++
		}

		if files == -1 {
			files = file
		} else if file != files {
			return board.Board{}, fmt.Errorf("'%s': rank %d has %d files, want %d", placement, i+1, file, files)
		}
	}

	b, err := board.New(rows, files)
	if err != nil {
		return board.Board{}, fmt.Errorf("'%s': %w", placement, err)
	}

	return b.PlaceAll(pieces...)
}

// Placement writes b in the same format Parse reads.
func Placement(b board.Board) string {
	var sb strings.Builder
	for row := b.Rows() - 1; row >= 0; row-- {
		if sb.Len() != 0 {
			sb.WriteRune('/')
		}

		blanks := 0
		for file := 0; file < b.Files(); file++ {
			p, ok := b.OccupantAt(board.Loc(row, file))
			if !ok {
				blanks++
				continue
			}

			if blanks != 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteByte(p.Letter())
		}

		if blanks != 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
	}

	return sb.String()
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
