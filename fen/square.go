package fen

import (
	"fmt"
	"strconv"

	"chessmoves/board"
)

// SquareName formats loc as an algebraic square, e.g. (3,4) is "e4".
// Files beyond 'z' have no letter and fall back to the coordinate form.
func SquareName(loc board.Location) string {
	if loc.File < 0 || loc.File >= 26 || loc.Row < 0 {
		return loc.String()
	}
	return fmt.Sprintf("%c%d", 'a'+loc.File, loc.Row+1)
}

func ParseSquare(name string) (board.Location, error) {
	if len(name) < 2 {
		return board.Location{}, fmt.Errorf("square '%s' is invalid", name)
	}

	c := name[0]
	if c < 'a' || c > 'z' {
		return board.Location{}, fmt.Errorf("square '%s' has invalid file '%c'", name, c)
	}

	rank, err := strconv.Atoi(name[1:])
	if err != nil || rank < 1 {
		return board.Location{}, fmt.Errorf("square '%s' has invalid rank '%s'", name, name[1:])
	}

	return board.Loc(rank-1, int(c-'a')), nil
}

// SquareNames formats locs in order.
func SquareNames(locs []board.Location) []string {
	names := make([]string, 0, len(locs))
	for _, loc := range locs {
		names = append(names, SquareName(loc))
	}
	return names
}
