package board

// Mover is anything that can list where it may go on a board.
type Mover interface {
	PossibleMoves(b Board) LocationSet
}

var _ Mover = Piece{}

// Reach is the union of the destinations of movers.
func Reach(b Board, movers ...Mover) LocationSet {
	out := make(LocationSet)
	for _, m := range movers {
		out = out.Union(m.PossibleMoves(b))
	}
	return out
}

// Coverage is every square some piece of color c can move to.
func (b Board) Coverage(c Color) LocationSet {
	var movers []Mover
	for _, p := range b.Pieces() {
		if p.Color == c {
			movers = append(movers, p)
		}
	}
	return Reach(b, movers...)
}

type nav struct {
	file int
	rank int
}

var (
	knightPaths = []nav{
		{file: -1, rank: 2},
		{file: 1, rank: 2},
		{file: -1, rank: -2},
		{file: 1, rank: -2},

		{file: -2, rank: 1},
		{file: 2, rank: 1},
		{file: -2, rank: -1},
		{file: 2, rank: -1},
	}

	bishopPaths = []nav{
		{file: -1, rank: -1},
		{file: 1, rank: -1},
		{file: -1, rank: 1},
		{file: 1, rank: 1},
	}

	rookPaths = []nav{
		{file: -1, rank: 0},
		{file: 1, rank: 0},
		{file: 0, rank: -1},
		{file: 0, rank: 1},
	}

	// queens and kings share the eight unit vectors
	kingPaths = []nav{
		{file: -1, rank: 0},
		{file: -1, rank: -1},
		{file: -1, rank: 1},
		{file: 1, rank: 0},
		{file: 1, rank: -1},
		{file: 1, rank: 1},
		{file: 0, rank: -1},
		{file: 0, rank: 1},
	}
)

// PossibleMoves returns the destination squares of p on b. Squares are
// pseudo-legal: blocking and captures are applied, checks are not.
func (p Piece) PossibleMoves(b Board) LocationSet {
	if !b.InBounds(p.Location) {
		return LocationSet{}
	}

	switch p.Kind {
	case Pawn:
		return b.pawnMoves(p)
	case Knight:
		return b.stepMoves(p, knightPaths)
	case Bishop:
		return b.pathMoves(p, bishopPaths)
	case Rook:
		return b.pathMoves(p, rookPaths)
	case Queen:
		return b.pathMoves(p, kingPaths)
	case King:
		return b.stepMoves(p, kingPaths)
	}

	return LocationSet{}
}

// StartingRank is the row a pawn of color c double-steps from.
func (b Board) StartingRank(c Color) int {
	if c == Black {
		return b.rows - 2
	}
	return 1
}

func (b Board) pathMoves(p Piece, paths []nav) LocationSet {
	moves := make(LocationSet)

	for _, path := range paths {
		loc := p.Location.add(path)
		for b.InBounds(loc) {
			if b.isEnemyPiece(loc, p.Color) {
				moves.Add(loc)
				break
			}

			if !b.isEmpty(loc) {
				break
			}

			moves.Add(loc)
			loc = loc.add(path)
		}
	}

	return moves
}

func (b Board) stepMoves(p Piece, paths []nav) LocationSet {
	moves := make(LocationSet)

	for _, path := range paths {
		loc := p.Location.add(path)
		if !b.InBounds(loc) {
			continue
		}

		if b.isEmpty(loc) || b.isEnemyPiece(loc, p.Color) {
			moves.Add(loc)
		}
	}

	return moves
}

func (b Board) pawnMoves(p Piece) LocationSet {
	moves := make(LocationSet)

	direction := int(p.Color)
	if direction != 1 && direction != -1 {
		return moves
	}

	// one or two squares
	one := p.Location.add(nav{rank: direction})
	if b.InBounds(one) && b.isEmpty(one) {
		moves.Add(one)

		if p.Location.Row == b.StartingRank(p.Color) {
			two := one.add(nav{rank: direction})
			if b.InBounds(two) && b.isEmpty(two) {
				moves.Add(two)
			}
		}
	}

	// captures
	for _, fileChange := range []int{-1, 1} {
		loc := p.Location.add(nav{file: fileChange, rank: direction})
		if b.InBounds(loc) && b.isEnemyPiece(loc, p.Color) {
			moves.Add(loc)
		}
	}

	return moves
}
