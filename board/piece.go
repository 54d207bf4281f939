package board

import "fmt"

type Color int

const (
	White Color = 1
	Black Color = -1
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Opponent returns the other side. Unknown colors are returned unchanged.
func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return c
}

func ParseColor(s string) (Color, bool) {
	switch s {
	case "white", "White", "w":
		return White, true
	case "black", "Black", "b":
		return Black, true
	}
	return 0, false
}

type Kind int

const (
	Pawn Kind = iota + 1
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = map[Kind]string{
	Pawn:   "pawn",
	Knight: "knight",
	Bishop: "bishop",
	Rook:   "rook",
	Queen:  "queen",
	King:   "king",
}

var kindLetters = map[Kind]byte{
	Pawn:   'P',
	Knight: 'N',
	Bishop: 'B',
	Rook:   'R',
	Queen:  'Q',
	King:   'K',
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	if len(s) == 1 {
		return KindFromLetter(s[0])
	}
	return 0, false
}

// KindFromLetter accepts either case of the FEN letter.
func KindFromLetter(c byte) (Kind, bool) {
	c = upper(c)
	for k, letter := range kindLetters {
		if letter == c {
			return k, true
		}
	}
	return 0, false
}

type Piece struct {
	Kind     Kind
	Color    Color
	Location Location
}

func NewPiece(kind Kind, color Color, loc Location) Piece {
	return Piece{Kind: kind, Color: color, Location: loc}
}

// Letter is the FEN letter: upper case for White, lower case for Black.
func (p Piece) Letter() byte {
	c, ok := kindLetters[p.Kind]
	if !ok {
		return '?'
	}
	if p.Color == Black {
		return lower(c)
	}
	return c
}

// At returns a copy of the piece standing on loc.
func (p Piece) At(loc Location) Piece {
	p.Location = loc
	return p
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.Color, p.Kind, p.Location)
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 32
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}
