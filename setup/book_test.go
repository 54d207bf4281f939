package setup

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"chessmoves/board"
)

const testBook = `
- name: rook blocked
  placement: 8/8/8/8/3R2p1/8/8/8
  squares: [d4]
- name: wide board
  rows: 10
  files: 10
  pieces:
    - {kind: queen, color: white, square: a1}
    - {kind: pawn, color: black, square: c3}
- name: start
  placement: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR
`

func TestParse(t *testing.T) {
	// act
	book, err := Parse([]byte(testBook))

	// assert
	if err != nil {
		t.Fatal(err)
	}
	if book.Len() != 3 {
		t.Fatalf("want 3 positions, got %d", book.Len())
	}

	pos, ok := book.Get("wide board")
	if !ok {
		t.Fatal("position 'wide board' not found")
	}
	b, err := pos.Board()
	if err != nil {
		t.Fatal(err)
	}
	if b.Rows() != 10 || b.Files() != 10 || b.Len() != 2 {
		t.Errorf("want 10x10 with 2 pieces, got %dx%d with %d", b.Rows(), b.Files(), b.Len())
	}
	if p, ok := b.OccupantAt(board.Loc(2, 2)); !ok || p.Kind != board.Pawn || p.Color != board.Black {
		t.Errorf("want black pawn on c3, got %v", p)
	}
}

func TestParseRejectsDuplicates(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{name: "duplicate", yaml: "- name: a\n- name: a\n", want: "duplicated"},
		{name: "unnamed", yaml: "- placement: 8/8/8/8/8/8/8/8\n", want: "no name"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Errorf("want error containing '%s', got %v", c.want, err)
			}
		})
	}
}

func TestPosition_Board(t *testing.T) {
	cases := []struct {
		name    string
		pos     Position
		wantErr bool
		wantIs  error
	}{
		{name: "default size", pos: Position{Name: "x", Pieces: []PieceSpec{{Kind: "king", Color: "white", Square: "e1"}}}},
		{name: "bad size", pos: Position{Name: "x", Rows: -1, Files: 8}, wantErr: true, wantIs: board.ErrConfig},
		{name: "off board", pos: Position{Name: "x", Pieces: []PieceSpec{{Kind: "king", Color: "white", Square: "i1"}}}, wantErr: true, wantIs: board.ErrOutOfBounds},
		{name: "size disagrees", pos: Position{Name: "x", Placement: "8/8/8/8/8/8/8/8", Rows: 10, Files: 10}, wantErr: true},
		{name: "unknown kind", pos: Position{Name: "x", Pieces: []PieceSpec{{Kind: "dragon", Color: "white", Square: "a1"}}}, wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.pos.Board()

			if !c.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("want error")
			}
			if c.wantIs != nil && !errors.Is(err, c.wantIs) {
				t.Errorf("want %v, got %v", c.wantIs, err)
			}
		})
	}
}

func TestPosition_Targets(t *testing.T) {
	// arrange
	book, err := Parse([]byte(testBook))
	if err != nil {
		t.Fatal(err)
	}
	pos, _ := book.Get("rook blocked")
	b, err := pos.Board()
	if err != nil {
		t.Fatal(err)
	}

	// act
	targets, err := pos.Targets(b)

	// assert
	if err != nil {
		t.Fatal(err)
	}
	if len(targets) != 1 || targets[0].Kind != board.Rook {
		t.Errorf("want the d4 rook, got %v", targets)
	}

	pos.Squares = []string{"a1"}
	if _, err := pos.Targets(b); !errors.Is(err, board.ErrEmptySquare) {
		t.Errorf("want ErrEmptySquare, got %v", err)
	}

	pos.Squares = nil
	all, err := pos.Targets(b)
	if err != nil || len(all) != 2 {
		t.Errorf("want both pieces, got %v %v", all, err)
	}
}

func TestBook_SaveAndLoad(t *testing.T) {
	// arrange
	filename := filepath.Join(t.TempDir(), "book.yaml")
	book := New(filename)
	pos := &Position{Name: "single knight", Pieces: []PieceSpec{{Kind: "knight", Color: "black", Square: "a8"}}}
	book.Add(pos)

	b, err := pos.Board()
	if err != nil {
		t.Fatal(err)
	}
	knight, _ := b.OccupantAt(board.Loc(7, 0))
	pos.SetResult(knight, knight.PossibleMoves(b))
	pos.SetResult(knight, knight.PossibleMoves(b))

	// act
	if err := book.Save(); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(filename)

	// assert
	if err != nil {
		t.Fatal(err)
	}
	got, ok := loaded.Get("single knight")
	if !ok {
		t.Fatal("position lost on save")
	}
	if len(got.Results) != 1 {
		t.Fatalf("want 1 result, got %d", len(got.Results))
	}
	r, ok := got.Result("a8")
	if !ok {
		t.Fatal("no result for a8")
	}
	want := &Result{Square: "a8", Piece: "black knight", Moves: []string{"b6", "c7"}}
	if !reflect.DeepEqual(want, r) {
		t.Errorf("want: %+v got: %+v", want, r)
	}
}

func TestBook_AddReplaces(t *testing.T) {
	book := New("")
	book.Add(&Position{Name: "a", Placement: "8/8/8/8/8/8/8/8"})
	book.Add(&Position{Name: "b"})
	book.Add(&Position{Name: "a", Placement: "k7/8/8/8/8/8/8/7K"})

	if book.Len() != 2 {
		t.Fatalf("want 2 positions, got %d", book.Len())
	}
	if book.Positions[0].Placement != "k7/8/8/8/8/8/8/7K" {
		t.Errorf("replacement did not keep order: %+v", book.Positions[0])
	}
	if err := book.Save(); err == nil {
		t.Errorf("want error saving a book without a filename")
	}
}
