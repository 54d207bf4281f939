package analyze

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"chessmoves/board"
	"chessmoves/fen"
	"chessmoves/setup"
)

const testBook = `
- name: rook blocked
  placement: 8/8/8/8/3R2p1/8/8/8
  squares: [d4]
- name: start
  placement: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR
- name: ten
  rows: 10
  files: 10
  pieces:
    - {kind: pawn, color: black, square: d9}
`

func TestAnalyzer_RunBook(t *testing.T) {
	// arrange
	book, err := setup.Parse([]byte(testBook))
	if err != nil {
		t.Fatal(err)
	}
	jobs, err := JobsFromBook(book)
	if err != nil {
		t.Fatal(err)
	}

	// act
	results, err := New(Options{Workers: 4, Verify: true}).Run(context.Background(), jobs)

	// assert
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1+32+1 {
		t.Fatalf("want 34 results, got %d", len(results))
	}
	if results[0].Job != "rook blocked" || results[len(results)-1].Job != "ten" {
		t.Errorf("results out of order: first %s last %s", results[0].Job, results[len(results)-1].Job)
	}

	if err := Record(book, results); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		position string
		square   string
		want     []string
	}{
		{position: "rook blocked", square: "d4", want: []string{"d1", "d2", "d3", "a4", "b4", "c4", "e4", "f4", "g4", "d5", "d6", "d7", "d8"}},
		{position: "start", square: "b1", want: []string{"a3", "c3"}},
		{position: "start", square: "e2", want: []string{"e3", "e4"}},
		{position: "start", square: "d8", want: nil},
		{position: "ten", square: "d9", want: []string{"d7", "d8"}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s %s", c.position, c.square), func(t *testing.T) {
			pos, _ := book.Get(c.position)
			r, ok := pos.Result(c.square)
			if !ok {
				t.Fatalf("no result for %s", c.square)
			}
			got := r.Moves
			if len(got) == 0 {
				got = nil
			}
			if !reflect.DeepEqual(c.want, got) {
				t.Errorf("want: %v got: %v", c.want, got)
			}
		})
	}
}

func TestAnalyzer_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b, _ := fen.Parse("")
	_, err := New(Options{Workers: 1}).Run(ctx, []Job{{Name: "start", Board: b, Pieces: b.Pieces()}})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

func TestCrossCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	kinds := []board.Kind{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen, board.King}

	for i := 0; i < 500; i++ {
		var pieces []board.Piece
		for j := rng.Intn(40); j > 0; j-- {
			color := board.White
			if rng.Intn(2) == 0 {
				color = board.Black
			}
			pieces = append(pieces, board.NewPiece(kinds[rng.Intn(len(kinds))], color, board.Loc(rng.Intn(8), rng.Intn(8))))
		}
		b, err := board.Standard().PlaceAll(pieces...)
		if err != nil {
			t.Fatal(err)
		}

		for _, p := range b.Pieces() {
			if err := CrossCheck(b, p, p.PossibleMoves(b)); err != nil {
				t.Fatalf("%s\n%v", fen.Placement(b), err)
			}
		}
	}
}

func TestCrossCheckDetectsMismatch(t *testing.T) {
	// arrange
	b, err := fen.Parse("8/8/8/8/3Q4/8/8/8")
	if err != nil {
		t.Fatal(err)
	}
	queen, _ := b.OccupantAt(board.Loc(3, 3))
	moves := queen.PossibleMoves(b)
	delete(moves, board.Loc(7, 7))
	moves.Add(board.Loc(5, 4))

	// act
	err = CrossCheck(b, queen, moves)

	// assert
	if !errors.Is(err, ErrMismatch) {
		t.Errorf("want ErrMismatch, got %v", err)
	}
}
