package analyze

import (
	"fmt"

	"chessmoves/setup"
)

// JobsFromBook builds one job per position of the book.
func JobsFromBook(book *setup.Book) ([]Job, error) {
	jobs := make([]Job, 0, book.Len())
	for _, pos := range book.Positions {
		b, err := pos.Board()
		if err != nil {
			return nil, err
		}
		pieces, err := pos.Targets(b)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, Job{Name: pos.Name, Board: b, Pieces: pieces})
	}
	return jobs, nil
}

// Record stores results on the positions they were computed for.
func Record(book *setup.Book, results []Result) error {
	for _, r := range results {
		pos, ok := book.Get(r.Job)
		if !ok {
			return fmt.Errorf("position '%s' not in book", r.Job)
		}
		pos.SetResult(r.Piece, r.Moves)
	}
	return nil
}
