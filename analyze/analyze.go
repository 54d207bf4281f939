package analyze

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"chessmoves/board"
	"chessmoves/commas"
)

type Options struct {
	// Workers bounds the number of pieces evaluated at once; 0 means GOMAXPROCS.
	Workers int
	// Verify cross-checks sliding pieces on 8x8 boards against dragontoothmg.
	Verify bool
	Logger *log.Logger
}

// Job is one board snapshot and the pieces to evaluate on it.
type Job struct {
	Name   string
	Board  board.Board
	Pieces []board.Piece
}

type Result struct {
	Job   string
	Piece board.Piece
	Moves board.LocationSet
}

type Analyzer struct {
	opts Options
}

func New(opts Options) *Analyzer {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	return &Analyzer{opts: opts}
}

// Run evaluates every piece of every job. Results are returned in job order,
// then piece order, regardless of which worker finished first. Boards are
// only read, so all workers share the job snapshots.
func (a *Analyzer) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	type task struct {
		job   int
		piece board.Piece
	}

	var tasks []task
	for i, job := range jobs {
		for _, p := range job.Pieces {
			tasks = append(tasks, task{job: i, piece: p})
		}
	}

	start := time.Now()
	a.logInfo(fmt.Sprintf("analyzing %s pieces in %s positions, workers: %d", commas.Int(len(tasks)), commas.Int(len(jobs)), a.opts.Workers))

	results := make([]Result, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Workers)

	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			job := jobs[t.job]
			moves := t.piece.PossibleMoves(job.Board)

			if a.opts.Verify {
				if err := CrossCheck(job.Board, t.piece, moves); err != nil {
					return fmt.Errorf("position '%s': %w", job.Name, err)
				}
			}

			results[i] = Result{Job: job.Name, Piece: t.piece, Moves: moves}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.logInfo(fmt.Sprintf("analyzed %s pieces in %v", commas.Int(len(tasks)), time.Since(start).Round(time.Microsecond)))

	return results, nil
}

func (a *Analyzer) logInfo(msg string) {
	if a.opts.Logger == nil {
		return
	}
	a.opts.Logger.Print(msg)
}
