package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"chessmoves/analyze"
	"chessmoves/board"
	"chessmoves/fen"
	"chessmoves/render"
	"chessmoves/setup"
)

func main() {
	bookFile := flag.String("book", "", "YAML book of positions to analyze")
	configFile := flag.String("config", getenv("CHESSMOVES_CONFIG", defaultConfigFile), "YAML config file")
	placement := flag.String("placement", "", "piece placement to analyze when no -book is given (default: start position)")
	square := flag.String("square", "", "only report the piece on this square, e.g. d4")
	svgDir := flag.String("svg", "", "write one SVG diagram per piece into this directory")
	workers := flag.Int("workers", 0, "pieces evaluated concurrently (default: GOMAXPROCS)")
	verify := flag.Bool("verify", getenb("CHESSMOVES_VERIFY", false), "cross-check sliding pieces against dragontoothmg")
	save := flag.Bool("save", false, "write results back into the book")
	coverage := flag.String("coverage", "", "also print every square reachable by this color (white or black)")
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := loadConfig(*configFile, set["config"] || os.Getenv("CHESSMOVES_CONFIG") != "")
	fatalIf(err, "config")

	if set["svg"] {
		cfg.SVGDir = *svgDir
	}
	if set["workers"] {
		cfg.Workers = *workers
	}
	if set["verify"] || os.Getenv("CHESSMOVES_VERIFY") != "" {
		cfg.Verify = *verify
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		book *setup.Book
		jobs []analyze.Job
	)

	if *bookFile != "" {
		book, err = setup.Load(*bookFile)
		fatalIf(err, "book")

		for _, pos := range book.Positions {
			if pos.Placement == "" && pos.Rows == 0 && pos.Files == 0 {
				pos.Rows, pos.Files = cfg.Rows, cfg.Files
			}
		}

		jobs, err = analyze.JobsFromBook(book)
		fatalIf(err, "book")
	} else {
		job, err := placementJob(*placement)
		fatalIf(err, "placement")
		jobs = []analyze.Job{job}
	}

	if *square != "" {
		jobs, err = onlySquare(jobs, *square)
		fatalIf(err, "square")
	}

	a := analyze.New(analyze.Options{
		Workers: cfg.Workers,
		Verify:  cfg.Verify,
		Logger:  log.Default(),
	})

	results, err := a.Run(ctx, jobs)
	fatalIf(err, "analyze")

	boards := make(map[string]board.Board, len(jobs))
	for _, job := range jobs {
		boards[job.Name] = job.Board
	}

	for _, r := range results {
		report(boards[r.Job], r)
	}

	if *coverage != "" {
		c, ok := board.ParseColor(*coverage)
		if !ok {
			log.Fatalf("coverage: unknown color '%s'", *coverage)
		}
		for _, job := range jobs {
			reportCoverage(job, c)
		}
	}

	if cfg.SVGDir != "" {
		fatalIf(writeSVGs(cfg, boards, results), "svg")
	}

	if *save {
		if book == nil {
			log.Fatal("-save needs -book")
		}
		fatalIf(analyze.Record(book, results), "save")
		fatalIf(book.Save(), "save")
		log.Printf("saved %d results to '%s'", len(results), book.Filename())
	}
}

func placementJob(placement string) (analyze.Job, error) {
	b, err := fen.Parse(placement)
	if err != nil {
		return analyze.Job{}, err
	}
	name := placement
	if name == "" {
		name = fen.StartPos
	}
	return analyze.Job{Name: name, Board: b, Pieces: b.Pieces()}, nil
}

// onlySquare narrows every job to the piece standing on square. Jobs with an
// empty square are dropped; it is an error if no job has a piece there.
func onlySquare(jobs []analyze.Job, square string) ([]analyze.Job, error) {
	loc, err := fen.ParseSquare(square)
	if err != nil {
		return nil, err
	}

	var out []analyze.Job
	for _, job := range jobs {
		p, ok := job.Board.OccupantAt(loc)
		if !ok {
			continue
		}
		job.Pieces = []board.Piece{p}
		out = append(out, job)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", square, board.ErrEmptySquare)
	}
	return out, nil
}

func report(b board.Board, r analyze.Result) {
	squares := fen.SquareNames(r.Moves.Sorted())
	fmt.Printf("%s: %s %s on %s\n", r.Job, r.Piece.Color, r.Piece.Kind, fen.SquareName(r.Piece.Location))
	fmt.Print(render.Text(b, r.Moves))
	if len(squares) == 0 {
		fmt.Printf("no moves\n\n")
		return
	}
	fmt.Printf("%d moves: %s\n\n", len(squares), strings.Join(squares, " "))
}

func reportCoverage(job analyze.Job, c board.Color) {
	squares := job.Board.Coverage(c)
	fmt.Printf("%s: %s covers %d squares\n", job.Name, c, squares.Len())
	fmt.Print(render.Text(job.Board, squares))
	fmt.Println()
}

func writeSVGs(cfg config, boards map[string]board.Board, results []analyze.Result) error {
	if err := os.MkdirAll(cfg.SVGDir, 0755); err != nil {
		return err
	}

	opts := render.DefaultSVGOptions()
	opts.SquareSize = cfg.SquareSize

	for _, r := range results {
		filename := filepath.Join(cfg.SVGDir, fmt.Sprintf("%s-%s.svg", fileSlug(r.Job), fen.SquareName(r.Piece.Location)))

		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		if err := render.SVG(f, boards[r.Job], r.Moves, opts); err != nil {
			f.Close()
			return fmt.Errorf("'%s': %v", filename, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	log.Printf("wrote %d diagrams to '%s'", len(results), cfg.SVGDir)
	return nil
}

func fileSlug(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		default:
			return '-'
		}
	}, name)
}

func fatalIf(err error, label string) {
	if err != nil {
		log.Fatalf("%s: %v", label, err)
	}
}
