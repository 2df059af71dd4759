package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/BarnabasNovak1/crosswordpuzzle/config"
	"github.com/BarnabasNovak1/crosswordpuzzle/grid"
	"github.com/BarnabasNovak1/crosswordpuzzle/lexicon"
	"github.com/BarnabasNovak1/crosswordpuzzle/render"
	"github.com/BarnabasNovak1/crosswordpuzzle/solvelog"
	"github.com/BarnabasNovak1/crosswordpuzzle/solver"
)

const usage = "usage: xwfill [flags] structure words [output.png]"

// A job is one puzzle in a batch manifest.
type job struct {
	Structure string `yaml:"structure"`
	Words     string `yaml:"words"`
	Output    string `yaml:"output,omitempty"`
}

type manifest struct {
	Puzzles []job `yaml:"puzzles"`
}

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	if cfg.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	var slog *solvelog.Logger
	if path := cfg.GetString("solve-log"); path != "" {
		var err error
		slog, err = solvelog.Open(path)
		if err != nil {
			log.Fatal().Err(err).Msg("opening solve log")
		}
		defer slog.Close()
	}

	if path := cfg.GetString("manifest"); path != "" {
		if err := runManifest(path, cfg.GetInt("workers"), slog); err != nil {
			log.Fatal().Err(err).Msg("batch failed")
		}
		return
	}

	args := cfg.Args()
	if len(args) != 2 && len(args) != 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	j := job{Structure: args[0], Words: args[1]}
	if len(args) == 3 {
		j.Output = args[2]
	}
	text, err := solveOne(j, slog)
	if errors.Is(err, solver.ErrNoSolution) {
		fmt.Println("No solution found.")
		return
	} else if err != nil {
		log.Fatal().Err(err).Msg("solve failed")
	}
	fmt.Print(text)
}

// solveOne fills one puzzle, optionally exporting it as a PNG and
// recording the run. It returns the terminal rendering of the fill.
func solveOne(j job, slog *solvelog.Logger) (string, error) {
	g, err := grid.LoadStructure(j.Structure)
	if err != nil {
		return "", err
	}
	lex, err := lexicon.LoadFile(j.Words)
	if err != nil {
		return "", err
	}

	filler := solver.NewFiller(g, lex)
	solution, solveErr := filler.Solve()

	if slog != nil {
		stats := filler.Stats()
		if err := slog.Record(solvelog.Entry{
			Structure:  j.Structure,
			Words:      j.Words,
			Solved:     solveErr == nil,
			Nodes:      stats.Nodes,
			Backtracks: stats.Backtracks,
			Revisions:  stats.Revisions,
			Duration:   stats.Elapsed,
		}); err != nil {
			log.Warn().Err(err).Msg("recording solve")
		}
	}
	if solveErr != nil {
		return "", solveErr
	}

	if j.Output != "" {
		f, err := os.Create(j.Output)
		if err != nil {
			return "", err
		}
		defer f.Close()
		if err := render.PNG(g, solution, f); err != nil {
			return "", err
		}
	}
	return render.Text(g, solution), nil
}

// runManifest solves every puzzle in a YAML manifest, fanning jobs out
// across workers. Each job builds its own filler, so only the solve log
// is shared.
func runManifest(path string, workers int, slog *solvelog.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("parsing manifest: %w", err)
	}
	if len(m.Puzzles) == 0 {
		return errors.New("manifest lists no puzzles")
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g := errgroup.Group{}
	g.SetLimit(workers)
	for _, j := range m.Puzzles {
		j := j
		g.Go(func() error {
			_, err := solveOne(j, slog)
			if errors.Is(err, solver.ErrNoSolution) {
				log.Info().Str("structure", j.Structure).Msg("no solution")
				return nil
			} else if err != nil {
				return fmt.Errorf("%s: %w", j.Structure, err)
			}
			log.Info().Str("structure", j.Structure).Str("output", j.Output).Msg("solved")
			return nil
		})
	}
	return g.Wait()
}
