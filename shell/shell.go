// Package shell is an interactive front end for the fill solver: load a
// structure and a word list, solve, inspect, export.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/BarnabasNovak1/crosswordpuzzle/config"
	"github.com/BarnabasNovak1/crosswordpuzzle/grid"
	"github.com/BarnabasNovak1/crosswordpuzzle/lexicon"
	"github.com/BarnabasNovak1/crosswordpuzzle/render"
	"github.com/BarnabasNovak1/crosswordpuzzle/solvelog"
	"github.com/BarnabasNovak1/crosswordpuzzle/solver"
)

const helpText = `Commands:
  load <structure-file>   load a grid structure ('_' marks open cells)
  words <word-file>       load the vocabulary, one word per line
  solve                   fill the loaded grid from the loaded words
  show                    print the current fill
  export <file.png>       write the current fill as a PNG
  stats                   show counters for the last solve
  help                    this message
  exit                    leave the shell
`

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	g        *grid.Grid
	lex      *lexicon.Lexicon
	solution solver.Assignment
	stats    solver.Stats

	structurePath string
	wordsPath     string
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("load"),
		readline.PcItem("words"),
		readline.PcItem("solve"),
		readline.PcItem("show"),
		readline.PcItem("export"),
		readline.PcItem("stats"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mxwfill>\033[0m ",
		HistoryFile:     "/tmp/xwfill-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    completer,

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

// Loop reads and executes commands until exit or EOF, then signals the
// main goroutine through sig.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		exit, err := sc.executeLine(line, sc.l.Stderr())
		if err != nil {
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
		if exit {
			break
		}
	}
	log.Debug().Msg("exiting shell loop")
	sig <- syscall.SIGINT
}

func (sc *ShellController) Cleanup() {
	sc.l.Close()
}

// recordSolve appends the last run to the configured solve log, if any.
func (sc *ShellController) recordSolve(solved bool) {
	path := sc.cfg.GetString("solve-log")
	if path == "" {
		return
	}
	l, err := solvelog.Open(path)
	if err != nil {
		log.Warn().Err(err).Msg("opening solve log")
		return
	}
	defer l.Close()
	err = l.Record(solvelog.Entry{
		Structure:  sc.structurePath,
		Words:      sc.wordsPath,
		Solved:     solved,
		Nodes:      sc.stats.Nodes,
		Backtracks: sc.stats.Backtracks,
		Revisions:  sc.stats.Revisions,
		Duration:   sc.stats.Elapsed,
	})
	if err != nil {
		log.Warn().Err(err).Msg("recording solve")
	}
}

// executeLine dispatches one command line. It reports whether the shell
// should exit.
func (sc *ShellController) executeLine(line string, w io.Writer) (bool, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return false, err
	}
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "load":
		if len(args) != 1 {
			return false, errors.New("usage: load <structure-file>")
		}
		g, err := grid.LoadStructure(args[0])
		if err != nil {
			return false, err
		}
		sc.g = g
		sc.structurePath = args[0]
		sc.solution = nil
		showMessage(fmt.Sprintf("loaded %dx%d grid with %d slots",
			g.Height(), g.Width(), len(g.Slots())), w)

	case "words":
		if len(args) != 1 {
			return false, errors.New("usage: words <word-file>")
		}
		lex, err := lexicon.LoadFile(args[0])
		if err != nil {
			return false, err
		}
		sc.lex = lex
		sc.wordsPath = args[0]
		sc.solution = nil
		showMessage(fmt.Sprintf("loaded %d words", lex.Size()), w)

	case "solve":
		if sc.g == nil {
			return false, errors.New("no grid loaded; use load first")
		}
		if sc.lex == nil {
			return false, errors.New("no words loaded; use words first")
		}
		filler := solver.NewFiller(sc.g, sc.lex)
		solution, err := filler.Solve()
		sc.stats = filler.Stats()
		sc.recordSolve(err == nil)
		if errors.Is(err, solver.ErrNoSolution) {
			showMessage("No solution found.", w)
			return false, nil
		} else if err != nil {
			return false, err
		}
		sc.solution = solution
		showMessage(render.Text(sc.g, sc.solution), w)

	case "show":
		if sc.g == nil {
			return false, errors.New("no grid loaded")
		}
		showMessage(render.Text(sc.g, sc.solution), w)

	case "export":
		if len(args) != 1 {
			return false, errors.New("usage: export <file.png>")
		}
		if sc.g == nil || sc.solution == nil {
			return false, errors.New("nothing to export; solve first")
		}
		f, err := os.Create(args[0])
		if err != nil {
			return false, err
		}
		defer f.Close()
		if err := render.PNG(sc.g, sc.solution, f); err != nil {
			return false, err
		}
		showMessage("wrote "+args[0], w)

	case "stats":
		if sc.structurePath != "" {
			showMessage(fmt.Sprintf("structure: %s  words: %s", sc.structurePath, sc.wordsPath), w)
		}
		showMessage(fmt.Sprintf("nodes: %d  backtracks: %d  revisions: %d  elapsed: %v",
			sc.stats.Nodes, sc.stats.Backtracks, sc.stats.Revisions, sc.stats.Elapsed), w)

	case "help":
		showMessage(helpText, w)

	case "exit", "quit":
		return true, nil

	default:
		return false, fmt.Errorf("unknown command %q; try help", cmd)
	}
	return false, nil
}
