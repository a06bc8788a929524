// FILE: cmd/fencat/repl.go
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fencat/internal/fen"
	"fencat/internal/render"

	"github.com/chzyer/readline"
)

// runInteractive reads lines until EOF, rendering each pasted FEN and
// re-rendering the last position after a display toggle.
func runInteractive(opts render.Options) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          buildPrompt(opts),
		HistoryFile:     ".fencat_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fencat: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Println("fencat interactive mode")
	fmt.Println("Paste a FEN to render it. Type 'help' for commands.")
	fmt.Println()

	var board *fen.Board

	for {
		rl.SetPrompt(buildPrompt(opts))

		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "exit", "quit", "x":
			return
		case "help", "?":
			showHelp()
		case "flip":
			opts.Flip = !opts.Flip
			show(os.Stdout, board, opts)
		case "theme":
			if len(fields) != 2 || !render.Theme(fields[1]).Valid() {
				fmt.Printf("invalid theme (use: %s)\n", strings.Join(render.Themes(), "|"))
				continue
			}
			opts.Theme = render.Theme(fields[1])
			show(os.Stdout, board, opts)
		case "glyphs":
			if len(fields) != 2 || !render.GlyphSet(fields[1]).Valid() {
				fmt.Printf("invalid glyph set (use: %s)\n", strings.Join(render.GlyphSets(), "|"))
				continue
			}
			opts.Glyphs = render.GlyphSet(fields[1])
			show(os.Stdout, board, opts)
		case "turn":
			opts.ShowTurn = !opts.ShowTurn
			show(os.Stdout, board, opts)
		default:
			b, err := fen.Parse(line)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			board = b
			show(os.Stdout, board, opts)
		}
	}
}

func buildPrompt(opts render.Options) string {
	if opts.Flip {
		return "fen [black]> "
	}
	return "fen> "
}

func show(w io.Writer, b *fen.Board, opts render.Options) {
	if b == nil {
		fmt.Fprintln(w, "no position yet; paste a FEN to render it")
		return
	}
	for _, line := range render.Format(b, opts) {
		fmt.Fprintln(w, line)
	}
}

func showHelp() {
	help := `Commands:
  <FEN>            - Render the position (text around the FEN is ignored)
  flip             - Toggle the viewing perspective
  theme <name>     - Set the color theme (classic|brown|green|gray|mono)
  glyphs <set>     - Set the piece glyphs (unicode|ascii)
  turn             - Toggle the active color line
  help/?           - Show this help message
  quit/exit        - Exit the program`
	fmt.Println(help)
}
