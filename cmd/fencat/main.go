// FILE: cmd/fencat/main.go

// Package main implements fencat, a FEN viewer for the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fencat/internal/config"
	"fencat/internal/fen"
	"fencat/internal/render"

	"golang.org/x/term"
)

func main() {
	var (
		flip        bool
		theme       string
		ascii       bool
		noColor     bool
		interactive bool
	)

	flag.BoolVar(&flip, "flip", false, "show the board from Black's perspective")
	flag.BoolVar(&flip, "f", false, "shorthand for --flip")
	flag.StringVar(&theme, "theme", "", "board color theme (classic|brown|green|gray|mono)")
	flag.StringVar(&theme, "t", "", "shorthand for --theme")
	flag.BoolVar(&ascii, "ascii", false, "draw pieces as FEN letters instead of figurines")
	flag.BoolVar(&ascii, "a", false, "shorthand for --ascii")
	flag.BoolVar(&noColor, "no-color", false, "disable colors (same as --theme mono)")
	flag.BoolVar(&noColor, "n", false, "shorthand for --no-color")
	flag.BoolVar(&interactive, "interactive", false, "start an interactive session")
	flag.BoolVar(&interactive, "i", false, "shorthand for --interactive")
	flag.Usage = usage
	flag.Parse()

	opts := buildOptions(flip, theme, ascii, noColor)

	if interactive {
		runInteractive(opts)
		return
	}

	input, err := readInput(flag.Arg(0))
	if err != nil {
		fail(err)
	}

	board, err := fen.Parse(input)
	if err != nil {
		fail(err)
	}

	show(os.Stdout, board, opts)
}

// buildOptions layers the three preference sources: built-in defaults,
// then the user's config file, then explicit command-line flags. The
// theme drops to mono when colors were disabled outright or when
// stdout is not a terminal and no flag asked for color anyway.
func buildOptions(flip bool, theme string, ascii, noColor bool) render.Options {
	opts := render.DefaultOptions()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fencat: %v (ignoring config)\n", err)
	}
	if cfg.Theme != "" {
		opts.Theme = render.Theme(cfg.Theme)
	}
	if cfg.Glyphs != "" {
		opts.Glyphs = render.GlyphSet(cfg.Glyphs)
	}
	opts.Flip = cfg.Flip
	opts.ShowTurn = cfg.ShowTurnValue()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["flip"] || set["f"] {
		opts.Flip = flip
	}
	if set["ascii"] || set["a"] {
		opts.Glyphs = render.GlyphsUnicode
		if ascii {
			opts.Glyphs = render.GlyphsASCII
		}
	}

	switch {
	case noColor:
		opts.Theme = render.ThemeMono
	case set["theme"] || set["t"]:
		t := render.Theme(theme)
		if !t.Valid() {
			fail(fmt.Errorf("invalid theme: %s (use: %s)", theme, strings.Join(render.Themes(), "|")))
		}
		opts.Theme = t
	case os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())):
		opts.Theme = render.ThemeMono
	}

	return opts
}

// readInput returns the text to scan for a FEN: the named file when a
// path was given, otherwise everything from standard input.
func readInput(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "fencat: %v\n", err)
	flag.Usage()
	os.Exit(1)
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "Fencat reads a FEN string from a file or stdin and prints the chessboard.")
	fmt.Fprintln(out, "The first FEN string found is used.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage: fencat [OPTION]... [FILE]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	fmt.Fprintln(out, "  -f, --flip         show the board from Black's perspective")
	fmt.Fprintln(out, "  -t, --theme NAME   board color theme (classic|brown|green|gray|mono)")
	fmt.Fprintln(out, "  -a, --ascii        draw pieces as FEN letters instead of figurines")
	fmt.Fprintln(out, "  -n, --no-color     disable colors (same as --theme mono)")
	fmt.Fprintln(out, "  -i, --interactive  start an interactive session")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, "  echo rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR | fencat")
	fmt.Fprintln(out, "  fencat fen.txt")
	fmt.Fprintln(out, "  fencat < fen.txt")
	fmt.Fprintln(out, "  fencat --flip fen.txt")
}
