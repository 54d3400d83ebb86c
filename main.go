package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"

	"nibbled/internal/buffer"
	"nibbled/internal/config"
	"nibbled/internal/frame"
	"nibbled/internal/grid"
	"nibbled/internal/render"
	"nibbled/internal/session"
	"nibbled/internal/term"
)

const lineWidth = 16

// Version is set via ldflags during build.
var version = "dev"

type options struct {
	dump     bool
	readOnly bool
	debug    string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, file := parseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: bad config, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}
	pal, err := cfg.Palette()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: bad theme, using defaults: %v\n", err)
		pal, _ = config.DefaultConfig().Palette()
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.debug != "" {
		f, err := os.OpenFile(opts.debug, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		log = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	buf, err := buffer.Open(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	g := grid.New(buf, lineWidth)

	if opts.dump {
		return dump(g, pal)
	}

	t, err := term.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open terminal: %v\n", err)
		return 1
	}
	if err := t.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot initialize terminal: %v\n", err)
		return 1
	}
	defer t.Release()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		t.Interrupt()
	}()

	s := session.New(buf, g, t, pal, session.Options{
		ReadOnly: opts.readOnly,
		Tick:     time.Duration(cfg.Editor.TickMS) * time.Millisecond,
		Logger:   log,
	})
	if err := s.Run(); err != nil {
		t.Release()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// dump renders the whole document to stdout as one colored repaint
// instead of entering the interactive loop.
func dump(g *grid.Grid, pal *config.Palette) int {
	rows := len(g.Lines())
	if rows == 0 {
		rows = 1
	}
	width := render.DocumentWidth(g.LineWidth())

	f := frame.New(width, rows)
	render.Document(f, g, 0, 0, pal)

	w := term.NewANSIWriter(os.Stdout, termenv.ColorProfile())
	f.Render(w)
	w.Reset()
	fmt.Println()
	return 0
}

func parseFlags() (options, string) {
	var opts options
	var initConfig bool
	var showVersion bool

	flag.BoolVar(&opts.dump, "dump", false, "Print a colored hex dump to stdout and exit")
	flag.BoolVar(&opts.readOnly, "readonly", false, "Open the file read-only")
	flag.BoolVar(&opts.readOnly, "R", false, "Open the file read-only (shorthand)")
	flag.StringVar(&opts.debug, "debug", "", "Write a debug log to the given file")
	flag.BoolVar(&initConfig, "init-config", false, "Write the default config file and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "nibbled - terminal hex editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: nibbled [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("nibbled %s\n", version)
		os.Exit(0)
	}

	if initConfig {
		cfg := config.DefaultConfig()
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot write config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", config.ConfigPath())
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	return opts, flag.Arg(0)
}
