// Package main runs the Tower of Hanoi puzzle in the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"hanoi/internal/cli"
	"hanoi/internal/config"
	"hanoi/internal/core"
	"hanoi/internal/input"
	"hanoi/internal/logger"
	"hanoi/internal/terminal"
	"hanoi/internal/transport"
	clitransport "hanoi/internal/transport/cli"
)

func main() {
	configPath := flag.String("config", "", "Optional path to a YAML config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config file]\n\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\n%s\n", config.Description())
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Encoding:   cfg.Log.Encoding,
		OutputPath: cfg.Log.File,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	view := cli.New(terminal.NewCRLFWriter(os.Stdout))
	if err := view.SetTheme(cli.ColorTheme(cfg.Theme)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	stdinFd := int(os.Stdin.Fd())
	handler := clitransport.New(input.NewReader(os.Stdin), openPrompt, view, clitransport.Options{
		Rings: cfg.Rings,
		RawMode: func(fn func() error) error {
			return terminal.WithRawMode(stdinFd, fn)
		},
		Logger: log,
	})

	log.Info("starting",
		zap.Int("rings", cfg.Rings),
		zap.String("theme", cfg.Theme),
		zap.Bool("tty", terminal.IsTerminal(stdinFd)))

	if err := handler.Run(); err != nil && !errors.Is(err, clitransport.ErrInterrupted) {
		log.Error("game failed", zap.Error(err))
		log.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openPrompt starts a line editor for the ring count. The handler closes it
// before a round takes over stdin.
func openPrompt() (transport.LineReader, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("Select number of rings (%d-%d): ", core.MinRings, core.MaxRings),
		InterruptPrompt: "^C",
		EOFPrompt:       "",
		HistoryLimit:    -1,
	})
}
