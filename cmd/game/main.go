package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/vectoroids/internal/audio"
	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/draw"
	"github.com/tomz197/vectoroids/internal/loop/client"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Load(); err != nil {
		return err
	}

	// The terminal belongs to the game, so logs go to LOG_FILE or nowhere.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "game")

	audioOn := config.GetEnvBool("AUDIO", true)
	var sink audio.Sink = audio.Nop{}
	if audioOn {
		sink = audio.NewSpeaker(logger)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	draw.EnterAltScreen(os.Stdout)
	defer draw.ExitAltScreen(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.NewClient(nil, os.Stdin, os.Stdout, client.ClientOptions{
		TermSizeFunc: draw.DefaultTermSizeFunc,
		Audio:        sink,
		Seed:         config.GetEnvUint("GAME_SEED", 0),
		Logger:       logger,
	})
	logger.Info("starting local game", "audio", audioOn)
	return c.Run(ctx)
}
