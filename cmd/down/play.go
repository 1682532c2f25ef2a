package main

import (
	"errors"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-down/internal/audio"
	"github.com/vovakirdan/tui-down/internal/core"
	"github.com/vovakirdan/tui-down/internal/platform/tui"
	"github.com/vovakirdan/tui-down/internal/storage"
)

func runPlay(_ *cobra.Command, _ []string) error {
	// Bubble Tea owns the terminal, so local logs go to --log-file or nowhere.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.FPS = flagFPS
	rc.Seed = flagSeed

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("could not open ranking board, ranking kept per game", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var sink audio.Sink = audio.Nop{}
	player := audio.NewPlayer(logger)
	if err := player.Start(); err != nil {
		if errors.Is(err, audio.ErrNoAudioBackend) {
			logger.Info("no audio backend, playing silently")
		} else {
			logger.Warn("audio disabled", "err", err)
		}
	} else {
		sink = player
		defer player.Stop()
	}

	err = tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rc,
		Player:  localPlayerName(),
		Store:   store,
		Sink:    sink,
		Logger:  logger,
	})

	if store != nil {
		if best, hsErr := store.HighScore(); hsErr == nil {
			logger.Info("session ended", "best", best)
		}
	}
	return err
}

func localPlayerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
