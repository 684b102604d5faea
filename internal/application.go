package application

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/board"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/config"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/game"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/layout"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/report"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/ui"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	grid, err := layout.New(conf.WindowSize, conf.BorderThickness, conf.BoardSize)
	if err != nil {
		return fmt.Errorf("could not compute the window layout: %w", err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	quit := make(chan struct{}, 1)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		quit <- struct{}{}
	}()

	engine := board.NewEngine(grid)
	reporter := report.NewConsoleReporter(logger, os.Stdout)
	controller := game.NewController(logger, engine, reporter, conf.FreezeDuration)
	app := ui.NewApp(controller, grid, quit)

	ebiten.SetWindowSize(grid.WindowSize(), grid.WindowSize())
	ebiten.SetWindowTitle(conf.WindowTitle)
	ebiten.SetTPS(conf.TickRate)

	log.Info("Starting game window",
		"size", grid.WindowSize(),
		"board", conf.BoardSize,
		"tps", conf.TickRate,
	)

	if err = ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop error: %w", err)
	}

	log.Info("Game window closed")

	return nil
}
