package report

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/board"
)

// ConsoleReporter - announces finished games: one human readable line to the
// given writer and a mirrored log record with the game details.
type ConsoleReporter struct {
	logger *slog.Logger
	out    io.Writer
}

func NewConsoleReporter(logger *slog.Logger, out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{
		logger: logger.With("component", "reporter"),
		out:    out,
	}
}

// GameFinished - reports the outcome of a finished game.
func (that *ConsoleReporter) GameFinished(gameID string, outcome board.Outcome, moves int, played time.Duration) {
	var message string

	if winner, ok := outcome.Winner(); ok {
		message = fmt.Sprintf("player %s wins after %d moves", winner, moves)
	} else {
		message = fmt.Sprintf("draw after %d moves", moves)
	}

	fmt.Fprintln(that.out, message)

	that.logger.Info("game finished",
		"gameID", gameID,
		"outcome", string(outcome),
		"moves", moves,
		"duration", played.Round(time.Millisecond).String(),
	)
}
