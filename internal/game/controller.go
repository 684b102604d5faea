package game

import (
	"errors"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/board"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/pkg"
)

// ErrQuit - is returned by Advance when the player asked to close the game.
var ErrQuit = errors.New("player quit the game")

const (
	PhaseActive = "active"
	PhaseFrozen = "frozen"
)

type engine interface {
	CellIndexAt(x, y int) (int, bool)
	ApplyMove(cell int) error
	Evaluate() board.Outcome
	Reset()
	Cells() []string
	Moves() int
}

type reporter interface {
	GameFinished(gameID string, outcome board.Outcome, moves int, played time.Duration)
}

// Controller - advances the game one tick at a time. It feeds window events
// into the engine while a game is active, and after a game ends it holds the
// finished board on screen for the freeze period before starting the next
// one. Games cycle this way until the player quits.
type Controller struct {
	logger   *slog.Logger
	engine   engine
	reporter reporter
	freeze   time.Duration

	gameID      string
	phase       string
	startedAt   time.Time
	frozenUntil time.Time
}

// NewController - creates a controller with a fresh active game.
func NewController(logger *slog.Logger, engine engine, reporter reporter, freeze time.Duration) *Controller {
	that := &Controller{
		logger:   logger.With("component", "controller"),
		engine:   engine,
		reporter: reporter,
		freeze:   freeze,
	}
	that.startGame(time.Now())

	return that
}

// Advance - processes one tick worth of events at the given moment.
//
// While frozen, the tick's events are dropped so a stray click cannot leak
// into the next game; once the freeze deadline passes the board is reset and
// a new game begins. While active, events are handled in order: a quit
// request ends the loop immediately, clicks are mapped to cells and applied,
// and rejected moves are ignored. After the whole batch the board is
// evaluated once; a terminal outcome is reported and freezes the game.
func (that *Controller) Advance(now time.Time, events []Event) error {
	log := that.logger.With("method", "Advance")

	if that.phase == PhaseFrozen {
		if now.After(that.frozenUntil) {
			that.engine.Reset()
			that.startGame(now)
		}

		if len(events) > 0 {
			log.Debug("events dropped during freeze", "count", len(events))
		}

		return nil
	}

	for _, event := range events {
		switch event.Kind {
		case EventQuit:
			log.Info("quit requested", "gameID", that.gameID)
			return ErrQuit
		case EventClick:
			that.applyClick(log, event.X, event.Y)
		}
	}

	outcome := that.engine.Evaluate()
	if !outcome.IsTerminal() {
		return nil
	}

	that.reporter.GameFinished(that.gameID, outcome, that.engine.Moves(), now.Sub(that.startedAt))

	that.phase = PhaseFrozen
	that.frozenUntil = now.Add(that.freeze)

	log.Info("game finished", "gameID", that.gameID, "outcome", string(outcome))

	return nil
}

// Cells - returns the current board for rendering.
func (that *Controller) Cells() []string {
	return that.engine.Cells()
}

// Phase - returns PhaseActive or PhaseFrozen.
func (that *Controller) Phase() string {
	return that.phase
}

// GameID - returns the identifier of the current game.
func (that *Controller) GameID() string {
	return that.gameID
}

func (that *Controller) applyClick(log *slog.Logger, x, y int) {
	cell, ok := that.engine.CellIndexAt(x, y)
	if !ok {
		log.Debug("click outside the playing area", "x", x, "y", y)
		return
	}

	if err := that.engine.ApplyMove(cell); err != nil {
		log.Debug("move rejected", "cell", cell, "error", err)
		return
	}

	log.Debug("move applied", "cell", cell)
}

func (that *Controller) startGame(now time.Time) {
	that.gameID = pkg.GenerateGameID()
	that.phase = PhaseActive
	that.startedAt = now
	that.frozenUntil = time.Time{}

	that.logger.Info("game started", "gameID", that.gameID)
}
