package board

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// Outcome - is the result of evaluating a board: the winner's mark, PlayerTie
// for a full board without a winner, or OutcomeNone while the game goes on.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeDraw Outcome = PlayerTie
)

// IsTerminal - reports whether the game is over.
func (that Outcome) IsTerminal() bool {
	return that != OutcomeNone
}

// Winner - returns the winning mark, or false for a draw or an unfinished game.
func (that Outcome) Winner() (string, bool) {
	if that == OutcomeNone || that == OutcomeDraw {
		return "", false
	}

	return string(that), true
}
