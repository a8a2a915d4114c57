package engine

import (
	"errors"
	"fmt"
)

// Rule violations. Every operation wraps one of these with context, so callers
// match with errors.Is.
var (
	ErrNotYourTurn        = errors.New("not your turn")
	ErrMustCoup           = errors.New("must coup")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrPlayerNotActive    = errors.New("player not active")
	ErrRepeatArrestTarget = errors.New("cannot arrest the same player twice in a row")
	ErrSanctionedPlayer   = errors.New("player is under sanction")
	ErrIllegalMove        = errors.New("illegal move")
	ErrNoPendingAction    = errors.New("no pending action")
	ErrTooManyPlayers     = errors.New("too many players")
	ErrDuplicateName      = errors.New("duplicate player name")
	ErrGameAlreadyStarted = errors.New("game already started")
	ErrGameOver           = errors.New("game over")
	ErrGameStillRunning   = errors.New("game still running")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrGameNotStarted     = errors.New("game not started")
	ErrNotEnoughPlayers   = errors.New("not enough players")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrNotYourTurn, "NotYourTurn"},
	{ErrMustCoup, "MustCoup"},
	{ErrInsufficientFunds, "InsufficientFunds"},
	{ErrPlayerNotActive, "PlayerNotActive"},
	{ErrRepeatArrestTarget, "RepeatArrestTarget"},
	{ErrSanctionedPlayer, "SanctionedPlayer"},
	{ErrIllegalMove, "IllegalMove"},
	{ErrNoPendingAction, "NoPendingAction"},
	{ErrTooManyPlayers, "TooManyPlayers"},
	{ErrDuplicateName, "DuplicateName"},
	{ErrGameAlreadyStarted, "GameAlreadyStarted"},
	{ErrGameOver, "GameOver"},
	{ErrGameStillRunning, "GameStillRunning"},
	{ErrPlayerNotFound, "PlayerNotFound"},
	{ErrGameNotStarted, "GameNotStarted"},
	{ErrNotEnoughPlayers, "NotEnoughPlayers"},
}

// Kind returns the rule-violation name carried by err, or "" when err is not
// an engine error.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}

func ruleErr(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
