package service

import (
	"errors"
	"fmt"
)

// Error categories. Specific errors below wrap one of these so callers
// can match either the exact condition or the whole category with
// errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	ErrGameNotFound   = fmt.Errorf("game %w", ErrNotFound)
	ErrPlayerNotFound = fmt.Errorf("player %w", ErrNotFound)
	ErrTeamNotInGame  = fmt.Errorf("team %w in game", ErrNotFound)

	ErrGameFull           = fmt.Errorf("%w: no free player slot", ErrConflict)
	ErrTeamTaken          = fmt.Errorf("%w: team already taken", ErrConflict)
	ErrDriverTaken        = fmt.Errorf("%w: driver already taken", ErrConflict)
	ErrGameArchived       = fmt.Errorf("%w: game is archived", ErrConflict)
	ErrWrongPhase         = fmt.Errorf("%w: operation not allowed in this phase", ErrConflict)
	ErrInvalidTransition  = fmt.Errorf("%w: invalid phase transition", ErrConflict)
	ErrPreconditionFailed = fmt.Errorf("%w: phase precondition not met", ErrConflict)

	ErrUnknownTeam        = fmt.Errorf("%w: unknown team", ErrInvalidInput)
	ErrUnknownDriver      = fmt.Errorf("%w: unknown driver", ErrInvalidInput)
	ErrUnknownUpgrade     = fmt.Errorf("%w: unknown upgrade", ErrInvalidInput)
	ErrDriversNotDistinct = fmt.Errorf("%w: drivers must be distinct", ErrInvalidInput)
	ErrBudgetExceeded     = fmt.Errorf("%w: budget exceeded", ErrInvalidInput)
)
