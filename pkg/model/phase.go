package model

import "fmt"

// Phase is the stage in the fixed season lifecycle a game passes through.
// Transitions are monotonic, no phase may be skipped or revisited.
type Phase string

const (
	PhaseTeamSelection   Phase = "TEAM_SELECTION"
	PhaseDriverSelection Phase = "DRIVER_SELECTION"
	PhasePreSeason       Phase = "PRE_SEASON"
	PhaseSeason          Phase = "SEASON"
	PhaseFinished        Phase = "FINISHED"
)

//nolint:gochecknoglobals // fixed phase order
var phaseOrder = []Phase{
	PhaseTeamSelection,
	PhaseDriverSelection,
	PhasePreSeason,
	PhaseSeason,
	PhaseFinished,
}

func (p Phase) Valid() bool {
	for _, v := range phaseOrder {
		if v == p {
			return true
		}
	}
	return false
}

// Next returns the immediate successor phase. ok is false for the
// terminal phase and for unknown values.
func (p Phase) Next() (next Phase, ok bool) {
	for i, v := range phaseOrder[:len(phaseOrder)-1] {
		if v == p {
			return phaseOrder[i+1], true
		}
	}
	return "", false
}

func ParsePhase(s string) (Phase, error) {
	p := Phase(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown phase %q", s)
	}
	return p, nil
}

// InferPhase computes the phase of a game record without one from its
// roster completeness. Pure and idempotent, used to repair legacy or
// partial records at load time.
func InferPhase(g *Game) Phase {
	switch {
	case g.CompletedAt != nil || g.Outcome != nil:
		return PhaseFinished
	case len(g.Drivers) > 0:
		return PhasePreSeason
	case g.AllPlayersTeamed():
		return PhaseDriverSelection
	default:
		return PhaseTeamSelection
	}
}
