package model

import (
	"testing"
	"time"
)

func TestPhaseNext(t *testing.T) {
	tests := []struct {
		name     string
		phase    Phase
		wantNext Phase
		wantOk   bool
	}{
		{name: "team selection", phase: PhaseTeamSelection, wantNext: PhaseDriverSelection, wantOk: true},
		{name: "driver selection", phase: PhaseDriverSelection, wantNext: PhasePreSeason, wantOk: true},
		{name: "pre season", phase: PhasePreSeason, wantNext: PhaseSeason, wantOk: true},
		{name: "season", phase: PhaseSeason, wantNext: PhaseFinished, wantOk: true},
		{name: "finished is terminal", phase: PhaseFinished, wantOk: false},
		{name: "unknown phase", phase: Phase("BOGUS"), wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.phase.Next()
			if ok != tt.wantOk {
				t.Errorf("Next() ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && next != tt.wantNext {
				t.Errorf("Next() = %v, want %v", next, tt.wantNext)
			}
		})
	}
}

func TestParsePhase(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    Phase
		wantErr bool
	}{
		{name: "valid", arg: "SEASON", want: PhaseSeason},
		{name: "invalid", arg: "season", wantErr: true},
		{name: "empty", arg: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePhase(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePhase() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParsePhase() = %v, want %v", got, tt.want)
			}
		})
	}
}

//nolint:funlen // table driven
func TestInferPhase(t *testing.T) {
	completed := time.Now()
	tests := []struct {
		name string
		game *Game
		want Phase
	}{
		{
			name: "no team selected yet",
			game: &Game{Players: []Player{{Username: "alice", Slot: 0}}},
			want: PhaseTeamSelection,
		},
		{
			name: "one of two players without team",
			game: &Game{Players: []Player{
				{Username: "alice", Slot: 0, Team: "Ferrari"},
				{Username: "bob", Slot: 1},
			}},
			want: PhaseTeamSelection,
		},
		{
			name: "all players teamed",
			game: &Game{Players: []Player{
				{Username: "alice", Slot: 0, Team: "Ferrari"},
			}},
			want: PhaseDriverSelection,
		},
		{
			name: "driver pairs recorded",
			game: &Game{
				Players: []Player{{Username: "alice", Slot: 0, Team: "Ferrari"}},
				Drivers: map[string][2]string{
					"Ferrari": {"Charles Leclerc", "Carlos Sainz"},
				},
			},
			want: PhasePreSeason,
		},
		{
			name: "completed game",
			game: &Game{
				Players:     []Player{{Username: "alice", Slot: 0, Team: "Ferrari"}},
				CompletedAt: &completed,
			},
			want: PhaseFinished,
		},
		{
			name: "outcome present without completion date",
			game: &Game{
				Players: []Player{{Username: "alice", Slot: 0, Team: "Ferrari"}},
				Outcome: &Outcome{},
			},
			want: PhaseFinished,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferPhase(tt.game); got != tt.want {
				t.Errorf("InferPhase() = %v, want %v", got, tt.want)
			}
		})
	}
}
