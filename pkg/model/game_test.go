package model

import "testing"

func twoPlayerGame() *Game {
	return &Game{
		ID:      "20240428111012_1",
		Name:    "Alpha",
		Creator: "alice",
		Phase:   PhaseTeamSelection,
		Players: []Player{
			{Username: "alice", Slot: 0, Team: "Ferrari"},
			{Username: "bob", Slot: 1, Team: "McLaren"},
		},
	}
}

func TestFreeSlot(t *testing.T) {
	tests := []struct {
		name    string
		players []Player
		want    int
	}{
		{name: "empty game", players: []Player{}, want: 0},
		{
			name:    "lowest slot first",
			players: []Player{{Username: "a", Slot: 0}},
			want:    1,
		},
		{
			name:    "gap is reused",
			players: []Player{{Username: "a", Slot: 0}, {Username: "c", Slot: 2}},
			want:    1,
		},
		{
			name: "full game",
			players: []Player{
				{Slot: 0}, {Slot: 1}, {Slot: 2}, {Slot: 3}, {Slot: 4},
			},
			want: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Game{Players: tt.players}
			if got := g.FreeSlot(); got != tt.want {
				t.Errorf("FreeSlot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTeamHolder(t *testing.T) {
	g := twoPlayerGame()
	if holder := g.TeamHolder("Ferrari"); holder == nil || holder.Username != "alice" {
		t.Errorf("TeamHolder(Ferrari) = %v, want alice", holder)
	}
	if holder := g.TeamHolder("Mercedes"); holder != nil {
		t.Errorf("TeamHolder(Mercedes) = %v, want nil", holder)
	}
}

func TestDriverClaimedBy(t *testing.T) {
	g := twoPlayerGame()
	g.Drivers = map[string][2]string{
		"Ferrari": {"Charles Leclerc", "Carlos Sainz"},
	}
	if team := g.DriverClaimedBy("Carlos Sainz", "McLaren"); team != "Ferrari" {
		t.Errorf("DriverClaimedBy() = %v, want Ferrari", team)
	}
	// a team re-submitting its own pair does not conflict with itself
	if team := g.DriverClaimedBy("Carlos Sainz", "Ferrari"); team != "" {
		t.Errorf("DriverClaimedBy() = %v, want empty", team)
	}
	if team := g.DriverClaimedBy("Lando Norris", "Ferrari"); team != "" {
		t.Errorf("DriverClaimedBy() = %v, want empty", team)
	}
}

func TestSelectionProgress(t *testing.T) {
	g := twoPlayerGame()
	if !g.AllPlayersTeamed() {
		t.Error("AllPlayersTeamed() = false, want true")
	}
	if g.AllTeamsHaveDrivers() {
		t.Error("AllTeamsHaveDrivers() = true, want false")
	}
	g.Drivers = map[string][2]string{
		"Ferrari": {"Charles Leclerc", "Carlos Sainz"},
		"McLaren": {"Lando Norris", "Oscar Piastri"},
	}
	if !g.AllTeamsHaveDrivers() {
		t.Error("AllTeamsHaveDrivers() = false, want true")
	}
	if g.AllTeamsHaveUpgrades() {
		t.Error("AllTeamsHaveUpgrades() = true, want false")
	}
	g.Upgrades = map[string]string{"Ferrari": "tyres", "McLaren": "brakes"}
	if !g.AllTeamsHaveUpgrades() {
		t.Error("AllTeamsHaveUpgrades() = false, want true")
	}

	empty := &Game{}
	if empty.AllPlayersTeamed() || empty.AllTeamsHaveDrivers() ||
		empty.AllTeamsHaveUpgrades() {
		t.Error("empty game must not report selection progress")
	}
}
