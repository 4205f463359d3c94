package model

import "time"

// MaxPlayers is the number of player slots in a game.
const MaxPlayers = 5

// Player occupies one slot in a game. Team is only populated once the
// player made their selection.
type Player struct {
	Username string    `json:"username"`
	Slot     int       `json:"slot"`
	Team     string    `json:"team,omitempty"`
	JoinedAt time.Time `json:"joined_at"`
}

// Game is one multiplayer session. Players are kept in join order, the
// slot number is the addressable identity. Drivers and Upgrades are keyed
// by team name and only contain entries for human controlled teams.
type Game struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Creator     string               `json:"creator"`
	CreatedAt   time.Time            `json:"created_at"`
	Phase       Phase                `json:"phase,omitempty"`
	Players     []Player             `json:"players"`
	Drivers     map[string][2]string `json:"drivers,omitempty"`
	Upgrades    map[string]string    `json:"upgrades,omitempty"`
	CompletedAt *time.Time           `json:"completed_at,omitempty"`
	Outcome     *Outcome             `json:"outcome,omitempty"`
}

// PlayerByUsername returns the player with the given username, nil if absent.
func (g *Game) PlayerByUsername(username string) *Player {
	for i := range g.Players {
		if g.Players[i].Username == username {
			return &g.Players[i]
		}
	}
	return nil
}

// FreeSlot returns the lowest unoccupied slot index, -1 if the game is full.
func (g *Game) FreeSlot() int {
	taken := make(map[int]bool, len(g.Players))
	for i := range g.Players {
		taken[g.Players[i].Slot] = true
	}
	for slot := range MaxPlayers {
		if !taken[slot] {
			return slot
		}
	}
	return -1
}

// TeamHolder returns the player currently holding the team, nil if unclaimed.
func (g *Game) TeamHolder(team string) *Player {
	for i := range g.Players {
		if g.Players[i].Team == team {
			return &g.Players[i]
		}
	}
	return nil
}

// HumanTeams returns the teams selected by players, in slot order.
func (g *Game) HumanTeams() []string {
	ret := make([]string, 0, len(g.Players))
	for i := range g.Players {
		if g.Players[i].Team != "" {
			ret = append(ret, g.Players[i].Team)
		}
	}
	return ret
}

// AllPlayersTeamed reports whether every player holds a team.
func (g *Game) AllPlayersTeamed() bool {
	if len(g.Players) == 0 {
		return false
	}
	for i := range g.Players {
		if g.Players[i].Team == "" {
			return false
		}
	}
	return true
}

// AllTeamsHaveDrivers reports whether every human controlled team has a
// recorded driver pair.
func (g *Game) AllTeamsHaveDrivers() bool {
	teams := g.HumanTeams()
	if len(teams) == 0 {
		return false
	}
	for _, team := range teams {
		if _, ok := g.Drivers[team]; !ok {
			return false
		}
	}
	return true
}

// AllTeamsHaveUpgrades reports whether every human controlled team has a
// recorded upgrade selection.
func (g *Game) AllTeamsHaveUpgrades() bool {
	teams := g.HumanTeams()
	if len(teams) == 0 {
		return false
	}
	for _, team := range teams {
		if _, ok := g.Upgrades[team]; !ok {
			return false
		}
	}
	return true
}

// DriverClaimedBy returns the team which already selected the driver,
// "" if the driver is unclaimed. exceptTeam is skipped so that a team may
// re-submit its own pair.
func (g *Game) DriverClaimedBy(driver, exceptTeam string) string {
	for team, pair := range g.Drivers {
		if team == exceptTeam {
			continue
		}
		if pair[0] == driver || pair[1] == driver {
			return team
		}
	}
	return ""
}
