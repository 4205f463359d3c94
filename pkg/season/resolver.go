// Package season resolves the championship outcome of a finished game.
// The current resolver is a placeholder: champions are drawn uniformly at
// random over the assembled field, there is no race simulation behind it.
package season

import (
	"math/rand/v2"
	"time"

	"golang.org/x/exp/slices"

	"github.com/gridrival/season-manager-go/pkg/catalog"
	"github.com/gridrival/season-manager-go/pkg/model"
)

// FieldEntry is one team participating in the season, either human
// controlled with its selected driver pair or an AI team running the
// catalog default assignment.
type FieldEntry struct {
	Team    string
	Drivers [2]string
	IsAI    bool
	Player  string
}

type Resolver struct {
	rnd *rand.Rand
	now func() time.Time
}

type ResolverOption func(r *Resolver)

// WithRand injects the random source, used by tests for determinism.
func WithRand(rnd *rand.Rand) ResolverOption {
	return func(r *Resolver) {
		r.rnd = rnd
	}
}

func WithClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) {
		r.now = now
	}
}

func NewResolver(opts ...ResolverOption) *Resolver {
	ret := &Resolver{
		//nolint:gosec // game outcome, no crypto needed
		rnd: rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// AssembleField builds the full season field for a game: every human
// controlled team with its selected pair, plus every unclaimed catalog
// team with its default driver assignment, in catalog order.
func AssembleField(g *model.Game) []FieldEntry {
	ret := make([]FieldEntry, 0, len(catalog.Teams))
	claimed := make([]string, 0, len(g.Players))
	for i := range g.Players {
		p := g.Players[i]
		if p.Team == "" {
			continue
		}
		claimed = append(claimed, p.Team)
		drivers, ok := g.Drivers[p.Team]
		if !ok {
			// roster without a recorded pair runs the default assignment
			drivers, _ = catalog.DefaultDriverPair(p.Team)
		}
		ret = append(ret, FieldEntry{
			Team:    p.Team,
			Drivers: drivers,
			Player:  p.Username,
		})
	}
	for _, team := range catalog.TeamNames() {
		if slices.Contains(claimed, team) {
			continue
		}
		drivers, _ := catalog.DefaultDriverPair(team)
		ret = append(ret, FieldEntry{Team: team, Drivers: drivers, IsAI: true})
	}
	return ret
}

// Resolve draws the drivers' champion uniformly over all drivers of the
// assembled field and the constructors' champion independently over the
// team list. The two draws are not coupled.
func (r *Resolver) Resolve(g *model.Game) *model.Outcome {
	field := AssembleField(g)

	type fieldDriver struct {
		name string
		team string
		isAI bool
	}
	drivers := make([]fieldDriver, 0, 2*len(field))
	for i := range field {
		for _, d := range field[i].Drivers {
			drivers = append(drivers, fieldDriver{
				name: d,
				team: field[i].Team,
				isAI: field[i].IsAI,
			})
		}
	}

	driversChampion := drivers[r.rnd.IntN(len(drivers))]
	constructorsChampion := field[r.rnd.IntN(len(field))]

	players := make([]model.Player, len(g.Players))
	copy(players, g.Players)

	return &model.Outcome{
		Timestamp: r.now(),
		DriversChampionship: model.DriversChampion{
			Driver: driversChampion.name,
			Team:   driversChampion.team,
			IsAI:   driversChampion.isAI,
		},
		ConstructorsChampionship: model.ConstructorsChampion{
			Team: constructorsChampion.Team,
			IsAI: constructorsChampion.IsAI,
		},
		Players: players,
	}
}
