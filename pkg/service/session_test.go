//nolint:funlen,errcheck //ok for this test code
package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridrival/season-manager-go/pkg/model"
	"github.com/gridrival/season-manager-go/pkg/season"
	"github.com/gridrival/season-manager-go/testsupport/testdb"
)

func testManager(pool *pgxpool.Pool) *GameSessionManager {
	return NewGameSessionManager(
		WithPool(pool),
		WithResolver(season.NewResolver(
			season.WithRand(rand.New(rand.NewPCG(1, 2))))))
}

func TestLifecycle(t *testing.T) {
	pool := testdb.InitTestDb()
	m := testManager(pool)
	ctx := context.Background()

	g, err := m.Create(ctx, "Alpha", "alice")
	require.NoError(t, err)
	assert.Equal(t, model.PhaseTeamSelection, g.Phase)
	assert.Equal(t, "alice", g.Creator)
	require.Len(t, g.Players, 1)
	assert.Equal(t, 0, g.Players[0].Slot)

	g, err = m.Join(ctx, g.ID, "bob")
	require.NoError(t, err)
	require.Len(t, g.Players, 2)
	assert.Equal(t, 1, g.Players[1].Slot)

	_, err = m.SelectTeam(ctx, g.ID, "alice", "Ferrari")
	require.NoError(t, err)
	g, err = m.SelectTeam(ctx, g.ID, "bob", "McLaren")
	require.NoError(t, err)
	assert.True(t, g.AllPlayersTeamed())

	g, err = m.AdvancePhase(ctx, g.ID, model.PhaseDriverSelection)
	require.NoError(t, err)
	assert.Equal(t, model.PhaseDriverSelection, g.Phase)

	_, err = m.SelectDrivers(ctx, g.ID, "Ferrari",
		[2]string{"Charles Leclerc", "Carlos Sainz"})
	require.NoError(t, err)
	g, err = m.SelectDrivers(ctx, g.ID, "McLaren",
		[2]string{"Lando Norris", "Oscar Piastri"})
	require.NoError(t, err)
	// recording the last pair advances the game without an explicit call
	assert.Equal(t, model.PhasePreSeason, g.Phase)

	_, err = m.ApplyUpgrade(ctx, g.ID, "Ferrari", "tyres")
	require.NoError(t, err)
	g, err = m.ApplyUpgrade(ctx, g.ID, "McLaren", "brakes")
	require.NoError(t, err)

	g, err = m.AdvancePhase(ctx, g.ID, model.PhaseSeason)
	require.NoError(t, err)
	assert.Equal(t, model.PhaseSeason, g.Phase)

	outcome, err := m.ResolveSeason(ctx, g.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, outcome.DriversChampionship.Driver)
	assert.NotEmpty(t, outcome.ConstructorsChampionship.Team)
	assert.Len(t, outcome.Players, 2)

	// the game moved to the archived collection
	active, err := m.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
	archived, err := m.ListArchived(ctx)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, model.PhaseFinished, archived[0].Phase)
	assert.NotNil(t, archived[0].CompletedAt)
	assert.NotNil(t, archived[0].Outcome)

	// Get falls back to the archived collection
	got, err := m.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PhaseFinished, got.Phase)

	// archived games are out of reach for mutations and deletion
	_, err = m.Join(ctx, g.ID, "carol")
	assert.ErrorIs(t, err, ErrGameArchived)
	assert.ErrorIs(t, err, ErrConflict)
	deleted, err := m.Delete(ctx, g.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestJoin(t *testing.T) {
	pool := testdb.InitTestDb()
	m := testManager(pool)
	ctx := context.Background()

	g, err := m.Create(ctx, "Alpha", "alice")
	require.NoError(t, err)

	for i := 1; i < model.MaxPlayers; i++ {
		g, err = m.Join(ctx, g.ID, fmt.Sprintf("player%d", i))
		require.NoError(t, err)
		assert.Equal(t, i, g.Players[i].Slot)
	}

	_, err = m.Join(ctx, g.ID, "latecomer")
	assert.ErrorIs(t, err, ErrGameFull)
	assert.ErrorIs(t, err, ErrConflict)

	// joining again with a known username is a no-op, even on a full game
	g, err = m.Join(ctx, g.ID, "player2")
	require.NoError(t, err)
	assert.Len(t, g.Players, model.MaxPlayers)

	_, err = m.Join(ctx, "unknown", "alice")
	assert.ErrorIs(t, err, ErrGameNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSelectTeam(t *testing.T) {
	pool := testdb.InitTestDb()
	m := testManager(pool)
	ctx := context.Background()

	g, _ := m.Create(ctx, "Alpha", "alice")
	m.Join(ctx, g.ID, "bob")
	_, err := m.SelectTeam(ctx, g.ID, "alice", "Ferrari")
	require.NoError(t, err)

	// a failed claim leaves the existing selection untouched
	_, err = m.SelectTeam(ctx, g.ID, "bob", "Ferrari")
	assert.ErrorIs(t, err, ErrTeamTaken)
	got, _ := m.Get(ctx, g.ID)
	assert.Equal(t, "Ferrari", got.PlayerByUsername("alice").Team)
	assert.Empty(t, got.PlayerByUsername("bob").Team)

	// changing the own team is allowed
	got, err = m.SelectTeam(ctx, g.ID, "alice", "Mercedes")
	require.NoError(t, err)
	assert.Equal(t, "Mercedes", got.PlayerByUsername("alice").Team)

	_, err = m.SelectTeam(ctx, g.ID, "carol", "McLaren")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	_, err = m.SelectTeam(ctx, g.ID, "bob", "Brawn GP")
	assert.ErrorIs(t, err, ErrUnknownTeam)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSelectDrivers(t *testing.T) {
	pool := testdb.InitTestDb()
	m := testManager(pool)
	ctx := context.Background()

	g, _ := m.Create(ctx, "Alpha", "alice")
	m.Join(ctx, g.ID, "bob")
	m.SelectTeam(ctx, g.ID, "alice", "Ferrari")
	m.SelectTeam(ctx, g.ID, "bob", "Haas F1")

	// wrong phase
	_, err := m.SelectDrivers(ctx, g.ID, "Ferrari",
		[2]string{"Charles Leclerc", "Carlos Sainz"})
	assert.ErrorIs(t, err, ErrWrongPhase)

	m.AdvancePhase(ctx, g.ID, model.PhaseDriverSelection)

	_, err = m.SelectDrivers(ctx, g.ID, "Ferrari",
		[2]string{"Charles Leclerc", "Charles Leclerc"})
	assert.ErrorIs(t, err, ErrDriversNotDistinct)
	_, err = m.SelectDrivers(ctx, g.ID, "Ferrari",
		[2]string{"Charles Leclerc", "Michael Schumacher"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
	_, err = m.SelectDrivers(ctx, g.ID, "Mercedes",
		[2]string{"Charles Leclerc", "Carlos Sainz"})
	assert.ErrorIs(t, err, ErrTeamNotInGame)

	// Verstappen + Hamilton exceed the Haas budget
	_, err = m.SelectDrivers(ctx, g.ID, "Haas F1",
		[2]string{"Max Verstappen", "Lewis Hamilton"})
	assert.ErrorIs(t, err, ErrBudgetExceeded)

	_, err = m.SelectDrivers(ctx, g.ID, "Ferrari",
		[2]string{"Charles Leclerc", "Carlos Sainz"})
	require.NoError(t, err)

	// a driver claimed by another team in the same game is off limits
	_, err = m.SelectDrivers(ctx, g.ID, "Haas F1",
		[2]string{"Carlos Sainz", "Kevin Magnussen"})
	assert.ErrorIs(t, err, ErrDriverTaken)

	// re-submitting the own pair with one driver swapped is fine
	g, err = m.SelectDrivers(ctx, g.ID, "Ferrari",
		[2]string{"Charles Leclerc", "Lewis Hamilton"})
	require.NoError(t, err)
	assert.Equal(t, model.PhaseDriverSelection, g.Phase)
}

func TestAdvancePhase(t *testing.T) {
	pool := testdb.InitTestDb()
	m := testManager(pool)
	ctx := context.Background()

	g, _ := m.Create(ctx, "Alpha", "alice")

	// skipping a phase is not possible
	_, err := m.AdvancePhase(ctx, g.ID, model.PhasePreSeason)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	// going backwards neither
	_, err = m.AdvancePhase(ctx, g.ID, model.PhaseTeamSelection)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	// the terminal phase is only reachable through season resolution
	_, err = m.AdvancePhase(ctx, g.ID, model.PhaseFinished)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// successor phase, but alice has no team yet
	_, err = m.AdvancePhase(ctx, g.ID, model.PhaseDriverSelection)
	assert.ErrorIs(t, err, ErrPreconditionFailed)

	m.SelectTeam(ctx, g.ID, "alice", "Ferrari")
	g, err = m.AdvancePhase(ctx, g.ID, model.PhaseDriverSelection)
	require.NoError(t, err)
	assert.Equal(t, model.PhaseDriverSelection, g.Phase)

	// joining after team selection is over is rejected
	_, err = m.Join(ctx, g.ID, "bob")
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestResolveSeasonWrongPhase(t *testing.T) {
	pool := testdb.InitTestDb()
	m := testManager(pool)
	ctx := context.Background()

	g, _ := m.Create(ctx, "Alpha", "alice")
	_, err := m.ResolveSeason(ctx, g.ID)
	assert.ErrorIs(t, err, ErrWrongPhase)

	_, err = m.ResolveSeason(ctx, "unknown")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestDelete(t *testing.T) {
	pool := testdb.InitTestDb()
	m := testManager(pool)
	ctx := context.Background()

	g, _ := m.Create(ctx, "Alpha", "alice")
	deleted, err := m.Delete(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = m.Delete(ctx, g.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = m.Get(ctx, g.ID)
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestPhaseRepair(t *testing.T) {
	pool := testdb.InitTestDb()
	m := testManager(pool)
	ctx := context.Background()

	g, _ := m.Create(ctx, "Alpha", "alice")
	m.SelectTeam(ctx, g.ID, "alice", "Ferrari")

	// simulate a legacy record without a phase
	pool.Exec(ctx,
		"update active_game set data=data-'phase' where id=$1", g.ID)

	got, err := m.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PhaseDriverSelection, got.Phase)

	// the repaired phase has been persisted
	got, err = m.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PhaseDriverSelection, got.Phase)
}
