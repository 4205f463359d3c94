//nolint:funlen,errcheck //ok for this test code
package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"

	"github.com/gridrival/season-manager-go/pkg/model"
	"github.com/gridrival/season-manager-go/pkg/repository"
	"github.com/gridrival/season-manager-go/pkg/repository/game"
	"github.com/gridrival/season-manager-go/testsupport/basedata"
	"github.com/gridrival/season-manager-go/testsupport/testdb"
)

func TestCreateLoad(t *testing.T) {
	pool := testdb.InitTestDb()
	sample := basedata.CreateSampleGame(pool)

	got, err := game.LoadByID(context.Background(), pool, game.Active, sample.ID)
	if err != nil {
		t.Fatalf("LoadByID() error = %v", err)
	}
	if diff := cmp.Diff(sample, got); diff != "" {
		t.Errorf("LoadByID() mismatch (-want +got):\n%s", diff)
	}

	// duplicate id is rejected by the primary key
	err = game.Create(context.Background(), pool, sample)
	assert.Error(t, err)

	_, err = game.LoadByID(context.Background(), pool, game.Active, "unknown")
	assert.ErrorIs(t, err, repository.ErrNoData)
	_, err = game.LoadByID(context.Background(), pool, game.Archived, sample.ID)
	assert.ErrorIs(t, err, repository.ErrNoData)
}

func TestNextID(t *testing.T) {
	pool := testdb.InitTestDb()
	ctx := context.Background()
	now := basedata.TestTime()

	first, err := game.NextID(ctx, pool, now)
	assert.NoError(t, err)
	assert.Equal(t, "20240428111012_1", first)

	// same clock tick must not hand out the same id again
	game.Create(ctx, pool, &model.Game{ID: first, CreatedAt: now})
	second, err := game.NextID(ctx, pool, now)
	assert.NoError(t, err)
	assert.Equal(t, "20240428111012_2", second)

	// ids in the archived collection count as used too
	archiveGame(t, pool, &model.Game{ID: second, CreatedAt: now})
	third, err := game.NextID(ctx, pool, now)
	assert.NoError(t, err)
	assert.Equal(t, "20240428111012_3", third)
}

func TestUpdate(t *testing.T) {
	pool := testdb.InitTestDb()
	sample := basedata.CreateSampleGame(pool)
	ctx := context.Background()

	sample.Phase = model.PhasePreSeason
	sample.Drivers = map[string][2]string{
		"Ferrari": {"Charles Leclerc", "Carlos Sainz"},
		"McLaren": {"Lando Norris", "Oscar Piastri"},
	}
	rows, err := game.Update(ctx, pool, sample)
	assert.NoError(t, err)
	assert.Equal(t, 1, rows)

	got, err := game.LoadByID(ctx, pool, game.Active, sample.ID)
	assert.NoError(t, err)
	if diff := cmp.Diff(sample, got); diff != "" {
		t.Errorf("Update() mismatch (-want +got):\n%s", diff)
	}

	rows, err = game.Update(ctx, pool, &model.Game{ID: "unknown"})
	assert.NoError(t, err)
	assert.Equal(t, 0, rows)
}

func TestDeleteByID(t *testing.T) {
	pool := testdb.InitTestDb()
	sample := basedata.CreateSampleGame(pool)
	ctx := context.Background()

	rows, err := game.DeleteByID(ctx, pool, sample.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, rows)

	rows, err = game.DeleteByID(ctx, pool, sample.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, rows)
}

func TestArchive(t *testing.T) {
	pool := testdb.InitTestDb()
	sample := basedata.CreateSampleGame(pool)
	ctx := context.Background()

	completed := basedata.TestTime().Add(time.Hour)
	sample.Phase = model.PhaseFinished
	sample.CompletedAt = &completed
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		return game.Archive(ctx, tx, sample)
	})
	assert.NoError(t, err)

	_, err = game.LoadByID(ctx, pool, game.Active, sample.ID)
	assert.ErrorIs(t, err, repository.ErrNoData)
	got, err := game.LoadByID(ctx, pool, game.Archived, sample.ID)
	assert.NoError(t, err)
	if diff := cmp.Diff(sample, got); diff != "" {
		t.Errorf("Archive() mismatch (-want +got):\n%s", diff)
	}

	// archiving a game that is not active must fail and roll back
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		return game.Archive(ctx, tx, &model.Game{ID: "unknown"})
	})
	assert.ErrorIs(t, err, repository.ErrNoData)
	_, err = game.LoadByID(ctx, pool, game.Archived, "unknown")
	assert.ErrorIs(t, err, repository.ErrNoData)
}

func TestLoadAll(t *testing.T) {
	pool := testdb.InitTestDb()
	ctx := context.Background()

	older := &model.Game{ID: "20240428111012_1", Name: "older",
		CreatedAt: basedata.TestTime()}
	newer := &model.Game{ID: "20240428111013_1", Name: "newer",
		CreatedAt: basedata.TestTime().Add(time.Second)}
	game.Create(ctx, pool, older)
	game.Create(ctx, pool, newer)

	// one undecodable record must not break the listing
	pool.Exec(ctx,
		"insert into active_game (id, data) values ($1,$2)",
		"corrupt", []byte(`[1,2,3]`))

	got, err := game.LoadAll(ctx, pool, game.Active)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	// newest first
	assert.Equal(t, "newer", got[0].Name)
	assert.Equal(t, "older", got[1].Name)
}

func archiveGame(t *testing.T, pool *pgxpool.Pool, g *model.Game) {
	t.Helper()
	ctx := context.Background()
	if err := game.Create(ctx, pool, g); err != nil {
		t.Fatalf("archiveGame create: %v", err)
	}
	if err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		return game.Archive(ctx, tx, g)
	}); err != nil {
		t.Fatalf("archiveGame: %v", err)
	}
}
