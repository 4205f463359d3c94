package basedata

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridrival/season-manager-go/pkg/model"
	gamerepos "github.com/gridrival/season-manager-go/pkg/repository/game"
)

func TestTime() time.Time {
	t, _ := time.Parse(time.RFC3339, "2024-04-28T11:10:12Z")
	return t
}

// SampleGame returns a game with two teamed players, ready for the
// driver selection phase.
func SampleGame() *model.Game {
	return &model.Game{
		ID:        "20240428111012_1",
		Name:      "Alpha",
		Creator:   "alice",
		CreatedAt: TestTime(),
		Phase:     model.PhaseDriverSelection,
		Players: []model.Player{
			{Username: "alice", Slot: 0, Team: "Ferrari", JoinedAt: TestTime()},
			{Username: "bob", Slot: 1, Team: "McLaren", JoinedAt: TestTime()},
		},
	}
}

// CreateSampleGame persists a SampleGame in the active collection.
func CreateSampleGame(pool *pgxpool.Pool) *model.Game {
	sample := SampleGame()
	if err := pgx.BeginFunc(context.Background(), pool, func(tx pgx.Tx) error {
		return gamerepos.Create(context.Background(), tx, sample)
	}); err != nil {
		log.Fatalf("createSampleGame: %v\n", err)
	}
	return sample
}
