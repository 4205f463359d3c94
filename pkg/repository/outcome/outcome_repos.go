//nolint:whitespace // can't make both editor and linter happy
package outcome

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gridrival/season-manager-go/pkg/model"
	"github.com/gridrival/season-manager-go/pkg/repository"
)

// Upsert stores the outcome for a game. One entry per game id,
// re-resolving overwrites the prior entry without versioning.
func Upsert(ctx context.Context, conn repository.Querier, gameID string,
	o *model.Outcome,
) error {
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}
	_, err = conn.Exec(ctx, `
	insert into outcome (game_id, data) values ($1,$2)
	on conflict (game_id) do update set data=excluded.data`,
		gameID, data)
	return err
}

func LoadByGameID(ctx context.Context, conn repository.Querier, gameID string) (
	*model.Outcome, error,
) {
	row := conn.QueryRow(ctx, "select data from outcome where game_id=$1", gameID)
	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoData
		}
		return nil, err
	}
	var item model.Outcome
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrCorruptData, err)
	}
	return &item, nil
}

// DeleteByGameID removes the outcome log entry, returns number of rows deleted.
func DeleteByGameID(ctx context.Context, conn repository.Querier, gameID string) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, "delete from outcome where game_id=$1", gameID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}
