//nolint:whitespace // can't make both editor and linter happy
package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gridrival/season-manager-go/log"
	"github.com/gridrival/season-manager-go/pkg/model"
	"github.com/gridrival/season-manager-go/pkg/repository"
)

// Collection names the two disjoint game stores.
type Collection string

const (
	Active   Collection = "active_game"
	Archived Collection = "archived_game"
)

const idTimeLayout = "20060102150405"

func Create(ctx context.Context, conn repository.Querier, g *model.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	_, err = conn.Exec(ctx,
		"insert into active_game (id, data) values ($1,$2)", g.ID, data)
	return err
}

// NextID generates a game id from a time based prefix plus a numeric
// suffix. The id is guaranteed unique across the union of the active and
// archived collections at generation time, including multiple ids
// generated within the same clock tick.
func NextID(ctx context.Context, conn repository.Querier, now time.Time) (
	string, error,
) {
	prefix := now.Format(idTimeLayout)
	for suffix := 1; ; suffix++ {
		id := fmt.Sprintf("%s_%d", prefix, suffix)
		used, err := exists(ctx, conn, id)
		if err != nil {
			return "", err
		}
		if !used {
			return id, nil
		}
	}
}

func exists(ctx context.Context, conn repository.Querier, id string) (bool, error) {
	row := conn.QueryRow(ctx, `
	select exists(
		select 1 from active_game where id=$1
		union all
		select 1 from archived_game where id=$1)`, id)
	var used bool
	if err := row.Scan(&used); err != nil {
		return false, err
	}
	return used, nil
}

func LoadByID(ctx context.Context, conn repository.Querier, c Collection, id string) (
	*model.Game, error,
) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("select data from %s where id=$1", c), id)
	return scanGame(row)
}

// LoadByIDForUpdate loads an active game holding a row lock until the
// surrounding transaction ends. Mutating operations use this to
// serialize concurrent writers on the same game record.
func LoadByIDForUpdate(ctx context.Context, conn repository.Querier, id string) (
	*model.Game, error,
) {
	row := conn.QueryRow(ctx,
		"select data from active_game where id=$1 for update", id)
	return scanGame(row)
}

// LoadAll returns a whole collection. Active games are sorted by
// created_at descending, archived games by completed_at descending.
// Records which cannot be decoded are skipped with a warning: a corrupt
// store degrades to a shorter listing, it never fails the caller.
func LoadAll(ctx context.Context, conn repository.Querier, c Collection) (
	[]*model.Game, error,
) {
	orderKey := "created_at"
	if c == Archived {
		orderKey = "completed_at"
	}
	rows, err := conn.Query(ctx, fmt.Sprintf(
		"select data from %s order by data->>'%s' desc", c, orderKey))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Game, 0)
	for rows.Next() {
		item, err := scanGame(rows)
		if err != nil {
			if errors.Is(err, repository.ErrCorruptData) {
				log.Default().Named("repository.game").Warn(
					"skipping unreadable game record",
					log.String("collection", string(c)),
					log.ErrorField(err))
				continue
			}
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, rows.Err()
}

func Update(ctx context.Context, conn repository.Querier, g *model.Game) (
	int, error,
) {
	data, err := json.Marshal(g)
	if err != nil {
		return 0, err
	}
	cmdTag, err := conn.Exec(ctx,
		"update active_game set data=$1 where id=$2", data, g.ID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// DeleteByID removes a game from the active collection only. Returns the
// number of rows deleted, archived games are never touched.
func DeleteByID(ctx context.Context, conn repository.Querier, id string) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, "delete from active_game where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// Archive moves a game from the active to the archived collection. The
// caller provides the transaction; the insert and delete either both
// happen or neither does.
func Archive(ctx context.Context, conn repository.Querier, g *model.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	if _, err = conn.Exec(ctx,
		"insert into archived_game (id, data) values ($1,$2)", g.ID, data); err != nil {
		return err
	}
	cmdTag, err := conn.Exec(ctx, "delete from active_game where id=$1", g.ID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("game %s not in active collection: %w",
			g.ID, repository.ErrNoData)
	}
	return nil
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoData
		}
		return nil, err
	}
	var item model.Game
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrCorruptData, err)
	}
	return &item, nil
}
