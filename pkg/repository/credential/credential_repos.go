//nolint:whitespace // can't make both editor and linter happy
package credential

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/gridrival/season-manager-go/pkg/repository"
)

// Credential is one entry of the user credential store. The game core
// never reads password material, this record is owned by the auth
// service alone.
type Credential struct {
	Username     string
	PasswordHash string
	Salt         string
}

func Create(ctx context.Context, conn repository.Querier, cred *Credential) error {
	_, err := conn.Exec(ctx, `
	insert into credential (username, password_hash, salt) values ($1,$2,$3)`,
		cred.Username, cred.PasswordHash, cred.Salt)
	return err
}

func LoadByUsername(ctx context.Context, conn repository.Querier, username string) (
	*Credential, error,
) {
	row := conn.QueryRow(ctx, `
	select username, password_hash, salt from credential where username=$1`,
		username)
	var item Credential
	if err := row.Scan(&item.Username, &item.PasswordHash, &item.Salt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoData
		}
		return nil, err
	}
	return &item, nil
}

// DeleteByUsername removes a credential, returns number of rows deleted.
func DeleteByUsername(ctx context.Context, conn repository.Querier, username string) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, "delete from credential where username=$1", username)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}
