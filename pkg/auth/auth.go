// Package auth provides credential verification for the game UI. It is
// deliberately minimal: a salted sha256 digest per user, no lockout, no
// password rules. The game core never touches password material.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridrival/season-manager-go/pkg/repository"
	credrepos "github.com/gridrival/season-manager-go/pkg/repository/credential"
)

var ErrUserExists = errors.New("username already registered")

type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Verify(ctx context.Context, username, password string) (bool, error)
}

type simpleAuth struct {
	pool *pgxpool.Pool
}

type Option func(*simpleAuth)

func WithPool(pool *pgxpool.Pool) Option {
	return func(a *simpleAuth) {
		a.pool = pool
	}
}

func NewAuthService(opts ...Option) AuthService {
	ret := &simpleAuth{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (a *simpleAuth) Register(ctx context.Context, username, password string) error {
	if _, err := credrepos.LoadByUsername(ctx, a.pool, username); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, repository.ErrNoData) {
		return err
	}
	salt := uuid.NewString()
	return credrepos.Create(ctx, a.pool, &credrepos.Credential{
		Username:     username,
		PasswordHash: hashPassword(password, salt),
		Salt:         salt,
	})
}

func (a *simpleAuth) Verify(ctx context.Context, username, password string) (
	bool, error,
) {
	cred, err := credrepos.LoadByUsername(ctx, a.pool, username)
	if err != nil {
		if errors.Is(err, repository.ErrNoData) {
			return false, nil
		}
		return false, err
	}
	return hashPassword(password, cred.Salt) == cred.PasswordHash, nil
}

func hashPassword(password, salt string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s%s", password, salt))
	return hex.EncodeToString(sum[:])
}
