package credential

import (
	"context"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/gridrival/season-manager-go/pkg/repository"
	"github.com/gridrival/season-manager-go/testsupport/testdb"
)

func TestCredentialRoundtrip(t *testing.T) {
	pool := testdb.InitTestDb()
	ctx := context.Background()

	cred := &Credential{
		Username:     "alice",
		PasswordHash: "deadbeef",
		Salt:         "salt",
	}
	assert.NilError(t, Create(ctx, pool, cred))

	// username is the primary key
	assert.Assert(t, Create(ctx, pool, cred) != nil)

	got, err := LoadByUsername(ctx, pool, "alice")
	assert.NilError(t, err)
	assert.DeepEqual(t, cred, got)

	_, err = LoadByUsername(ctx, pool, "bob")
	assert.ErrorIs(t, err, repository.ErrNoData)

	rows, err := DeleteByUsername(ctx, pool, "alice")
	assert.NilError(t, err)
	assert.Equal(t, 1, rows)
}
