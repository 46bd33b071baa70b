package memory

import (
	"context"
	"testing"

	"github.com/dwikikusuma/storefront/internal/user/app"
	"github.com/dwikikusuma/storefront/internal/user/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	u, err := repo.Create(ctx, domain.User{ID: "u1", Username: "test", CartID: "c1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.User{ID: "u2", Username: "test"})
	assert.ErrorIs(t, err, app.ErrUsernameTaken)

	got, err := repo.GetByUsername(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	got, err = repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "c1", got.CartID)

	_, err = repo.GetByID(ctx, "u2")
	assert.ErrorIs(t, err, app.ErrUserNotFound)
	_, err = repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, app.ErrUserNotFound)
}
