package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/money"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "name", "description", "price", "created_at", "updated_at"}

const (
	id1 = "00000000-0000-4000-8000-000000000001"
	id2 = "00000000-0000-4000-8000-000000000002"
)

func newRepo(t *testing.T) (*ItemRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewItemRepo(sqlx.NewDb(db, "postgres")), mock
}

func TestItemRepo_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO items").
		WithArgs(id1, "Test Item", "", "10.00").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(id1, "Test Item", "", "10.00", now, now))

	it, err := repo.Create(context.Background(), domain.Item{ID: id1, Name: "Test Item", Price: money.MustParse("10.00")})
	require.NoError(t, err)
	assert.Equal(t, id1, it.ID)
	assert.Equal(t, "10.00", it.Price.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_Get(t *testing.T) {
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM items WHERE id").
			WithArgs(id1).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(id1, "Square Widget", "blue", "1.99", now, now))

		it, err := repo.Get(context.Background(), id1)
		require.NoError(t, err)
		assert.Equal(t, "Square Widget", it.Name)
		assert.True(t, it.Price.Equal(money.MustParse("1.99")))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM items WHERE id").
			WithArgs(id1).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.Get(context.Background(), id1)
		assert.ErrorIs(t, err, app.ErrNotFound)
	})

	t.Run("malformed id never reaches the database", func(t *testing.T) {
		repo, mock := newRepo(t)
		_, err := repo.Get(context.Background(), "404")
		assert.ErrorIs(t, err, app.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestItemRepo_FindByName(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("FROM items WHERE name").
		WithArgs("Test Item").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(id1, "Test Item", "", "10.00", now, now).
			AddRow(id2, "Test Item", "v2", "12.00", now, now))
	mock.ExpectQuery("FROM items WHERE name").
		WithArgs("nothing").
		WillReturnRows(sqlmock.NewRows(columns))

	items, err := repo.FindByName(context.Background(), "Test Item")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = repo.FindByName(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestItemRepo_List(t *testing.T) {
	now := time.Now().UTC()

	t.Run("full page yields cursor", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery("FROM items").
			WithArgs("widget", sqlmock.AnyArg(), 2).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(id1, "Widget", "", "1.00", now, now).
				AddRow(id2, "Widget XL", "", "2.00", now, now))

		items, next, err := repo.List(context.Background(), " widget ", 2, "")
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, id2, next)
	})

	t.Run("short page ends", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery("FROM items").
			WithArgs("", sqlmock.AnyArg(), 20).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(id2, "Widget XL", "", "2.00", now, now))

		items, next, err := repo.List(context.Background(), "", 20, id1)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Empty(t, next)
	})

	t.Run("bad cursor", func(t *testing.T) {
		repo, _ := newRepo(t)
		_, _, err := repo.List(context.Background(), "", 20, "not-a-uuid")
		assert.ErrorIs(t, err, app.ErrInvalidInput)
	})
}
