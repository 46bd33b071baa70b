package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/money"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	orderA = "33333333-0000-4000-8000-00000000000a"
	orderB = "33333333-0000-4000-8000-00000000000b"
	userID = "11111111-0000-4000-8000-000000000001"
	itemID = "00000000-0000-4000-8000-000000000002"
)

func newRepo(t *testing.T) (*OrderRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewOrderRepo(sqlx.NewDb(db, "postgres")), mock
}

func TestCreateOrderTx(t *testing.T) {
	now := time.Now().UTC()
	entry := domain.Entry{ItemID: itemID, Name: "Square Widget", UnitPrice: money.MustParse("1.99")}
	order := domain.Order{
		ID:        orderA,
		UserID:    userID,
		Status:    domain.StatusPending,
		Entries:   []domain.Entry{entry, entry},
		Total:     money.MustParse("3.98"),
		CreatedAt: now,
	}

	t.Run("commits header and entries", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").
			WithArgs(orderA, userID, "PENDING", "3.98", now).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO order_entries").
			WithArgs(orderA,
				pq.Array([]int64{0, 1}),
				pq.Array([]string{itemID, itemID}),
				pq.Array([]string{"Square Widget", "Square Widget"}),
				pq.Array([]string{"1.99", "1.99"})).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		got, err := repo.CreateOrderTx(context.Background(), order)
		require.NoError(t, err)
		assert.Equal(t, orderA, got.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("large order binds five parameters", func(t *testing.T) {
		const n = 20000
		big := order
		big.Entries = make([]domain.Entry, n)
		positions := make([]int64, n)
		ids := make([]string, n)
		names := make([]string, n)
		prices := make([]string, n)
		for i := range big.Entries {
			big.Entries[i] = entry
			positions[i] = int64(i)
			ids[i] = itemID
			names[i] = "Square Widget"
			prices[i] = "1.99"
		}

		repo, mock := newRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`(?s)INSERT INTO order_entries.*unnest`).
			WithArgs(orderA, pq.Array(positions), pq.Array(ids), pq.Array(names), pq.Array(prices)).
			WillReturnResult(sqlmock.NewResult(0, n))
		mock.ExpectCommit()

		_, err := repo.CreateOrderTx(context.Background(), big)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty order skips entries", func(t *testing.T) {
		repo, mock := newRepo(t)
		empty := order
		empty.Entries = nil
		empty.Total = money.Zero()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		_, err := repo.CreateOrderTx(context.Background(), empty)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("entry failure rolls back", func(t *testing.T) {
		repo, mock := newRepo(t)
		boom := errors.New("fk violation")
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO order_entries").WillReturnError(boom)
		mock.ExpectRollback()

		_, err := repo.CreateOrderTx(context.Background(), order)
		assert.ErrorIs(t, err, boom)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListByUser(t *testing.T) {
	repo, mock := newRepo(t)
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	cols := []string{"id", "user_id", "status", "total", "created_at", "item_id", "name", "unit_price"}
	mock.ExpectQuery("FROM orders o").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(orderA, userID, "PENDING", "3.98", t1, itemID, "Square Widget", "1.99").
			AddRow(orderA, userID, "PENDING", "3.98", t1, itemID, "Square Widget", "1.99").
			AddRow(orderB, userID, "PENDING", "0.00", t2, nil, nil, nil))

	orders, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, orderA, orders[0].ID)
	assert.Len(t, orders[0].Entries, 2)
	assert.Equal(t, "3.98", orders[0].Total.String())
	assert.Equal(t, orderB, orders[1].ID)
	assert.Empty(t, orders[1].Entries)
}
