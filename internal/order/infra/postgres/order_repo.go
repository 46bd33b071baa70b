package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/money"
	"github.com/dwikikusuma/storefront/pkg/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	insertOrder = `
		INSERT INTO orders (id, user_id, status, total, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	insertOrderEntries = `
		INSERT INTO order_entries (order_id, position, item_id, name, unit_price)
		SELECT $1, t.position, t.item_id, t.name, t.unit_price
		FROM unnest($2::int[], $3::uuid[], $4::text[], $5::numeric[])
		     AS t(position, item_id, name, unit_price)`

	selectOrdersByUser = `
		SELECT o.id, o.user_id, o.status, o.total, o.created_at,
		       e.item_id, e.name, e.unit_price
		FROM orders o
		LEFT JOIN order_entries e ON e.order_id = o.id
		WHERE o.user_id = $1
		ORDER BY o.created_at, o.id, e.position`
)

type OrderRepo struct {
	db *sqlx.DB
}

var _ app.OrderRepo = (*OrderRepo)(nil)

func NewOrderRepo(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	err := postgres.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, insertOrder, order.ID, order.UserID, order.Status, order.Total, order.CreatedAt); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if len(order.Entries) == 0 {
			return nil
		}

		positions := make([]int64, len(order.Entries))
		itemIDs := make([]string, len(order.Entries))
		names := make([]string, len(order.Entries))
		prices := make([]string, len(order.Entries))
		for i, e := range order.Entries {
			positions[i] = int64(i)
			itemIDs[i] = e.ItemID
			names[i] = e.Name
			prices[i] = e.UnitPrice.String()
		}
		_, err := tx.ExecContext(ctx, insertOrderEntries,
			order.ID, pq.Array(positions), pq.Array(itemIDs), pq.Array(names), pq.Array(prices))
		if err != nil {
			return fmt.Errorf("failed to insert order entries: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

type orderRow struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Status    string         `db:"status"`
	Total     money.Money    `db:"total"`
	CreatedAt time.Time      `db:"created_at"`
	ItemID    sql.NullString `db:"item_id"`
	Name      sql.NullString `db:"name"`
	UnitPrice sql.NullString `db:"unit_price"`
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	var rows []orderRow
	if err := r.db.SelectContext(ctx, &rows, selectOrdersByUser, userID); err != nil {
		return nil, err
	}

	out := make([]domain.Order, 0)
	for _, row := range rows {
		if len(out) == 0 || out[len(out)-1].ID != row.ID {
			out = append(out, domain.Order{
				ID:        row.ID,
				UserID:    row.UserID,
				Status:    row.Status,
				Total:     row.Total,
				CreatedAt: row.CreatedAt,
				Entries:   []domain.Entry{},
			})
		}
		if !row.ItemID.Valid {
			continue
		}

		price, err := money.Parse(row.UnitPrice.String)
		if err != nil {
			return nil, fmt.Errorf("order %s: entry price: %w", row.ID, err)
		}
		last := &out[len(out)-1]
		last.Entries = append(last.Entries, domain.Entry{
			ItemID:    row.ItemID.String,
			Name:      row.Name.String,
			UnitPrice: price,
		})
	}
	return out, nil
}
