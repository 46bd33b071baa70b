package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/pkg/money"
	"github.com/dwikikusuma/storefront/pkg/postgres"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	selectCartByUser = `
		SELECT c.id, c.user_id, c.total, c.version, c.created_at, c.updated_at,
		       e.item_id, e.name, e.unit_price
		FROM carts c
		LEFT JOIN cart_entries e ON e.cart_id = c.id
		WHERE c.user_id = $1
		ORDER BY e.position`

	insertCart = `
		INSERT INTO carts (id, user_id, total, version, created_at, updated_at)
		VALUES ($1, $2, $3, 1, $4, $5)`

	updateCartIfVersion = `
		UPDATE carts SET total = $1, version = version + 1, updated_at = $2
		WHERE id = $3 AND version = $4`

	insertCartEntries = `
		INSERT INTO cart_entries (cart_id, position, item_id, name, unit_price)
		SELECT $1, t.position, t.item_id, t.name, t.unit_price
		FROM unnest($2::int[], $3::uuid[], $4::text[], $5::numeric[])
		     AS t(position, item_id, name, unit_price)`

	cartExists     = `SELECT EXISTS (SELECT 1 FROM carts WHERE id = $1)`
	deleteEntries  = `DELETE FROM cart_entries WHERE cart_id = $1`
	deleteCartByID = `DELETE FROM carts WHERE id = $1`
)

type CartRepo struct {
	db *sqlx.DB
}

var _ app.CartRepo = (*CartRepo)(nil)

func NewCartRepo(db *sqlx.DB) *CartRepo {
	return &CartRepo{db: db}
}

// cartRow is one row of the carts/cart_entries join; entry columns are NULL
// for an empty cart.
type cartRow struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Total     money.Money    `db:"total"`
	Version   int64          `db:"version"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
	ItemID    sql.NullString `db:"item_id"`
	Name      sql.NullString `db:"name"`
	UnitPrice sql.NullString `db:"unit_price"`
}

func (r *CartRepo) GetByUserID(ctx context.Context, userID string) (domain.Cart, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return domain.Cart{}, app.ErrCartNotFound
	}

	var rows []cartRow
	if err := r.db.SelectContext(ctx, &rows, selectCartByUser, userID); err != nil {
		return domain.Cart{}, err
	}
	if len(rows) == 0 {
		return domain.Cart{}, app.ErrCartNotFound
	}

	head := rows[0]
	cart := domain.Cart{
		ID:        head.ID,
		UserID:    head.UserID,
		Total:     head.Total,
		Version:   head.Version,
		CreatedAt: head.CreatedAt,
		UpdatedAt: head.UpdatedAt,
		Entries:   make([]domain.Entry, 0, len(rows)),
	}

	for _, row := range rows {
		if !row.ItemID.Valid {
			continue
		}
		price, err := money.Parse(row.UnitPrice.String)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("cart %s: entry price: %w", head.ID, err)
		}
		cart.Entries = append(cart.Entries, domain.Entry{
			ItemID:    row.ItemID.String,
			Name:      row.Name.String,
			UnitPrice: price,
		})
	}

	return cart, nil
}

func (r *CartRepo) Create(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	if cart.ID == "" {
		cart.ID = uuid.NewString()
	}

	err := postgres.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, insertCart, cart.ID, cart.UserID, cart.Total, cart.CreatedAt, cart.UpdatedAt); err != nil {
			if postgres.IsUniqueViolation(err) {
				return app.ErrCartExists
			}
			return err
		}
		return insertEntries(ctx, tx, cart.ID, cart.Entries)
	})
	if err != nil {
		return domain.Cart{}, err
	}

	cart.Version = 1
	return cart, nil
}

func (r *CartRepo) Save(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	err := postgres.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, updateCartIfVersion, cart.Total, cart.UpdatedAt, cart.ID, cart.Version)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			var exists bool
			if err := tx.GetContext(ctx, &exists, cartExists, cart.ID); err != nil {
				return err
			}
			if !exists {
				return app.ErrCartNotFound
			}
			return app.ErrVersionConflict
		}

		if _, err := tx.ExecContext(ctx, deleteEntries, cart.ID); err != nil {
			return err
		}
		return insertEntries(ctx, tx, cart.ID, cart.Entries)
	})
	if err != nil {
		return domain.Cart{}, err
	}

	cart.Version++
	return cart, nil
}

func (r *CartRepo) Delete(ctx context.Context, cartID string) error {
	res, err := r.db.ExecContext(ctx, deleteCartByID, cartID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return app.ErrCartNotFound
	}
	return nil
}

// insertEntries writes all entries in one statement, numbering positions
// from zero. Columns travel as arrays so the bind count stays at five
// whatever the cart size.
func insertEntries(ctx context.Context, tx *sqlx.Tx, cartID string, entries []domain.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	positions := make([]int64, len(entries))
	itemIDs := make([]string, len(entries))
	names := make([]string, len(entries))
	prices := make([]string, len(entries))
	for i, e := range entries {
		positions[i] = int64(i)
		itemIDs[i] = e.ItemID
		names[i] = e.Name
		prices[i] = e.UnitPrice.String()
	}

	_, err := tx.ExecContext(ctx, insertCartEntries,
		cartID, pq.Array(positions), pq.Array(itemIDs), pq.Array(names), pq.Array(prices))
	return err
}
