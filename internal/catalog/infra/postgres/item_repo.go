package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/money"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const itemColumns = `id, name, description, price, created_at, updated_at`

const (
	insertItem = `
		INSERT INTO items (id, name, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING ` + itemColumns

	selectItem = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	selectItemsByName = `SELECT ` + itemColumns + ` FROM items WHERE name = $1 ORDER BY created_at, id`

	listItems = `
		SELECT ` + itemColumns + ` FROM items
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2::uuid IS NULL OR id > $2::uuid)
		ORDER BY id
		LIMIT $3`
)

type itemRow struct {
	ID          string      `db:"id"`
	Name        string      `db:"name"`
	Description string      `db:"description"`
	Price       money.Money `db:"price"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

func (r itemRow) toDomain() domain.Item {
	return domain.Item{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type ItemRepo struct {
	db *sqlx.DB
}

var _ app.ItemRepo = (*ItemRepo)(nil)

func NewItemRepo(db *sqlx.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

func (r *ItemRepo) Create(ctx context.Context, it domain.Item) (domain.Item, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}

	var row itemRow
	if err := r.db.GetContext(ctx, &row, insertItem, it.ID, it.Name, it.Description, it.Price); err != nil {
		return domain.Item{}, err
	}
	return row.toDomain(), nil
}

func (r *ItemRepo) Get(ctx context.Context, id string) (domain.Item, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Item{}, app.ErrNotFound
	}

	var row itemRow
	err := r.db.GetContext(ctx, &row, selectItem, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Item{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Item{}, err
	}

	return row.toDomain(), nil
}

func (r *ItemRepo) FindByName(ctx context.Context, name string) ([]domain.Item, error) {
	var rows []itemRow
	if err := r.db.SelectContext(ctx, &rows, selectItemsByName, name); err != nil {
		return nil, err
	}

	out := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ItemRepo) List(ctx context.Context, query string, limit int, cursor string) ([]domain.Item, string, error) {
	var cur uuid.NullUUID
	if strings.TrimSpace(cursor) != "" {
		uid, err := uuid.Parse(strings.TrimSpace(cursor))
		if err != nil {
			return nil, "", app.ErrInvalidInput
		}
		cur = uuid.NullUUID{UUID: uid, Valid: true}
	}

	var rows []itemRow
	if err := r.db.SelectContext(ctx, &rows, listItems, strings.TrimSpace(query), cur, limit); err != nil {
		return nil, "", err
	}

	out := make([]domain.Item, 0, len(rows))
	var nextCursor string

	for _, row := range rows {
		out = append(out, row.toDomain())
		nextCursor = row.ID
	}

	if len(out) < limit {
		nextCursor = ""
	}

	return out, nextCursor, nil
}
