package domain

import (
	"time"

	"github.com/dwikikusuma/storefront/pkg/money"
)

// Item is a catalog entry. Items are never modified after creation.
type Item struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Money `json:"price"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
