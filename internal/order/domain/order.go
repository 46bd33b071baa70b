package domain

import (
	"time"

	"github.com/dwikikusuma/storefront/pkg/money"
)

const StatusPending = "PENDING"

// Order is a frozen copy of a cart at submission time.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Status    string      `json:"status"`
	Entries   []Entry     `json:"entries"`
	Total     money.Money `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
}

type Entry struct {
	ItemID    string      `json:"item_id"`
	Name      string      `json:"name"`
	UnitPrice money.Money `json:"unit_price"`
}

// CartSnapshot is what Submit needs to know about a cart.
type CartSnapshot struct {
	UserID  string
	Entries []Entry
	Total   money.Money
}
