package domain

import (
	"errors"
	"time"

	"github.com/dwikikusuma/storefront/pkg/money"
)

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrInvalidDirection = errors.New("unknown mutation direction")
	ErrCartFull         = errors.New("cart entry limit exceeded")
)

type Direction int

const (
	DirectionAdd Direction = iota + 1
	DirectionRemove
)

func (d Direction) String() string {
	switch d {
	case DirectionAdd:
		return "add"
	case DirectionRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Item is the cart's view of a catalog item.
type Item struct {
	ID    string
	Name  string
	Price money.Money
}

// Entry is one unit of an item; quantity N is N entries.
type Entry struct {
	ItemID    string
	Name      string
	UnitPrice money.Money
}

type Cart struct {
	ID        string
	UserID    string
	Entries   []Entry
	Total     money.Money
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Mutation is one add or remove. MaxEntries caps the cart size after an
// add; zero means no cap.
type Mutation struct {
	Item       Item
	Quantity   int
	Direction  Direction
	MaxEntries int
}

// ApplyMutation returns the cart that results from m. The input cart is
// never modified; on error it is returned as is.
//
// Removing more units than the cart holds removes only what is present.
func ApplyMutation(c Cart, m Mutation) (Cart, error) {
	if m.Quantity <= 0 {
		return c, ErrInvalidQuantity
	}
	if m.Item.ID == "" {
		return c, ErrItemNotFound
	}

	switch m.Direction {
	case DirectionAdd:
		if m.MaxEntries > 0 && m.Quantity > m.MaxEntries-len(c.Entries) {
			return c, ErrCartFull
		}
		next := c.Clone()
		for i := 0; i < m.Quantity; i++ {
			next.Entries = append(next.Entries, Entry{
				ItemID:    m.Item.ID,
				Name:      m.Item.Name,
				UnitPrice: m.Item.Price,
			})
		}
		next.Total = c.Total.Add(m.Item.Price.Mul(int64(m.Quantity)))
		return next, nil

	case DirectionRemove:
		entries, removed := removeEntries(c.Entries, m.Item.ID, m.Quantity)
		next := c
		next.Entries = entries
		next.Total = c.Total.Sub(removed)
		return next, nil

	default:
		return c, ErrInvalidDirection
	}
}

// removeEntries drops up to n entries of itemID, newest first, into a fresh
// slice and returns the sum of their unit prices. Everything else keeps its
// relative order.
func removeEntries(src []Entry, itemID string, n int) ([]Entry, money.Money) {
	drop := make([]bool, len(src))
	removed := 0
	sum := money.Zero()
	for i := len(src) - 1; i >= 0 && removed < n; i-- {
		if src[i].ItemID == itemID {
			drop[i] = true
			removed++
			sum = sum.Add(src[i].UnitPrice)
		}
	}

	out := make([]Entry, 0, len(src)-removed)
	for i, e := range src {
		if !drop[i] {
			out = append(out, e)
		}
	}
	return out, sum
}

func (c Cart) Clone() Cart {
	cp := c
	cp.Entries = make([]Entry, len(c.Entries))
	copy(cp.Entries, c.Entries)
	return cp
}

func (c Cart) Count(itemID string) int {
	n := 0
	for _, e := range c.Entries {
		if e.ItemID == itemID {
			n++
		}
	}
	return n
}

// RecomputeTotal sums the entries from scratch.
func (c Cart) RecomputeTotal() money.Money {
	total := money.Zero()
	for _, e := range c.Entries {
		total = total.Add(e.UnitPrice)
	}
	return total
}
