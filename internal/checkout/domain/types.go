package domain

import "github.com/dwikikusuma/storefront/pkg/money"

type QuoteLine struct {
	ItemID    string      `json:"item_id"`
	Name      string      `json:"name"`
	Quantity  int64       `json:"quantity"`
	UnitPrice money.Money `json:"unit_price"`
	LineTotal money.Money `json:"line_total"`
}

// Quote re-prices a cart against the current catalog. CartTotal is the total
// the cart recorded when its entries were added.
type Quote struct {
	Lines     []QuoteLine `json:"lines"`
	Total     money.Money `json:"total"`
	CartTotal money.Money `json:"cart_total"`
}
