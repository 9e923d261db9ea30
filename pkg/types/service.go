package types

import (
	"github.com/shopspring/decimal"

	"github.com/autonexhq/autonex-backend/pkg/enums"
)

// Review is a customer review attached to a vendor record.
type Review struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"` // 1-5
	Comment string `json:"comment"`
}

// ServiceItem is a single bookable service from a vendor catalog. Bookings
// embed a snapshot of the selected items, so the struct doubles as the wire
// shape on both catalog reads and booking writes.
type ServiceItem struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Price          decimal.Decimal       `json:"price"`
	Category       enums.ServiceCategory `json:"category"`
	WarrantyMonths int                   `json:"warrantyMonths,omitempty"`
}

// ServiceBundle groups catalog items; bundle price is the sum of its items.
type ServiceBundle struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Items       []ServiceItem `json:"items"`
}

// Price returns the sum of the bundle's item prices. No bundle-level
// discount exists in the current data.
func (b ServiceBundle) Price() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.Items {
		total = total.Add(item.Price)
	}
	return total
}
