package vendors

import (
	"github.com/autonexhq/autonex-backend/pkg/types"
)

// Vendor is a repair shop in the network. Vendor records are created at seed
// time and are immutable afterwards.
type Vendor struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	Description    *string        `json:"description,omitempty"`
	ScadRate       int            `json:"scadRate"` // 1-100 trust score
	IsAlumniOwned  bool           `json:"isAlumniOwned"`
	IsParentOwned  bool           `json:"isParentOwned"`
	YearsInNetwork int            `json:"yearsInNetwork"`
	Reviews        []types.Review `json:"reviews"`
	Services       []string       `json:"services"` // category names
}

// Catalog is the optional per-vendor service catalog, stored separately from
// the vendor record and keyed by vendor id. A vendor without a catalog record
// simply has nothing bookable yet; that is not an error state.
type Catalog struct {
	VendorID string                `json:"vendorId"`
	Bundles  []types.ServiceBundle `json:"bundles"`
	Items    []types.ServiceItem   `json:"items"`
}

// EmptyCatalog returns the zero catalog shape for a vendor, with non-nil
// slices so the wire encoding is empty arrays rather than null.
func EmptyCatalog(vendorID string) Catalog {
	return Catalog{
		VendorID: vendorID,
		Bundles:  []types.ServiceBundle{},
		Items:    []types.ServiceItem{},
	}
}
