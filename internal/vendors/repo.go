package vendors

import (
	"context"

	"gorm.io/gorm"

	pkgerrors "github.com/autonexhq/autonex-backend/pkg/errors"
	"github.com/autonexhq/autonex-backend/pkg/kv"
	"github.com/autonexhq/autonex-backend/pkg/types"
)

const (
	vendorEntity  = "vendor"
	catalogEntity = "vendor-services"
)

// Repository handles vendor and catalog persistence over the entity store.
type Repository struct {
	vendors  *kv.Store[Vendor]
	catalogs *kv.Store[Catalog]
}

// NewRepository binds the vendor stores to the shared DB connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		vendors:  kv.NewStore[Vendor](db, vendorEntity),
		catalogs: kv.NewStore[Catalog](db, catalogEntity),
	}
}

// EnsureSeed loads the mock vendor network when the stores are empty. It is
// idempotent; calling it on every boot is safe.
func (r *Repository) EnsureSeed(ctx context.Context) error {
	if err := r.vendors.EnsureSeed(ctx, SeedVendors(), func(v Vendor) string { return v.ID }); err != nil {
		return err
	}
	return r.catalogs.EnsureSeed(ctx, SeedCatalogs(), func(c Catalog) string { return c.VendorID })
}

// List returns all vendors in seed (insertion) order.
func (r *Repository) List(ctx context.Context) ([]Vendor, error) {
	return r.vendors.List(ctx)
}

// FindByID loads a single vendor.
func (r *Repository) FindByID(ctx context.Context, id string) (Vendor, error) {
	return r.vendors.Get(ctx, id)
}

// Exists reports whether the vendor id is known.
func (r *Repository) Exists(ctx context.Context, id string) (bool, error) {
	return r.vendors.Exists(ctx, id)
}

// FindCatalog loads a vendor's service catalog. Catalog data is optional
// supplementary data, so a missing record comes back as an empty catalog
// rather than an error.
func (r *Repository) FindCatalog(ctx context.Context, vendorID string) (Catalog, error) {
	catalog, err := r.catalogs.Get(ctx, vendorID)
	if err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			return EmptyCatalog(vendorID), nil
		}
		return Catalog{}, err
	}
	if catalog.Bundles == nil {
		catalog.Bundles = []types.ServiceBundle{}
	}
	if catalog.Items == nil {
		catalog.Items = []types.ServiceItem{}
	}
	return catalog, nil
}
