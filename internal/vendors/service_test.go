package vendors

import (
	"context"
	"testing"

	pkgerrors "github.com/autonexhq/autonex-backend/pkg/errors"
)

type stubVendorRepo struct {
	vendors  []Vendor
	catalogs map[string]Catalog
}

func (s *stubVendorRepo) List(ctx context.Context) ([]Vendor, error) {
	return s.vendors, nil
}

func (s *stubVendorRepo) FindByID(ctx context.Context, id string) (Vendor, error) {
	for _, v := range s.vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return Vendor{}, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
}

func (s *stubVendorRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.FindByID(ctx, id)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (s *stubVendorRepo) FindCatalog(ctx context.Context, vendorID string) (Catalog, error) {
	if c, ok := s.catalogs[vendorID]; ok {
		return c, nil
	}
	return EmptyCatalog(vendorID), nil
}

func newStubRepo() *stubVendorRepo {
	catalogs := map[string]Catalog{}
	for _, c := range SeedCatalogs() {
		catalogs[c.VendorID] = c
	}
	return &stubVendorRepo{vendors: SeedVendors(), catalogs: catalogs}
}

func TestListReturnsSeedOrder(t *testing.T) {
	svc, err := NewService(newStubRepo())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 4 {
		t.Fatalf("expected 4 seeded vendors, got %d", len(list))
	}
	want := []string{"v1", "v2", "v3", "v4"}
	for i, v := range list {
		if v.ID != want[i] {
			t.Fatalf("position %d: expected %s got %s", i, want[i], v.ID)
		}
	}
}

func TestGetByIDUnknownVendor(t *testing.T) {
	svc, _ := NewService(newStubRepo())
	_, err := svc.GetByID(context.Background(), "v999")
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestServicesForVendorWithCatalog(t *testing.T) {
	svc, _ := NewService(newStubRepo())
	catalog, err := svc.Services(context.Background(), "v1")
	if err != nil {
		t.Fatalf("services: %v", err)
	}
	if len(catalog.Items) == 0 {
		t.Fatalf("expected catalog items for v1")
	}
	if len(catalog.Bundles) == 0 {
		t.Fatalf("expected catalog bundles for v1")
	}
}

func TestServicesForVendorWithoutCatalogIsEmptyNotError(t *testing.T) {
	svc, _ := NewService(newStubRepo())
	catalog, err := svc.Services(context.Background(), "v2")
	if err != nil {
		t.Fatalf("missing catalog must not be an error: %v", err)
	}
	if catalog.Items == nil || catalog.Bundles == nil {
		t.Fatalf("catalog slices must be non-nil for empty-array encoding")
	}
	if len(catalog.Items) != 0 || len(catalog.Bundles) != 0 {
		t.Fatalf("expected empty catalog for v2")
	}
}

func TestServicesUnknownVendorIsNotFound(t *testing.T) {
	svc, _ := NewService(newStubRepo())
	_, err := svc.Services(context.Background(), "v999")
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected NotFound for unknown vendor, got %v", err)
	}
}

func TestBundlePriceIsSumOfItems(t *testing.T) {
	for _, catalog := range SeedCatalogs() {
		for _, bundle := range catalog.Bundles {
			total := bundle.Price()
			if total.IsZero() {
				t.Fatalf("bundle %s should have a non-zero price", bundle.ID)
			}
		}
	}
}
