package vendors

import (
	"context"
	"fmt"
)

type vendorRepository interface {
	List(ctx context.Context) ([]Vendor, error)
	FindByID(ctx context.Context, id string) (Vendor, error)
	Exists(ctx context.Context, id string) (bool, error)
	FindCatalog(ctx context.Context, vendorID string) (Catalog, error)
}

// Service exposes the read-only vendor catalog operations.
type Service interface {
	List(ctx context.Context) ([]Vendor, error)
	GetByID(ctx context.Context, id string) (Vendor, error)
	Services(ctx context.Context, vendorID string) (Catalog, error)
}

type service struct {
	repo vendorRepository
}

// NewService builds the vendor service over the provided repository.
func NewService(repo vendorRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("vendor repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]Vendor, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (Vendor, error) {
	return s.repo.FindByID(ctx, id)
}

// Services returns the vendor's catalog. Unknown vendor ids are NotFound; a
// known vendor without catalog data yields an empty catalog.
func (s *service) Services(ctx context.Context, vendorID string) (Catalog, error) {
	if _, err := s.repo.FindByID(ctx, vendorID); err != nil {
		return Catalog{}, err
	}
	return s.repo.FindCatalog(ctx, vendorID)
}
