package ports

import (
	"context"

	"github.com/lostpaws/petfinder-system/internal/core/domain"
)

// ListAdsFilter carries the optional equality filters for listing ads.
// Empty fields are not applied.
type ListAdsFilter struct {
	Status string
	Type   string
	Breed  string
	Size   string
	Danger string
	Limit  int // max rows returned (capped at 50 by the service)
}

// AdRepository defines persistence operations for listings.
type AdRepository interface {
	// Create inserts the ad and returns its generated id.
	Create(ctx context.Context, ad *domain.Ad) (string, error)
	// List returns ads matching filter, newest first.
	List(ctx context.Context, filter ListAdsFilter) ([]*domain.Ad, error)
}
