package ports

import "context"

// CreateAdInput carries all data needed to create a new listing.
// Time is the raw user-supplied string in domain.EventTimeLayout.
type CreateAdInput struct {
	UserID       string
	Status       string
	Type         string
	Breed        string
	Color        string
	Size         string
	Distincts    string
	Nickname     string
	Danger       string
	Location     string
	GeoLocation  []string
	Time         string
	ContactName  string
	ContactPhone string
	ContactEmail string
	Extras       string
}

// ListAdsInput carries the optional filters for the listing endpoint.
type ListAdsInput struct {
	Status string
	Type   string
	Breed  string
	Size   string
	Danger string
}

// AdView is a single listing as returned to clients.
type AdView struct {
	ID           string   `json:"id"`
	Status       string   `json:"status"`
	Type         string   `json:"type"`
	Breed        string   `json:"breed"`
	Color        string   `json:"color"`
	Size         string   `json:"size"`
	Distincts    string   `json:"distincts,omitempty"`
	Nickname     string   `json:"nickname,omitempty"`
	Danger       string   `json:"danger"`
	Location     string   `json:"location"`
	GeoLocation  []string `json:"geoLocation,omitempty"`
	Time         string   `json:"time"`
	ContactName  string   `json:"contactName"`
	ContactPhone string   `json:"contactPhone"`
	ContactEmail string   `json:"contactEmail"`
	Extras       string   `json:"extras,omitempty"`
}

// AdService defines use-case operations for the ad catalog.
type AdService interface {
	// Create persists a new listing and returns its id.
	Create(ctx context.Context, input CreateAdInput) (string, error)
	// List returns up to 50 ads matching the filters, newest first.
	List(ctx context.Context, input ListAdsInput) ([]AdView, error)
}
