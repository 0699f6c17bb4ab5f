package handler

import "github.com/lostpaws/petfinder-system/internal/core/ports"

// createAdRequest mirrors the listing form. Field names follow the client's
// camelCase contract.
type createAdRequest struct {
	Status       string   `json:"status"       validate:"required,oneof=lost found"`
	Type         string   `json:"type"         validate:"required"`
	Breed        string   `json:"breed"        validate:"required"`
	Color        string   `json:"color"        validate:"required"`
	Size         string   `json:"size"         validate:"required"`
	Distincts    string   `json:"distincts"`
	Nickname     string   `json:"nickname"`
	Danger       string   `json:"danger"       validate:"required"`
	Location     string   `json:"location"     validate:"required"`
	GeoLocation  []string `json:"geoLocation"`
	Time         string   `json:"time"         validate:"required"`
	ContactName  string   `json:"contactName"  validate:"required"`
	ContactPhone string   `json:"contactPhone" validate:"required"`
	ContactEmail string   `json:"contactEmail" validate:"required,email"`
	Extras       string   `json:"extras"`
}

// listAdsRequest carries the optional equality filters. Absent fields are not
// applied.
type listAdsRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=lost found"`
	Type   string `json:"type"`
	Breed  string `json:"breed"`
	Size   string `json:"size"`
	Danger string `json:"danger"`
}

type createAdResponse struct {
	Success bool   `json:"success"`
	AdID    string `json:"ad_id"`
}

type listAdsResponse struct {
	Success bool           `json:"success"`
	Ads     []ports.AdView `json:"ads"`
}
