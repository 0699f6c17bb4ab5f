package domain

import (
	"errors"
	"time"
)

// AdStatus distinguishes listings for lost animals from found ones.
type AdStatus string

const (
	StatusLost  AdStatus = "lost"
	StatusFound AdStatus = "found"
)

var ErrAdNotFound = errors.New("ad not found")
var ErrBadTimeFormat = errors.New("invalid time format")

// EventTimeLayout is the wire format for the moment the animal was lost or
// found, as typed by the user: day.month.year hour:minute.
const EventTimeLayout = "02.01.2006 15:04"

// IsValid reports whether s is one of the known listing statuses.
func (s AdStatus) IsValid() bool {
	return s == StatusLost || s == StatusFound
}

// Contact holds the poster's contact details shown on the listing.
type Contact struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
	Email string `json:"email" bson:"email"`
}

// Ad is a lost/found pet listing. Immutable after creation: there are no
// edit or delete operations.
type Ad struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	UserID      string   `json:"user_id" bson:"user_id"`
	Status      AdStatus `json:"status" bson:"status"`
	Type        string   `json:"type" bson:"type"`
	Breed       string   `json:"breed" bson:"breed"`
	Color       string   `json:"color" bson:"color"`
	Size        string   `json:"size" bson:"size"`
	Distincts   string   `json:"distincts,omitempty" bson:"distincts,omitempty"`
	Nickname    string   `json:"nickname,omitempty" bson:"nickname,omitempty"`
	Danger      string   `json:"danger" bson:"danger"`
	Location    string   `json:"location" bson:"location"`
	GeoLocation []string `json:"geo_location,omitempty" bson:"geo_location,omitempty"`
	// Time is when the animal was lost or found, distinct from CreatedAt.
	Time      time.Time `json:"time" bson:"time"`
	Contact   Contact   `json:"contact" bson:"contact"`
	Extras    string    `json:"extras,omitempty" bson:"extras,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
