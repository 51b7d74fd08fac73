package serializers

import (
	"encoding/json"
	"time"

	"github.com/alx-travel-app/backend/internal/domain/entities"
)

// ListingRepresentation is the flat external form of a property row.
// The host is referenced by ID and never expanded.
type ListingRepresentation struct {
	PropertyID    string `json:"property_id"`
	HostID        string `json:"host_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	PricePerNight string `json:"pricepernight"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// Listing maps a property to its representation
func Listing(p *entities.Property) ListingRepresentation {
	return ListingRepresentation{
		PropertyID:    p.ID,
		HostID:        p.HostID,
		Name:          p.Name,
		Description:   p.Description,
		Location:      p.Location,
		PricePerNight: p.PricePerNight.StringFixed(2),
		CreatedAt:     formatTimestamp(p.CreatedAt),
		UpdatedAt:     formatTimestamp(p.UpdatedAt),
	}
}

// Listings maps a slice of properties, preserving order
func Listings(properties []*entities.Property) []ListingRepresentation {
	out := make([]ListingRepresentation, 0, len(properties))
	for _, p := range properties {
		out = append(out, Listing(p))
	}
	return out
}

// MarshalListing encodes a property as JSON
func MarshalListing(p *entities.Property) ([]byte, error) {
	return json.Marshal(Listing(p))
}

// MarshalListings encodes a slice of properties as a JSON array
func MarshalListings(properties []*entities.Property) ([]byte, error) {
	return json.Marshal(Listings(properties))
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
