package domain

import (
	"fmt"
	"net/url"
)

// Coordinate is an ephemeral latitude/longitude pair. It lives for the
// duration of a single reverse-geocode lookup and is never persisted.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f+%.6f", c.Latitude, c.Longitude)
}

// MapSearchURL resolves a map-search URL for an entry's address. The raw
// address string is URL-encoded into the query as-is.
func MapSearchURL(address string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address)
}

// DialURL resolves a phone-dial URL from a contact number. The number is
// passed through unvalidated, matching whatever the user registered.
func DialURL(contactNumber string) string {
	return "tel:" + contactNumber
}
