package domain

import "time"

// BusinessRecord is the unit of persistence: one registered business.
// A record is only ever constructed with all five fields populated and
// the logo resolved to a durable URL (see Draft.Seal).
type BusinessRecord struct {
	BusinessName  string
	Address       string
	Category      string
	ContactNumber string
	LogoURL       string
}

// DirectoryEntry is a BusinessRecord enriched with its store-assigned
// identifier. Entries are read-only once fetched.
type DirectoryEntry struct {
	ID            string
	BusinessName  string
	Address       string
	Category      string
	ContactNumber string
	LogoURL       string
	CreatedAt     time.Time
}
