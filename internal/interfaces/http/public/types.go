package public

import (
	"time"

	publicdomain "github.com/mzansibiz/mzansibiz-services/api/internal/public/domain"
)

type businessEntryResponse struct {
	ID            string     `json:"id"`
	BusinessName  string     `json:"businessName"`
	Address       string     `json:"address"`
	Category      string     `json:"category"`
	ContactNumber string     `json:"contactNumber"`
	LogoURL       string     `json:"logoUrl"`
	MapURL        string     `json:"mapUrl"`
	TelURL        string     `json:"telUrl"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

type businessListResponse struct {
	Items []businessEntryResponse `json:"items"`
	Total int                     `json:"total"`
}

type reverseGeocodeResponse struct {
	Address string `json:"address"`
}

// buildBusinessEntryResponse converts a DirectoryEntry into the listing
// DTO, resolving the two derived action URLs alongside the raw fields.
func buildBusinessEntryResponse(entry publicdomain.DirectoryEntry) businessEntryResponse {
	var createdAt *time.Time
	if !entry.CreatedAt.IsZero() {
		t := entry.CreatedAt
		createdAt = &t
	}

	return businessEntryResponse{
		ID:            entry.ID,
		BusinessName:  entry.BusinessName,
		Address:       entry.Address,
		Category:      entry.Category,
		ContactNumber: entry.ContactNumber,
		LogoURL:       entry.LogoURL,
		MapURL:        publicdomain.MapSearchURL(entry.Address),
		TelURL:        publicdomain.DialURL(entry.ContactNumber),
		CreatedAt:     createdAt,
	}
}
