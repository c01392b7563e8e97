package application

import (
	"context"

	"github.com/mzansibiz/mzansibiz-services/api/internal/public/domain"
)

// BusinessRepository abstracts the business record store.
// Insert assigns the store identifier; FindAll returns the whole
// collection with no ordering guarantee and an empty slice for zero
// records.
type BusinessRepository interface {
	Insert(ctx context.Context, record domain.BusinessRecord) (domain.DirectoryEntry, error)
	FindAll(ctx context.Context) ([]domain.DirectoryEntry, error)
}

// LogoStorage writes a binary blob under the given key and returns a
// durable, publicly resolvable URL for it.
type LogoStorage interface {
	Upload(ctx context.Context, key string, blob []byte, contentType string) (string, error)
}

// ReverseGeocoder converts a coordinate pair into a human-readable
// address. Implementations return domain.ErrGeocodeEmpty when the lookup
// matches nothing and *domain.GeocodeTransportError for network or
// parsing failures.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, coord domain.Coordinate) (string, error)
}

// PermissionGate models the device permission prompts. Each request
// blocks until the user answers and returns the matching sentinel error
// on denial.
type PermissionGate interface {
	RequestLocation(ctx context.Context) error
	RequestMediaLibrary(ctx context.Context) error
}

// Locator supplies a one-shot current position after a permission grant.
type Locator interface {
	CurrentPosition(ctx context.Context) (domain.Coordinate, error)
}

// MediaAsset is the local resource handle produced by a picker.
type MediaAsset struct {
	Handle      string
	ContentType string
}

// MediaPicker lets the user select a single image. It returns
// domain.ErrSelectionCancelled when the user backs out.
type MediaPicker interface {
	PickImage(ctx context.Context) (MediaAsset, error)
}

// AssetLoader fetches a local resource handle into a binary blob plus
// its content type.
type AssetLoader interface {
	Load(ctx context.Context, handle string) ([]byte, string, error)
}

// AssetLoaderFunc adapts a function to the AssetLoader interface.
type AssetLoaderFunc func(ctx context.Context, handle string) ([]byte, string, error)

func (f AssetLoaderFunc) Load(ctx context.Context, handle string) ([]byte, string, error) {
	return f(ctx, handle)
}

// RegistrationService drives the write side of the directory: logo
// selection and the submit pipeline.
type RegistrationService interface {
	SelectLogo(ctx context.Context, draft domain.Draft) (domain.Draft, error)
	Submit(ctx context.Context, draft domain.Draft, assets AssetLoader) (domain.DirectoryEntry, error)
}

// DirectoryQueryService is the read side: the full collection fetch
// backing the listing view. A retrieval failure degrades to an empty
// collection instead of surfacing an error.
type DirectoryQueryService interface {
	FetchAll(ctx context.Context) []domain.DirectoryEntry
}

// AddressAutofillService runs the permission-gated location acquisition
// and reverse-geocode lookup that prefills the address field.
type AddressAutofillService interface {
	Resolve(ctx context.Context, loading func(bool)) (AutofillResult, error)
}

// AutofillResult carries the resolved address together with the position
// it was derived from.
type AutofillResult struct {
	Address    string
	Coordinate domain.Coordinate
}
