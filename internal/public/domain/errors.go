package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the expected, non-exceptional outcomes of the
// registration flow. Handlers and callers branch on these with errors.Is.
var (
	// ErrLocationPermissionDenied is returned when the user refuses
	// location access; the address stays empty and editable.
	ErrLocationPermissionDenied = errors.New("location permission denied")

	// ErrMediaPermissionDenied is returned when the user refuses
	// media-library access.
	ErrMediaPermissionDenied = errors.New("media library permission denied")

	// ErrGeocodeEmpty means the lookup succeeded but matched no address.
	ErrGeocodeEmpty = errors.New("no address found for coordinates")

	// ErrSelectionCancelled is reported by a media picker when the user
	// backs out of selection. It is not a failure: callers leave state
	// unchanged.
	ErrSelectionCancelled = errors.New("media selection cancelled")

	// ErrLogoTooLarge is reported by an asset loader when the selected
	// logo exceeds the upload cap. The submission is rejected whole;
	// nothing is stored.
	ErrLogoTooLarge = errors.New("logo exceeds the upload size limit")
)

// ValidationError reports a missing required field detected before
// submission. It blocks the whole submission: no remote service is
// contacted.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// GeocodeTransportError wraps a network or parsing failure during the
// reverse-geocode lookup. It must never crash the flow; the address is
// simply left for manual entry.
type GeocodeTransportError struct {
	Err error
}

func (e *GeocodeTransportError) Error() string { return "failed to fetch address: " + e.Err.Error() }
func (e *GeocodeTransportError) Unwrap() error { return e.Err }

// UploadError wraps a blob-storage failure. It fails the whole
// submission before any record is written, so no record with a missing
// logo can exist.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return "logo upload failed: " + e.Err.Error() }
func (e *UploadError) Unwrap() error { return e.Err }

// PersistError wraps a record-store write failure. It occurs after a
// successful upload; the uploaded blob is not rolled back.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string { return "business record write failed: " + e.Err.Error() }
func (e *PersistError) Unwrap() error { return e.Err }

// FetchError wraps a listing retrieval failure. Callers degrade to an
// empty collection rather than blocking the directory view.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return "business listing fetch failed: " + e.Err.Error() }
func (e *FetchError) Unwrap() error { return e.Err }
