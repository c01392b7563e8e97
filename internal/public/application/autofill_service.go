package application

import (
	"context"
	"log"

	"github.com/mzansibiz/mzansibiz-services/api/internal/public/domain"
)

// NewAddressAutofillService assembles the address autofill pipeline:
// permission prompts, one-shot position fix, reverse-geocode lookup.
func NewAddressAutofillService(permissions PermissionGate, locator Locator, geocoder ReverseGeocoder, logger *log.Logger) AddressAutofillService {
	return &addressAutofillService{
		permissions: permissions,
		locator:     locator,
		geocoder:    geocoder,
		logger:      logger,
	}
}

type addressAutofillService struct {
	permissions PermissionGate
	locator     Locator
	geocoder    ReverseGeocoder
	logger      *log.Logger
}

// Resolve runs the autofill sequence on entering the registration flow.
// Location permission is requested before media permission; position
// acquisition and geocoding happen only after both grants, in order.
//
// The loading callback brackets the remote portion of the flow so the
// address input can be held read-only while the lookup is in flight; it
// is released unconditionally whether the lookup succeeds, matches
// nothing, or fails.
func (s *addressAutofillService) Resolve(ctx context.Context, loading func(bool)) (AutofillResult, error) {
	if err := s.permissions.RequestLocation(ctx); err != nil {
		return AutofillResult{}, domain.ErrLocationPermissionDenied
	}
	if err := s.permissions.RequestMediaLibrary(ctx); err != nil {
		return AutofillResult{}, domain.ErrMediaPermissionDenied
	}

	if loading != nil {
		loading(true)
		defer loading(false)
	}

	coord, err := s.locator.CurrentPosition(ctx)
	if err != nil {
		return AutofillResult{}, &domain.GeocodeTransportError{Err: err}
	}

	address, err := s.geocoder.Reverse(ctx, coord)
	if err != nil {
		return AutofillResult{Coordinate: coord}, err
	}

	s.logger.Printf("address autofill resolved %s to %q", coord, address)
	return AutofillResult{Address: address, Coordinate: coord}, nil
}
