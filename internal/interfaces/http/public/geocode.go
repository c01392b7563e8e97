package public

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mzansibiz/mzansibiz-services/api/internal/interfaces/http/common"
	publicdomain "github.com/mzansibiz/mzansibiz-services/api/internal/public/domain"
)

// reverseGeocodeHandler proxies the reverse-geocode lookup so the
// geocoding credential stays server-side. The app calls it with the
// device position to autofill the address field.
func (h *Handler) reverseGeocodeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		lat, latErr := strconv.ParseFloat(strings.TrimSpace(query.Get("lat")), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(query.Get("lon")), 64)
		if latErr != nil || lonErr != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "lat and lon must be decimal coordinates"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		address, err := h.geocoder.Reverse(ctx, publicdomain.Coordinate{Latitude: lat, Longitude: lon})
		if errors.Is(err, publicdomain.ErrGeocodeEmpty) {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "Could not fetch address. Please enter it manually."})
			return
		}
		if err != nil {
			h.logger.Printf("reverse geocode failed lat=%f lon=%f: %v", lat, lon, err)
			common.WriteJSON(h.logger, w, http.StatusBadGateway, map[string]string{"error": "Failed to fetch address."})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, reverseGeocodeResponse{Address: address})
	}
}
