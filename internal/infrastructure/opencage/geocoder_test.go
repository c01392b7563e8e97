package opencage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mzansibiz/mzansibiz-services/api/internal/public/domain"
)

func TestReverseReturnsFirstFormattedResult(t *testing.T) {
	var gotQuery, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"formatted":"12 Main St, City"},{"formatted":"13 Main St, City"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)
	address, err := client.Reverse(context.Background(), domain.Coordinate{Latitude: -33.918861, Longitude: 18.4233})
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}

	if address != "12 Main St, City" {
		t.Errorf("expected the first result, got %q", address)
	}
	if gotQuery != "-33.918861+18.423300" {
		t.Errorf("unexpected q parameter %q", gotQuery)
	}
	if gotKey != "test-key" {
		t.Errorf("unexpected key parameter %q", gotKey)
	}
}

func TestReverseEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)
	_, err := client.Reverse(context.Background(), domain.Coordinate{})
	if !errors.Is(err, domain.ErrGeocodeEmpty) {
		t.Fatalf("expected ErrGeocodeEmpty, got %v", err)
	}
}

func TestReverseAbsentResultsField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status":{"code":200}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)
	_, err := client.Reverse(context.Background(), domain.Coordinate{})
	if !errors.Is(err, domain.ErrGeocodeEmpty) {
		t.Fatalf("an absent results field is an empty match, got %v", err)
	}
}

func TestReverseNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)
	_, err := client.Reverse(context.Background(), domain.Coordinate{})

	var transportErr *domain.GeocodeTransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *GeocodeTransportError, got %v", err)
	}
}

func TestReverseMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results":`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)
	_, err := client.Reverse(context.Background(), domain.Coordinate{})

	var transportErr *domain.GeocodeTransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *GeocodeTransportError, got %v", err)
	}
}

func TestReverseConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "test-key", time.Second)
	_, err := client.Reverse(context.Background(), domain.Coordinate{})

	var transportErr *domain.GeocodeTransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *GeocodeTransportError, got %v", err)
	}
}
