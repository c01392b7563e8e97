package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/mzansibiz/mzansibiz-services/api/internal/public/domain"
)

type fakeRepo struct {
	inserts []domain.BusinessRecord
	entries []domain.DirectoryEntry
	failing error
}

func (r *fakeRepo) Insert(_ context.Context, record domain.BusinessRecord) (domain.DirectoryEntry, error) {
	if r.failing != nil {
		return domain.DirectoryEntry{}, r.failing
	}
	r.inserts = append(r.inserts, record)
	return domain.DirectoryEntry{
		ID:            fmt.Sprintf("id-%d", len(r.inserts)),
		BusinessName:  record.BusinessName,
		Address:       record.Address,
		Category:      record.Category,
		ContactNumber: record.ContactNumber,
		LogoURL:       record.LogoURL,
	}, nil
}

func (r *fakeRepo) FindAll(context.Context) ([]domain.DirectoryEntry, error) {
	if r.failing != nil {
		return nil, r.failing
	}
	return r.entries, nil
}

type fakeStorage struct {
	uploads []string
	failing error
	order   *[]string
}

func (s *fakeStorage) Upload(_ context.Context, key string, _ []byte, _ string) (string, error) {
	if s.failing != nil {
		return "", s.failing
	}
	s.uploads = append(s.uploads, key)
	if s.order != nil {
		*s.order = append(*s.order, "upload")
	}
	return "https://blob.example.com/" + key, nil
}

func blobLoader() AssetLoader {
	return AssetLoaderFunc(func(_ context.Context, handle string) ([]byte, string, error) {
		return []byte("jpeg-bytes-of-" + handle), "image/jpeg", nil
	})
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func completeDraft() domain.Draft {
	return domain.NewDraft().
		WithBusinessName("Joe's Cafe").
		WithAddress("12 Long Street, Cape Town").
		WithCategory("Food").
		WithContactNumber("0215551234").
		WithLogoHandle("file:///tmp/logo.jpg")
}

func TestSubmitSuccessUploadsThenPersists(t *testing.T) {
	var order []string
	repo := &fakeRepo{}
	storage := &fakeStorage{order: &order}

	svc := &registrationService{
		repo:    &orderTrackingRepo{inner: repo, order: &order},
		storage: storage,
		logger:  testLogger(),
		now:     func() time.Time { return time.UnixMilli(1700000000000) },
	}

	entry, err := svc.Submit(context.Background(), completeDraft(), blobLoader())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if len(storage.uploads) != 1 {
		t.Fatalf("expected exactly 1 upload, got %d", len(storage.uploads))
	}
	if len(repo.inserts) != 1 {
		t.Fatalf("expected exactly 1 store write, got %d", len(repo.inserts))
	}
	if len(order) != 2 || order[0] != "upload" || order[1] != "insert" {
		t.Errorf("expected upload before insert, got %v", order)
	}

	wantKey := "businessLogos/1700000000000_Joe's Cafe.jpg"
	if storage.uploads[0] != wantKey {
		t.Errorf("unexpected storage key %q, want %q", storage.uploads[0], wantKey)
	}
	if repo.inserts[0].LogoURL != "https://blob.example.com/"+wantKey {
		t.Errorf("record references %q, not the durable URL", repo.inserts[0].LogoURL)
	}
	if entry.ID == "" {
		t.Error("entry missing store-assigned identifier")
	}
}

type orderTrackingRepo struct {
	inner *fakeRepo
	order *[]string
}

func (r *orderTrackingRepo) Insert(ctx context.Context, record domain.BusinessRecord) (domain.DirectoryEntry, error) {
	entry, err := r.inner.Insert(ctx, record)
	if err == nil {
		*r.order = append(*r.order, "insert")
	}
	return entry, err
}

func (r *orderTrackingRepo) FindAll(ctx context.Context) ([]domain.DirectoryEntry, error) {
	return r.inner.FindAll(ctx)
}

func TestSubmitValidationShortCircuits(t *testing.T) {
	drafts := []domain.Draft{
		completeDraft().WithBusinessName(""),
		completeDraft().WithAddress(""),
		completeDraft().WithCategory(""),
		completeDraft().WithContactNumber(""),
		completeDraft().WithLogoHandle(""),
	}

	for i, draft := range drafts {
		repo := &fakeRepo{}
		storage := &fakeStorage{}
		svc := &registrationService{repo: repo, storage: storage, logger: testLogger(), now: time.Now}

		loaderCalled := false
		loader := AssetLoaderFunc(func(context.Context, string) ([]byte, string, error) {
			loaderCalled = true
			return nil, "", nil
		})

		_, err := svc.Submit(context.Background(), draft, loader)
		var validationErr *domain.ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("draft %d: expected *ValidationError, got %v", i, err)
		}
		if loaderCalled || len(storage.uploads) != 0 || len(repo.inserts) != 0 {
			t.Errorf("draft %d: validation failure must not touch any collaborator", i)
		}
	}
}

func TestSubmitUploadFailureBlocksPersist(t *testing.T) {
	repo := &fakeRepo{}
	storage := &fakeStorage{failing: errors.New("storage quota exceeded")}
	svc := &registrationService{repo: repo, storage: storage, logger: testLogger(), now: time.Now}

	_, err := svc.Submit(context.Background(), completeDraft(), blobLoader())

	var uploadErr *domain.UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("expected *UploadError, got %v", err)
	}
	if len(repo.inserts) != 0 {
		t.Errorf("upload failure must issue zero store writes, got %d", len(repo.inserts))
	}
}

func TestSubmitAssetLoadFailureIsUploadError(t *testing.T) {
	repo := &fakeRepo{}
	storage := &fakeStorage{}
	svc := &registrationService{repo: repo, storage: storage, logger: testLogger(), now: time.Now}

	loader := AssetLoaderFunc(func(context.Context, string) ([]byte, string, error) {
		return nil, "", errors.New("resource vanished")
	})

	_, err := svc.Submit(context.Background(), completeDraft(), loader)
	var uploadErr *domain.UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("expected *UploadError, got %v", err)
	}
	if len(storage.uploads) != 0 || len(repo.inserts) != 0 {
		t.Error("failed resource fetch must not reach storage or the record store")
	}
}

func TestSubmitPersistFailure(t *testing.T) {
	repo := &fakeRepo{failing: errors.New("write concern timeout")}
	storage := &fakeStorage{}
	svc := &registrationService{repo: repo, storage: storage, logger: testLogger(), now: time.Now}

	_, err := svc.Submit(context.Background(), completeDraft(), blobLoader())

	var persistErr *domain.PersistError
	if !errors.As(err, &persistErr) {
		t.Fatalf("expected *PersistError, got %v", err)
	}
	// The upload happened and is not rolled back.
	if len(storage.uploads) != 1 {
		t.Errorf("expected the orphaned upload to remain, got %d uploads", len(storage.uploads))
	}
	if !strings.Contains(persistErr.Error(), "write concern timeout") {
		t.Errorf("persist error should carry the underlying message, got %q", persistErr.Error())
	}
}

type cancellingPicker struct{}

func (cancellingPicker) PickImage(context.Context) (MediaAsset, error) {
	return MediaAsset{}, domain.ErrSelectionCancelled
}

type pickingPicker struct{}

func (pickingPicker) PickImage(context.Context) (MediaAsset, error) {
	return MediaAsset{Handle: "asset://42", ContentType: "image/jpeg"}, nil
}

func TestSelectLogoCancelledLeavesDraftUnchanged(t *testing.T) {
	svc := &registrationService{picker: cancellingPicker{}, logger: testLogger(), now: time.Now}

	draft := completeDraft().WithLogoHandle("")
	result, err := svc.SelectLogo(context.Background(), draft)
	if err != nil {
		t.Fatalf("cancellation must not be an error, got %v", err)
	}
	if result.LogoHandle() != "" {
		t.Errorf("cancellation changed the draft: %q", result.LogoHandle())
	}
}

func TestSelectLogoStoresHandle(t *testing.T) {
	svc := &registrationService{picker: pickingPicker{}, logger: testLogger(), now: time.Now}

	result, err := svc.SelectLogo(context.Background(), domain.NewDraft())
	if err != nil {
		t.Fatalf("SelectLogo failed: %v", err)
	}
	if result.LogoHandle() != "asset://42" {
		t.Errorf("unexpected logo handle %q", result.LogoHandle())
	}
}
