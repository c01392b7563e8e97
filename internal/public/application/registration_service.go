package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mzansibiz/mzansibiz-services/api/internal/public/domain"
)

// LogoKeyFolder prefixes every stored logo object key.
const LogoKeyFolder = "businessLogos"

// NewRegistrationService wires the submit pipeline to its collaborators.
// The picker may be nil when the caller handles selection itself (the
// HTTP interface receives the logo as a multipart upload).
func NewRegistrationService(repo BusinessRepository, storage LogoStorage, picker MediaPicker, logger *log.Logger) RegistrationService {
	return &registrationService{
		repo:    repo,
		storage: storage,
		picker:  picker,
		logger:  logger,
		now:     time.Now,
	}
}

type registrationService struct {
	repo    BusinessRepository
	storage LogoStorage
	picker  MediaPicker
	logger  *log.Logger
	now     func() time.Time
}

// SelectLogo invokes the media picker for a single image. Cancellation
// leaves the draft unchanged and is not an error; a successful pick
// stores the local handle as the pending logo.
func (s *registrationService) SelectLogo(ctx context.Context, draft domain.Draft) (domain.Draft, error) {
	if s.picker == nil {
		return draft, errors.New("no media picker configured")
	}
	asset, err := s.picker.PickImage(ctx)
	if errors.Is(err, domain.ErrSelectionCancelled) {
		return draft, nil
	}
	if err != nil {
		return draft, err
	}
	return draft.WithLogoHandle(asset.Handle), nil
}

// Submit runs the registration pipeline: validate, upload the logo,
// then persist the sealed record. The steps are strictly sequential and
// short-circuit on the first failure, so a successful submission issues
// exactly one upload followed by exactly one store write, and any
// earlier failure issues zero writes.
//
// There is no cancellation wiring: a caller that navigates away leaves
// the pipeline to run to completion detached, identified in the log by
// its flow id.
func (s *registrationService) Submit(ctx context.Context, draft domain.Draft, assets AssetLoader) (domain.DirectoryEntry, error) {
	if err := draft.Validate(); err != nil {
		return domain.DirectoryEntry{}, err
	}

	flowID := uuid.NewString()

	blob, contentType, err := assets.Load(ctx, draft.LogoHandle())
	if err != nil {
		return domain.DirectoryEntry{}, &domain.UploadError{Err: fmt.Errorf("read logo resource: %w", err)}
	}

	key := s.logoKey(draft.BusinessName())
	logoURL, err := s.storage.Upload(ctx, key, blob, contentType)
	if err != nil {
		return domain.DirectoryEntry{}, &domain.UploadError{Err: err}
	}

	record, err := draft.Seal(logoURL)
	if err != nil {
		return domain.DirectoryEntry{}, err
	}

	entry, err := s.repo.Insert(ctx, record)
	if err != nil {
		// The uploaded blob is deliberately not rolled back; log the
		// key so an operator can sweep the orphan.
		s.logger.Printf("registration flow %s: record write failed after upload, orphan blob key=%q: %v", flowID, key, err)
		return domain.DirectoryEntry{}, &domain.PersistError{Err: err}
	}

	s.logger.Printf("registration flow %s: business %q registered as %s", flowID, record.BusinessName, entry.ID)
	return entry, nil
}

// logoKey derives a storage key from the submission timestamp and the
// business name, avoiding collisions across submissions.
func (s *registrationService) logoKey(businessName string) string {
	return fmt.Sprintf("%s/%d_%s.jpg", LogoKeyFolder, s.now().UnixMilli(), businessName)
}
