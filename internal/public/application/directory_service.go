package application

import (
	"context"
	"log"

	"github.com/mzansibiz/mzansibiz-services/api/internal/public/domain"
)

// NewDirectoryQueryService creates the listing read service.
func NewDirectoryQueryService(repo BusinessRepository, logger *log.Logger) DirectoryQueryService {
	return &directoryQueryService{repo: repo, logger: logger}
}

type directoryQueryService struct {
	repo   BusinessRepository
	logger *log.Logger
}

// FetchAll retrieves every persisted business. Zero records yield an
// empty collection; a transport failure is logged and also degrades to
// an empty collection so the listing view renders instead of blocking.
func (s *directoryQueryService) FetchAll(ctx context.Context) []domain.DirectoryEntry {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		fetchErr := &domain.FetchError{Err: err}
		s.logger.Printf("directory fetch degraded to empty collection: %v", fetchErr)
		return []domain.DirectoryEntry{}
	}
	if entries == nil {
		return []domain.DirectoryEntry{}
	}
	return entries
}
