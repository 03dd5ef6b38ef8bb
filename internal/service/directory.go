package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aeroedge/hr-ui-api/internal/domain/directory"
	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
	"github.com/aeroedge/hr-ui-api/internal/ports"
)

// DirectoryService reads profile-linked HR records for the screen layer,
// so screens never talk to the backend adapter directly.
type DirectoryService struct {
	backend ports.DirectoryBackend
	logger  *slog.Logger
}

// NewDirectoryService constructs a DirectoryService.
func NewDirectoryService(backend ports.DirectoryBackend, logger *slog.Logger) *DirectoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirectoryService{backend: backend, logger: logger}
}

// EmployeeRecord returns the employment record linked to a profile, or
// (nil, nil) when the profile has not been onboarded yet.
func (s *DirectoryService) EmployeeRecord(ctx context.Context, sess identity.Session, profileID string) (*directory.EmployeeRecord, error) {
	if profileID == "" {
		return nil, nil
	}
	record, err := s.backend.EmployeeRecordByProfileID(ctx, sess, profileID)
	if err != nil {
		return nil, fmt.Errorf("employee record lookup: %w", err)
	}
	return record, nil
}

// Employees returns directory entries matching the optional free-text
// query.
func (s *DirectoryService) Employees(ctx context.Context, sess identity.Session, query string) ([]directory.DirectoryEntry, error) {
	entries, err := s.backend.ListEmployees(ctx, sess, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return entries, nil
}
