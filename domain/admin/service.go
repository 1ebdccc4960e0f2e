package admin

import (
	"context"
	"time"

	"github.com/votigram/waitlist-api/internal/log"
	"github.com/votigram/waitlist-api/internal/models"
	apperrors "github.com/votigram/waitlist-api/pkg/errors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
)

type AdminService interface {
	// ListEntries returns one page of entries, newest first, optionally
	// filtered by status. Non-positive page/limit fall back to defaults;
	// an out-of-range page yields an empty list, not an error.
	ListEntries(ctx context.Context, status string, page, limit int) (*ListEntriesResponse, error)

	// GetEntry retrieves a single entry by ID.
	GetEntry(ctx context.Context, id uint) (*EntryResponse, error)

	// UpdateStatus transitions an entry to the given status. Any current
	// status may move to any valid status; only the target is checked.
	UpdateStatus(ctx context.Context, id uint, status string) error

	// DeleteEntry removes an entry by ID.
	DeleteEntry(ctx context.Context, id uint) error
}

type adminService struct {
	logger     *log.Logger
	repository AdminRepository
}

func NewAdminService(logger *log.Logger, repository AdminRepository) AdminService {
	return &adminService{logger: logger, repository: repository}
}

func (s *adminService) ListEntries(ctx context.Context, status string, page, limit int) (*ListEntriesResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	if status != "" && !models.ValidStatus(status) {
		return nil, NewInvalidStatusError()
	}

	total, err := s.repository.CountEntries(ctx, status)
	if err != nil {
		logger.Error("Failed to count waitlist entries", "error", err)
		return nil, err
	}

	entries, err := s.repository.ListEntries(ctx, status, (page-1)*limit, limit)
	if err != nil {
		logger.Error("Failed to list waitlist entries", "error", err)
		return nil, err
	}

	responses := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToEntryResponse(entry))
	}

	return &ListEntriesResponse{
		Entries: responses,
		Pagination: Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: pageCount(total, limit),
		},
	}, nil
}

func (s *adminService) GetEntry(ctx context.Context, id uint) (*EntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("GetEntry received invalid ID")
		return nil, apperrors.NewInvalidRequestError("invalid entry ID", nil)
	}

	entry, err := s.repository.FindEntryByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find waitlist entry", "id", id, "error", err)
		return nil, err
	}

	response := ToEntryResponse(entry)
	return &response, nil
}

func (s *adminService) UpdateStatus(ctx context.Context, id uint, status string) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("UpdateStatus received invalid ID")
		return apperrors.NewInvalidRequestError("invalid entry ID", nil)
	}

	if !models.ValidStatus(status) {
		return NewInvalidStatusError()
	}

	if err := s.repository.UpdateStatus(ctx, id, status, time.Now().UTC()); err != nil {
		logger.Error("Failed to update waitlist entry status", "id", id, "error", err)
		return err
	}

	logger.Info("Waitlist entry status updated", "id", id, "status", status)
	return nil
}

func (s *adminService) DeleteEntry(ctx context.Context, id uint) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("DeleteEntry received invalid ID")
		return apperrors.NewInvalidRequestError("invalid entry ID", nil)
	}

	if err := s.repository.DeleteEntry(ctx, id); err != nil {
		logger.Error("Failed to delete waitlist entry", "id", id, "error", err)
		return err
	}

	logger.Info("Waitlist entry deleted", "id", id)
	return nil
}

func pageCount(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
