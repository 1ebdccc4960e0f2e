package admin

import (
	"context"
	"errors"
	"time"

	"github.com/votigram/waitlist-api/internal/models"
	apperrors "github.com/votigram/waitlist-api/pkg/errors"
	"gorm.io/gorm"
)

type AdminRepository interface {
	// ListEntries returns a page of entries sorted by joinedAt descending.
	// status filters when non-empty.
	ListEntries(ctx context.Context, status string, offset, limit int) ([]*models.WaitlistEntry, error)
	// CountEntries counts entries, filtered by status when non-empty.
	CountEntries(ctx context.Context, status string) (int64, error)
	// FindEntryByID retrieves one entry by its store identifier.
	FindEntryByID(ctx context.Context, id uint) (*models.WaitlistEntry, error)
	// UpdateStatus sets status and updatedAt on the entry with the given ID.
	UpdateStatus(ctx context.Context, id uint, status string, updatedAt time.Time) error
	// DeleteEntry removes an entry by its ID.
	DeleteEntry(ctx context.Context, id uint) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (ar *adminRepository) ListEntries(ctx context.Context, status string, offset, limit int) ([]*models.WaitlistEntry, error) {
	query := ar.db.WithContext(ctx).Model(&models.WaitlistEntry{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var entries []*models.WaitlistEntry
	if err := query.
		Order("joined_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch waitlist entries", err)
	}

	return entries, nil
}

func (ar *adminRepository) CountEntries(ctx context.Context, status string) (int64, error) {
	query := ar.db.WithContext(ctx).Model(&models.WaitlistEntry{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, apperrors.NewDatabaseError("unable to count waitlist entries", err)
	}

	return total, nil
}

func (ar *adminRepository) FindEntryByID(ctx context.Context, id uint) (*models.WaitlistEntry, error) {
	var entry models.WaitlistEntry

	if err := ar.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("waitlist entry not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch waitlist entry", err)
	}

	return &entry, nil
}

func (ar *adminRepository) UpdateStatus(ctx context.Context, id uint, status string, updatedAt time.Time) error {
	result := ar.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": updatedAt,
		})

	if result.Error != nil {
		return apperrors.NewDatabaseError("unable to update waitlist entry", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("waitlist entry not found", nil)
	}

	return nil
}

func (ar *adminRepository) DeleteEntry(ctx context.Context, id uint) error {
	result := ar.db.WithContext(ctx).Delete(&models.WaitlistEntry{}, id)

	if result.Error != nil {
		return apperrors.NewDatabaseError("unable to delete waitlist entry", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("waitlist entry not found", nil)
	}

	return nil
}
