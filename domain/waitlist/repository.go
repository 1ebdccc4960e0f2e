package waitlist

import (
	"context"
	"errors"
	"strings"

	"github.com/votigram/waitlist-api/internal/models"
	apperrors "github.com/votigram/waitlist-api/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WaitlistRepository interface {
	// EmailTaken reports whether an entry with exactly this email exists.
	EmailTaken(ctx context.Context, email string) (bool, error)
	// HandleTaken reports whether an entry with this handle exists under
	// case-insensitive comparison. key must already be lowercased.
	HandleTaken(ctx context.Context, key string) (bool, error)
	// CreateEntry assigns the next queue position and persists the entry in
	// one transaction. entry.Position is populated on return.
	CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error)
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (wr *waitlistRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := wr.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, apperrors.NewDatabaseError("failed to check email uniqueness", err)
	}
	return count > 0, nil
}

func (wr *waitlistRepository) HandleTaken(ctx context.Context, key string) (bool, error) {
	var count int64
	if err := wr.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("handle_key = ?", key).
		Count(&count).Error; err != nil {
		return false, apperrors.NewDatabaseError("failed to check handle uniqueness", err)
	}
	return count > 0, nil
}

func (wr *waitlistRepository) CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
	err := wr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the counter row (FOR UPDATE on PostgreSQL, no-op on SQLite)
		// so concurrent admissions serialize on the increment and never
		// observe the same position.
		var counter models.WaitlistCounter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&counter, models.WaitlistCounterID).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewDatabaseError("failed to lock position counter", err)
			}
			counter = models.WaitlistCounter{ID: models.WaitlistCounterID, Value: 0}
			if err := tx.Create(&counter).Error; err != nil {
				return apperrors.NewDatabaseError("failed to seed position counter", err)
			}
		}

		counter.Value++
		if err := tx.Model(&models.WaitlistCounter{}).
			Where("id = ?", counter.ID).
			Update("value", counter.Value).Error; err != nil {
			return apperrors.NewDatabaseError("failed to advance position counter", err)
		}

		entry.Position = counter.Value
		if err := tx.Create(entry).Error; err != nil {
			if apperrors.IsDuplicateKeyError(err) {
				// An admission that lost the race to the unique indexes
				// surfaces here rather than in the pre-insert lookups.
				return duplicateConflictError(err)
			}
			return apperrors.NewDatabaseError("unable to create waitlist entry", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// duplicateConflictError maps a unique-index violation back to the field it
// protects, using the index name embedded in the driver error.
func duplicateConflictError(err error) *apperrors.AppError {
	if strings.Contains(strings.ToLower(err.Error()), "handle_key") {
		return NewDuplicateHandleError(err)
	}
	return NewDuplicateEmailError(err)
}
