package admin

import (
	"context"
	"testing"
	"time"

	"github.com/votigram/waitlist-api/internal/log"
	"github.com/votigram/waitlist-api/internal/models"
	apperrors "github.com/votigram/waitlist-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAdminService_ListEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := log.NewLoggerWithJSONOutput()

	entries := []*models.WaitlistEntry{
		{ID: 2, Email: "b@x.com", TwitterHandle: "bob_2", Status: models.StatusPending, Position: 2, JoinedAt: time.Now().UTC()},
		{ID: 1, Email: "a@x.com", TwitterHandle: "alice_1", Status: models.StatusPending, Position: 1, JoinedAt: time.Now().UTC()},
	}

	t.Run("applies default page and limit", func(t *testing.T) {
		mockRepo := NewMockAdminRepository(ctrl)
		service := NewAdminService(logger, mockRepo)

		mockRepo.EXPECT().CountEntries(gomock.Any(), "").Return(int64(2), nil)
		mockRepo.EXPECT().ListEntries(gomock.Any(), "", 0, DefaultLimit).Return(entries, nil)

		result, err := service.ListEntries(context.Background(), "", 0, 0)

		assert.NoError(t, err)
		assert.Len(t, result.Entries, 2)
		assert.Equal(t, DefaultPage, result.Pagination.Page)
		assert.Equal(t, DefaultLimit, result.Pagination.Limit)
		assert.Equal(t, int64(2), result.Pagination.Total)
		assert.Equal(t, 1, result.Pagination.Pages)
	})

	t.Run("computes offset and page count", func(t *testing.T) {
		mockRepo := NewMockAdminRepository(ctrl)
		service := NewAdminService(logger, mockRepo)

		mockRepo.EXPECT().CountEntries(gomock.Any(), "").Return(int64(11), nil)
		mockRepo.EXPECT().ListEntries(gomock.Any(), "", 10, 5).Return([]*models.WaitlistEntry{entries[0]}, nil)

		result, err := service.ListEntries(context.Background(), "", 3, 5)

		assert.NoError(t, err)
		assert.Equal(t, 3, result.Pagination.Page)
		assert.Equal(t, 3, result.Pagination.Pages)
	})

	t.Run("passes status filter through", func(t *testing.T) {
		mockRepo := NewMockAdminRepository(ctrl)
		service := NewAdminService(logger, mockRepo)

		mockRepo.EXPECT().CountEntries(gomock.Any(), models.StatusApproved).Return(int64(0), nil)
		mockRepo.EXPECT().ListEntries(gomock.Any(), models.StatusApproved, 0, DefaultLimit).
			Return([]*models.WaitlistEntry{}, nil)

		result, err := service.ListEntries(context.Background(), models.StatusApproved, 1, 0)

		assert.NoError(t, err)
		assert.Empty(t, result.Entries)
		assert.Equal(t, 0, result.Pagination.Pages)
	})

	t.Run("rejects unknown status filter without store access", func(t *testing.T) {
		mockRepo := NewMockAdminRepository(ctrl)
		service := NewAdminService(logger, mockRepo)

		result, err := service.ListEntries(context.Background(), "archived", 1, 10)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
		assert.Equal(t, "status", apperrors.GetErrorField(err))
	})
}

func TestAdminService_GetEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := log.NewLoggerWithJSONOutput()

	t.Run("returns entry", func(t *testing.T) {
		mockRepo := NewMockAdminRepository(ctrl)
		service := NewAdminService(logger, mockRepo)

		mockRepo.EXPECT().FindEntryByID(gomock.Any(), uint(5)).Return(&models.WaitlistEntry{
			ID:            5,
			Email:         "a@x.com",
			TwitterHandle: "alice_1",
			Status:        models.StatusPending,
			Position:      5,
			JoinedAt:      time.Now().UTC(),
		}, nil)

		result, err := service.GetEntry(context.Background(), 5)

		assert.NoError(t, err)
		assert.Equal(t, uint(5), result.ID)
		assert.Equal(t, "alice_1", result.TwitterHandle)
	})

	t.Run("zero ID rejected", func(t *testing.T) {
		mockRepo := NewMockAdminRepository(ctrl)
		service := NewAdminService(logger, mockRepo)

		result, err := service.GetEntry(context.Background(), 0)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	})

	t.Run("not found propagated", func(t *testing.T) {
		mockRepo := NewMockAdminRepository(ctrl)
		service := NewAdminService(logger, mockRepo)

		mockRepo.EXPECT().FindEntryByID(gomock.Any(), uint(99)).
			Return(nil, apperrors.NewNotFoundError("waitlist entry not found", nil))

		result, err := service.GetEntry(context.Background(), 99)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.GetErrorType(err))
	})
}

func TestAdminService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := log.NewLoggerWithJSONOutput()

	t.Run("updates with current timestamp", func(t *testing.T) {
		mockRepo := NewMockAdminRepository(ctrl)
		service := NewAdminService(logger, mockRepo)

		before := time.Now().UTC()
		mockRepo.EXPECT().
			UpdateStatus(gomock.Any(), uint(3), models.StatusApproved, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint, _ string, updatedAt time.Time) error {
				assert.False(t, updatedAt.Before(before))
				return nil
			})

		err := service.UpdateStatus(context.Background(), 3, models.StatusApproved)
		assert.NoError(t, err)
	})

	t.Run("every valid status accepted", func(t *testing.T) {
		mockRepo := NewMockAdminRepository(ctrl)
		service := NewAdminService(logger, mockRepo)

		for _, status := range []string{
			models.StatusPending,
			models.StatusApproved,
			models.StatusRejected,
			models.StatusContacted,
		} {
			mockRepo.EXPECT().UpdateStatus(gomock.Any(), uint(1), status, gomock.Any()).Return(nil)
			assert.NoError(t, service.UpdateStatus(context.Background(), 1, status))
		}
	})

	t.Run("unknown status rejected without store access", func(t *testing.T) {
		mockRepo := NewMockAdminRepository(ctrl)
		service := NewAdminService(logger, mockRepo)

		err := service.UpdateStatus(context.Background(), 3, "archived")

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
		assert.Equal(t, "status", apperrors.GetErrorField(err))
	})

	t.Run("zero ID rejected", func(t *testing.T) {
		mockRepo := NewMockAdminRepository(ctrl)
		service := NewAdminService(logger, mockRepo)

		err := service.UpdateStatus(context.Background(), 0, models.StatusApproved)
		assert.Error(t, err)
	})

	t.Run("not found propagated", func(t *testing.T) {
		mockRepo := NewMockAdminRepository(ctrl)
		service := NewAdminService(logger, mockRepo)

		mockRepo.EXPECT().
			UpdateStatus(gomock.Any(), uint(99), models.StatusApproved, gomock.Any()).
			Return(apperrors.NewNotFoundError("waitlist entry not found", nil))

		err := service.UpdateStatus(context.Background(), 99, models.StatusApproved)
		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.GetErrorType(err))
	})
}

func TestAdminService_DeleteEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := log.NewLoggerWithJSONOutput()

	t.Run("deletes entry", func(t *testing.T) {
		mockRepo := NewMockAdminRepository(ctrl)
		service := NewAdminService(logger, mockRepo)

		mockRepo.EXPECT().DeleteEntry(gomock.Any(), uint(4)).Return(nil)
		assert.NoError(t, service.DeleteEntry(context.Background(), 4))
	})

	t.Run("zero ID rejected", func(t *testing.T) {
		mockRepo := NewMockAdminRepository(ctrl)
		service := NewAdminService(logger, mockRepo)

		err := service.DeleteEntry(context.Background(), 0)
		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	})

	t.Run("not found propagated", func(t *testing.T) {
		mockRepo := NewMockAdminRepository(ctrl)
		service := NewAdminService(logger, mockRepo)

		mockRepo.EXPECT().DeleteEntry(gomock.Any(), uint(99)).
			Return(apperrors.NewNotFoundError("waitlist entry not found", nil))

		err := service.DeleteEntry(context.Background(), 99)
		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.GetErrorType(err))
	})
}
