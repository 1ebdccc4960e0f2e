package waitlist

import (
	"context"
	"math"
	"time"

	"github.com/votigram/waitlist-api/internal/log"
	"github.com/votigram/waitlist-api/internal/models"
	apperrors "github.com/votigram/waitlist-api/pkg/errors"
)

// SourceDirect is recorded when a submission carries no referring page.
const SourceDirect = "direct"

// accessBatchSize users are granted access each week; a position's estimated
// access date is ceil(position/accessBatchSize) weeks after admission. The
// rule is monotonic: a higher position never yields an earlier date.
const accessBatchSize = 100

const notifyTimeout = 30 * time.Second

// Notifier delivers the signup confirmation. Calls are best-effort: the
// admission result never depends on the outcome.
type Notifier interface {
	SendConfirmation(ctx context.Context, email, handle string, position int64) error
}

type WaitlistService interface {
	// Join runs the full admission sequence: validate, dedupe, assign a
	// position, persist, and dispatch the confirmation email. source is the
	// referring page, or empty for direct signups.
	Join(ctx context.Context, req *JoinWaitlistRequest, source string) (*ConfirmationResponse, error)
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
	notifier   Notifier
}

func NewWaitlistService(logger *log.Logger, repository WaitlistRepository, notifier Notifier) WaitlistService {
	return &waitlistService{logger: logger, repository: repository, notifier: notifier}
}

func (s *waitlistService) Join(ctx context.Context, req *JoinWaitlistRequest, source string) (*ConfirmationResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("Join received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	if !ValidEmail(req.Email) {
		return nil, NewInvalidEmailError()
	}

	if !ValidHandle(req.Username) {
		return nil, NewInvalidHandleError()
	}

	handle := NormalizeHandle(req.Username)

	taken, err := s.repository.EmailTaken(ctx, req.Email)
	if err != nil {
		logger.Error("Failed to check email uniqueness", "error", err)
		return nil, err
	}
	if taken {
		return nil, NewDuplicateEmailError(nil)
	}

	taken, err = s.repository.HandleTaken(ctx, handleKey(handle))
	if err != nil {
		logger.Error("Failed to check handle uniqueness", "error", err)
		return nil, err
	}
	if taken {
		return nil, NewDuplicateHandleError(nil)
	}

	if source == "" {
		source = SourceDirect
	}

	entry := &models.WaitlistEntry{
		Email:         req.Email,
		TwitterHandle: handle,
		HandleKey:     handleKey(handle),
		Status:        models.StatusPending,
		Source:        source,
		JoinedAt:      time.Now().UTC(),
	}

	created, err := s.repository.CreateEntry(ctx, entry)
	if err != nil {
		logger.Error("Failed to create waitlist entry", "error", err)
		return nil, err
	}

	logger.Info("Added to waitlist",
		"handle", created.TwitterHandle,
		"email", created.Email,
		"position", created.Position,
	)

	s.dispatchConfirmation(created)

	response := ToConfirmationResponse(created)
	return &response, nil
}

// dispatchConfirmation fires the notifier on its own goroutine with a fresh
// bounded context. Failures are logged and discarded, never retried.
func (s *waitlistService) dispatchConfirmation(entry *models.WaitlistEntry) {
	if s.notifier == nil {
		return
	}

	email, handle, position := entry.Email, entry.TwitterHandle, entry.Position
	logger := s.logger

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.SendConfirmation(ctx, email, handle, position); err != nil {
			logger.Error("Failed to send confirmation email",
				"email", email,
				"position", position,
				"error", err,
			)
		}
	}()
}

func estimatedAccessDate(entry *models.WaitlistEntry) time.Time {
	weeks := int(math.Ceil(float64(entry.Position) / float64(accessBatchSize)))
	if weeks < 1 {
		weeks = 1
	}
	return entry.JoinedAt.AddDate(0, 0, weeks*7)
}
