package admin

import (
	apperrors "github.com/votigram/waitlist-api/pkg/errors"
)

func NewInvalidStatusError() *apperrors.AppError {
	return apperrors.NewFieldError(
		apperrors.ErrorTypeInvalidRequest,
		"status",
		"Invalid status value (must be pending, approved, rejected, or contacted)",
		nil,
	)
}
