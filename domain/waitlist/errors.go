package waitlist

import (
	apperrors "github.com/votigram/waitlist-api/pkg/errors"
)

func NewInvalidEmailError() *apperrors.AppError {
	return apperrors.NewFieldError(
		apperrors.ErrorTypeInvalidRequest,
		"email",
		"Please provide a valid email address",
		nil,
	)
}

func NewInvalidHandleError() *apperrors.AppError {
	return apperrors.NewFieldError(
		apperrors.ErrorTypeInvalidRequest,
		"username",
		"Please provide a valid Twitter handle (3-15 characters, letters, numbers, and underscores only)",
		nil,
	)
}

func NewDuplicateEmailError(err error) *apperrors.AppError {
	return apperrors.NewFieldError(
		apperrors.ErrorTypeConflict,
		"email",
		"This email is already on our waitlist",
		err,
	)
}

func NewDuplicateHandleError(err error) *apperrors.AppError {
	return apperrors.NewFieldError(
		apperrors.ErrorTypeConflict,
		"username",
		"This Twitter handle is already on our waitlist",
		err,
	)
}
