package waitlist

import (
	"time"

	"github.com/votigram/waitlist-api/config/router"
	"github.com/votigram/waitlist-api/internal/log"
	apperrors "github.com/votigram/waitlist-api/pkg/errors"
	"github.com/votigram/waitlist-api/pkg/factory"
	"github.com/votigram/waitlist-api/pkg/ratelimit"
	"gorm.io/gorm"
)

func NewWaitlistController(
	db *gorm.DB,
	logger *log.Logger,
	cache factory.Cache,
	notifier Notifier,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"WaitlistController",
		"v1",
		"/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewWaitlistRepository(db)
			service := NewWaitlistService(logger, repository, notifier)

			submissionLimiter := createSubmissionRateLimiter(cache, logger)

			rs.AddPostHandler(c, submissionLimiter, "", joinWaitlistHandler(service))
		},
	)
}

func createSubmissionRateLimiter(cache factory.Cache, logger *log.Logger) ratelimit.RateLimiter {
	// More permissive than the admin default; signups are the public surface.
	const submissionRequestsPerMinute = 30

	return factory.NewDefaultRateLimiterFactory(
		submissionRequestsPerMinute,
		time.Minute,
		cache,
		logger,
	).CreateRateLimiter()
}

func joinWaitlistHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req JoinWaitlistRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		source := ctx.GetHeader("Referer")

		response, err := service.Join(ctx.Request.Context(), &req, source)
		if err != nil {
			return router.FieldErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetErrorField(err),
				apperrors.GetHumanReadableMessage(err),
			)
		}

		return router.OKResult(response, "Thank you for joining our waitlist!")
	}
}
