package admin

import (
	"github.com/votigram/waitlist-api/config/router"
	"github.com/votigram/waitlist-api/internal/log"
	apperrors "github.com/votigram/waitlist-api/pkg/errors"
	"gorm.io/gorm"
)

func NewAdminController(db *gorm.DB, logger *log.Logger, apiKey string) *router.RESTController {
	return router.NewVersionedRESTController(
		"AdminWaitlistController",
		"v1",
		"/admin/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewAdminRepository(db)
			service := NewAdminService(logger, repository)

			auth := RequireAPIKey(apiKey, logger)

			rs.AddGetHandler(c, nil, "", listEntriesHandler(service), auth)
			rs.AddGetHandler(c, nil, "/:id", getEntryHandler(service), auth)
			rs.AddPutHandler(c, nil, "", updateEntryHandler(service), auth)
			rs.AddDeleteHandler(c, nil, "/:id", deleteEntryHandler(service), auth)
		},
	)
}

func listEntriesHandler(service AdminService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var query ListEntriesQuery
		if err := ctx.ShouldBindQuery(&query); err != nil {
			logger.Error("Failed to bind query parameters", "error", err)
			return router.BadRequestResult("Invalid query parameters", nil)
		}

		response, err := service.ListEntries(ctx.Request.Context(), query.Status, query.Page, query.Limit)
		if err != nil {
			return router.FieldErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetErrorField(err),
				apperrors.GetHumanReadableMessage(err),
			)
		}

		return router.OKResult(response, "Waitlist entries retrieved successfully")
	}
}

func getEntryHandler(service AdminService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		response, err := service.GetEntry(ctx.Request.Context(), id)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Waitlist entry retrieved successfully")
	}
}

func updateEntryHandler(service AdminService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req UpdateEntryRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		if err := service.UpdateStatus(ctx.Request.Context(), req.ID, req.Status); err != nil {
			return router.FieldErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetErrorField(err),
				apperrors.GetHumanReadableMessage(err),
			)
		}

		return router.OKResult(nil, "Waitlist entry updated successfully")
	}
}

func deleteEntryHandler(service AdminService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		if err := service.DeleteEntry(ctx.Request.Context(), id); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(nil, "Waitlist entry deleted successfully")
	}
}
