package monitoring

import (
	"context"
	"time"

	"github.com/votigram/waitlist-api/config/router"
	"github.com/votigram/waitlist-api/internal/log"
	"github.com/votigram/waitlist-api/pkg/mailer"
	"github.com/votigram/waitlist-api/pkg/ratelimit"
	"gorm.io/gorm"
)

type Cache interface {
	Ping(ctx context.Context) error
}

type HealthStatus struct {
	Database int `json:"database"` // 1 = healthy, 0 = unhealthy
	Cache    int `json:"cache"`    // 1 = healthy, 0 = unhealthy/not configured
	Mailer   int `json:"mailer"`   // 1 = configured and accepting sends, 0 otherwise
	Uptime   int `json:"uptime"`   // uptime in seconds
}

type MonitoringController struct {
	db        *gorm.DB
	logger    *log.Logger
	cache     Cache
	mailer    *mailer.Mailer
	startTime time.Time
}

func NewMonitoringController(db *gorm.DB, logger *log.Logger, cache Cache, m *mailer.Mailer) *router.RESTController {
	ctrl := &MonitoringController{
		db:        db,
		logger:    logger,
		cache:     cache,
		mailer:    m,
		startTime: time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {

			monitoringRateLimiter := createMonitoringRateLimiter()

			routerService.AddGetHandler(controller, monitoringRateLimiter, "", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.monitor(c)
			})

			routerService.AddGetHandler(controller, monitoringRateLimiter, "health", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(routerService, c)
			})
		},
	)
}

func createMonitoringRateLimiter() ratelimit.RateLimiter {
	const monitoringRequestsPerMinute = 10 // More restrictive than default 100

	config := &ratelimit.RateLimitConfig{
		Requests: monitoringRequestsPerMinute,
		Window:   time.Minute,
		Redis:    nil, // Health probes are per-instance; in-memory is enough
		Logger:   nil,
	}

	return ratelimit.NewRateLimiter(config)
}

func (ctrl *MonitoringController) healthCheck(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)
	logger.Info("Health check endpoint called")
	healthStatus := ctrl.performHealthChecks(c.Request.Context(), logger)

	return &router.ServiceResult{
		StatusCode: 200,
		Data:       healthStatus,
		Message:    "waitlist-api health check completed",
	}
}

func (ctrl *MonitoringController) monitor(
	c *router.RequestContext,
) *router.ServiceResult {
	return &router.ServiceResult{
		StatusCode: 200,
		Data:       "Waitlist API is operational.",
		Message:    "Monitoring successful",
	}
}

func (ctrl *MonitoringController) performHealthChecks(ctx context.Context, logger *log.Logger) HealthStatus {
	status := HealthStatus{
		Uptime: int(time.Since(ctrl.startTime).Seconds()),
	}

	if ctrl.checkDatabase(ctx) {
		status.Database = 1
		logger.Info("Database health check passed")
	} else {
		status.Database = 0
		logger.Error("Database health check failed")
	}

	if ctrl.cache != nil {
		if ctrl.cache.Ping(ctx) == nil {
			status.Cache = 1
			logger.Info("Cache health check passed")
		} else {
			status.Cache = 0
			logger.Error("Cache health check failed")
		}
	} else {
		status.Cache = 0
		logger.Info("Cache not configured, cache health check skipped")
	}

	if ctrl.mailer != nil && ctrl.mailer.Healthy() {
		status.Mailer = 1
	} else {
		status.Mailer = 0
	}

	return status
}

func (ctrl *MonitoringController) checkDatabase(ctx context.Context) bool {
	sqlDB, err := ctrl.db.DB()
	if err != nil {
		return false
	}

	return sqlDB.PingContext(ctx) == nil
}
