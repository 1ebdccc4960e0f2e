package domain

import (
	"github.com/votigram/waitlist-api/config"
	"github.com/votigram/waitlist-api/domain/admin"
	"github.com/votigram/waitlist-api/domain/monitoring"
	"github.com/votigram/waitlist-api/domain/waitlist"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.DB, appConfig.Logger, appConfig.Cache, appConfig.Mailer))

	// A nil *mailer.Mailer must stay a nil Notifier interface, otherwise the
	// service would dispatch sends against a nil receiver.
	var notifier waitlist.Notifier
	if appConfig.Mailer != nil {
		notifier = appConfig.Mailer
	}

	waitlistFactory := waitlist.NewWaitlistServiceFactory(appConfig.DB, appConfig.Logger, appConfig.Cache, notifier)
	appConfig.RouterService.MountController(waitlistFactory.CreateController())
	appConfig.RouterService.MountController(admin.NewAdminController(appConfig.DB, appConfig.Logger, appConfig.Config.AdminAPIKey))
}
