package waitlist

import (
	"github.com/votigram/waitlist-api/config/router"
	"github.com/votigram/waitlist-api/internal/log"
	"github.com/votigram/waitlist-api/pkg/factory"
	"gorm.io/gorm"
)

type WaitlistServiceFactory interface {
	CreateController() *router.RESTController
}

type DefaultWaitlistServiceFactory struct {
	db       *gorm.DB
	logger   *log.Logger
	cache    factory.Cache
	notifier Notifier
}

func NewWaitlistServiceFactory(db *gorm.DB, logger *log.Logger, cache factory.Cache, notifier Notifier) WaitlistServiceFactory {
	return &DefaultWaitlistServiceFactory{
		db:       db,
		logger:   logger,
		cache:    cache,
		notifier: notifier,
	}
}

func (f *DefaultWaitlistServiceFactory) CreateController() *router.RESTController {
	return NewWaitlistController(f.db, f.logger, f.cache, f.notifier)
}
