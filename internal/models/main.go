package models

// ModelRegistry lists every model AutoMigrate manages. Register new models
// here so --auto-migrate picks them up.
var ModelRegistry = []interface{}{
	&WaitlistEntry{},
	&WaitlistCounter{},
}
