package config

import (
	"pdf-qr-stamper/internal/domain"
	"pdf-qr-stamper/internal/service"
	"pdf-qr-stamper/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config  domain.Config
	Logger  domain.Logger
	Stamper domain.Stamper
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Processing pipeline: validate -> geometry -> render -> merge
	validator := service.NewPDFValidator(appLogger)
	renderer := service.NewQRRenderer()
	compositor := service.NewCompositor(appLogger)
	stamper := service.NewStampService(validator, renderer, compositor, appLogger)

	return &Container{
		Config:  config,
		Logger:  appLogger,
		Stamper: stamper,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetStamper returns the stamping pipeline instance
func (c *Container) GetStamper() domain.Stamper {
	return c.Stamper
}
