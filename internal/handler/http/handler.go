package http

import (
	"time"

	"github.com/MKhiriev/go-item-transfer/internal/config"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/service"
	"github.com/MKhiriev/go-item-transfer/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewRequestValidator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
