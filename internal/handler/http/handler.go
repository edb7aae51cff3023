package http

import (
	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/service"
)

// smallBodyLimit caps every JSON body that carries no file content.
const smallBodyLimit = 1 << 20

type Handler struct {
	services *service.Services
	limits   config.Limits

	logger *logger.Logger
}

func NewHandler(services *service.Services, limits config.Limits, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limits:   limits,
		logger:   logger,
	}
}
