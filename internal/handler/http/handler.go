package http

import (
	"github.com/eterna-app/eterna/internal/config"
	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/service"
)

type Handler struct {
	services *service.Services

	// uploadDir is the on-disk root served under /uploads/.
	uploadDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Files, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		uploadDir: cfg.UploadDir,
		logger:    logger,
	}
}
