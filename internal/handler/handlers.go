package handler

import (
	"github.com/eterna-app/eterna/internal/config"
	"github.com/eterna-app/eterna/internal/handler/http"
	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Storage.Files, logger),
	}, nil
}
