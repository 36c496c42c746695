package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"customer-support-agents/internal/agent"
	chatHTTP "customer-support-agents/internal/chat/delivery/http"
	"customer-support-agents/internal/middleware"
	userHTTP "customer-support-agents/internal/user/delivery/http"
	validateHTTP "customer-support-agents/internal/validate/delivery/http"
	"customer-support-agents/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	chatHandler     chatHTTP.Handler
	validateHandler validateHTTP.Handler
	userHandler     userHTTP.Handler

	// Handler registry, exposed for agent introspection routes.
	registry *agent.Registry
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ChatHandler     chatHTTP.Handler
	ValidateHandler validateHTTP.Handler
	UserHandler     userHTTP.Handler

	Registry *agent.Registry
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		chatHandler:     cfg.ChatHandler,
		validateHandler: cfg.ValidateHandler,
		userHandler:     cfg.UserHandler,
		registry:        cfg.Registry,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers(middleware.New(logger))

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
