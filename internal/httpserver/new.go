package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"botschema/api/jsonschema"
	"botschema/internal/middleware"
	"botschema/pkg/log"
	"botschema/pkg/telegram"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Inspect domain
	enumPolicy telegram.EnumPolicy
	schemas    *jsonschema.Registry
	mw         middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Inspect domain
	EnumPolicy telegram.EnumPolicy
	Schemas    *jsonschema.Registry
	RateLimit  middleware.Config
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		enumPolicy:  cfg.EnumPolicy,
		schemas:     cfg.Schemas,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mw = middleware.New(logger, cfg.RateLimit)

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}
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
	if srv.schemas == nil {
		return errors.New("schema registry is required")
	}
	return nil
}
