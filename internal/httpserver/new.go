package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"smart-todo-backend/pkg/gcalendar"
	"smart-todo-backend/pkg/gemini"
	"smart-todo-backend/pkg/log"
	"smart-todo-backend/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB   *sql.DB
	scopeManager scope.Manager

	// AI pipelines
	geminiClient *gemini.Client
	hasGeminiKey bool
	timezone     string

	// Calendar (optional)
	calendar   *gcalendar.Client
	calendarID string

	aiRequestsPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB   *sql.DB
	ScopeManager scope.Manager

	GeminiClient *gemini.Client
	HasGeminiKey bool
	Timezone     string

	Calendar   *gcalendar.Client
	CalendarID string

	AIRequestsPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		postgresDB:       cfg.PostgresDB,
		scopeManager:     cfg.ScopeManager,
		geminiClient:     cfg.GeminiClient,
		hasGeminiKey:     cfg.HasGeminiKey,
		timezone:         cfg.Timezone,
		calendar:         cfg.Calendar,
		calendarID:       cfg.CalendarID,
		aiRequestsPerMin: cfg.AIRequestsPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.scopeManager == nil {
		return errors.New("scope manager is required")
	}
	if srv.geminiClient == nil {
		return errors.New("gemini client is required")
	}
	return nil
}
