package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"smart-todo-backend/config"
	_ "smart-todo-backend/docs" // Swagger docs
	"smart-todo-backend/internal/httpserver"
	"smart-todo-backend/pkg/gcalendar"
	"smart-todo-backend/pkg/gemini"
	"smart-todo-backend/pkg/log"
	"smart-todo-backend/pkg/scope"
)

// @title       Smart Todo API
// @description AI-assisted todo backend: natural-language todo extraction and todo analytics powered by Gemini.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Todo backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.URL)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres: %v", err)
		return
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancel()
		logger.Fatalf(ctx, "Failed to ping postgres: %v", err)
		return
	}
	cancel()
	logger.Info(ctx, "Postgres connected")

	// 4. Scope manager
	scopeManager := scope.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	// 5. Gemini client. The server still boots without a key; the AI
	// endpoints fail fast with a configuration error.
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY not set, AI endpoints will return configuration errors")
	}

	// 6. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB:   db,
		ScopeManager: scopeManager,

		GeminiClient: geminiClient,
		HasGeminiKey: cfg.Gemini.APIKey != "",
		Timezone:     cfg.Gemini.Timezone,

		Calendar:   calendarClient,
		CalendarID: cfg.GoogleCalendar.CalendarID,

		AIRequestsPerMin: cfg.RateLimit.AIRequestsPerMin,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
