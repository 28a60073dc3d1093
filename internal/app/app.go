// Package app assembles the service from a loaded configuration. Both the
// API server and the CLI build their dependencies through it.
package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"mediexplain/internal/analysis"
	"mediexplain/internal/auth"
	"mediexplain/internal/config"
	"mediexplain/internal/handler"
	"mediexplain/internal/knowledge"
	"mediexplain/internal/speech"
	"mediexplain/internal/storage"
)

type App struct {
	Config    *config.Config
	Store     storage.Store
	Sessions  *storage.SessionStore
	History   *storage.HistoryStore
	Analyzer  *analysis.Analyzer
	Knowledge *knowledge.Client
	Narrator  speech.Narrator
}

// New opens storage and builds the clients. Close releases them.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	config.SetupLogging(cfg.Log)
	auth.Init(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	store, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage.Driver, err)
	}

	var narrator speech.Narrator = speech.Disabled{}
	if cfg.Speech.Enabled {
		g, err := speech.NewGoogleNarrator(ctx, cfg.Speech.CredentialsFile)
		if err != nil {
			store.Close()
			return nil, err
		}
		narrator = g
	}

	history := storage.NewHistoryStore(store)
	return &App{
		Config:    cfg,
		Store:     store,
		Sessions:  storage.NewSessionStore(store),
		History:   history,
		Analyzer:  analysis.NewAnalyzer(analysis.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout), history),
		Knowledge: knowledge.NewClient(cfg.KnowledgeBaseURL(), cfg.Backend.Timeout),
		Narrator:  narrator,
	}, nil
}

func (a *App) Handler() *handler.Handler {
	return handler.New(a.Store, a.Analyzer, a.Knowledge, a.Narrator, a.Config.Auth.LoginDelay)
}

func (a *App) RouterOptions() handler.RouterOptions {
	return handler.RouterOptions{
		AllowedOrigins: a.Config.Server.AllowedOrigins,
		RateLimitRPS:   a.Config.RateLimit.RPS,
		RateLimitBurst: a.Config.RateLimit.Burst,
	}
}

func (a *App) Close() error {
	if err := a.Narrator.Close(); err != nil {
		log.Printf("Close(): narrator: %v", err)
	}
	return a.Store.Close()
}
