package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/server"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Clients  Clients
	Repos    Repos
	Services Services
	Router   *gin.Engine
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig(log)

	clients, err := wireClients(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	repos := wireRepos(clients.Neo4j, log)
	svcs := wireServices(log, clients, repos)
	handlerset := wireHandlers(log, svcs)

	router := server.NewRouter(server.RouterConfig{
		Log:                log,
		CORSOrigins:        cfg.CORSOrigins,
		RequestTimeout:     cfg.RequestTimeout,
		PersonalityHandler: handlerset.Personality,
		CareerHandler:      handlerset.Career,
		PathHandler:        handlerset.Path,
		GraphHandler:       handlerset.Graph,
		ChatHandler:        handlerset.Chat,
	})

	return &App{
		Log:      log,
		Cfg:      cfg,
		Clients:  clients,
		Repos:    repos,
		Services: svcs,
		Router:   router,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("listening", "addr", a.Cfg.Addr)
	return a.Router.Run(a.Cfg.Addr)
}

func (a *App) Close(ctx context.Context) {
	if a == nil {
		return
	}
	if a.Clients.Neo4j != nil {
		if err := a.Clients.Neo4j.Close(ctx); err != nil {
			a.Log.Warn("neo4j close failed", "error", err)
		}
	}
	if a.Clients.GraphCache != nil {
		if err := a.Clients.GraphCache.Close(); err != nil {
			a.Log.Warn("graph cache close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
