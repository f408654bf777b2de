package app

import (
	"fmt"

	"github.com/zhilu/aicareer-backend/internal/cache"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/platform/neo4jdb"
	"github.com/zhilu/aicareer-backend/internal/platform/openai"
)

type Clients struct {
	Neo4j      *neo4jdb.Client
	OpenAI     openai.Client
	GraphCache *cache.GraphCache
}

func wireClients(log *logger.Logger) (Clients, error) {
	neo4jClient, err := neo4jdb.NewFromEnv(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init neo4j: %w", err)
	}

	openaiClient, err := openai.NewClient(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init openai: %w", err)
	}

	graphCache, err := cache.NewFromEnv(log)
	if err != nil {
		// Cache is optional; run without it rather than failing startup.
		log.Warn("graph cache init failed, continuing without cache", "error", err)
		graphCache = nil
	}

	return Clients{
		Neo4j:      neo4jClient,
		OpenAI:     openaiClient,
		GraphCache: graphCache,
	}, nil
}
