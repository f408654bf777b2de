package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/envutil"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
)

// GraphCache caches the full-graph response per limit. It is optional: a nil
// receiver is a no-op, so callers never branch on configuration. Student and
// career graphs are never cached; each request assembles a fresh snapshot.
type GraphCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewFromEnv returns nil when REDIS_ADDR is unset.
func NewFromEnv(log *logger.Logger) (*GraphCache, error) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    os.Getenv("REDIS_PASSWORD"),
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	ttlSec := envutil.GetEnvAsInt("REDIS_GRAPH_TTL_SECONDS", 300, log)
	return &GraphCache{
		log: log.With("client", "GraphCache"),
		rdb: rdb,
		ttl: time.Duration(ttlSec) * time.Second,
	}, nil
}

func (c *GraphCache) GetFullGraph(ctx context.Context, limit int) (*domain.KnowledgeGraph, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, fullGraphKey(limit)).Bytes()
	if err != nil {
		return nil, false
	}
	var g domain.KnowledgeGraph
	if err := json.Unmarshal(raw, &g); err != nil {
		c.log.Warn("cached graph decode failed, dropping entry", "error", err)
		_ = c.rdb.Del(ctx, fullGraphKey(limit)).Err()
		return nil, false
	}
	return &g, true
}

func (c *GraphCache) SetFullGraph(ctx context.Context, limit int, g *domain.KnowledgeGraph) {
	if c == nil || g == nil {
		return
	}
	raw, err := json.Marshal(g)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, fullGraphKey(limit), raw, c.ttl).Err(); err != nil {
		c.log.Warn("graph cache write failed", "error", err)
	}
}

func (c *GraphCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func fullGraphKey(limit int) string {
	return fmt.Sprintf("graph:full:%d", limit)
}
