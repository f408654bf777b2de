package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/zhilu/aicareer-backend/internal/data/graph"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/platform/neo4jdb"
)

func main() {
	seedPath := flag.String("file", "seed/knowledge.yaml", "path to the seed YAML file")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall seeding timeout")
	flag.Parse()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	data, err := graph.LoadSeedFile(*seedPath)
	if err != nil {
		log.Fatal("failed to load seed data", "file", *seedPath, "error", err)
	}

	client, err := neo4jdb.NewFromEnv(log)
	if err != nil {
		log.Fatal("failed to connect to neo4j", "error", err)
	}
	defer client.Close(ctx)

	seeder := graph.NewSeeder(client, log)
	if err := seeder.Apply(ctx, data); err != nil {
		log.Fatal("seeding failed", "error", err)
	}
}
