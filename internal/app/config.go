package app

import (
	"strings"
	"time"

	"github.com/zhilu/aicareer-backend/internal/platform/envutil"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
)

type Config struct {
	Addr           string
	CORSOrigins    []string
	RequestTimeout time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	port := envutil.GetEnv("PORT", "8080", log)
	timeoutSec := envutil.GetEnvAsInt("REQUEST_TIMEOUT_SECONDS", 15, log)

	var origins []string
	if raw := envutil.GetEnv("CORS_ORIGINS", "", log); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return Config{
		Addr:           ":" + port,
		CORSOrigins:    origins,
		RequestTimeout: time.Duration(timeoutSec) * time.Second,
	}
}
