package app

import (
	"time"

	"github.com/yungbote/storefront-analytics/internal/platform/envutil"
	"github.com/yungbote/storefront-analytics/internal/platform/logger"
)

type Config struct {
	Port         string
	QueryTimeout time.Duration
	CORSOrigins  []string
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:         envutil.Str("PORT", "8080"),
		QueryTimeout: time.Duration(envutil.Int("QUERY_TIMEOUT_MS", 5000)) * time.Millisecond,
		CORSOrigins:  envutil.List("CORS_ORIGINS", nil),
	}
	log.Info("Config loaded",
		"port", cfg.Port,
		"query_timeout_ms", cfg.QueryTimeout.Milliseconds(),
	)
	return cfg
}
