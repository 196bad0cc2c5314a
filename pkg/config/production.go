package config

import (
	"os"
	"strconv"
	"time"
)

func loadProductionConfig(cfg *Config) {
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.ServerPort = port
	}
	if timeout, err := time.ParseDuration(os.Getenv("REQUEST_TIMEOUT")); err == nil {
		cfg.RequestTimeout = timeout
	}

	if path := os.Getenv("DATABASE_FILE_PATH"); path != "" {
		cfg.DatabaseFilePath = path
	} else {
		cfg.DatabaseFilePath = "/data/biblioteca.sqlite"
	}

	if url := os.Getenv("FRONTEND_URL"); url != "" {
		cfg.FrontendURL = url
	}
}
