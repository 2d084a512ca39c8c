package main

import (
	"fmt"
	"time"

	"github.com/at-ishikawa/askdoc/internal/config"
	"github.com/at-ishikawa/askdoc/internal/qa"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newAPIClient(cfg config.ClientConfig) *qa.Client {
	return qa.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
}
