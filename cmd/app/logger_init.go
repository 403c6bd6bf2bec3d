package main

import (
	"github.com/osse101/LondonTravel_Go/internal/bootstrap"
	"github.com/osse101/LondonTravel_Go/internal/config"
	"github.com/osse101/LondonTravel_Go/internal/logger"
)

// initLogger sets up stdout-only logging, used when the log file cannot be opened
func initLogger(cfg *config.Config) {
	logger.InitLogger(bootstrap.LoggerConfig(cfg))
}
