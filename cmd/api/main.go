package main

import (
	"flag"

	"github.com/internlink/internlink/internal/bootstrap"
	"github.com/internlink/internlink/internal/pkg/logger"
	"github.com/internlink/internlink/internal/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	app, err := bootstrap.New(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to start application")
	}

	if err := server.Run(app); err != nil {
		logger.Fatal().Err(err).Msg("Server exited with error")
	}
}
