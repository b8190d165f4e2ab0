package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/pkarimi/taskboard/cmd/cli/commands"
	"github.com/pkarimi/taskboard/internal/logger"
)

func main() {
	_ = godotenv.Load()

	logger.Initialize()

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
