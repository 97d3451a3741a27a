package main

import (
	"os"

	"github.com/yigit/registrar/internal/cli"
	"github.com/yigit/registrar/internal/pkg/logger"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
