package main

import (
	"os"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/cli"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/logger"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
