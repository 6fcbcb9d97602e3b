package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Lzww0608/uuid"
	"github.com/Lzww0608/uuid/internal/cli"
	"github.com/Lzww0608/uuid/internal/logging"
)

func main() {
	logger, err := logging.New("uuid")
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRoot(logger, uuid.NewGenerator())
	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
