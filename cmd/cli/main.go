package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/alebedenko/lingualink/internal/buildinfo"
	"github.com/alebedenko/lingualink/internal/cli"
	"github.com/alebedenko/lingualink/internal/config"
	"github.com/alebedenko/lingualink/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
