package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ShouterLab/binance-api-svr/internal/config"
	"github.com/ShouterLab/binance-api-svr/internal/exchange/binance"
	"github.com/ShouterLab/binance-api-svr/internal/server"
	"github.com/ShouterLab/binance-api-svr/pkg/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "binance-api-svr",
		Usage:   "HTTP gateway for the Binance spot and futures REST API",
		Version: fmt.Sprintf("%s (build: %s)", Version, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path",
			},
			&cli.StringFlag{
				Name:    "listen",
				Aliases: []string{"l"},
				Usage:   "listen address (overrides config)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if listen := c.String("listen"); listen != "" {
		cfg.Server.Listen = listen
	}
	if err := logger.Configure(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	client, err := binance.NewClient(binance.Config{
		APIKey:         cfg.Binance.APIKey,
		SecretKey:      cfg.Binance.SecretKey,
		SpotBaseURL:    cfg.Binance.SpotBaseURL,
		FuturesBaseURL: cfg.Binance.FuturesBaseURL,
	})
	if err != nil {
		return err
	}

	return server.NewServer(client).Start(cfg.Server.Listen)
}
