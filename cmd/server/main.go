package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/config"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/server"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "mei",
	})

	var (
		cfgFile = flag.String("config", "", "Config file (default is config.yaml)")
		addr    = flag.String("addr", "", "Listen address (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Build(*cfgFile, nil)
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	srv := server.New(cfg, logger)
	logger.Info("starting server", "addr", cfg.ListenAddr)
	if err := srv.Start(cfg.ListenAddr); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
