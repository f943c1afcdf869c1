package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/lensview/lens-go/internal/config"
	"github.com/lensview/lens-go/internal/stubserver"
	"github.com/lensview/lens-go/pkg/constants"
	"go.uber.org/zap"
)

func main() {
	configLocation := flag.String("config", constants.DefaultStubConfigFile, "path to stub server configuration file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := stubserver.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := config.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	handler := stubserver.NewHandler(logger, conf.MaxBodySize)

	logger.Info("starting model summary stub server",
		zap.String("op", "main"),
		zap.String("address", conf.Address),
	)
	if err := http.ListenAndServe(conf.Address, handler); err != nil {
		logger.Fatal("stub server stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
