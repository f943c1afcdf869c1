package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/lensview/lens-go/internal/config"
	"github.com/lensview/lens-go/internal/summary"
	"github.com/lensview/lens-go/pkg/constants"
	"github.com/lensview/lens-go/pkg/output"
	"github.com/lensview/lens-go/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", "", "path to configuration file (optional)")
	summaryLocation := flag.String("summary", constants.DefaultSummaryFile, "path to YAML summary document")
	action := flag.String("action", "show", "what to do with the summary: show, save")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get service and logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := config.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Load the summary document.
	payload, err := summary.LoadSummaryFile(*summaryLocation)
	if err != nil {
		logger.Fatal("failed to load summary document",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Surface data errors in the binned statistics as warnings.
	if err := validation.CheckFeatureSummaries(payload.FeatureSummary); err != nil {
		logger.Warn("Summary data warning: "+err.Error(),
			zap.String("op", "main"),
		)
	}

	client := summary.NewClient(conf.Service.Endpoint, nil, logger)
	estimatorSummary := summary.NewGLMEstimatorSummary(client, *payload)

	switch *action {
	case "show":
		fields := estimatorSummary.Show()
		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettyFormat(payload.Name, fields)
		case constants.OutputFormatCSV:
			output.CsvFormat(fields)
		case constants.OutputFormatJSON:
			if err := output.JSONFormat(fields); err != nil {
				logger.Fatal("failed to render summary",
					zap.String("op", "main"),
					zap.Error(err),
				)
			}
		}
	case "save":
		receipt, err := estimatorSummary.Save(context.Background())
		if err != nil {
			logger.Fatal("failed to save model summary",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		if !receipt.Saved {
			logger.Fatal("model summary rejected by service",
				zap.String("op", "main"),
			)
		}
	default:
		logger.Fatal(fmt.Sprintf("expected action of show or save, got %s", *action),
			zap.String("op", "main"),
		)
	}
}
