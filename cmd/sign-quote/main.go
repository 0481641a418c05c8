package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/signloft/sign-quote/internal/config"
	"github.com/signloft/sign-quote/internal/quote"
	"github.com/signloft/sign-quote/pkg/adapters"
	"github.com/signloft/sign-quote/pkg/constants"
	"github.com/signloft/sign-quote/pkg/output"
	"github.com/signloft/sign-quote/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultPricingFile, "path to pricing configuration file")
	quoteLocation := flag.String("quote", constants.DefaultQuoteFile, "path to quote request file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
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
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate the pricing table and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	err = conf.Pricing.Validate()
	if err != nil {
		logger.Fatal("invalid pricing table",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Load the quote request.
	request, err := config.LoadQuoteRequest(*quoteLocation)
	if err != nil {
		logger.Fatal(fmt.Sprintf("failed to load quote request at %s", *quoteLocation),
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	engineRequest, err := adapters.QuoteRequestToEngine(*request)
	if err != nil {
		logger.Fatal("failed to interpret quote request",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Compute the quote.
	result, err := quote.GetQuote(logger, conf.Pricing, engineRequest)
	if err != nil {
		logger.Fatal("failed to compute quote",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result, time.Now())
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	case constants.OutputFormatJSON:
		rendered, err := output.JSONString(result)
		if err != nil {
			logger.Fatal("failed to render quote",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Print(rendered)
	}

}
