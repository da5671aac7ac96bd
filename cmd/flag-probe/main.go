package main

import (
	"flag"
	"fmt"

	"github.com/finflags/flag-probe/internal/config"
	"github.com/finflags/flag-probe/internal/rules"
	"github.com/finflags/flag-probe/internal/statement"
	"github.com/finflags/flag-probe/pkg/constants"
	"github.com/finflags/flag-probe/pkg/output"
	"github.com/finflags/flag-probe/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	inputLocation := flag.String("input", constants.DefaultRecordFile, "path to the JSON record file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get thresholds and logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := config.BuildLogger(conf.Logging, *logLevel)
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
		outputFormat = constants.OutputFormatJSON
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Load the record to evaluate.
	record, err := statement.LoadRecord(*inputLocation)
	if err != nil {
		logger.Fatal(fmt.Sprintf("failed to load record at %s", *inputLocation),
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Evaluate the flags against the latest reporting period.
	evaluator := rules.NewEvaluator(logger, conf.Thresholds)
	result, err := evaluator.Probe(record)
	if err != nil {
		logger.Fatal("failed to evaluate record",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(result); err != nil {
			logger.Fatal("failed to format result",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
