// Package constants provides shared constants for the lens model summary client.
package constants

// Service constants
const (
	// DefaultEndpoint is the model summary service endpoint used when no
	// configuration overrides it. Existing integrations rely on this default.
	DefaultEndpoint = "http://api.lensview.io"

	// RegressionPath is the summary path for the regression estimator family.
	RegressionPath = "/modelsummary/regression"

	// ErrorBody is the literal response body the model summary service
	// returns when it rejects a write. Any other body is treated as the
	// storage location of the saved summary.
	ErrorBody = "error"
)

// Created-time constants
const (
	// CreatedTimeSentinel is the placeholder created_time value a summary
	// holds until it is saved.
	CreatedTimeSentinel = "2000-00-00T00:00:00.0000+0000"

	// CreatedTimeLayout is the ISO-8601-with-offset format stamped on a
	// summary at save time.
	CreatedTimeLayout = "2006-01-02T15:04:05.000000-07:00"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultSummaryFile is the default summary document file name
	DefaultSummaryFile = "summary.yaml"

	// DefaultStubConfigFile is the default stub server configuration file name
	DefaultStubConfigFile = "stub-config.yaml"
)

// Stub server defaults
const (
	// DefaultStubAddress is the default HTTP listen address for the stub server
	DefaultStubAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size for
	// summary uploads (1 MB)
	DefaultMaxBodySizeBytes int64 = 1024 * 1024
)
