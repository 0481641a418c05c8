// Package constants provides shared constants for the sign-quote application.
package constants

// Geometry constants
const (
	// SquareInchesPerSquareFoot converts width*height in inches to square feet
	SquareInchesPerSquareFoot = 144.0

	// DefaultLightboxDepthInches is assumed when a request omits the depth
	DefaultLightboxDepthInches = 4.0
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultPricingFile is the default pricing table file name
	DefaultPricingFile = "pricing.yaml"

	// DefaultQuoteFile is the default quote request file name
	DefaultQuoteFile = "quote.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the quote API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Quote document defaults
const (
	// QuoteValidityDays is how long a printed quote remains valid
	QuoteValidityDays = 30

	// QuoteDateLayout is the date format stamped on printed quotes
	QuoteDateLayout = "2006-01-02"
)
