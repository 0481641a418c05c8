package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
)

// QuoteRequest is the file-facing shape of a single quote request. String
// fields are free-form here; parsing into the engine's closed enumerations
// happens in the adapters package.
type QuoteRequest struct {
	Category      string
	Text          string
	Dimensions    DimensionsConfig
	Variant       VariantConfig
	Installation  InstallationConfig
	Rush          bool
	Lamination    bool
	LightboxDepth *float64 // inches; defaults when omitted
}

// DimensionsConfig holds the sign face dimensions in inches.
type DimensionsConfig struct {
	WidthIn  float64
	HeightIn float64
}

// VariantConfig describes the design variant chosen for the sign. Only
// Lighting and RoundedBacker affect pricing; the remaining fields are
// cosmetic and carried through for the quote document.
type VariantConfig struct {
	Lighting      string
	RoundedBacker bool
	FaceColor     string
	FontFamily    string
}

// InstallationConfig describes the mounting site and requested extras.
type InstallationConfig struct {
	HeightFeet     float64
	LiftType       string
	ElectricalWork bool
	Permit         bool
	HardAccess     bool
	Customer       CustomerInfo
}

// CustomerInfo is quote-document metadata; it never enters pricing math.
type CustomerInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// LoadQuoteRequest takes a file path as input and loads the YAML-formatted
// quote request there.
func LoadQuoteRequest(path string) (*QuoteRequest, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading quote request file, %s", err)
	}

	return unmarshalQuoteRequest(v)
}

// LoadQuoteRequestFromReader loads a YAML-formatted quote request from the
// given reader, e.g. an API payload.
func LoadQuoteRequestFromReader(r io.Reader) (*QuoteRequest, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading quote request data, %s", err)
	}

	return unmarshalQuoteRequest(v)
}

func unmarshalQuoteRequest(v *viper.Viper) (*QuoteRequest, error) {
	var request QuoteRequest
	if err := v.Unmarshal(&request); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	if request.Category == "" {
		return nil, fmt.Errorf("quote request is missing category")
	}
	return &request, nil
}
