// Package config defines the data structures related to configuration and
// includes functions for loading and validating the pricing rule table.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
)

// Configuration holds all configuration for sign-quote.
type Configuration struct {
	Pricing Pricing
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Pricing holds the full pricing rule table: one rule set per sign category
// plus the global installation, rush, and tax rates.
type Pricing struct {
	ChannelLetters ChannelLetterRules
	Lightbox       LightboxRules
	WindowVinyl    WindowVinylRules
	RushPercent    float64
	Installation   InstallationRules
	TaxRate        float64
}

// ChannelLetterRules prices individually fabricated channel letters.
type ChannelLetterRules struct {
	BasePerLetter     float64
	PerInchHeight     float64
	FrontLitPerLetter float64
	BackLitPerLetter  float64
	RoundedBackerFee  float64
	MinimumPrice      float64
}

// LightboxRules prices cabinet-style lightbox signs by face area.
type LightboxRules struct {
	PerSqft           float64
	DepthBaseInches   float64
	DepthAdderPerInch float64
	FrontLitAdder     float64
	MinimumPrice      float64
}

// WindowVinylRules prices flat window vinyl by area.
type WindowVinylRules struct {
	PerSqft           float64
	LaminationPercent float64
	MinimumPrice      float64
}

// InstallationRules holds the global on-site installation rates.
type InstallationRules struct {
	BaseTripFee        float64
	LaborRate          float64
	HeightTiers        []HeightTier
	LiftCosts          LiftCosts
	ElectricalFee      float64
	PermitFee          float64
	HardAccessFee      float64
	ContingencyPercent float64
}

// HeightTier maps a mounting height ceiling to the labor hours it requires.
// Tiers must be ordered ascending by MaxFeet; the last tier also covers any
// height above every declared ceiling.
type HeightTier struct {
	MaxFeet    float64
	LaborHours float64
}

// LiftCosts holds the flat rental cost per lift type.
type LiftCosts struct {
	Scissor float64
	Boom    float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from the
// given reader, e.g. an uploaded document.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadPricingFromReader loads a bare pricing rule table (no logging/output
// sections) from the given reader.
func LoadPricingFromReader(r io.Reader) (*Pricing, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading pricing data, %s", err)
	}

	var pricing Pricing
	err := v.Unmarshal(&pricing)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &pricing, nil
}

// Validate checks the pricing table for configuration errors that would make
// per-quote computation unsafe. This is a startup concern; the engine assumes
// a validated table.
func (p *Pricing) Validate() error {
	if len(p.Installation.HeightTiers) == 0 {
		return fmt.Errorf("installation.heightTiers must declare at least one tier")
	}
	previous := 0.0
	for i, tier := range p.Installation.HeightTiers {
		if tier.MaxFeet <= previous {
			return fmt.Errorf("installation.heightTiers must be strictly ascending by maxFeet, tier %d has maxFeet %v", i, tier.MaxFeet)
		}
		if tier.LaborHours < 0 {
			return fmt.Errorf("installation.heightTiers tier %d has negative laborHours %v", i, tier.LaborHours)
		}
		previous = tier.MaxFeet
	}

	rates := map[string]float64{
		"channelLetters.basePerLetter":     p.ChannelLetters.BasePerLetter,
		"channelLetters.perInchHeight":     p.ChannelLetters.PerInchHeight,
		"channelLetters.frontLitPerLetter": p.ChannelLetters.FrontLitPerLetter,
		"channelLetters.backLitPerLetter":  p.ChannelLetters.BackLitPerLetter,
		"channelLetters.roundedBackerFee":  p.ChannelLetters.RoundedBackerFee,
		"channelLetters.minimumPrice":      p.ChannelLetters.MinimumPrice,
		"lightbox.perSqft":                 p.Lightbox.PerSqft,
		"lightbox.depthBaseInches":         p.Lightbox.DepthBaseInches,
		"lightbox.depthAdderPerInch":       p.Lightbox.DepthAdderPerInch,
		"lightbox.frontLitAdder":           p.Lightbox.FrontLitAdder,
		"lightbox.minimumPrice":            p.Lightbox.MinimumPrice,
		"windowVinyl.perSqft":              p.WindowVinyl.PerSqft,
		"windowVinyl.laminationPercent":    p.WindowVinyl.LaminationPercent,
		"windowVinyl.minimumPrice":         p.WindowVinyl.MinimumPrice,
		"rushPercent":                      p.RushPercent,
		"installation.baseTripFee":         p.Installation.BaseTripFee,
		"installation.laborRate":           p.Installation.LaborRate,
		"installation.liftCosts.scissor":   p.Installation.LiftCosts.Scissor,
		"installation.liftCosts.boom":      p.Installation.LiftCosts.Boom,
		"installation.electricalFee":       p.Installation.ElectricalFee,
		"installation.permitFee":           p.Installation.PermitFee,
		"installation.hardAccessFee":       p.Installation.HardAccessFee,
		"taxRate":                          p.TaxRate,
	}
	for name, rate := range rates {
		if rate < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, rate)
		}
	}

	if p.Installation.ContingencyPercent < 0 || p.Installation.ContingencyPercent > 100 {
		return fmt.Errorf("installation.contingencyPercent must be within [0, 100], got %v", p.Installation.ContingencyPercent)
	}
	if p.TaxRate > 100 {
		return fmt.Errorf("taxRate must be within [0, 100], got %v", p.TaxRate)
	}

	return nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings for values that are legal but probably unintended.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Pricing.ChannelLetters.MinimumPrice == 0 {
		warnings = append(warnings, "channelLetters.minimumPrice is 0; empty-text quotes will price at $0")
	}
	if c.Pricing.Lightbox.MinimumPrice == 0 {
		warnings = append(warnings, "lightbox.minimumPrice is 0; no price floor applies to lightbox quotes")
	}
	if c.Pricing.WindowVinyl.MinimumPrice == 0 {
		warnings = append(warnings, "windowVinyl.minimumPrice is 0; no price floor applies to vinyl quotes")
	}
	if c.Pricing.Installation.LaborRate == 0 {
		warnings = append(warnings, "installation.laborRate is 0; labor will not be billed")
	}
	if c.Pricing.TaxRate == 0 {
		warnings = append(warnings, "taxRate is 0; quotes will not include tax")
	}

	return warnings
}
