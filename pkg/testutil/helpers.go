// Package testutil provides common utility functions for testing.
package testutil

import (
	"strings"

	"github.com/signloft/sign-quote/internal/config"
	"github.com/signloft/sign-quote/internal/quote"
)

// Pricing returns the canonical pricing table fixture used across tests.
func Pricing() config.Pricing {
	return config.Pricing{
		ChannelLetters: config.ChannelLetterRules{
			BasePerLetter:     45.0,
			PerInchHeight:     2.5,
			FrontLitPerLetter: 30.0,
			BackLitPerLetter:  40.0,
			RoundedBackerFee:  150.0,
			MinimumPrice:      450.0,
		},
		Lightbox: config.LightboxRules{
			PerSqft:           85.0,
			DepthBaseInches:   4.0,
			DepthAdderPerInch: 12.0,
			FrontLitAdder:     120.0,
			MinimumPrice:      500.0,
		},
		WindowVinyl: config.WindowVinylRules{
			PerSqft:           18.0,
			LaminationPercent: 15.0,
			MinimumPrice:      150.0,
		},
		RushPercent: 25.0,
		Installation: config.InstallationRules{
			BaseTripFee: 150.0,
			LaborRate:   95.0,
			HeightTiers: []config.HeightTier{
				{MaxFeet: 12, LaborHours: 2},
				{MaxFeet: 20, LaborHours: 3.5},
				{MaxFeet: 30, LaborHours: 5},
			},
			LiftCosts: config.LiftCosts{
				Scissor: 225.0,
				Boom:    450.0,
			},
			ElectricalFee:      250.0,
			PermitFee:          180.0,
			HardAccessFee:      120.0,
			ContingencyPercent: 10.0,
		},
		TaxRate: 8.25,
	}
}

// FindItem returns the first line item whose label contains substr, nil if
// none matches.
func FindItem(items []quote.LineItem, substr string) *quote.LineItem {
	for i := range items {
		if strings.Contains(items[i].Label, substr) {
			return &items[i]
		}
	}
	return nil
}

// HasItem reports whether any line item label contains substr.
func HasItem(items []quote.LineItem, substr string) bool {
	return FindItem(items, substr) != nil
}

// SumItems totals the amounts of the given line items.
func SumItems(items []quote.LineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Amount
	}
	return total
}
