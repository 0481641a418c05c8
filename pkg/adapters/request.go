// Package adapters provides adapter implementations between configuration
// types and quote engine types.
package adapters

import (
	"fmt"

	"github.com/signloft/sign-quote/internal/config"
	"github.com/signloft/sign-quote/internal/quote"
	"github.com/signloft/sign-quote/pkg/constants"
)

// QuoteRequestToEngine converts a file-facing quote request into the engine's
// request type, parsing the enumerated fields and applying defaults for
// omitted optional values.
func QuoteRequestToEngine(req config.QuoteRequest) (quote.Request, error) {
	category, err := quote.ParseCategory(req.Category)
	if err != nil {
		return quote.Request{}, fmt.Errorf("invalid quote request: %w", err)
	}

	lighting, err := quote.ParseLighting(req.Variant.Lighting)
	if err != nil {
		return quote.Request{}, fmt.Errorf("invalid quote request: %w", err)
	}

	lift, err := quote.ParseLiftType(req.Installation.LiftType)
	if err != nil {
		return quote.Request{}, fmt.Errorf("invalid quote request: %w", err)
	}

	depth := constants.DefaultLightboxDepthInches
	if req.LightboxDepth != nil {
		depth = *req.LightboxDepth
	}

	return quote.Request{
		Category: category,
		Text:     req.Text,
		Dimensions: quote.Dimensions{
			WidthIn:  req.Dimensions.WidthIn,
			HeightIn: req.Dimensions.HeightIn,
		},
		Variant: quote.Variant{
			Lighting:      lighting,
			RoundedBacker: req.Variant.RoundedBacker,
		},
		Installation: quote.Installation{
			HeightFeet:     req.Installation.HeightFeet,
			Lift:           lift,
			ElectricalWork: req.Installation.ElectricalWork,
			Permit:         req.Installation.Permit,
			HardAccess:     req.Installation.HardAccess,
		},
		Rush:            req.Rush,
		Lamination:      req.Lamination,
		LightboxDepthIn: depth,
	}, nil
}
