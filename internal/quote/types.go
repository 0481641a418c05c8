// Package quote defines the data structures related to a sign quote and
// includes functions for computing the quotes.
package quote

import (
	"fmt"
	"strings"
)

// Category identifies which fabrication rule set applies. Exactly one
// category applies per quote.
type Category string

// The closed set of sign categories.
const (
	CategoryChannelLetters Category = "channelLetters"
	CategoryLightbox       Category = "lightbox"
	CategoryWindowVinyl    Category = "windowVinyl"
)

// ParseCategory parses a free-form category string into the closed set.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "channelletters", "channel-letters", "channel_letters":
		return CategoryChannelLetters, nil
	case "lightbox":
		return CategoryLightbox, nil
	case "windowvinyl", "window-vinyl", "window_vinyl":
		return CategoryWindowVinyl, nil
	default:
		return "", fmt.Errorf("unknown sign category %q (expected channelLetters, lightbox, or windowVinyl)", s)
	}
}

// Lighting identifies the lighting mode of a design variant.
type Lighting string

// The closed set of lighting modes.
const (
	LightingNone  Lighting = "nonLit"
	LightingFront Lighting = "frontLit"
	LightingBack  Lighting = "backLit"
)

// ParseLighting parses a free-form lighting string; empty means non-lit.
func ParseLighting(s string) (Lighting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nonlit", "non-lit", "none":
		return LightingNone, nil
	case "frontlit", "front-lit":
		return LightingFront, nil
	case "backlit", "back-lit", "halo":
		return LightingBack, nil
	default:
		return "", fmt.Errorf("unknown lighting mode %q (expected nonLit, frontLit, or backLit)", s)
	}
}

// LiftType identifies the lift equipment required on site.
type LiftType string

// The closed set of lift types.
const (
	LiftNone    LiftType = "none"
	LiftScissor LiftType = "scissor"
	LiftBoom    LiftType = "boom"
)

// ParseLiftType parses a free-form lift type string; empty means no lift.
func ParseLiftType(s string) (LiftType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return LiftNone, nil
	case "scissor":
		return LiftScissor, nil
	case "boom":
		return LiftBoom, nil
	default:
		return "", fmt.Errorf("unknown lift type %q (expected none, scissor, or boom)", s)
	}
}

// Dimensions holds the sign face dimensions in inches.
type Dimensions struct {
	WidthIn  float64
	HeightIn float64
}

// Variant is the pricing-relevant slice of a chosen design variant.
type Variant struct {
	Lighting      Lighting
	RoundedBacker bool
}

// Installation describes the mounting site and requested extras.
type Installation struct {
	HeightFeet     float64
	Lift           LiftType
	ElectricalWork bool
	Permit         bool
	HardAccess     bool
}

// Request is one complete quote request. The engine never mutates it.
type Request struct {
	Category        Category
	Text            string
	Dimensions      Dimensions
	Variant         Variant
	Installation    Installation
	Rush            bool
	Lamination      bool
	LightboxDepthIn float64
}

// LineItem is one itemized, labeled contribution to a cost total. The order
// line items are emitted mirrors the order costs are incurred and is part of
// the contract; downstream layers must not reorder them.
type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Result is the complete itemized quote.
type Result struct {
	FabricationCost   float64    `json:"fabricationCost"`
	InstallationCost  float64    `json:"installationCost"`
	Subtotal          float64    `json:"subtotal"`
	Tax               float64    `json:"tax"`
	Total             float64    `json:"total"`
	FabricationItems  []LineItem `json:"fabricationItems"`
	InstallationItems []LineItem `json:"installationItems"`
}
