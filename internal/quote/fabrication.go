package quote

import (
	"fmt"
	"unicode"

	"github.com/signloft/sign-quote/internal/config"
	"github.com/signloft/sign-quote/pkg/constants"
	"github.com/signloft/sign-quote/pkg/format"
	"github.com/signloft/sign-quote/pkg/mathutil"
	"github.com/signloft/sign-quote/pkg/validation"
	"go.uber.org/zap"
)

// Fabrication computes the fabrication cost for the request's sign category,
// returning the floored (and never rushed) cost along with the contributing
// line items in the order the costs are incurred.
func (e *Engine) Fabrication(pricing config.Pricing, req Request) (float64, []LineItem, error) {
	if err := validateFabricationInputs(req); err != nil {
		return 0, nil, err
	}

	var cost float64
	var items []LineItem
	switch req.Category {
	case CategoryChannelLetters:
		cost, items = channelLetterCost(pricing.ChannelLetters, req)
	case CategoryLightbox:
		cost, items = lightboxCost(pricing.Lightbox, req)
	case CategoryWindowVinyl:
		cost, items = windowVinylCost(pricing.WindowVinyl, req)
	default:
		return 0, nil, fmt.Errorf("%w: unhandled sign category %q", ErrInvariant, req.Category)
	}

	e.logger.Debug("fabrication computed",
		zap.String("op", "quote.Fabrication"),
		zap.String("category", string(req.Category)),
		zap.Float64("cost", cost),
		zap.Int("lineItems", len(items)),
	)

	return cost, items, nil
}

func validateFabricationInputs(req Request) error {
	// Area-based categories need a real face area; channel letters only use
	// the height, so zero dimensions are tolerated there.
	checkDimension := validation.FiniteNonNegative
	if req.Category == CategoryLightbox || req.Category == CategoryWindowVinyl {
		checkDimension = validation.FinitePositive
	}

	if err := checkDimension("widthIn", req.Dimensions.WidthIn); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if err := checkDimension("heightIn", req.Dimensions.HeightIn); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if err := validation.FiniteNonNegative("lightboxDepth", req.LightboxDepthIn); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}

	return nil
}

func channelLetterCost(rules config.ChannelLetterRules, req Request) (float64, []LineItem) {
	// An empty or all-whitespace text legitimately yields zero letters; the
	// minimum price floor picks it up below.
	letters := countLetters(req.Text)

	base := float64(letters) * rules.BasePerLetter
	items := []LineItem{{
		Label:  fmt.Sprintf("Channel letters (%d @ %s each)", letters, format.Currency(rules.BasePerLetter)),
		Amount: base,
	}}

	heightAdder := float64(letters) * req.Dimensions.HeightIn * rules.PerInchHeight
	items = append(items, LineItem{
		Label:  fmt.Sprintf("Letter height %g in (%s per inch per letter)", req.Dimensions.HeightIn, format.Currency(rules.PerInchHeight)),
		Amount: heightAdder,
	})
	raw := base + heightAdder

	switch req.Variant.Lighting {
	case LightingFront:
		adder := float64(letters) * rules.FrontLitPerLetter
		items = append(items, LineItem{
			Label:  fmt.Sprintf("Front-lit LED illumination (%d letters)", letters),
			Amount: adder,
		})
		raw += adder
	case LightingBack:
		adder := float64(letters) * rules.BackLitPerLetter
		items = append(items, LineItem{
			Label:  fmt.Sprintf("Back-lit halo illumination (%d letters)", letters),
			Amount: adder,
		})
		raw += adder
	}

	if req.Variant.RoundedBacker {
		items = append(items, LineItem{Label: "Rounded backer panel", Amount: rules.RoundedBackerFee})
		raw += rules.RoundedBackerFee
	}

	return applyFloor(raw, rules.MinimumPrice, items, true)
}

func lightboxCost(rules config.LightboxRules, req Request) (float64, []LineItem) {
	sqft := squareFeet(req.Dimensions)
	raw := sqft * rules.PerSqft
	items := []LineItem{{
		Label:  fmt.Sprintf("Lightbox cabinet (%.1f sqft @ %s per sqft)", sqft, format.Currency(rules.PerSqft)),
		Amount: raw,
	}}

	if req.LightboxDepthIn > rules.DepthBaseInches {
		adder := (req.LightboxDepthIn - rules.DepthBaseInches) * rules.DepthAdderPerInch
		items = append(items, LineItem{
			Label:  fmt.Sprintf("Extra cabinet depth (%g in over %g in base)", req.LightboxDepthIn-rules.DepthBaseInches, rules.DepthBaseInches),
			Amount: adder,
		})
		raw += adder
	}

	// The front-lit adder is a flat amount regardless of face area; back-lit
	// lightboxes carry no adder.
	if req.Variant.Lighting == LightingFront {
		items = append(items, LineItem{Label: "Front-lit face illumination", Amount: rules.FrontLitAdder})
		raw += rules.FrontLitAdder
	}

	return applyFloor(raw, rules.MinimumPrice, items, true)
}

func windowVinylCost(rules config.WindowVinylRules, req Request) (float64, []LineItem) {
	sqft := squareFeet(req.Dimensions)
	raw := sqft * rules.PerSqft
	items := []LineItem{{
		Label:  fmt.Sprintf("Window vinyl (%.1f sqft @ %s per sqft)", sqft, format.Currency(rules.PerSqft)),
		Amount: raw,
	}}

	cost := raw
	if req.Lamination {
		// Lamination is a percentage of the pre-lamination raw cost, never of
		// the floored cost.
		adder := mathutil.ApplyPercentage(raw, rules.LaminationPercent)
		items = append(items, LineItem{
			Label:  fmt.Sprintf("Protective lamination (%g%%)", rules.LaminationPercent),
			Amount: adder,
		})
		cost += adder
	}

	// Window vinyl applies its floor without an adjustment line item.
	return applyFloor(cost, rules.MinimumPrice, items, false)
}

// applyFloor raises cost to minimum when the computed cost falls short. The
// adjustment line item is emitted only when the floor is binding and the
// category documents it.
func applyFloor(cost, minimum float64, items []LineItem, emitItem bool) (float64, []LineItem) {
	if cost >= minimum {
		return cost, items
	}
	if emitItem {
		items = append(items, LineItem{
			Label:  fmt.Sprintf("Minimum price adjustment (floor %s)", format.Currency(minimum)),
			Amount: minimum - cost,
		})
	}
	return minimum, items
}

func squareFeet(d Dimensions) float64 {
	return d.WidthIn * d.HeightIn / constants.SquareInchesPerSquareFoot
}

func countLetters(text string) int {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}
