package quote

import (
	"fmt"

	"github.com/signloft/sign-quote/internal/config"
	"github.com/signloft/sign-quote/pkg/format"
	"github.com/signloft/sign-quote/pkg/mathutil"
	"github.com/signloft/sign-quote/pkg/validation"
	"go.uber.org/zap"
)

// Installation computes the on-site installation cost: trip fee, height-tiered
// labor, lift rental, flat extras, and the contingency buffer, with line items
// in that order.
func (e *Engine) Installation(pricing config.Pricing, site Installation) (float64, []LineItem, error) {
	if err := validation.FinitePositive("heightFeet", site.HeightFeet); err != nil {
		return 0, nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	rules := pricing.Installation

	items := []LineItem{{Label: "Base trip fee", Amount: rules.BaseTripFee}}
	cost := rules.BaseTripFee

	tier, err := selectHeightTier(rules.HeightTiers, site.HeightFeet)
	if err != nil {
		return 0, nil, err
	}
	labor := tier.LaborHours * rules.LaborRate
	items = append(items, LineItem{
		Label:  fmt.Sprintf("Installation labor (%.1f hr @ %s per hr)", tier.LaborHours, format.Currency(rules.LaborRate)),
		Amount: labor,
	})
	cost += labor

	liftCost, liftLabel, err := liftRental(rules.LiftCosts, site.Lift)
	if err != nil {
		return 0, nil, err
	}
	if liftCost != 0 {
		items = append(items, LineItem{Label: liftLabel, Amount: liftCost})
		cost += liftCost
	}

	// Extras always itemize in the same order regardless of which are set.
	if site.ElectricalWork {
		items = append(items, LineItem{Label: "Electrical work", Amount: rules.ElectricalFee})
		cost += rules.ElectricalFee
	}
	if site.Permit {
		items = append(items, LineItem{Label: "Permit", Amount: rules.PermitFee})
		cost += rules.PermitFee
	}
	if site.HardAccess {
		items = append(items, LineItem{Label: "Hard access", Amount: rules.HardAccessFee})
		cost += rules.HardAccessFee
	}

	// Contingency applies to the pre-contingency subtotal.
	contingency := mathutil.ApplyPercentage(cost, rules.ContingencyPercent)
	items = append(items, LineItem{
		Label:  fmt.Sprintf("Site contingency (%g%%)", rules.ContingencyPercent),
		Amount: contingency,
	})
	cost += contingency

	e.logger.Debug("installation computed",
		zap.String("op", "quote.Installation"),
		zap.Float64("heightFeet", site.HeightFeet),
		zap.Float64("laborHours", tier.LaborHours),
		zap.Float64("cost", cost),
	)

	return cost, items, nil
}

// selectHeightTier returns the first tier whose ceiling covers the height
// (inclusive). A height above every declared ceiling uses the last tier.
func selectHeightTier(tiers []config.HeightTier, heightFeet float64) (config.HeightTier, error) {
	if len(tiers) == 0 {
		return config.HeightTier{}, fmt.Errorf("%w: no installation height tiers declared", ErrConfig)
	}
	for _, tier := range tiers {
		if tier.MaxFeet >= heightFeet {
			return tier, nil
		}
	}
	return tiers[len(tiers)-1], nil
}

func liftRental(costs config.LiftCosts, lift LiftType) (float64, string, error) {
	switch lift {
	case LiftNone:
		return 0, "", nil
	case LiftScissor:
		return costs.Scissor, "Scissor lift rental", nil
	case LiftBoom:
		return costs.Boom, "Boom lift rental", nil
	default:
		return 0, "", fmt.Errorf("%w: unhandled lift type %q", ErrInvariant, lift)
	}
}
