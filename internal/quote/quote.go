package quote

import (
	"fmt"

	"github.com/signloft/sign-quote/internal/config"
	"github.com/signloft/sign-quote/pkg/format"
	"github.com/signloft/sign-quote/pkg/mathutil"
	"go.uber.org/zap"
)

// Engine computes quotes against an immutable pricing table. It holds no
// per-request state and is safe for concurrent use.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a new quote engine with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// GetQuote computes the complete quote for one request.
func GetQuote(logger *zap.Logger, pricing config.Pricing, req Request) (*Result, error) {
	return NewEngine(logger).Quote(pricing, req)
}

// Quote runs the full pass: fabrication, rush surcharge, installation, and
// totals. Either a complete Result is produced or an error is returned with
// no partial output.
func (e *Engine) Quote(pricing config.Pricing, req Request) (*Result, error) {
	fabricationCost, fabricationItems, err := e.Fabrication(pricing, req)
	if err != nil {
		return nil, err
	}

	// Rush applies after category computation and after the floor.
	if req.Rush {
		fee := mathutil.ApplyPercentage(fabricationCost, pricing.RushPercent)
		fabricationItems = append(fabricationItems, LineItem{
			Label:  fmt.Sprintf("Rush production (%g%%)", pricing.RushPercent),
			Amount: fee,
		})
		fabricationCost += fee
	}

	installationCost, installationItems, err := e.Installation(pricing, req.Installation)
	if err != nil {
		return nil, err
	}

	subtotal := fabricationCost + installationCost
	tax := mathutil.ApplyPercentage(subtotal, pricing.TaxRate)
	total := subtotal + tax

	e.logger.Debug("quote computed",
		zap.String("op", "quote.Quote"),
		zap.String("category", string(req.Category)),
		zap.Float64("fabrication", fabricationCost),
		zap.Float64("installation", installationCost),
		zap.Float64("total", total),
	)

	return &Result{
		FabricationCost:   fabricationCost,
		InstallationCost:  installationCost,
		Subtotal:          subtotal,
		Tax:               tax,
		Total:             total,
		FabricationItems:  fabricationItems,
		InstallationItems: installationItems,
	}, nil
}

// Summary returns a one-line human-readable synopsis of a result, e.g. for
// logs: "fabrication $480.00 + installation $847.00 = $1,436.48 w/ tax".
func (r *Result) Summary() string {
	return fmt.Sprintf("fabrication %s + installation %s = %s w/ tax",
		format.Currency(r.FabricationCost), format.Currency(r.InstallationCost), format.Currency(r.Total))
}
