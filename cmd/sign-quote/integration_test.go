package main

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/signloft/sign-quote/internal/config"
	"github.com/signloft/sign-quote/internal/quote"
	"github.com/signloft/sign-quote/pkg/adapters"
	"github.com/signloft/sign-quote/pkg/output"
	"go.uber.org/zap"
)

// TestExampleFilesBaseline runs the example pricing table and quote request
// through the same pipeline as main() and checks the totals against a baseline
// worked out by hand.
func TestExampleFilesBaseline(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	conf, err := config.LoadConfiguration("../../pricing.yaml.example")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("example pricing produced warnings: %v", warnings)
	}
	if err := conf.Pricing.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	request, err := config.LoadQuoteRequest("../../quote.yaml.example")
	if err != nil {
		t.Fatalf("LoadQuoteRequest() error = %v", err)
	}

	engineRequest, err := adapters.QuoteRequestToEngine(*request)
	if err != nil {
		t.Fatalf("QuoteRequestToEngine() error = %v", err)
	}

	result, err := quote.GetQuote(logger, conf.Pricing, engineRequest)
	if err != nil {
		t.Fatalf("GetQuote() error = %v", err)
	}

	// Front-lit "OPEN" channel letters at 18 in with electrical and permit,
	// mounted at 10 ft: fabrication 480, installation 847, tax at 8.25%.
	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"fabrication", result.FabricationCost, 480.0},
		{"installation", result.InstallationCost, 847.0},
		{"subtotal", result.Subtotal, 1327.0},
		{"tax", result.Tax, 109.4775},
		{"total", result.Total, 1436.4775},
	}
	for _, check := range checks {
		if math.Abs(check.got-check.expected) > 1e-6 {
			t.Errorf("%s = %v, expected %v", check.name, check.got, check.expected)
		}
	}

	// The rendered document should carry the breakdown and the formatted total.
	rendered := output.PrettyString(result, time.Now())
	for _, fragment := range []string{
		"Channel letters (4 @ $45.00 each)",
		"Electrical work",
		"Site contingency (10%)",
		"$1,436.48",
	} {
		if !strings.Contains(rendered, fragment) {
			t.Errorf("pretty output missing %q", fragment)
		}
	}
}
