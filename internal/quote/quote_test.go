package quote_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/signloft/sign-quote/internal/quote"
	"github.com/signloft/sign-quote/pkg/mathutil"
	"github.com/signloft/sign-quote/pkg/testutil"
	"go.uber.org/zap"
)

func openSignRequest() quote.Request {
	request := channelLetterRequest("OPEN", 18, quote.LightingFront)
	request.Installation = quote.Installation{
		HeightFeet:     10,
		Lift:           quote.LiftNone,
		ElectricalWork: true,
		Permit:         true,
	}
	return request
}

func TestGetQuoteConcreteScenario(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	pricing := testutil.Pricing()

	// Fabrication 480, installation 847, subtotal 1327, tax 8.25% = 109.4775
	result, err := quote.GetQuote(logger, pricing, openSignRequest())
	if err != nil {
		t.Fatalf("GetQuote() error = %v", err)
	}

	if !mathutil.WithinTolerance(result.FabricationCost, 480.0, tolerance) {
		t.Errorf("FabricationCost = %.4f, expected 480.0000", result.FabricationCost)
	}
	if !mathutil.WithinTolerance(result.InstallationCost, 847.0, tolerance) {
		t.Errorf("InstallationCost = %.4f, expected 847.0000", result.InstallationCost)
	}
	if !mathutil.WithinTolerance(result.Subtotal, 1327.0, tolerance) {
		t.Errorf("Subtotal = %.4f, expected 1327.0000", result.Subtotal)
	}
	if !mathutil.WithinTolerance(result.Tax, 109.4775, 1e-6) {
		t.Errorf("Tax = %.4f, expected 109.4775", result.Tax)
	}
	if !mathutil.WithinTolerance(result.Total, 1436.4775, 1e-6) {
		t.Errorf("Total = %.4f, expected 1436.4775", result.Total)
	}
}

func TestQuoteTotalsIdentity(t *testing.T) {
	logger := zap.NewNop()
	pricing := testutil.Pricing()

	requests := []quote.Request{
		openSignRequest(),
		func() quote.Request {
			r := lightboxRequest(48, 36, 6, quote.LightingFront)
			r.Installation = quote.Installation{HeightFeet: 18, Lift: quote.LiftScissor, Permit: true}
			r.Rush = true
			return r
		}(),
		func() quote.Request {
			r := vinylRequest(60, 36, true)
			r.Installation = quote.Installation{HeightFeet: 6, Lift: quote.LiftNone}
			return r
		}(),
	}

	for _, request := range requests {
		result, err := quote.GetQuote(logger, pricing, request)
		if err != nil {
			t.Fatalf("GetQuote(%s) error = %v", request.Category, err)
		}

		if !mathutil.WithinTolerance(result.Subtotal, result.FabricationCost+result.InstallationCost, tolerance) {
			t.Errorf("%s: subtotal %.4f != fabrication %.4f + installation %.4f",
				request.Category, result.Subtotal, result.FabricationCost, result.InstallationCost)
		}
		if !mathutil.WithinTolerance(result.Tax, mathutil.ApplyPercentage(result.Subtotal, pricing.TaxRate), tolerance) {
			t.Errorf("%s: tax %.4f is not %.4f%% of subtotal %.4f",
				request.Category, result.Tax, pricing.TaxRate, result.Subtotal)
		}
		if !mathutil.WithinTolerance(result.Total, result.Subtotal+result.Tax, tolerance) {
			t.Errorf("%s: total %.4f != subtotal %.4f + tax %.4f",
				request.Category, result.Total, result.Subtotal, result.Tax)
		}
	}
}

func TestRushSurchargeExactness(t *testing.T) {
	logger := zap.NewNop()
	pricing := testutil.Pricing()

	tests := []struct {
		name    string
		request quote.Request
	}{
		{
			name:    "Above the floor",
			request: openSignRequest(),
		},
		{
			name: "Floored fabrication rushes the floored amount",
			request: func() quote.Request {
				r := channelLetterRequest("OK", 18, quote.LightingNone)
				r.Installation = quote.Installation{HeightFeet: 10, Lift: quote.LiftNone}
				return r
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calm, err := quote.GetQuote(logger, pricing, tt.request)
			if err != nil {
				t.Fatalf("GetQuote() error = %v", err)
			}

			rushed := tt.request
			rushed.Rush = true
			rush, err := quote.GetQuote(logger, pricing, rushed)
			if err != nil {
				t.Fatalf("GetQuote() error = %v", err)
			}

			expected := calm.FabricationCost * 1.25
			if !mathutil.WithinTolerance(rush.FabricationCost, expected, tolerance) {
				t.Errorf("rushed fabrication = %.4f, expected %.4f", rush.FabricationCost, expected)
			}
			if !testutil.HasItem(rush.FabricationItems, "Rush production") {
				t.Errorf("rush line item missing")
			}
			if testutil.HasItem(calm.FabricationItems, "Rush production") {
				t.Errorf("rush line item present without rush")
			}
		})
	}
}

func TestQuoteLineItemOrdering(t *testing.T) {
	logger := zap.NewNop()
	pricing := testutil.Pricing()

	request := openSignRequest()
	request.Rush = true
	result, err := quote.GetQuote(logger, pricing, request)
	if err != nil {
		t.Fatalf("GetQuote() error = %v", err)
	}

	expectedFabrication := []string{"Channel letters", "Letter height", "Front-lit", "Rush production"}
	if len(result.FabricationItems) != len(expectedFabrication) {
		t.Fatalf("expected %d fabrication items, got %d", len(expectedFabrication), len(result.FabricationItems))
	}
	for i, prefix := range expectedFabrication {
		if !strings.Contains(result.FabricationItems[i].Label, prefix) {
			t.Errorf("fabrication item %d = %q, expected to contain %q", i, result.FabricationItems[i].Label, prefix)
		}
	}

	expectedInstallation := []string{"Base trip fee", "Installation labor", "Electrical work", "Permit", "Site contingency"}
	if len(result.InstallationItems) != len(expectedInstallation) {
		t.Fatalf("expected %d installation items, got %d", len(expectedInstallation), len(result.InstallationItems))
	}
	for i, prefix := range expectedInstallation {
		if !strings.Contains(result.InstallationItems[i].Label, prefix) {
			t.Errorf("installation item %d = %q, expected to contain %q", i, result.InstallationItems[i].Label, prefix)
		}
	}
}

func TestQuoteErrorsPropagate(t *testing.T) {
	logger := zap.NewNop()
	pricing := testutil.Pricing()

	tests := []struct {
		name     string
		mutate   func(*quote.Request)
		expected error
	}{
		{
			name: "Validation error from fabrication",
			mutate: func(r *quote.Request) {
				r.Dimensions.WidthIn = -1
			},
			expected: quote.ErrValidation,
		},
		{
			name: "Validation error from installation",
			mutate: func(r *quote.Request) {
				r.Installation.HeightFeet = 0
			},
			expected: quote.ErrValidation,
		},
		{
			name: "Invariant error from category",
			mutate: func(r *quote.Request) {
				r.Category = quote.Category("banner")
			},
			expected: quote.ErrInvariant,
		},
		{
			name: "Invariant error from lift type",
			mutate: func(r *quote.Request) {
				r.Installation.Lift = quote.LiftType("crane")
			},
			expected: quote.ErrInvariant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := func() quote.Request {
				r := lightboxRequest(48, 36, 4, quote.LightingNone)
				r.Installation = quote.Installation{HeightFeet: 10, Lift: quote.LiftNone}
				return r
			}()
			tt.mutate(&request)

			result, err := quote.GetQuote(logger, pricing, request)
			if err == nil {
				t.Fatalf("GetQuote() expected error")
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("GetQuote() error = %v, expected %v", err, tt.expected)
			}
			if result != nil {
				t.Errorf("GetQuote() returned a partial result alongside an error")
			}
		})
	}
}

func TestResultSummary(t *testing.T) {
	logger := zap.NewNop()
	pricing := testutil.Pricing()

	result, err := quote.GetQuote(logger, pricing, openSignRequest())
	if err != nil {
		t.Fatalf("GetQuote() error = %v", err)
	}

	summary := result.Summary()
	for _, expected := range []string{"$480.00", "$847.00", "$1,436.48"} {
		if !strings.Contains(summary, expected) {
			t.Errorf("Summary() = %q, expected to contain %q", summary, expected)
		}
	}
}

func TestParseEnums(t *testing.T) {
	if _, err := quote.ParseCategory("Channel-Letters"); err != nil {
		t.Errorf("ParseCategory() error = %v", err)
	}
	if _, err := quote.ParseCategory("neon"); err == nil {
		t.Errorf("ParseCategory() accepted unknown category")
	}

	lighting, err := quote.ParseLighting("")
	if err != nil || lighting != quote.LightingNone {
		t.Errorf("ParseLighting(\"\") = %v, %v, expected nonLit", lighting, err)
	}
	if _, err := quote.ParseLighting("strobe"); err == nil {
		t.Errorf("ParseLighting() accepted unknown mode")
	}

	lift, err := quote.ParseLiftType("")
	if err != nil || lift != quote.LiftNone {
		t.Errorf("ParseLiftType(\"\") = %v, %v, expected none", lift, err)
	}
	if _, err := quote.ParseLiftType("crane"); err == nil {
		t.Errorf("ParseLiftType() accepted unknown lift")
	}
}
