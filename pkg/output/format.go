// Package output provides utilities for formatting and displaying quote results.
package output

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/signloft/sign-quote/internal/quote"
	"github.com/signloft/sign-quote/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable quote document. Line items print
// verbatim in the order the engine produced them.
func PrettyFormat(result *quote.Result, preparedAt time.Time) {
	fmt.Print(PrettyString(result, preparedAt))
}

// PrettyString renders the human-readable quote document as a string.
func PrettyString(result *quote.Result, preparedAt time.Time) string {
	p := message.NewPrinter(language.English)
	validThrough := preparedAt.AddDate(0, 0, constants.QuoteValidityDays)

	out := "--- Sign quote ---\n"
	out += fmt.Sprintf("Prepared:      %s\n", preparedAt.Format(constants.QuoteDateLayout))
	out += fmt.Sprintf("Valid through: %s\n\n", validThrough.Format(constants.QuoteDateLayout))

	out += "Fabrication\n"
	for _, item := range result.FabricationItems {
		out += p.Sprintf("  %-52s $%.2f\n", item.Label, item.Amount)
	}
	out += p.Sprintf("  %-52s $%.2f\n\n", "Fabrication cost", result.FabricationCost)

	out += "Installation\n"
	for _, item := range result.InstallationItems {
		out += p.Sprintf("  %-52s $%.2f\n", item.Label, item.Amount)
	}
	out += p.Sprintf("  %-52s $%.2f\n\n", "Installation cost", result.InstallationCost)

	out += p.Sprintf("%-54s $%.2f\n", "Subtotal", result.Subtotal)
	out += p.Sprintf("%-54s $%.2f\n", "Tax", result.Tax)
	out += p.Sprintf("%-54s $%.2f\n", "Total", result.Total)

	return out
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result *quote.Result) {
	fmt.Print(CsvString(result))
}

// CsvString renders the quote breakdown in comma-separated value format.
func CsvString(result *quote.Result) string {
	out := "\"section\",\"label\",\"amount\"\n"
	for _, item := range result.FabricationItems {
		out += fmt.Sprintf("\"fabrication\",\"%s\",\"%.2f\"\n", item.Label, item.Amount)
	}
	for _, item := range result.InstallationItems {
		out += fmt.Sprintf("\"installation\",\"%s\",\"%.2f\"\n", item.Label, item.Amount)
	}
	out += fmt.Sprintf("\"totals\",\"Fabrication cost\",\"%.2f\"\n", result.FabricationCost)
	out += fmt.Sprintf("\"totals\",\"Installation cost\",\"%.2f\"\n", result.InstallationCost)
	out += fmt.Sprintf("\"totals\",\"Subtotal\",\"%.2f\"\n", result.Subtotal)
	out += fmt.Sprintf("\"totals\",\"Tax\",\"%.2f\"\n", result.Tax)
	out += fmt.Sprintf("\"totals\",\"Total\",\"%.2f\"\n", result.Total)
	return out
}

// JSONString renders the quote result as indented JSON.
func JSONString(result *quote.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data) + "\n", nil
}
