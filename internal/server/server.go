// Package server exposes the quote engine over a JSON HTTP API.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/signloft/sign-quote/internal/config"
	"github.com/signloft/sign-quote/internal/quote"
	"github.com/signloft/sign-quote/pkg/adapters"
	"github.com/signloft/sign-quote/pkg/constants"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger      *zap.Logger
	pricing     config.Pricing
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the quote API. The given
// pricing table is used for every request unless a request supplies its own
// override table.
func NewHandler(logger *zap.Logger, pricing config.Pricing, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, pricing: pricing, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Quote computation endpoint
	mux.HandleFunc("/api/quote", h.handleQuote)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type quotePayload struct {
	Pricing map[string]interface{} `json:"pricing,omitempty"`
	Quote   map[string]interface{} `json:"quote"`
}

type quoteResponse struct {
	Result   *quote.Result `json:"result"`
	Warnings []string      `json:"warnings,omitempty"`
	Duration string        `json:"duration"`
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var payload quotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	if payload.Quote == nil {
		h.respondError(w, http.StatusBadRequest, "missing quote payload")
		return
	}

	pricing := h.pricing
	var warnings []string
	if payload.Pricing != nil {
		override, err := decodePricingOverride(payload.Pricing)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		pricing = *override
		overrideConf := config.Configuration{Pricing: pricing}
		warnings = overrideConf.ValidateConfiguration()
	}
	if err := pricing.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid pricing table: %v", err))
		return
	}

	request, err := decodeQuoteRequest(payload.Quote)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	engineRequest, err := adapters.QuoteRequestToEngine(*request)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := quote.GetQuote(h.logger, pricing, engineRequest)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, quote.ErrValidation) {
			status = http.StatusBadRequest
		}
		h.respondError(w, status, err.Error())
		return
	}

	elapsed := time.Since(start)

	h.logger.Info("quote computed",
		zap.String("op", "server.handleQuote"),
		zap.String("category", string(engineRequest.Category)),
		zap.Float64("total", result.Total),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, quoteResponse{
		Result:   result,
		Warnings: warnings,
		Duration: elapsed.String(),
	})
}

// decodePricingOverride round-trips the JSON pricing block through YAML so it
// loads through the same path as a pricing file.
func decodePricingOverride(payload map[string]interface{}) (*config.Pricing, error) {
	data, err := yaml.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode pricing override: %v", err)
	}

	pricing, err := config.LoadPricingFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pricing override: %v", err)
	}
	return pricing, nil
}

func decodeQuoteRequest(payload map[string]interface{}) (*config.QuoteRequest, error) {
	data, err := yaml.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode quote payload: %v", err)
	}

	request, err := config.LoadQuoteRequestFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse quote payload: %v", err)
	}
	return request, nil
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.logger.Error("quote request failed",
		zap.String("op", "server.handleQuote"),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
