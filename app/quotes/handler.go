// Package quotes exposes the pricing engine over HTTP: quoting a configured
// product and validating client-submitted prices against the recomputed
// truth.
package quotes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/it-techmonkey/yournextblinds-backend/models"
	"github.com/it-techmonkey/yournextblinds-backend/pricing"
)

type QuoteProvider interface {
	Quote(productID uint, widthInches, heightInches float64, selections []pricing.Selection) (*pricing.Quote, error)
	Validate(productID uint, widthInches, heightInches float64, selections []pricing.Selection, submitted, tolerance decimal.Decimal) (*pricing.Validation, error)
}

// Tolerances holds the accepted price drift per flow. Checkout tolerates
// more because rounding accumulates across line items.
type Tolerances struct {
	Quote    decimal.Decimal
	Checkout decimal.Decimal
}

type QuotesHandler struct {
	service    QuoteProvider
	validate   *validator.Validate
	tolerances Tolerances
}

func NewQuotesHandler(service QuoteProvider, tolerances Tolerances) *QuotesHandler {
	return &QuotesHandler{
		service:    service,
		validate:   validator.New(),
		tolerances: tolerances,
	}
}

type CustomizationRef struct {
	Category string `json:"category" validate:"required"`
	OptionID string `json:"optionId" validate:"required"`
}

type QuoteRequest struct {
	ProductID      uint               `json:"productId" validate:"required"`
	WidthInches    float64            `json:"widthInches" validate:"required,gt=0"`
	HeightInches   float64            `json:"heightInches" validate:"required,gt=0"`
	Customizations []CustomizationRef `json:"customizations" validate:"dive"`
}

type ValidateRequest struct {
	QuoteRequest
	SubmittedPrice float64 `json:"submittedPrice" validate:"required,gt=0"`
}

type BandResponse struct {
	Mm     int `json:"mm"`
	Inches int `json:"inches"`
}

type CustomizationLine struct {
	Category string  `json:"category"`
	OptionID string  `json:"optionId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}

type QuoteResponse struct {
	CellPrice          float64             `json:"cellPrice"`
	CustomizationLines []CustomizationLine `json:"customizationLines"`
	Total              float64             `json:"total"`
	ResolvedWidthBand  BandResponse        `json:"resolvedWidthBand"`
	ResolvedHeightBand BandResponse        `json:"resolvedHeightBand"`
}

type ValidationResponse struct {
	Valid           bool    `json:"valid"`
	CalculatedPrice float64 `json:"calculatedPrice"`
	Difference      float64 `json:"difference"`
}

// HandleQuote prices one configured product.
func (h *QuotesHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	var input QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := h.service.Quote(input.ProductID, input.WidthInches, input.HeightInches, selections(input.Customizations))
	if err != nil {
		writeQuoteError(w, err)
		return
	}

	lines := make([]CustomizationLine, len(quote.CustomizationLines))
	for i, line := range quote.CustomizationLines {
		lines[i] = CustomizationLine{
			Category: line.Category,
			OptionID: line.OptionID,
			Name:     line.Name,
			Price:    line.Price.InexactFloat64(),
		}
	}

	response := QuoteResponse{
		CellPrice:          quote.CellPrice.InexactFloat64(),
		CustomizationLines: lines,
		Total:              quote.Total.InexactFloat64(),
		ResolvedWidthBand:  BandResponse{Mm: quote.WidthBand.WidthMm, Inches: quote.WidthBand.WidthInches},
		ResolvedHeightBand: BandResponse{Mm: quote.HeightBand.HeightMm, Inches: quote.HeightBand.HeightInches},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleValidate recomputes a quote and reports whether the submitted price
// falls within the quote tolerance. The comparison result is data here; the
// response is 200 either way.
func (h *QuotesHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	result, ok := h.runValidation(w, r, h.tolerances.Quote)
	if !ok {
		return
	}
	writeValidation(w, result, http.StatusOK)
}

// HandleCheckoutValidate is the checkout gate: a submitted price outside the
// checkout tolerance rejects the transaction with a 409 rather than letting
// a tampered or stale price through.
func (h *QuotesHandler) HandleCheckoutValidate(w http.ResponseWriter, r *http.Request) {
	result, ok := h.runValidation(w, r, h.tolerances.Checkout)
	if !ok {
		return
	}
	status := http.StatusOK
	if !result.Valid {
		status = http.StatusConflict
	}
	writeValidation(w, result, status)
}

func (h *QuotesHandler) runValidation(w http.ResponseWriter, r *http.Request, tolerance decimal.Decimal) (*pricing.Validation, bool) {
	var input ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return nil, false
	}
	if err := h.validate.Struct(input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	result, err := h.service.Validate(
		input.ProductID, input.WidthInches, input.HeightInches,
		selections(input.Customizations),
		decimal.NewFromFloat(input.SubmittedPrice), tolerance)
	if err != nil {
		writeQuoteError(w, err)
		return nil, false
	}
	return result, true
}

func selections(refs []CustomizationRef) []pricing.Selection {
	out := make([]pricing.Selection, len(refs))
	for i, ref := range refs {
		out[i] = pricing.Selection{Category: ref.Category, OptionID: ref.OptionID}
	}
	return out
}

func writeValidation(w http.ResponseWriter, result *pricing.Validation, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	response := ValidationResponse{
		Valid:           result.Valid,
		CalculatedPrice: result.CalculatedPrice.InexactFloat64(),
		Difference:      result.Difference.InexactFloat64(),
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeQuoteError maps engine errors onto the HTTP taxonomy. Catalog
// completeness problems (no bands, missing cell) are server-side data
// errors and must never be papered over with a zero price.
func writeQuoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrProductNotFound):
		http.Error(w, "Product not found", http.StatusNotFound)
	case errors.Is(err, models.ErrProductNotPriced):
		http.Error(w, "Product not available for purchase", http.StatusUnprocessableEntity)
	case errors.Is(err, pricing.ErrNoBandsConfigured):
		http.Error(w, "Pricing bands not configured", http.StatusInternalServerError)
	case errors.Is(err, models.ErrPriceCellNotFound):
		http.Error(w, "No price configured for the requested size", http.StatusInternalServerError)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
