package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/it-techmonkey/yournextblinds-backend/models"
)

type Band struct {
	Mm     int `json:"mm"`
	Inches int `json:"inches"`
}

type BandsResponse struct {
	WidthBands  []Band `json:"widthBands"`
	HeightBands []Band `json:"heightBands"`
}

type CustomizationOption struct {
	OptionID string `json:"optionId"`
	Name     string `json:"name"`
}

type CustomizationCategory struct {
	Category string                `json:"category"`
	Options  []CustomizationOption `json:"options"`
}

type Product struct {
	Code      string   `json:"code"`
	Title     string   `json:"title"`
	PriceBand string   `json:"priceBand,omitempty"`
	FromPrice *float64 `json:"fromPrice,omitempty"`
}

type ProductsResponse struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type CatalogProvider interface {
	ListWidthBands() ([]models.WidthBand, error)
	ListHeightBands() ([]models.HeightBand, error)
	ListCustomizationOptions() ([]models.CustomizationOption, error)
	ListProducts() ([]models.Product, error)
	GetProductByCode(code string) (*models.Product, error)
}

type MinimumPricer interface {
	MinimumPrice(priceBandID uint) (decimal.Decimal, bool, error)
	MinimumPrices(priceBandIDs []uint) (map[uint]decimal.Decimal, error)
}

type BandResolver interface {
	Resolve(handle string) (*models.PriceBand, error)
}

type CatalogHandler struct {
	repo       CatalogProvider
	pricer     MinimumPricer
	storefront BandResolver
}

func NewCatalogHandler(repo CatalogProvider, pricer MinimumPricer, storefront BandResolver) *CatalogHandler {
	return &CatalogHandler{
		repo:       repo,
		pricer:     pricer,
		storefront: storefront,
	}
}

// HandleGetBands returns the configured size bands, used by configuration
// UIs to render the measurement pickers.
func (h *CatalogHandler) HandleGetBands(w http.ResponseWriter, r *http.Request) {
	widthBands, err := h.repo.ListWidthBands()
	if err != nil {
		http.Error(w, "failed to fetch bands", http.StatusInternalServerError)
		return
	}
	heightBands, err := h.repo.ListHeightBands()
	if err != nil {
		http.Error(w, "failed to fetch bands", http.StatusInternalServerError)
		return
	}

	response := BandsResponse{
		WidthBands:  make([]Band, len(widthBands)),
		HeightBands: make([]Band, len(heightBands)),
	}
	for i, b := range widthBands {
		response.WidthBands[i] = Band{Mm: b.WidthMm, Inches: b.WidthInches}
	}
	for i, b := range heightBands {
		response.HeightBands[i] = Band{Mm: b.HeightMm, Inches: b.HeightInches}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleGetCustomizations returns the customization catalog grouped by
// category, preserving the repository's category/option ordering.
func (h *CatalogHandler) HandleGetCustomizations(w http.ResponseWriter, r *http.Request) {
	options, err := h.repo.ListCustomizationOptions()
	if err != nil {
		http.Error(w, "failed to fetch customizations", http.StatusInternalServerError)
		return
	}

	categories := []CustomizationCategory{}
	for _, o := range options {
		if len(categories) == 0 || categories[len(categories)-1].Category != o.Category {
			categories = append(categories, CustomizationCategory{Category: o.Category})
		}
		last := &categories[len(categories)-1]
		last.Options = append(last.Options, CustomizationOption{
			OptionID: o.OptionID,
			Name:     o.Name,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(categories); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleGetProducts lists products with their "from" prices, computed in
// one batched fetch across all referenced price bands.
func (h *CatalogHandler) HandleGetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.ListProducts()
	if err != nil {
		http.Error(w, "failed to fetch products", http.StatusInternalServerError)
		return
	}

	var bandIDs []uint
	seen := make(map[uint]bool)
	for _, p := range products {
		if p.PriceBandID != nil && !seen[*p.PriceBandID] {
			seen[*p.PriceBandID] = true
			bandIDs = append(bandIDs, *p.PriceBandID)
		}
	}

	fromPrices, err := h.pricer.MinimumPrices(bandIDs)
	if err != nil {
		http.Error(w, "failed to compute prices", http.StatusInternalServerError)
		return
	}

	response := ProductsResponse{
		Total:    len(products),
		Products: make([]Product, len(products)),
	}
	for i, p := range products {
		product := Product{
			Code:  p.Code,
			Title: p.Title,
		}
		if p.PriceBand != nil {
			product.PriceBand = p.PriceBand.Name
		}
		if p.PriceBandID != nil {
			if price, ok := fromPrices[*p.PriceBandID]; ok {
				value := price.InexactFloat64()
				product.FromPrice = &value
			}
		}
		response.Products[i] = product
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleGetProduct returns a single product with its "from" price.
func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	product, err := h.repo.GetProductByCode(code)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	response := Product{
		Code:  product.Code,
		Title: product.Title,
	}
	if product.PriceBand != nil {
		response.PriceBand = product.PriceBand.Name
	}
	if product.PriceBandID != nil {
		price, ok, err := h.pricer.MinimumPrice(*product.PriceBandID)
		if err != nil {
			http.Error(w, "failed to compute price", http.StatusInternalServerError)
			return
		}
		if ok {
			value := price.InexactFloat64()
			response.FromPrice = &value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleGetStorefrontPrice resolves a storefront handle through the cached
// identity resolver and returns the listing "from" price for its band.
func (h *CatalogHandler) HandleGetStorefrontPrice(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")

	band, err := h.storefront.Resolve(handle)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrProductNotFound):
			http.Error(w, "Product not found", http.StatusNotFound)
		case errors.Is(err, models.ErrProductNotPriced):
			http.Error(w, "Product not available for purchase", http.StatusUnprocessableEntity)
		default:
			http.Error(w, "failed to resolve product", http.StatusInternalServerError)
		}
		return
	}

	price, ok, err := h.pricer.MinimumPrice(band.ID)
	if err != nil {
		http.Error(w, "failed to compute price", http.StatusInternalServerError)
		return
	}

	response := struct {
		Handle    string   `json:"handle"`
		PriceBand string   `json:"priceBand"`
		FromPrice *float64 `json:"fromPrice,omitempty"`
	}{
		Handle:    handle,
		PriceBand: band.Name,
	}
	if ok {
		value := price.InexactFloat64()
		response.FromPrice = &value
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
