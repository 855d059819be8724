// Package pricing implements the dimensional pricing engine for
// made-to-measure products: requested measurements are quantized onto
// discrete size bands, the resulting price cell is looked up in the
// product's price band, and customization surcharges are overlaid on top.
// Every operation is a pure read over the catalog; nothing here mutates
// state, so any number of quotes may run in parallel.
package pricing

import (
	"github.com/it-techmonkey/yournextblinds-backend/models"
)

// Catalog is the read-only data source the engine computes over.
type Catalog interface {
	ListWidthBands() ([]models.WidthBand, error)
	ListHeightBands() ([]models.HeightBand, error)
	GetPriceCell(priceBandID, widthBandID, heightBandID uint) (*models.PriceCell, error)
	ListPriceCells(priceBandID uint) ([]models.PriceCell, error)
	ListPriceCellsForBands(priceBandIDs []uint) ([]models.PriceCell, error)
	GetCustomizationPricing(category, optionID string) (*models.CustomizationOption, error)
	GetProductPriceBand(productID uint) (*models.PriceBand, error)
}

// Service computes quotes, listing minimum prices and price validations.
type Service struct {
	catalog Catalog
}

func NewService(c Catalog) *Service {
	return &Service{
		catalog: c,
	}
}
