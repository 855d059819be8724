package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/it-techmonkey/yournextblinds-backend/models"
)

// Selection identifies one requested customization by category and option id.
type Selection struct {
	Category string
	OptionID string
}

// CustomizationLine is one priced customization included in a quote.
type CustomizationLine struct {
	Category string
	OptionID string
	Name     string
	Price    decimal.Decimal
}

// Quote is the authoritative price for one configured product: the matrix
// cell price plus the sum of all resolved customization surcharges.
type Quote struct {
	CellPrice          decimal.Decimal
	CustomizationLines []CustomizationLine
	Total              decimal.Decimal
	WidthBand          models.WidthBand
	HeightBand         models.HeightBand
}

// Quote prices a product at the requested dimensions with the requested
// customizations. Selections that resolve to no pricing entry (unknown
// option, or no entry at any width) are skipped without error so that
// client-sent but unpriced option ids never abort a quote. A missing price
// cell is different: the matrix is expected to cover every resolvable band
// pair, so that surfaces as models.ErrPriceCellNotFound rather than a
// silent zero.
func (s *Service) Quote(productID uint, widthInches, heightInches float64, selections []Selection) (*Quote, error) {
	priceBand, err := s.catalog.GetProductPriceBand(productID)
	if err != nil {
		return nil, err
	}

	widthBand, err := s.ResolveWidthBand(widthInches)
	if err != nil {
		return nil, err
	}
	heightBand, err := s.ResolveHeightBand(heightInches)
	if err != nil {
		return nil, err
	}

	cell, err := s.catalog.GetPriceCell(priceBand.ID, widthBand.ID, heightBand.ID)
	if err != nil {
		return nil, err
	}

	total := cell.Price
	lines := make([]CustomizationLine, 0, len(selections))
	for _, sel := range selections {
		option, err := s.catalog.GetCustomizationPricing(sel.Category, sel.OptionID)
		if err != nil {
			if errors.Is(err, models.ErrCustomizationNotFound) {
				continue
			}
			return nil, err
		}
		price, ok := resolveCustomizationPrice(option, widthBand.ID)
		if !ok {
			continue
		}
		lines = append(lines, CustomizationLine{
			Category: sel.Category,
			OptionID: sel.OptionID,
			Name:     option.Name,
			Price:    price,
		})
		total = total.Add(price)
	}

	return &Quote{
		CellPrice:          cell.Price,
		CustomizationLines: lines,
		Total:              total,
		WidthBand:          widthBand,
		HeightBand:         heightBand,
	}, nil
}
