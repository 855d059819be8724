package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/it-techmonkey/yournextblinds-backend/models"
)

// MinimumPrice returns the cheapest configurable price of a price band, used
// as the "from" price on listings. The chosen cell is the one with the
// smallest width×height area, ties broken by ascending width then ascending
// height, so the result is stable across calls. A band with no cells yields
// ok == false, not a zero price.
func (s *Service) MinimumPrice(priceBandID uint) (decimal.Decimal, bool, error) {
	cells, err := s.catalog.ListPriceCells(priceBandID)
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	cell, ok := minimumCell(cells)
	if !ok {
		return decimal.Decimal{}, false, nil
	}
	return cell.Price, true, nil
}

// MinimumPrices is the batched form of MinimumPrice: one fetch for all
// bands, same per-band result. Bands with no cells are absent from the map.
func (s *Service) MinimumPrices(priceBandIDs []uint) (map[uint]decimal.Decimal, error) {
	cells, err := s.catalog.ListPriceCellsForBands(priceBandIDs)
	if err != nil {
		return nil, err
	}

	byBand := make(map[uint][]models.PriceCell)
	for _, c := range cells {
		byBand[c.PriceBandID] = append(byBand[c.PriceBandID], c)
	}

	prices := make(map[uint]decimal.Decimal, len(byBand))
	for id, group := range byBand {
		if cell, ok := minimumCell(group); ok {
			prices[id] = cell.Price
		}
	}
	return prices, nil
}

func minimumCell(cells []models.PriceCell) (models.PriceCell, bool) {
	if len(cells) == 0 {
		return models.PriceCell{}, false
	}
	best := cells[0]
	for _, c := range cells[1:] {
		if smallerCell(c, best) {
			best = c
		}
	}
	return best, true
}

// smallerCell orders cells by area, then width, then height.
func smallerCell(a, b models.PriceCell) bool {
	areaA := cellArea(a)
	areaB := cellArea(b)
	if areaA != areaB {
		return areaA < areaB
	}
	if a.WidthBand.WidthMm != b.WidthBand.WidthMm {
		return a.WidthBand.WidthMm < b.WidthBand.WidthMm
	}
	return a.HeightBand.HeightMm < b.HeightBand.HeightMm
}

func cellArea(c models.PriceCell) int64 {
	return int64(c.WidthBand.WidthMm) * int64(c.HeightBand.HeightMm)
}
