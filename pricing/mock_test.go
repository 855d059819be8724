package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/it-techmonkey/yournextblinds-backend/models"
)

// --- Mock Catalog ---

type mockCatalog struct {
	widthBands  []models.WidthBand
	heightBands []models.HeightBand
	cells       []models.PriceCell
	options     []models.CustomizationOption
	// productID -> price band; a nil value models a product without one
	productBands map[uint]*models.PriceBand
	Err          error

	// Fields to capture call counts
	listCellsCalls        int
	listCellsForBandCalls int
}

func (m *mockCatalog) ListWidthBands() ([]models.WidthBand, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.widthBands, nil
}

func (m *mockCatalog) ListHeightBands() ([]models.HeightBand, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.heightBands, nil
}

func (m *mockCatalog) GetPriceCell(priceBandID, widthBandID, heightBandID uint) (*models.PriceCell, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, c := range m.cells {
		if c.PriceBandID == priceBandID && c.WidthBandID == widthBandID && c.HeightBandID == heightBandID {
			cell := c
			return &cell, nil
		}
	}
	return nil, models.ErrPriceCellNotFound
}

func (m *mockCatalog) ListPriceCells(priceBandID uint) ([]models.PriceCell, error) {
	m.listCellsCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	var cells []models.PriceCell
	for _, c := range m.cells {
		if c.PriceBandID == priceBandID {
			cells = append(cells, c)
		}
	}
	return cells, nil
}

func (m *mockCatalog) ListPriceCellsForBands(priceBandIDs []uint) ([]models.PriceCell, error) {
	m.listCellsForBandCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	wanted := make(map[uint]bool, len(priceBandIDs))
	for _, id := range priceBandIDs {
		wanted[id] = true
	}
	var cells []models.PriceCell
	for _, c := range m.cells {
		if wanted[c.PriceBandID] {
			cells = append(cells, c)
		}
	}
	return cells, nil
}

func (m *mockCatalog) GetCustomizationPricing(category, optionID string) (*models.CustomizationOption, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, o := range m.options {
		if o.Category == category && o.OptionID == optionID {
			option := o
			return &option, nil
		}
	}
	return nil, models.ErrCustomizationNotFound
}

func (m *mockCatalog) GetProductPriceBand(productID uint) (*models.PriceBand, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	band, ok := m.productBands[productID]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	if band == nil {
		return nil, models.ErrProductNotPriced
	}
	return band, nil
}

// --- Fixtures ---

// Band ids 1..4 cover 20/30/39/49 inches (500/750/1000/1250 mm) in both
// dimensions, the scale used throughout the tests.
func sampleWidthBands() []models.WidthBand {
	return []models.WidthBand{
		{ID: 1, WidthMm: 500, WidthInches: 20, SortOrder: 1},
		{ID: 2, WidthMm: 750, WidthInches: 30, SortOrder: 2},
		{ID: 3, WidthMm: 1000, WidthInches: 39, SortOrder: 3},
		{ID: 4, WidthMm: 1250, WidthInches: 49, SortOrder: 4},
	}
}

func sampleHeightBands() []models.HeightBand {
	return []models.HeightBand{
		{ID: 1, HeightMm: 500, HeightInches: 20, SortOrder: 1},
		{ID: 2, HeightMm: 750, HeightInches: 30, SortOrder: 2},
		{ID: 3, HeightMm: 1000, HeightInches: 39, SortOrder: 3},
		{ID: 4, HeightMm: 1250, HeightInches: 49, SortOrder: 4},
	}
}

func newTestCell(priceBandID, widthBandID, heightBandID uint, price float64) models.PriceCell {
	widths := sampleWidthBands()
	heights := sampleHeightBands()
	return models.PriceCell{
		PriceBandID:  priceBandID,
		WidthBandID:  widthBandID,
		HeightBandID: heightBandID,
		Price:        decimal.NewFromFloat(price),
		WidthBand:    widths[widthBandID-1],
		HeightBand:   heights[heightBandID-1],
	}
}

// sampleCatalog is price band "A" (id 1) sold as product 10, with a single
// cell priced 21.58 at the 750mm width / 1000mm height band pair.
func sampleCatalog() *mockCatalog {
	bandA := &models.PriceBand{ID: 1, Name: "A"}
	return &mockCatalog{
		widthBands:  sampleWidthBands(),
		heightBands: sampleHeightBands(),
		cells: []models.PriceCell{
			newTestCell(1, 2, 3, 21.58),
		},
		productBands: map[uint]*models.PriceBand{
			10: bandA,
		},
	}
}
