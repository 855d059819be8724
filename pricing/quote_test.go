package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/it-techmonkey/yournextblinds-backend/models"
)

func bandID(id uint) *uint {
	return &id
}

func TestQuote_ResolvesBandsAndCell(t *testing.T) {
	service := NewService(sampleCatalog())

	quote, err := service.Quote(10, 25, 35, nil)
	assert.NoError(t, err)
	assert.Equal(t, 750, quote.WidthBand.WidthMm)
	assert.Equal(t, 1000, quote.HeightBand.HeightMm)
	assert.True(t, quote.CellPrice.Equal(decimal.NewFromFloat(21.58)))
	assert.True(t, quote.Total.Equal(decimal.NewFromFloat(21.58)))
	assert.Empty(t, quote.CustomizationLines)
}

func TestQuote_UnknownCustomizationIsSkipped(t *testing.T) {
	service := NewService(sampleCatalog())

	quote, err := service.Quote(10, 25, 35, []Selection{
		{Category: "headrail", OptionID: "does-not-exist"},
	})
	assert.NoError(t, err)
	assert.Empty(t, quote.CustomizationLines)
	assert.True(t, quote.Total.Equal(decimal.NewFromFloat(21.58)))
}

func TestQuote_UnpricedCustomizationIsSkipped(t *testing.T) {
	// The option exists but carries no pricing entries at all.
	catalog := sampleCatalog()
	catalog.options = []models.CustomizationOption{
		{ID: 1, Category: "headrail", OptionID: "white", Name: "White headrail"},
	}
	service := NewService(catalog)

	quote, err := service.Quote(10, 25, 35, []Selection{
		{Category: "headrail", OptionID: "white"},
	})
	assert.NoError(t, err)
	assert.Empty(t, quote.CustomizationLines)
	assert.True(t, quote.Total.Equal(decimal.NewFromFloat(21.58)))
}

func TestQuote_FixedCustomizationPrice(t *testing.T) {
	catalog := sampleCatalog()
	catalog.options = []models.CustomizationOption{
		{
			ID: 1, Category: "motorization", OptionID: "remote", Name: "Remote control",
			Pricing: []models.CustomizationPricing{
				{CustomizationOptionID: 1, WidthBandID: nil, Price: decimal.NewFromFloat(55.00)},
			},
		},
	}
	service := NewService(catalog)

	quote, err := service.Quote(10, 25, 35, []Selection{
		{Category: "motorization", OptionID: "remote"},
	})
	assert.NoError(t, err)
	assert.Len(t, quote.CustomizationLines, 1)
	assert.Equal(t, "Remote control", quote.CustomizationLines[0].Name)
	assert.True(t, quote.CustomizationLines[0].Price.Equal(decimal.NewFromFloat(55.00)))
	assert.True(t, quote.Total.Equal(decimal.NewFromFloat(76.58)))
}

func TestQuote_WidthSpecificBeatsFixed(t *testing.T) {
	// Both a fixed and a width-specific entry exist; the entry for the
	// resolved width band (id 2, 750mm) must win.
	catalog := sampleCatalog()
	catalog.options = []models.CustomizationOption{
		{
			ID: 1, Category: "headrail", OptionID: "deluxe", Name: "Deluxe headrail",
			Pricing: []models.CustomizationPricing{
				{CustomizationOptionID: 1, WidthBandID: nil, Price: decimal.NewFromFloat(10.00)},
				{CustomizationOptionID: 1, WidthBandID: bandID(2), Price: decimal.NewFromFloat(14.50)},
				{CustomizationOptionID: 1, WidthBandID: bandID(4), Price: decimal.NewFromFloat(22.00)},
			},
		},
	}
	service := NewService(catalog)

	quote, err := service.Quote(10, 25, 35, []Selection{
		{Category: "headrail", OptionID: "deluxe"},
	})
	assert.NoError(t, err)
	assert.Len(t, quote.CustomizationLines, 1)
	assert.True(t, quote.CustomizationLines[0].Price.Equal(decimal.NewFromFloat(14.50)))
	assert.True(t, quote.Total.Equal(decimal.NewFromFloat(36.08)))
}

func TestQuote_FixedFallbackAtOtherWidths(t *testing.T) {
	// Width-specific entries exist only for other bands, so the fixed
	// entry applies.
	catalog := sampleCatalog()
	catalog.options = []models.CustomizationOption{
		{
			ID: 1, Category: "headrail", OptionID: "deluxe", Name: "Deluxe headrail",
			Pricing: []models.CustomizationPricing{
				{CustomizationOptionID: 1, WidthBandID: bandID(4), Price: decimal.NewFromFloat(22.00)},
				{CustomizationOptionID: 1, WidthBandID: nil, Price: decimal.NewFromFloat(10.00)},
			},
		},
	}
	service := NewService(catalog)

	quote, err := service.Quote(10, 25, 35, []Selection{
		{Category: "headrail", OptionID: "deluxe"},
	})
	assert.NoError(t, err)
	assert.Len(t, quote.CustomizationLines, 1)
	assert.True(t, quote.CustomizationLines[0].Price.Equal(decimal.NewFromFloat(10.00)))
}

func TestQuote_ProductErrors(t *testing.T) {
	catalog := sampleCatalog()
	catalog.productBands[11] = nil // exists but has no price band
	service := NewService(catalog)

	_, err := service.Quote(99, 25, 35, nil)
	assert.ErrorIs(t, err, models.ErrProductNotFound)

	_, err = service.Quote(11, 25, 35, nil)
	assert.ErrorIs(t, err, models.ErrProductNotPriced)
}

func TestQuote_MissingCellIsSurfaced(t *testing.T) {
	service := NewService(sampleCatalog())

	// 45in width resolves to band 4, which has no cell in the sample matrix.
	_, err := service.Quote(10, 45, 35, nil)
	assert.ErrorIs(t, err, models.ErrPriceCellNotFound)
}

func TestQuote_Idempotent(t *testing.T) {
	catalog := sampleCatalog()
	catalog.options = []models.CustomizationOption{
		{
			ID: 1, Category: "motorization", OptionID: "remote", Name: "Remote control",
			Pricing: []models.CustomizationPricing{
				{CustomizationOptionID: 1, WidthBandID: nil, Price: decimal.NewFromFloat(55.00)},
			},
		},
	}
	service := NewService(catalog)
	selections := []Selection{{Category: "motorization", OptionID: "remote"}}

	first, err := service.Quote(10, 25, 35, selections)
	assert.NoError(t, err)
	second, err := service.Quote(10, 25, 35, selections)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
