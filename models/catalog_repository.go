package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrProductNotPriced is returned when a product exists but has no price
// band assigned, meaning it is not available for purchase.
var ErrProductNotPriced = errors.New("product has no price band")

// ErrPriceCellNotFound is returned when a price band has no cell for the
// requested width/height band combination.
var ErrPriceCellNotFound = errors.New("price cell not found")

// ErrCustomizationNotFound is returned when no customization option matches
// a (category, option id) pair.
var ErrCustomizationNotFound = errors.New("customization option not found")

// CatalogRepository provides read access to the pricing reference data:
// size bands, price matrices, customization surcharges and products. The
// pricing engine never writes through it.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

func (r *CatalogRepository) ListWidthBands() ([]WidthBand, error) {
	var bands []WidthBand
	if err := r.db.
		Order("width_inches ASC").
		Find(&bands).Error; err != nil {
		return nil, err
	}
	return bands, nil
}

func (r *CatalogRepository) ListHeightBands() ([]HeightBand, error) {
	var bands []HeightBand
	if err := r.db.
		Order("height_inches ASC").
		Find(&bands).Error; err != nil {
		return nil, err
	}
	return bands, nil
}

func (r *CatalogRepository) GetPriceCell(priceBandID, widthBandID, heightBandID uint) (*PriceCell, error) {
	var cell PriceCell
	if err := r.db.
		Where("price_band_id = ? AND width_band_id = ? AND height_band_id = ?",
			priceBandID, widthBandID, heightBandID).
		First(&cell).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPriceCellNotFound
		}
		return nil, err // Other DB error
	}
	return &cell, nil
}

func (r *CatalogRepository) ListPriceCells(priceBandID uint) ([]PriceCell, error) {
	var cells []PriceCell
	if err := r.db.
		Preload("WidthBand").
		Preload("HeightBand").
		Where("price_band_id = ?", priceBandID).
		Find(&cells).Error; err != nil {
		return nil, err
	}
	return cells, nil
}

func (r *CatalogRepository) ListPriceCellsForBands(priceBandIDs []uint) ([]PriceCell, error) {
	if len(priceBandIDs) == 0 {
		return nil, nil
	}
	var cells []PriceCell
	if err := r.db.
		Preload("WidthBand").
		Preload("HeightBand").
		Where("price_band_id IN ?", priceBandIDs).
		Find(&cells).Error; err != nil {
		return nil, err
	}
	return cells, nil
}

func (r *CatalogRepository) GetCustomizationPricing(category, optionID string) (*CustomizationOption, error) {
	var option CustomizationOption
	if err := r.db.
		Preload("Pricing").
		Where("category = ? AND option_id = ?", category, optionID).
		First(&option).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomizationNotFound
		}
		return nil, err
	}
	return &option, nil
}

// ListCustomizationOptions returns the full customization catalog, used to
// render configuration UIs.
func (r *CatalogRepository) ListCustomizationOptions() ([]CustomizationOption, error) {
	var options []CustomizationOption
	if err := r.db.
		Preload("Pricing").
		Order("category ASC, option_id ASC").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *CatalogRepository) GetProductPriceBand(productID uint) (*PriceBand, error) {
	var product Product
	if err := r.db.
		Preload("PriceBand").
		First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if product.PriceBand == nil {
		return nil, ErrProductNotPriced
	}
	return product.PriceBand, nil
}

func (r *CatalogRepository) GetProductByCode(code string) (*Product, error) {
	var product Product
	if err := r.db.
		Preload("PriceBand").
		Where("code = ?", code).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *CatalogRepository) ListProducts() ([]Product, error) {
	var products []Product
	if err := r.db.
		Preload("PriceBand").
		Order("code ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
