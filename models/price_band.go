package models

import (
	"github.com/shopspring/decimal"
)

// PriceBand is a named pricing scheme, typically one per product line or
// fabric grade. Its price cells form the band's width×height price matrix.
type PriceBand struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (b *PriceBand) TableName() string {
	return "price_bands"
}

// PriceCell holds the price for one (price band, width band, height band)
// combination. The matrix is sparse: a price band is not required to cover
// the full cartesian product of bands, so a missing cell is a valid state.
type PriceCell struct {
	ID           uint            `gorm:"primaryKey"`
	PriceBandID  uint            `gorm:"not null;uniqueIndex:idx_price_cells_triple"`
	WidthBandID  uint            `gorm:"not null;uniqueIndex:idx_price_cells_triple"`
	HeightBandID uint            `gorm:"not null;uniqueIndex:idx_price_cells_triple"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	WidthBand    WidthBand       `gorm:"foreignKey:WidthBandID"`
	HeightBand   HeightBand      `gorm:"foreignKey:HeightBandID"`
}

func (c *PriceCell) TableName() string {
	return "price_cells"
}
