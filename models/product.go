package models

// Product is a sellable made-to-measure product. It prices through its price
// band; a product without a price band cannot be quoted. Code doubles as the
// storefront handle.
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"uniqueIndex;not null"`
	Title       string `gorm:"not null"`
	PriceBandID *uint
	PriceBand   *PriceBand `gorm:"foreignKey:PriceBandID"`
}

func (p *Product) TableName() string {
	return "products"
}
