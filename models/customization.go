package models

import (
	"github.com/shopspring/decimal"
)

// CustomizationOption is a selectable product feature such as a headrail
// colour or motorization, identified by (category, option id).
type CustomizationOption struct {
	ID       uint                   `gorm:"primaryKey"`
	Category string                 `gorm:"not null;uniqueIndex:idx_customization_options_key"`
	OptionID string                 `gorm:"column:option_id;not null;uniqueIndex:idx_customization_options_key"`
	Name     string                 `gorm:"not null"`
	Pricing  []CustomizationPricing `gorm:"foreignKey:CustomizationOptionID"`
}

func (o *CustomizationOption) TableName() string {
	return "customization_options"
}

// CustomizationPricing is one surcharge entry for an option. A nil
// WidthBandID is a fixed price that applies at any width; a non-nil value
// applies only when a quote resolves to that width band. An option has at
// most one fixed entry and at most one entry per width band.
type CustomizationPricing struct {
	ID                    uint            `gorm:"primaryKey"`
	CustomizationOptionID uint            `gorm:"not null"`
	WidthBandID           *uint           `gorm:"default:null"`
	Price                 decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (p *CustomizationPricing) TableName() string {
	return "customization_pricing"
}
