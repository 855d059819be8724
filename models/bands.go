package models

// WidthBand is a discrete horizontal size bucket used to quantize a requested
// measurement for pricing. Each band carries the physical size in both
// millimetres and inches; bands are unique per millimetre size and sorted
// ascending.
type WidthBand struct {
	ID          uint `gorm:"primaryKey"`
	WidthMm     int  `gorm:"column:width_mm;uniqueIndex;not null"`
	WidthInches int  `gorm:"not null"`
	SortOrder   int  `gorm:"not null"`
}

func (b *WidthBand) TableName() string {
	return "width_bands"
}

// HeightBand mirrors WidthBand for the vertical dimension.
type HeightBand struct {
	ID           uint `gorm:"primaryKey"`
	HeightMm     int  `gorm:"column:height_mm;uniqueIndex;not null"`
	HeightInches int  `gorm:"not null"`
	SortOrder    int  `gorm:"not null"`
}

func (b *HeightBand) TableName() string {
	return "height_bands"
}
