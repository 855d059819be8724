package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/it-techmonkey/yournextblinds-backend/models"
)

// resolveCustomizationPrice picks the surcharge for an option at the
// resolved width band. A width-specific entry takes precedence over the
// option's fixed entry even when both exist; with neither, the option is
// unresolved and the second return is false.
func resolveCustomizationPrice(option *models.CustomizationOption, widthBandID uint) (decimal.Decimal, bool) {
	var fixed *models.CustomizationPricing
	for i := range option.Pricing {
		entry := &option.Pricing[i]
		if entry.WidthBandID == nil {
			fixed = entry
			continue
		}
		if *entry.WidthBandID == widthBandID {
			return entry.Price, true
		}
	}
	if fixed != nil {
		return fixed.Price, true
	}
	return decimal.Decimal{}, false
}
