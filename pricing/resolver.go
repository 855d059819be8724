package pricing

import (
	"errors"
	"math"
	"sort"

	"github.com/it-techmonkey/yournextblinds-backend/models"
)

// ErrNoBandsConfigured is returned when the catalog holds no bands for the
// requested dimension. It is the only way band resolution can fail.
var ErrNoBandsConfigured = errors.New("no size bands configured")

// ResolveWidthBand maps a requested width in inches onto the smallest band
// that can contain it: the request is rounded up to a whole inch, then the
// first band with an equal or larger inch size wins. Requests larger than
// every band clamp to the largest band instead of failing, so every positive
// width resolves to some band.
func (s *Service) ResolveWidthBand(requestedInches float64) (models.WidthBand, error) {
	bands, err := s.catalog.ListWidthBands()
	if err != nil {
		return models.WidthBand{}, err
	}
	if len(bands) == 0 {
		return models.WidthBand{}, ErrNoBandsConfigured
	}

	// Match in ascending size order regardless of how the store returned them.
	sorted := make([]models.WidthBand, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].WidthInches < sorted[j].WidthInches
	})

	ceiling := int(math.Ceil(requestedInches))
	for _, b := range sorted {
		if b.WidthInches >= ceiling {
			return b, nil
		}
	}
	return sorted[len(sorted)-1], nil
}

// ResolveHeightBand mirrors ResolveWidthBand for the vertical dimension.
func (s *Service) ResolveHeightBand(requestedInches float64) (models.HeightBand, error) {
	bands, err := s.catalog.ListHeightBands()
	if err != nil {
		return models.HeightBand{}, err
	}
	if len(bands) == 0 {
		return models.HeightBand{}, ErrNoBandsConfigured
	}

	sorted := make([]models.HeightBand, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].HeightInches < sorted[j].HeightInches
	})

	ceiling := int(math.Ceil(requestedInches))
	for _, b := range sorted {
		if b.HeightInches >= ceiling {
			return b, nil
		}
	}
	return sorted[len(sorted)-1], nil
}
