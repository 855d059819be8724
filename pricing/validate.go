package pricing

import (
	"github.com/shopspring/decimal"
)

// Validation compares a client-submitted price against the server-recomputed
// quote total.
type Validation struct {
	Valid           bool
	CalculatedPrice decimal.Decimal
	Difference      decimal.Decimal
}

// Validate recomputes the quote from server-held catalog data and accepts
// the submitted price only when the absolute difference stays within
// tolerance. The submitted price is never used as an input to the
// computation; this is the check that blocks price tampering on checkout.
// Tolerance comes from the caller because different flows accept different
// amounts of accumulated rounding.
func (s *Service) Validate(productID uint, widthInches, heightInches float64, selections []Selection, submitted, tolerance decimal.Decimal) (*Validation, error) {
	quote, err := s.Quote(productID, widthInches, heightInches, selections)
	if err != nil {
		return nil, err
	}
	difference := quote.Total.Sub(submitted).Abs()
	return &Validation{
		Valid:           difference.LessThanOrEqual(tolerance),
		CalculatedPrice: quote.Total,
		Difference:      difference,
	}, nil
}
