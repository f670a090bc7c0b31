package market

import (
	"fmt"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
)

// validatePrice validates a listing price
func validatePrice(price int64) error {
	if price <= 0 {
		return fmt.Errorf(ErrMsgInvalidPriceFmt, price, domain.ErrInvalidPrice)
	}
	if price > domain.MaxListingPrice {
		return fmt.Errorf(ErrMsgPriceExceedsMaxFmt, price, domain.MaxListingPrice, domain.ErrPriceTooHigh)
	}
	return nil
}
