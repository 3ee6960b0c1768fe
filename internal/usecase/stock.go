package usecase

import (
	domainErrors "github.com/mkuznecov/storefront/internal/domain/errors"
)

// CheckStock validates a requested quantity against available stock.
// A nil available quantity means stock was never configured for the
// product and is reported separately from running out of it.
func CheckStock(available *int64, requested int64) error {
	if requested <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	if available == nil {
		return domainErrors.ErrStockNotSet
	}
	if requested > *available {
		return domainErrors.ErrOutOfStock
	}
	return nil
}
