package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// Promo codes are numeric with a trailing Luhn check digit, so obvious
// typos are rejected before hitting storage.
func IsPromoCode(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
