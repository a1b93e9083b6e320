package entity

import (
	"fmt"
	"math"
	"strings"

	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// ValidateAndConvertAmount parses a decimal string into minor units (hundredths).
// "5000000" becomes 500000000 and "10.5" becomes 1050.
func ValidateAndConvertAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if value.IsNegative() {
		return 0, errs.ErrNegativeAmount
	}

	if !value.Equal(value.Truncate(MaxDecimalPlaces)) {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	minor := value.Shift(MaxDecimalPlaces)
	if minor.GreaterThan(maxMinorUnits) {
		return 0, fmt.Errorf("%w: amount out of range", errs.ErrInvalidAmount)
	}

	return minor.IntPart(), nil
}

// AmountInCentsToString converts minor units to a decimal string with two places.
// 1015 becomes "10.15" and 500000000 becomes "5000000.00".
func AmountInCentsToString(amountInCents int64) string {
	return decimal.New(amountInCents, -MaxDecimalPlaces).StringFixed(MaxDecimalPlaces)
}
