package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
)

// DefaultMinorUnitExponent applies to currencies without an explicit entry
const DefaultMinorUnitExponent int32 = 2

// minorUnitExponents lists currencies whose minor unit differs from the default
var minorUnitExponents = map[string]int32{
	"UGX": 0,
	"RWF": 0,
	"JPY": 0,
	"XOF": 0,
	"BHD": 3,
	"KWD": 3,
}

// maxMinorUnits bounds converted amounts well inside int64
var maxMinorUnits = decimal.New(1<<62, 0)

// MinorUnitExponent returns the number of decimal places of a currency's minor unit
func MinorUnitExponent(currency string) int32 {
	if exp, ok := minorUnitExponents[strings.ToUpper(currency)]; ok {
		return exp
	}
	return DefaultMinorUnitExponent
}

// ValidateAmount checks a transaction amount in minor units
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: must be greater than zero, got %d", errs.ErrInvalidAmount, amount)
	}
	return nil
}

// MinorToDecimal converts minor units to a major-unit decimal, e.g. 1050 KES -> 10.50
func MinorToDecimal(amount int64, currency string) decimal.Decimal {
	return decimal.New(amount, -MinorUnitExponent(currency))
}

// FormatAmount renders minor units with the currency's fixed number of decimals
func FormatAmount(amount int64, currency string) string {
	return MinorToDecimal(amount, currency).StringFixed(MinorUnitExponent(currency))
}

// DecimalToMinor converts a major-unit decimal to minor units.
// Values carrying more precision than the currency allows are rejected rather than rounded.
func DecimalToMinor(value decimal.Decimal, currency string) (int64, error) {
	exp := MinorUnitExponent(currency)
	shifted := value.Shift(exp)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("%w: %s has more than %d decimal places", errs.ErrInvalidAmount, value.String(), exp)
	}
	if shifted.GreaterThan(maxMinorUnits) {
		return 0, fmt.Errorf("%w: %s is out of range", errs.ErrInvalidAmount, value.String())
	}
	return shifted.IntPart(), nil
}

// ParseAmount parses a major-unit string such as "10.5" into minor units
func ParseAmount(amount string, currency string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if value.IsNegative() {
		return 0, fmt.Errorf("%w: negative value %s", errs.ErrInvalidAmount, amount)
	}
	return DecimalToMinor(value, currency)
}
