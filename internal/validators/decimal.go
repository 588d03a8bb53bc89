package validators

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Limits of a numeric(10,2) column.
const (
	maxDecimalPlaces = 2
	maxIntegerDigits = 8
	civilDateLayout  = "2006-01-02"
)

var decimalCeiling = decimal.New(1, maxIntegerDigits)

// FitsNumeric reports whether d fits a numeric(10,2) column. The sign is
// not checked.
func FitsNumeric(d decimal.Decimal) bool {
	if !d.Equal(d.Round(maxDecimalPlaces)) {
		return false
	}
	return d.Abs().LessThan(decimalCeiling)
}

// IsAcreage reports whether d fits numeric(10,2) and is not negative.
func IsAcreage(d decimal.Decimal) bool {
	return !d.IsNegative() && FitsNumeric(d)
}

// ParseCivilDate reads a YYYY-MM-DD date with no zone attached.
func ParseCivilDate(s string) (datatypes.Date, bool) {
	t, err := time.Parse(civilDateLayout, s)
	if err != nil {
		return datatypes.Date{}, false
	}
	return datatypes.Date(t), true
}
