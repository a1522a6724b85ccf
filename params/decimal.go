package params

import (
	"net/url"

	"github.com/shopspring/decimal"
)

// Decimal is an exact decimal number, used for percentages the API accepts
// with fractional precision. It decodes from JSON numbers and strings.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal parses s, e.g. "8.25".
func NewDecimal(s string) (*Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &Decimal{Decimal: d}, nil
}

// DecimalFromFloat converts f without rounding beyond float precision.
func DecimalFromFloat(f float64) *Decimal {
	return &Decimal{Decimal: decimal.NewFromFloat(f)}
}

// EncodeValues implements query.Encoder.
func (d Decimal) EncodeValues(key string, v *url.Values) error {
	v.Set(key, d.String())
	return nil
}
