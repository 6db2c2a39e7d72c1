package stopquote

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Price represents a dollar amount from a brokerage export.
//
// Exports quote everything in USD, so the currency is fixed; the value is
// kept as a decimal so stop computations stay exact.
type Price struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

// dollar amounts in exports look like "$1,234.56", sometimes signed.
var priceRe = regexp.MustCompile(`^[+-]?\$?([0-9,]+\.?[0-9]*)$`)

// ParsePrice parses a dollar amount as found in an export field,
// stripping the currency sign and thousands separators.
func ParsePrice(s string) (Price, error) {
	m := priceRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Price{}, fmt.Errorf("invalid price %q", s)
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if strings.HasPrefix(strings.TrimSpace(s), "-") {
		d = d.Neg()
	}
	return Price{value: d}, nil
}

func (p Price) Equal(q Price) bool              { return p.value.Equal(q.value) }
func (p Price) LessThan(q Price) bool           { return p.value.LessThan(q.value) }
func (p Price) GreaterThan(q Price) bool        { return p.value.GreaterThan(q.value) }
func (p Price) GreaterThanOrEqual(q Price) bool { return p.value.GreaterThanOrEqual(q.value) }
func (p Price) IsZero() bool                    { return p.value.IsZero() }
func (p Price) Add(q Price) Price               { return Price{value: p.value.Add(q.value)} }
func (p Price) Sub(q Price) Price               { return Price{value: p.value.Sub(q.value)} }
func (p Price) Mul(q Quantity) Price            { return Price{value: p.value.Mul(q.value)} }

// Scale multiplies the price by a dimensionless ratio, e.g. 0.95.
func (p Price) Scale(f float64) Price { return Price{value: p.value.Mul(decimal.NewFromFloat(f))} }

// Round rounds half away from zero to the given number of decimal places.
func (p Price) Round(places int32) Price { return Price{value: p.value.Round(places)} }

// Truncate drops decimal places without rounding.
func (p Price) Truncate(places int32) Price { return Price{value: p.value.Truncate(places)} }

// Avg returns the midpoint between p and q, rounded to the cent.
func (p Price) Avg(q Price) Price {
	return Price{value: p.value.Add(q.value).Div(decimal.NewFromInt(2)).Round(2)}
}

// String returns the price formatted as a USD amount, e.g. "$1,234.56".
func (p Price) String() string {
	cur := money.GetCurrency(money.USD)
	dec := p.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Text returns the plain decimal representation used in summary CSV cells.
// The scale of the value is kept, so a parsed "$170.00" writes back as
// "170.00", not "170".
func (p Price) Text() string {
	if exp := p.value.Exponent(); exp < 0 {
		return p.value.StringFixed(-exp)
	}
	return p.value.String()
}
