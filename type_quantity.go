package stopquote

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity is a number of shares. Holdings may be fractional,
// open orders are always whole shares.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// ParseQuantity parses a share count field from an export.
func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return Quantity{value: d}, nil
}

func (q Quantity) Equal(p Quantity) bool { return q.value.Equal(p.value) }
func (q Quantity) IsZero() bool          { return q.value.IsZero() }
func (q Quantity) String() string        { return q.value.String() }

// Whole truncates the quantity to whole shares. Used to compare a
// possibly-fractional holding against a whole-share order.
func (q Quantity) Whole() Quantity { return Quantity{value: q.value.Truncate(0)} }
