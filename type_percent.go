package stopquote

import (
	"fmt"
	"strconv"
	"strings"
)

// Percent is an unrealized gain in percent, as reported by the export.
type Percent float64

// ParsePercent parses a percentage field such as "+12.3" or "-4.56".
func ParsePercent(s string) (Percent, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percent %q: %w", s, err)
	}
	return Percent(v), nil
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Abs returns the absolute value of the percentage.
func (p Percent) Abs() Percent {
	if p < 0 {
		return -p
	}
	return p
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// Text returns the plain numeric representation used in summary CSV cells.
func (p Percent) Text() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}
