package stopquote

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// An open-orders export row carries the symbol and, for stop orders, a field
// holding the order type and trigger price glued together ("Stop quote$31.50").
// The field right before it is the order quantity. Orders of any other type
// are ignored.
var reStopQuote = regexp.MustCompile(`^Stop quote\$([0-9,]+\.?[0-9]{2})`)

// LoadOrders parses an open-orders export and attaches every stop-quote order
// to its stock in the book. An order for a symbol with no holding is an
// error, never dropped.
func (b *Book) LoadOrders(r io.Reader, name string) error {
	logger.Debug().Str("file", name).Msg("processing orders")

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var seen, handled []string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("cannot read orders file %q: %w", name, err)
		}

		symbol, stop, quantity, isStop, ok := parseOrderRecord(record)
		if isStop {
			seen = append(seen, symbol)
		}
		if !ok {
			continue
		}

		s, found := b.stocks[symbol]
		if !found {
			return fmt.Errorf("orders file %q: stop order for %q without a matching holding", name, symbol)
		}
		s.HasStop = true
		s.ExistingStop = stop
		s.OrderQuantity = quantity
		handled = append(handled, symbol)
	}

	if len(seen) != len(handled) {
		return fmt.Errorf("orders file %q: found %d stop orders but decoded %d, missing %v",
			name, len(seen), len(handled), missing(seen, handled))
	}

	for _, symbol := range b.Symbols() {
		s := b.stocks[symbol]
		logger.Debug().Str("symbol", symbol).Stringer("last", s.LastPrice).
			Bool("stop", s.HasStop).Msg("joined")
	}
	return nil
}

// parseOrderRecord scans a record for a symbol field followed later by a
// stop-quote field. isStop reports that the record is a stop order row even
// when it cannot be fully decoded, which feeds the reconciliation check.
func parseOrderRecord(record []string) (symbol string, stop Price, quantity Quantity, isStop, ok bool) {
	symbolAt := -1
	stopAt := -1
	for i, field := range record {
		if symbolAt < 0 {
			if m := reSymbol.FindStringSubmatch(field); m != nil {
				symbolAt, symbol = i, m[1]
			}
			continue
		}
		if strings.HasPrefix(field, "Stop quote$") {
			stopAt = i
			break
		}
	}
	if symbolAt < 0 || stopAt < 0 {
		return "", Price{}, Quantity{}, false, false
	}
	isStop = true

	m := reStopQuote.FindStringSubmatch(record[stopAt])
	if m == nil || stopAt == 0 || !reQuantity.MatchString(record[stopAt-1]) {
		return symbol, Price{}, Quantity{}, isStop, false
	}
	stop, err := ParsePrice(m[1])
	if err != nil {
		return symbol, Price{}, Quantity{}, isStop, false
	}
	quantity, err = ParseQuantity(record[stopAt-1])
	if err != nil {
		return symbol, Price{}, Quantity{}, isStop, false
	}
	return symbol, stop, quantity, isStop, true
}
