package stopquote

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
)

// A holdings export row has seven quoted fields:
// Symbol, Day Change, Unrealized Gain, Description, Quantity, Unit Cost, Price.
// The export surrounds them with banner and footer lines that are not rows.
var (
	reSymbol   = regexp.MustCompile(`^\s?([A-Z]{1,4})\s?!?$`)
	reDay      = regexp.MustCompile(`^[+-]?\$\d+\.[0-9]{2,4} [+-]?\d+\.[0-9]{2,4}%$`)
	reGain     = regexp.MustCompile(`^[+-]?\$[0-9,]+\.?\d* ([+-]?\d+\.?\d*)%$`)
	reDesc     = regexp.MustCompile(`^[A-Z].*`)
	reQuantity = regexp.MustCompile(`^\d+\.?\d*$`)
	reDollar   = regexp.MustCompile(`^\$([0-9,]+\.?\d*)$`)
)

// sold positions leave "--" placeholders behind; load them as zeros.
func fillSold(field string) string {
	switch field {
	case "-- --":
		return "+$0.0 +0.0%"
	case "--":
		return "$0.0"
	}
	return field
}

// LoadHoldings parses a holdings export and merges its rows into the book.
// name is used in error messages and progress logs.
//
// Every line that carries a symbol must yield a full holding row; a line the
// parser cannot fully decode is a parse error naming the symbols left behind.
func (b *Book) LoadHoldings(r io.Reader, name string) error {
	logger.Debug().Str("file", name).Msg("processing holdings")

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var seen, parsed []string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("cannot read holdings file %q: %w", name, err)
		}
		for i := range record {
			record[i] = fillSold(record[i])
		}
		if len(record) > 0 && reSymbol.MatchString(record[0]) {
			seen = append(seen, reSymbol.FindStringSubmatch(record[0])[1])
		}
		h, ok := parseHoldingRecord(record)
		if !ok {
			continue
		}
		b.stocks[h.Symbol] = h
		parsed = append(parsed, h.Symbol)
	}

	if len(seen) != len(parsed) {
		return fmt.Errorf("holdings file %q: found %d symbols but decoded %d rows, missing %v",
			name, len(seen), len(parsed), missing(seen, parsed))
	}
	logger.Info().Int("stocks", len(parsed)).Str("file", name).Msg("holdings loaded")
	return nil
}

// parseHoldingRecord decodes one holdings row, reporting ok=false for the
// banner and footer lines that do not form a row.
func parseHoldingRecord(record []string) (*Stock, bool) {
	if len(record) < 7 {
		return nil, false
	}
	mSymbol := reSymbol.FindStringSubmatch(record[0])
	mGain := reGain.FindStringSubmatch(record[2])
	if mSymbol == nil || mGain == nil ||
		!reDay.MatchString(record[1]) ||
		!reDesc.MatchString(record[3]) ||
		!reQuantity.MatchString(record[4]) ||
		!reDollar.MatchString(record[5]) ||
		!reDollar.MatchString(record[6]) {
		return nil, false
	}

	gain, err := ParsePercent(mGain[1])
	if err != nil {
		return nil, false
	}
	quantity, err := ParseQuantity(record[4])
	if err != nil {
		return nil, false
	}
	unitCost, err := ParsePrice(record[5])
	if err != nil {
		return nil, false
	}
	price, err := ParsePrice(record[6])
	if err != nil {
		return nil, false
	}

	return &Stock{
		Symbol:    mSymbol[1],
		Gain:      gain,
		LastPrice: price,
		UnitCost:  unitCost,
		Quantity:  quantity,
	}, true
}

// missing returns the symbols present in seen but absent from parsed.
func missing(seen, parsed []string) []string {
	got := make(map[string]bool, len(parsed))
	for _, s := range parsed {
		got[s] = true
	}
	var out []string
	for _, s := range seen {
		if !got[s] {
			out = append(out, s)
		}
	}
	return out
}
