package stopquote

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
)

// SummaryRow is one line of the calculation result, as persisted in the
// summary CSV. ExistingStop and NewStop may be absent.
type SummaryRow struct {
	Symbol       string
	Gain         Percent
	LastPrice    Price
	HasExisting  bool
	ExistingStop Price
	HasNew       bool
	NewStop      Price
	Comments     string
}

var summaryHeader = []string{"Symbol", "Gain", "Last Price", "Existing Stop Quote", "New Stop Quote", "Comments"}

// Equal reports whether two rows hold the same values.
func (r SummaryRow) Equal(o SummaryRow) bool {
	return r.Symbol == o.Symbol &&
		r.Gain.Equal(o.Gain) &&
		r.LastPrice.Equal(o.LastPrice) &&
		r.HasExisting == o.HasExisting &&
		(!r.HasExisting || r.ExistingStop.Equal(o.ExistingStop)) &&
		r.HasNew == o.HasNew &&
		(!r.HasNew || r.NewStop.Equal(o.NewStop)) &&
		r.Comments == o.Comments
}

// Summary returns one row per stock, sorted by symbol, with review comments
// attached.
func (b *Book) Summary() []SummaryRow {
	rows := make([]SummaryRow, 0, len(b.stocks))
	for _, symbol := range b.Symbols() {
		s := b.stocks[symbol]
		rows = append(rows, SummaryRow{
			Symbol:       s.Symbol,
			Gain:         s.Gain,
			LastPrice:    s.LastPrice,
			HasExisting:  s.HasStop,
			ExistingStop: s.ExistingStop,
			HasNew:       s.HasNewStop,
			NewStop:      s.NewStop,
			Comments:     comments(s),
		})
	}
	return rows
}

// comments flags a stock whose new quote would move the stop down, and a
// stop order whose quantity no longer matches the holding.
func comments(s *Stock) string {
	if !s.HasStop {
		return ""
	}
	var c []string
	if s.HasNewStop && s.ExistingStop.GreaterThan(s.NewStop) {
		c = append(c, "New stop quote is lower than the existing!")
	}
	// holdings can be fractional, orders cannot; compare whole shares
	if !s.Quantity.Whole().Equal(s.OrderQuantity) {
		c = append(c, "Quantities are different!")
	}
	return strings.Join(c, " ")
}

// WriteSummary writes rows as a summary CSV, header first.
func WriteSummary(w io.Writer, rows []SummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return fmt.Errorf("cannot write summary header: %w", err)
	}
	for _, r := range rows {
		record := []string{r.Symbol, r.Gain.Text(), r.LastPrice.Text(), "", "", r.Comments}
		if r.HasExisting {
			record[3] = r.ExistingStop.Text()
		}
		if r.HasNew {
			record[4] = r.NewStop.Text()
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write summary row for %q: %w", r.Symbol, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadSummary reads back a summary CSV written by WriteSummary.
func ReadSummary(r io.Reader) ([]SummaryRow, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read summary header: %w", err)
	}
	if !slices.Equal(header, summaryHeader) {
		return nil, fmt.Errorf("not a summary file, header is %v", header)
	}

	var rows []SummaryRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read summary row: %w", err)
		}
		row, err := parseSummaryRecord(record)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseSummaryRecord(record []string) (SummaryRow, error) {
	row := SummaryRow{Symbol: record[0], Comments: record[5]}
	var err error
	if row.Gain, err = ParsePercent(record[1]); err != nil {
		return row, fmt.Errorf("summary row %q: %w", record[0], err)
	}
	if row.LastPrice, err = ParsePrice(record[2]); err != nil {
		return row, fmt.Errorf("summary row %q: %w", record[0], err)
	}
	if record[3] != "" {
		if row.ExistingStop, err = ParsePrice(record[3]); err != nil {
			return row, fmt.Errorf("summary row %q: %w", record[0], err)
		}
		row.HasExisting = true
	}
	if record[4] != "" {
		if row.NewStop, err = ParsePrice(record[4]); err != nil {
			return row, fmt.Errorf("summary row %q: %w", record[0], err)
		}
		row.HasNew = true
	}
	return row, nil
}

// SummaryFileName returns the timestamped name the summary CSV is saved
// under, e.g. "08312026_153002.summary.csv".
func SummaryFileName(now time.Time) string {
	return now.Format("01022006_150405") + ".summary.csv"
}
