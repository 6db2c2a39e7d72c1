package stopquote

import (
	"strings"
	"testing"
)

func TestComputeStops(t *testing.T) {
	book := loadSample(t)

	tests := []struct {
		symbol  string
		hasNew  bool
		newStop Price
	}{
		// gain 12.5%, existing stop: midpoint of 161.50 and 161.50, dime tier
		{"AAPL", true, P(161.5)},
		// gain 1%, no stop order: gate suppresses the new stop
		{"KO", false, Price{}},
		// gain 2% but an open stop forces the computation:
		// (484.50+485.00)/2 = 484.75, dime tier rounds to 484.8
		{"MSFT", true, P(484.8)},
		// gain -6%, no existing stop: 190.00 truncated to whole dollars
		{"TSLA", true, P(190)},
	}

	for _, tc := range tests {
		s, ok := book.Get(tc.symbol)
		if !ok {
			t.Fatalf("%s not found", tc.symbol)
		}
		if s.HasNewStop != tc.hasNew {
			t.Errorf("%s: HasNewStop = %v, want %v", tc.symbol, s.HasNewStop, tc.hasNew)
			continue
		}
		if tc.hasNew && !s.NewStop.Equal(tc.newStop) {
			t.Errorf("%s: NewStop = %v, want %v", tc.symbol, s.NewStop, tc.newStop)
		}
	}
}

func TestComputeStopsWholeTier(t *testing.T) {
	// above $1000 the midpoint is truncated to whole dollars
	const holdings = `"BKNG","+$1.00 +0.10%","+$100.00 +8.0%","BOOKING HOLDINGS","2","$1,100.00","$1,200.00"
`
	const orders = `"1","BKNG","74-1234","2","Stop quote$1,111.12 Trigger","GTC"
`
	book := NewBook()
	if err := book.LoadHoldings(strings.NewReader(holdings), "h.csv"); err != nil {
		t.Fatalf("LoadHoldings() error = %v", err)
	}
	if err := book.LoadOrders(strings.NewReader(orders), "o.csv"); err != nil {
		t.Fatalf("LoadOrders() error = %v", err)
	}
	book.ComputeStops(0.95, 5)

	s, _ := book.Get("BKNG")
	// baseline 1140.00, midpoint with 1111.12 is 1125.56, truncated to 1125
	if !s.NewStop.Equal(P(1125)) {
		t.Errorf("NewStop = %v, want $1125", s.NewStop)
	}
}

func TestComputeStopsCentTier(t *testing.T) {
	// below $50 the midpoint keeps its cents
	const holdings = `"F","+$0.10 +0.30%","+$40.00 +9.0%","FORD MOTOR CO","100","$36.00","$40.00"
`
	const orders = `"1","F","74-1234","100","Stop quote$37.12 Trigger","GTC"
`
	book := NewBook()
	if err := book.LoadHoldings(strings.NewReader(holdings), "h.csv"); err != nil {
		t.Fatalf("LoadHoldings() error = %v", err)
	}
	if err := book.LoadOrders(strings.NewReader(orders), "o.csv"); err != nil {
		t.Fatalf("LoadOrders() error = %v", err)
	}
	book.ComputeStops(0.95, 5)

	s, _ := book.Get("F")
	// baseline 38.00, midpoint with 37.12 is 37.56
	if !s.NewStop.Equal(P(37.56)) {
		t.Errorf("NewStop = %v, want $37.56", s.NewStop)
	}
}
