package stopquote

import (
	"strings"
	"testing"
)

func TestLoadOrders(t *testing.T) {
	book := NewBook()
	if err := book.LoadHoldings(strings.NewReader(sampleHoldings), "holdings.csv"); err != nil {
		t.Fatalf("LoadHoldings() error = %v", err)
	}
	if err := book.LoadOrders(strings.NewReader(sampleOrders), "orders.csv"); err != nil {
		t.Fatalf("LoadOrders() error = %v", err)
	}

	s, _ := book.Get("AAPL")
	if !s.HasStop {
		t.Fatal("AAPL should have an open stop order")
	}
	if !s.ExistingStop.Equal(P(161.50)) {
		t.Errorf("AAPL existing stop = %v, want $161.50", s.ExistingStop)
	}
	if !s.OrderQuantity.Equal(Q(10)) {
		t.Errorf("AAPL order quantity = %v, want 10", s.OrderQuantity)
	}

	// the TSLA order is a limit order, not a stop quote
	s, _ = book.Get("TSLA")
	if s.HasStop {
		t.Error("TSLA has no stop-quote order, only a limit order")
	}

	// no order at all for KO
	s, _ = book.Get("KO")
	if s.HasStop {
		t.Error("KO has no order at all")
	}
}

func TestLoadOrdersUnknownSymbol(t *testing.T) {
	const orders = `"1001","NVDA","74-1234","10","Stop quote$100.00","GTC"
`
	book := NewBook()
	if err := book.LoadHoldings(strings.NewReader(sampleHoldings), "holdings.csv"); err != nil {
		t.Fatalf("LoadHoldings() error = %v", err)
	}
	err := book.LoadOrders(strings.NewReader(orders), "orders.csv")
	if err == nil {
		t.Fatal("LoadOrders() expected an error for an order without a holding")
	}
	if !strings.Contains(err.Error(), "NVDA") {
		t.Errorf("error %q does not name the unmatched symbol NVDA", err)
	}
}

func TestLoadOrdersReconciliation(t *testing.T) {
	// a stop-quote row whose quantity field is empty cannot be decoded
	const orders = `"1001","AAPL","74-1234","","Stop quote$100.00","GTC"
`
	book := NewBook()
	if err := book.LoadHoldings(strings.NewReader(sampleHoldings), "holdings.csv"); err != nil {
		t.Fatalf("LoadHoldings() error = %v", err)
	}
	err := book.LoadOrders(strings.NewReader(orders), "orders.csv")
	if err == nil {
		t.Fatal("LoadOrders() expected a reconciliation error")
	}
	if !strings.Contains(err.Error(), "AAPL") {
		t.Errorf("error %q does not name the missing symbol AAPL", err)
	}
}
