package stopquote

import (
	"strings"
	"testing"
)

// fixtures shared by the parser, computation and summary tests, shaped like
// real brokerage exports: banner and footer lines around quoted rows.

const sampleHoldings = `"Account Holdings","as of 08/29/2026"
"Symbol","Day Change","Unrealized Gain/Loss","Description","Quantity","Unit Cost","Price"
"AAPL","+$1.23 +0.55%","+$1,062.50 +12.5%","APPLE INC","10.5","$160.00","$170.00"
"MSFT !","-$2.10 -0.40%","+$210.00 +2.0%","MICROSOFT CORP","20","$500.00","$510.00"
"KO","+$0.10 +0.10%","+$50.00 +1.0%","COCA-COLA CO","40","$60.00","$62.00"
"TSLA","+$3.33 +1.25%","-$600.00 -6.0%","TESLA INC","30","$210.00","$200.00"
"Total","","","","","","$12,345.00"
`

const sampleOrders = `"Open Orders","as of 08/29/2026"
"Order #","Symbol","Account","Quantity","Order Type","TIF"
"1001","AAPL","74-1234","10","Stop quote$161.50 Trigger","GTC"
"1002","MSFT !","74-1234","15","Stop quote$485.00 Trigger","GTC"
"1003","TSLA","74-1234","30","Limit$195.00","GTC"
`

// loadSample builds a book from the fixtures and computes stops with the
// default tunables.
func loadSample(t *testing.T) *Book {
	t.Helper()
	book := NewBook()
	if err := book.LoadHoldings(strings.NewReader(sampleHoldings), "holdings.csv"); err != nil {
		t.Fatalf("LoadHoldings() error = %v", err)
	}
	if err := book.LoadOrders(strings.NewReader(sampleOrders), "orders.csv"); err != nil {
		t.Fatalf("LoadOrders() error = %v", err)
	}
	book.ComputeStops(0.95, 5)
	return book
}
