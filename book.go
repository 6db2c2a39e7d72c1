package stopquote

import (
	"sort"
)

// Stock is the per-symbol join of a holding row with its open stop order,
// plus the computed stop quotes.
type Stock struct {
	Symbol    string
	Gain      Percent
	LastPrice Price
	UnitCost  Price
	Quantity  Quantity

	// open stop order, when one exists
	HasStop       bool
	ExistingStop  Price
	OrderQuantity Quantity

	// computed
	Stop95     Price
	HasNewStop bool
	NewStop    Price
}

// Book is the in-memory set of stocks keyed by symbol.
//
// It is filled by LoadHoldings and LoadOrders and consumed by ComputeStops
// and Summary. The symbol is the natural key across both export files.
type Book struct {
	stocks map[string]*Stock
}

func NewBook() *Book {
	return &Book{stocks: make(map[string]*Stock)}
}

// Len returns the number of stocks in the book.
func (b *Book) Len() int { return len(b.stocks) }

// Get returns the stock for a symbol.
func (b *Book) Get(symbol string) (*Stock, bool) {
	s, ok := b.stocks[symbol]
	return s, ok
}

// Symbols returns all symbols in the book in lexical order.
func (b *Book) Symbols() []string {
	symbols := make([]string, 0, len(b.stocks))
	for s := range b.stocks {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}
