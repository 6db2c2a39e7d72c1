// Package stopquote computes stop-quote prices for stock holdings from a
// pair of brokerage CSV exports: a holdings file carrying cost basis and
// last prices, and an open-orders file carrying existing stop orders.
//
// The two files are joined by stock symbol into a [Book]. [Book.ComputeStops]
// proposes a new stop price per symbol, and the result is persisted as a
// timestamped summary CSV.
package stopquote
