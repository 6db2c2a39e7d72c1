package stopquote

// Stop price rounding tiers: whole dollars above $1000, dimes above $50,
// cents below.
var (
	tierWhole = P(1000)
	tierDime  = P(50)
)

// ComputeStops derives a new stop quote for every stock in the book.
//
// The baseline is stopPercent of the last price, rounded to the cent. A new
// stop is proposed only when the unrealized gain moved past gainGate in
// either direction, or when a stop order is already open. With an open stop
// the new quote is the midpoint between baseline and existing stop,
// tier-rounded; without one it is the baseline truncated to whole dollars.
func (b *Book) ComputeStops(stopPercent float64, gainGate Percent) {
	logger.Debug().Msg("calculating stop quotes")

	for _, symbol := range b.Symbols() {
		s := b.stocks[symbol]
		s.Stop95 = s.LastPrice.Scale(stopPercent).Round(2)

		if s.Gain.Abs() < gainGate.Abs() && !s.HasStop {
			logger.Debug().Str("symbol", symbol).Stringer("gain", s.Gain).
				Msg("gain within gate and no open stop, skipping")
			continue
		}

		if !s.HasStop {
			// no existing stop, round the baseline down to whole dollars
			s.NewStop, s.HasNewStop = s.Stop95.Truncate(0), true
		} else {
			stop := s.Stop95.Avg(s.ExistingStop)
			switch {
			case stop.GreaterThanOrEqual(tierWhole):
				stop = stop.Truncate(0)
			case stop.GreaterThanOrEqual(tierDime):
				stop = stop.Round(1)
			}
			s.NewStop, s.HasNewStop = stop, true
		}

		logger.Debug().Str("symbol", symbol).
			Stringer("last", s.LastPrice).
			Stringer("baseline", s.Stop95).
			Stringer("new", s.NewStop).
			Msg("stop quote")
	}
}
