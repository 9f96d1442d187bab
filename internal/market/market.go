// Package market simulates the stock board: a per-tick stochastic price
// walk with macro phase and event biases, plus the position math for
// buys and sells.
package market

import (
	"mogul/internal/catalog"
	"mogul/internal/macro"
)

const (
	// TradingUnlockEarnings is the lifetime earnings threshold that
	// opens the stock market.
	TradingUnlockEarnings = 250_000.0

	TickSeconds = 5.0

	dailyDrift    = 0.0008
	floorMultiple = 0.1
	historyLen    = 20
)

// Rand is the randomness the price walk consumes. *math/rand.Rand
// satisfies it.
type Rand interface {
	NormFloat64() float64
}

// Stock is the mutable state of one listed symbol.
type Stock struct {
	Symbol          string    `json:"symbol"`
	CurrentPrice    float64   `json:"current_price"`
	PriceHistory    []float64 `json:"price_history"`
	SharesOwned     int64     `json:"shares_owned"`
	AverageBuyPrice float64   `json:"average_buy_price,omitempty"`
	StopLoss        float64   `json:"stop_loss,omitempty"`
	TakeProfit      float64   `json:"take_profit,omitempty"`
}

func NewStock(spec catalog.StockSpec) Stock {
	return Stock{
		Symbol:       spec.Symbol,
		CurrentPrice: spec.BasePrice,
		PriceHistory: []float64{spec.BasePrice},
	}
}

// Sigma is the fixed per-tick standard deviation for a volatility tier.
func Sigma(v catalog.Volatility) float64 {
	switch v {
	case catalog.VolLow:
		return 0.015
	case catalog.VolMed:
		return 0.03
	case catalog.VolHigh:
		return 0.06
	default:
		return 0.03
	}
}

// Tick advances the price one step. The result never falls below the
// penny-stock floor of 10% of the base price.
func (s *Stock) Tick(spec catalog.StockSpec, sn macro.Snapshot, rng Rand) {
	drift := dailyDrift * TickSeconds / 86400
	noise := rng.NormFloat64() * Sigma(spec.Volatility)
	ret := drift + sn.Phase.PriceBias() + sn.SectorBias(spec.Sector) + noise

	next := s.CurrentPrice * (1 + ret)
	floor := spec.BasePrice * floorMultiple
	if next < floor {
		next = floor
	}
	s.CurrentPrice = next
	s.PriceHistory = append(s.PriceHistory, next)
	if len(s.PriceHistory) > historyLen {
		s.PriceHistory = s.PriceHistory[len(s.PriceHistory)-historyLen:]
	}
}

// ApplyBuy folds shares bought at price into the position, keeping the
// cost basis as a shares-weighted average. Affordability is the
// caller's concern.
func (s *Stock) ApplyBuy(shares int64, price float64) {
	if shares <= 0 {
		return
	}
	oldCost := s.AverageBuyPrice * float64(s.SharesOwned)
	s.SharesOwned += shares
	s.AverageBuyPrice = (oldCost + price*float64(shares)) / float64(s.SharesOwned)
}

// ApplySell removes shares at price and reports the proceeds and the
// realized profit against the average cost basis. Returns false and
// changes nothing when overselling.
func (s *Stock) ApplySell(shares int64, price float64) (proceeds, realized float64, ok bool) {
	if shares <= 0 || shares > s.SharesOwned {
		return 0, 0, false
	}
	s.SharesOwned -= shares
	proceeds = price * float64(shares)
	realized = (price - s.AverageBuyPrice) * float64(shares)
	if s.SharesOwned == 0 {
		s.AverageBuyPrice = 0
	}
	return proceeds, realized, true
}

// TriggerHit reports whether a stop-loss or take-profit threshold fires
// at the current price.
func (s *Stock) TriggerHit() bool {
	if s.SharesOwned <= 0 {
		return false
	}
	if s.StopLoss > 0 && s.CurrentPrice <= s.StopLoss {
		return true
	}
	if s.TakeProfit > 0 && s.CurrentPrice >= s.TakeProfit {
		return true
	}
	return false
}

// PortfolioValue marks every position to the current price.
func PortfolioValue(stocks []Stock) float64 {
	total := 0.0
	for i := range stocks {
		total += stocks[i].CurrentPrice * float64(stocks[i].SharesOwned)
	}
	return total
}

// ChangePct is the move over the recorded history window.
func (s *Stock) ChangePct() float64 {
	if len(s.PriceHistory) < 2 || s.PriceHistory[0] == 0 {
		return 0
	}
	return (s.CurrentPrice - s.PriceHistory[0]) / s.PriceHistory[0] * 100
}
