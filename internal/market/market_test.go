package market

import (
	"math"
	"testing"

	"mogul/internal/catalog"
	"mogul/internal/macro"
)

type fixedNorm struct{ v float64 }

func (r fixedNorm) NormFloat64() float64 { return r.v }

func testStockSpec() catalog.StockSpec {
	return catalog.StockSpec{
		Symbol:     "TST",
		Name:       "Test Corp",
		Sector:     catalog.SectorTech,
		Volatility: catalog.VolLow,
		BasePrice:  50,
	}
}

func quietSnapshot() macro.Snapshot {
	// No phase bias, no events.
	return macro.Snapshot{PhaseMult: 1.0}
}

func TestTickWithoutNoiseHoldsPrice(t *testing.T) {
	spec := testStockSpec()
	s := NewStock(spec)
	s.Tick(spec, quietSnapshot(), fixedNorm{v: 0})
	// Only the tiny per-tick drift moves the price.
	if math.Abs(s.CurrentPrice-50) > 0.001 {
		t.Fatalf("price moved without noise: %v", s.CurrentPrice)
	}
}

func TestPriceFloor(t *testing.T) {
	spec := testStockSpec()
	s := NewStock(spec)
	crash := fixedNorm{v: -100}
	for i := 0; i < 50; i++ {
		s.Tick(spec, quietSnapshot(), crash)
	}
	floor := spec.BasePrice * floorMultiple
	if s.CurrentPrice < floor {
		t.Fatalf("price below floor: %v < %v", s.CurrentPrice, floor)
	}
}

func TestHistoryWindow(t *testing.T) {
	spec := testStockSpec()
	s := NewStock(spec)
	for i := 0; i < 3*historyLen; i++ {
		s.Tick(spec, quietSnapshot(), fixedNorm{v: 0})
	}
	if len(s.PriceHistory) != historyLen {
		t.Fatalf("history length got %d want %d", len(s.PriceHistory), historyLen)
	}
}

func TestPhaseBiasMovesPrice(t *testing.T) {
	spec := testStockSpec()
	up := NewStock(spec)
	down := NewStock(spec)
	up.Tick(spec, macro.Snapshot{Phase: macro.PhasePeak}, fixedNorm{v: 0})
	down.Tick(spec, macro.Snapshot{Phase: macro.PhaseRecession}, fixedNorm{v: 0})
	if up.CurrentPrice <= down.CurrentPrice {
		t.Fatalf("peak should outpace recession: %v vs %v", up.CurrentPrice, down.CurrentPrice)
	}
}

func TestSigmaTiers(t *testing.T) {
	if Sigma(catalog.VolLow) >= Sigma(catalog.VolMed) || Sigma(catalog.VolMed) >= Sigma(catalog.VolHigh) {
		t.Fatalf("volatility tiers not ordered")
	}
}

func TestBuySellMath(t *testing.T) {
	s := NewStock(testStockSpec())

	s.ApplyBuy(10, 20)
	if s.SharesOwned != 10 || s.AverageBuyPrice != 20 {
		t.Fatalf("after buy: shares=%d avg=%v", s.SharesOwned, s.AverageBuyPrice)
	}

	proceeds, realized, ok := s.ApplySell(5, 30)
	if !ok {
		t.Fatalf("sell rejected")
	}
	if proceeds != 150 {
		t.Fatalf("proceeds got %v want 150", proceeds)
	}
	if realized != 50 {
		t.Fatalf("realized got %v want 50", realized)
	}
	if s.SharesOwned != 5 {
		t.Fatalf("shares got %d want 5", s.SharesOwned)
	}
}

func TestWeightedAverageBuyPrice(t *testing.T) {
	s := NewStock(testStockSpec())
	s.ApplyBuy(10, 20)
	s.ApplyBuy(10, 40)
	if s.AverageBuyPrice != 30 {
		t.Fatalf("avg got %v want 30", s.AverageBuyPrice)
	}
}

func TestOversellRejected(t *testing.T) {
	s := NewStock(testStockSpec())
	s.ApplyBuy(5, 20)
	if _, _, ok := s.ApplySell(6, 30); ok {
		t.Fatalf("oversell accepted")
	}
	if s.SharesOwned != 5 {
		t.Fatalf("oversell mutated position: %d", s.SharesOwned)
	}
}

func TestSellOutResetsBasis(t *testing.T) {
	s := NewStock(testStockSpec())
	s.ApplyBuy(5, 20)
	if _, _, ok := s.ApplySell(5, 25); !ok {
		t.Fatalf("sell rejected")
	}
	if s.AverageBuyPrice != 0 {
		t.Fatalf("basis not reset: %v", s.AverageBuyPrice)
	}
}

func TestTriggerHit(t *testing.T) {
	s := NewStock(testStockSpec())
	s.ApplyBuy(1, 50)

	s.StopLoss = 45
	s.CurrentPrice = 44
	if !s.TriggerHit() {
		t.Fatalf("stop-loss should fire")
	}

	s.StopLoss = 0
	s.TakeProfit = 60
	s.CurrentPrice = 61
	if !s.TriggerHit() {
		t.Fatalf("take-profit should fire")
	}

	s.CurrentPrice = 55
	if s.TriggerHit() {
		t.Fatalf("no trigger expected at %v", s.CurrentPrice)
	}
}

func TestTriggersIgnoredWithoutPosition(t *testing.T) {
	s := NewStock(testStockSpec())
	s.StopLoss = 100 // above price, would fire if shares were held
	if s.TriggerHit() {
		t.Fatalf("trigger fired with no shares")
	}
}

func TestPortfolioValue(t *testing.T) {
	a := NewStock(testStockSpec())
	a.ApplyBuy(2, 50)
	b := NewStock(catalog.StockSpec{Symbol: "OTH", BasePrice: 10})
	b.ApplyBuy(3, 10)
	got := PortfolioValue([]Stock{a, b})
	if got != 2*50+3*10 {
		t.Fatalf("portfolio value got %v", got)
	}
}

func TestChangePct(t *testing.T) {
	s := NewStock(testStockSpec())
	s.PriceHistory = []float64{50, 52, 55}
	s.CurrentPrice = 55
	if got := s.ChangePct(); math.Abs(got-10) > 1e-9 {
		t.Fatalf("change got %v want 10", got)
	}
}
