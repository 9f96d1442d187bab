package econ

import (
	"math"
	"testing"
	"time"

	"mogul/internal/catalog"
	"mogul/internal/macro"
)

func neutralSnapshot() macro.Snapshot {
	st := macro.DefaultState(time.Now())
	return st.Snapshot(time.Now())
}

func testBusinessSpec() catalog.BusinessSpec {
	return catalog.BusinessSpec{
		ID:                 "test",
		Name:               "Test Shop",
		Category:           catalog.Tech,
		BaseRevenuePerHour: 100,
		BaseCost:           100,
		MaxEmployees:       10,
	}
}

func TestNewBusinessDefaults(t *testing.T) {
	b := NewBusiness(testBusinessSpec())
	if b.Owned || b.Level != 0 {
		t.Fatalf("expected unowned level-0 default, got owned=%t level=%d", b.Owned, b.Level)
	}
	if b.PriceIndex != 1.0 {
		t.Fatalf("expected neutral price index, got %v", b.PriceIndex)
	}
	if b.FootTraffic != 1.0 {
		t.Fatalf("expected neutral foot traffic, got %v", b.FootTraffic)
	}
}

func TestLevelUpCostGrowth(t *testing.T) {
	spec := testBusinessSpec()
	b := NewBusiness(spec)
	if got := b.LevelUpCost(spec); got != spec.BaseCost {
		t.Fatalf("level-0 cost should equal base cost: got %v want %v", got, spec.BaseCost)
	}
	prev := 0.0
	for level := 0; level < 20; level++ {
		b.Level = level
		cost := b.LevelUpCost(spec)
		if cost <= prev {
			t.Fatalf("cost not strictly increasing at level %d: %v <= %v", level, cost, prev)
		}
		prev = cost
	}
}

func TestFirstLevelMetrics(t *testing.T) {
	spec := testBusinessSpec()
	b := NewBusiness(spec)
	b.Owned = true
	b.Level = 1

	m := ComputeBusinessMetrics(&b, spec, neutralSnapshot(), DominanceBonus{})
	if m.RevenuePerHour != 100 {
		t.Fatalf("level-1 revenue should equal base: got %v", m.RevenuePerHour)
	}
	// employee 15 + ops 8 + marketing 2
	wantCosts := 25.0
	if math.Abs(m.TotalCostsPerHour-wantCosts) > 1e-9 {
		t.Fatalf("costs got %v want %v", m.TotalCostsPerHour, wantCosts)
	}
	if math.Abs(m.NetIncomePerHour-75.0) > 1e-9 {
		t.Fatalf("net got %v want 75", m.NetIncomePerHour)
	}
}

func TestUnownedMetricsZero(t *testing.T) {
	spec := testBusinessSpec()
	b := NewBusiness(spec)
	m := ComputeBusinessMetrics(&b, spec, neutralSnapshot(), DominanceBonus{})
	if m != (BusinessMetrics{}) {
		t.Fatalf("unowned business should have zero metrics: %+v", m)
	}
}

func TestMetricsDeterministic(t *testing.T) {
	spec := testBusinessSpec()
	b := NewBusiness(spec)
	b.Owned = true
	b.Level = 7
	b.Tracks[TrackEfficiency] = 3
	b.Tracks[TrackMarketing] = 2
	b.PriceIndex = 1.2

	sn := neutralSnapshot()
	first := ComputeBusinessMetrics(&b, spec, sn, DominanceBonus{RevenueBonus: 0.05})
	second := ComputeBusinessMetrics(&b, spec, sn, DominanceBonus{RevenueBonus: 0.05})
	if first != second {
		t.Fatalf("metrics not deterministic: %+v vs %+v", first, second)
	}
}

func TestDemandClamp(t *testing.T) {
	spec := testBusinessSpec()
	spec.Category = catalog.FoodBeverage // elasticity -0.8
	b := NewBusiness(spec)
	b.Owned = true
	b.Level = 1
	b.PriceIndex = 2.0 // raw demand would be 0.2

	m := ComputeBusinessMetrics(&b, spec, neutralSnapshot(), DominanceBonus{})
	want := 100 * demandClampMin
	if math.Abs(m.RevenuePerHour-want) > 1e-9 {
		t.Fatalf("demand not clamped: got %v want %v", m.RevenuePerHour, want)
	}
}

func TestRetailFootTraffic(t *testing.T) {
	spec := testBusinessSpec()
	spec.Category = catalog.Retail
	b := NewBusiness(spec)
	b.Owned = true
	b.Level = 1

	base := ComputeBusinessMetrics(&b, spec, neutralSnapshot(), DominanceBonus{})
	if math.Abs(base.RevenuePerHour-100) > 1e-9 {
		t.Fatalf("neutral foot traffic should not move revenue: got %v", base.RevenuePerHour)
	}

	b.FootTraffic = 1.2
	busy := ComputeBusinessMetrics(&b, spec, neutralSnapshot(), DominanceBonus{})
	if math.Abs(busy.RevenuePerHour-120) > 1e-9 {
		t.Fatalf("foot traffic not applied: got %v want 120", busy.RevenuePerHour)
	}

	// Non-retail categories ignore it entirely.
	spec.Category = catalog.Tech
	tech := ComputeBusinessMetrics(&b, spec, neutralSnapshot(), DominanceBonus{})
	if math.Abs(tech.RevenuePerHour-100) > 1e-9 {
		t.Fatalf("foot traffic leaked outside retail: got %v", tech.RevenuePerHour)
	}
}

func TestTechNetworkEffect(t *testing.T) {
	spec := testBusinessSpec()
	b := NewBusiness(spec)
	b.Owned = true
	b.Level = 10

	m := ComputeBusinessMetrics(&b, spec, neutralSnapshot(), DominanceBonus{})
	base := 100 * math.Pow(RevenueGrowth, 9)
	want := base * 1.02
	if math.Abs(m.RevenuePerHour-want) > 1e-6 {
		t.Fatalf("network effect missing: got %v want %v", m.RevenuePerHour, want)
	}
}

func TestAutomationCapped(t *testing.T) {
	spec := testBusinessSpec()
	b := NewBusiness(spec)
	b.Owned = true
	b.Level = 1
	b.Tracks[TrackAutomation] = 6 // raw cut would be 0.90

	m := ComputeBusinessMetrics(&b, spec, neutralSnapshot(), DominanceBonus{})
	wantCosts := 25.0 * (1 - automationCap)
	if math.Abs(m.TotalCostsPerHour-wantCosts) > 1e-9 {
		t.Fatalf("automation cut not capped: got %v want %v", m.TotalCostsPerHour, wantCosts)
	}
}

func TestSaleValue(t *testing.T) {
	b := NewBusiness(testBusinessSpec())
	b.TotalInvested = 1000
	if got := b.SaleValue(); got != 700 {
		t.Fatalf("sale value got %v want 700", got)
	}
}

func TestDominanceForShare(t *testing.T) {
	tests := []struct {
		share float64
		want  DominanceBonus
	}{
		{share: 0.10, want: DominanceBonus{}},
		{share: 0.25, want: DominanceBonus{RevenueBonus: 0.05}},
		{share: 0.60, want: DominanceBonus{RevenueBonus: 0.12, MarketingDiscount: 0.02}},
		{share: 0.90, want: DominanceBonus{RevenueBonus: 0.20, MarketingDiscount: 0.05}},
	}
	for _, tc := range tests {
		if got := DominanceForShare(tc.share); got != tc.want {
			t.Fatalf("share=%v got=%+v want=%+v", tc.share, got, tc.want)
		}
	}
}

func TestCategorySharesAgainstBaseline(t *testing.T) {
	spec := catalog.Businesses[0]
	b := NewBusiness(spec)
	b.Owned = true
	b.Level = 1

	shares := CategoryShares([]Business{b})
	got := shares[spec.Category]
	want := spec.BaseRevenuePerHour / (spec.BaseRevenuePerHour + NPCBaselineRevenue)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("share got %v want %v", got, want)
	}
}

func TestTrackCostStrictlyIncreasing(t *testing.T) {
	for _, track := range BusinessTracks {
		prev := 0.0
		for level := 0; level < track.MaxLevel; level++ {
			cost := track.CostAt(100, level)
			if cost <= prev {
				t.Fatalf("track %s cost not increasing at level %d", track.Kind, level)
			}
			prev = cost
		}
	}
}
