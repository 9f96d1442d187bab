package game

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"mogul/internal/catalog"
	"mogul/internal/econ"
	"mogul/internal/persist"
)

func TestLoadMissingSaveStartsFresh(t *testing.T) {
	s := newTestStore(t)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.state.Cash != 0 || len(s.state.Businesses) != len(catalog.Businesses) {
		t.Fatalf("fresh state wrong: cash=%v businesses=%d", s.state.Cash, len(s.state.Businesses))
	}
}

func TestLoadCorruptSaveStartsFresh(t *testing.T) {
	mem := newMemStore()
	mem.docs[persist.StorageKey] = []byte("{not json")
	s := NewStore(mem, quietLogger())
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("corrupt save should not fail the session: %v", err)
	}
	if s.state.Cash != 0 {
		t.Fatalf("corrupt save leaked state: cash=%v", s.state.Cash)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	mem := newMemStore()
	fixed := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return fixed }

	s := NewStore(mem, quietLogger())
	s.now = clock
	s.state.Cash = 1_000_000
	s.state.TotalEarnings = 1_000_000
	s.BuyBusiness("b1")
	s.UpgradeBusiness("b1")
	s.BuyProperty("p1")

	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	s2 := NewStore(mem, quietLogger())
	s2.now = clock
	if err := s2.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	b := s2.state.business("b1")
	if !b.Owned || b.Level != 2 {
		t.Fatalf("business progress lost: %+v", b)
	}
	if !s2.state.property("p1").Owned {
		t.Fatalf("property progress lost")
	}
	if s2.state.TotalEarnings != s.state.TotalEarnings {
		t.Fatalf("earnings lost: %v vs %v", s2.state.TotalEarnings, s.state.TotalEarnings)
	}
}

func TestMergeRepairsMissingFields(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	loaded := DefaultState(now)
	b := loaded.business("b1")
	b.Owned = true
	b.Level = 3
	b.Tracks = nil
	b.PriceIndex = 0
	b.FootTraffic = 0
	p := loaded.property("p1")
	p.Owned = true
	p.Tenant = ""
	l := loaded.luxury("l3")
	l.Owned = true
	l.Entourage = false // predates the staffed flag
	loaded.PrestigeLevel = 2
	loaded.PrestigeMultiplier = 0
	loaded.TapMultiplier = 0

	merged := mergeState(loaded, now)

	mb := merged.business("b1")
	if mb.Level != 3 || mb.Tracks == nil || mb.PriceIndex != 1.0 || mb.FootTraffic != 1.0 {
		t.Fatalf("business not repaired: %+v", mb)
	}
	if merged.property("p1").Tenant != catalog.TenantB {
		t.Fatalf("tenant tier not defaulted")
	}
	if !merged.luxury("l3").Entourage {
		t.Fatalf("entourage flag not rebuilt for an owned yacht")
	}
	if merged.PrestigeMultiplier != econ.PrestigeMultiplier(2) {
		t.Fatalf("prestige multiplier not rebuilt: %v", merged.PrestigeMultiplier)
	}
	if merged.TapMultiplier != 1.0 {
		t.Fatalf("tap multiplier not defaulted")
	}
}

func TestMergeDropsRemovedMultipliersAndAchievements(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	loaded := DefaultState(now)
	loaded.OwnedMultipliers = []string{"m1", "gone_multiplier", "tap1"}
	loaded.Achievements = []string{"first_business", "gone_achievement"}
	loaded.IncomeBoost = 999 // stale, must be rebuilt from the owned list
	loaded.TapMultiplier = 999

	merged := mergeState(loaded, now)

	if len(merged.OwnedMultipliers) != 2 {
		t.Fatalf("removed-catalog multiplier survived merge: %v", merged.OwnedMultipliers)
	}
	if len(merged.Achievements) != 1 || merged.Achievements[0] != "first_business" {
		t.Fatalf("removed-catalog achievement survived merge: %v", merged.Achievements)
	}
	if math.Abs(merged.IncomeBoost-0.10) > 1e-9 {
		t.Fatalf("income boost got %v want 0.10", merged.IncomeBoost)
	}
	if math.Abs(merged.TapMultiplier-2.0) > 1e-9 {
		t.Fatalf("tap multiplier got %v want 2.0", merged.TapMultiplier)
	}
}

func TestMergeFillsCatalogGaps(t *testing.T) {
	now := time.Now()
	loaded := DefaultState(now)
	loaded.Businesses = loaded.Businesses[:1] // save predates most of the catalog
	loaded.Stocks = nil

	merged := mergeState(loaded, now)
	if len(merged.Businesses) != len(catalog.Businesses) {
		t.Fatalf("businesses got %d want %d", len(merged.Businesses), len(catalog.Businesses))
	}
	if len(merged.Stocks) != len(catalog.Stocks) {
		t.Fatalf("stocks got %d want %d", len(merged.Stocks), len(catalog.Stocks))
	}
	for _, st := range merged.Stocks {
		if st.CurrentPrice <= 0 {
			t.Fatalf("stock %s restored with no price", st.Symbol)
		}
	}
}

func TestOfflineEarnings(t *testing.T) {
	mem := newMemStore()
	s := NewStore(mem, quietLogger())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	st := DefaultState(now.Add(-2 * time.Hour))
	b := st.business("b1")
	b.Owned = true
	b.Level = 1
	b.AutoGenerate = true
	st.LastSaveTime = now.Add(-2 * time.Hour)
	doc, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	mem.docs[persist.StorageKey] = doc

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	rate := s.state.business("b1").Metrics.NetIncomePerHour / 3600
	want := rate * 7200
	if math.Abs(s.state.Cash-want) > 1e-9 {
		t.Fatalf("offline earnings got %v want %v", s.state.Cash, want)
	}
}

func TestOfflineEarningsCapped(t *testing.T) {
	mem := newMemStore()
	s := NewStore(mem, quietLogger())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	st := DefaultState(now.Add(-72 * time.Hour))
	b := st.business("b1")
	b.Owned = true
	b.Level = 1
	b.AutoGenerate = true
	st.LastSaveTime = now.Add(-72 * time.Hour)
	doc, _ := json.Marshal(st)
	mem.docs[persist.StorageKey] = doc

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	rate := s.state.business("b1").Metrics.NetIncomePerHour / 3600
	want := rate * OfflineCapSeconds
	if math.Abs(s.state.Cash-want) > 1e-9 {
		t.Fatalf("offline earnings got %v want capped %v", s.state.Cash, want)
	}
}

func TestOfflineEarningsSkippedWhenNetNegative(t *testing.T) {
	mem := newMemStore()
	s := NewStore(mem, quietLogger())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	// An unrented studio carrying the tax bill of a hundred-million
	// dollar valuation nets negative, and negative offline rates grant
	// nothing rather than deducting.
	st := DefaultState(now.Add(-2 * time.Hour))
	p := st.property("p1")
	p.Owned = true
	p.Level = 1
	p.Rented = false
	p.CurrentMarketValue = 100_000_000
	st.LastSaveTime = now.Add(-2 * time.Hour)
	doc, _ := json.Marshal(st)
	mem.docs[persist.StorageKey] = doc

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.state.Cash != 0 {
		t.Fatalf("negative offline rate should grant nothing, got %v", s.state.Cash)
	}
}
