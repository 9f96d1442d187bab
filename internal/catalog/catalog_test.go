package catalog

import "testing"

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	check := func(kind, id string) {
		t.Helper()
		key := kind + ":" + id
		if seen[key] {
			t.Fatalf("duplicate %s id %q", kind, id)
		}
		seen[key] = true
	}
	for _, b := range Businesses {
		check("business", b.ID)
	}
	for _, p := range Properties {
		check("property", p.ID)
	}
	for _, l := range LuxuryItems {
		check("luxury", l.ID)
	}
	for _, s := range Stocks {
		check("stock", s.Symbol)
	}
	for _, e := range MarketEvents {
		check("event", e.ID)
	}
	for _, m := range Multipliers {
		check("multiplier", m.ID)
	}
}

func TestLookups(t *testing.T) {
	if _, ok := BusinessByID("b1"); !ok {
		t.Fatalf("b1 missing")
	}
	if _, ok := BusinessByID("nope"); ok {
		t.Fatalf("phantom business found")
	}
	if _, ok := StockBySymbol("TECH"); !ok {
		t.Fatalf("TECH missing")
	}
	if _, ok := EventByID("crash_global"); !ok {
		t.Fatalf("crash_global missing")
	}
}

func TestBrandBonusTiers(t *testing.T) {
	tests := []struct {
		score int
		want  float64
	}{
		{0, 0}, {2, 0}, {3, 0.02}, {6, 0.02}, {7, 0.04}, {11, 0.04}, {12, 0.06}, {17, 0.06},
	}
	for _, tc := range tests {
		if got := BrandBonus(tc.score); got != tc.want {
			t.Fatalf("score=%d got=%v want=%v", tc.score, got, tc.want)
		}
	}
}

func TestEventScoping(t *testing.T) {
	boom, _ := EventByID("boom_tech")
	if !boom.Affects(Tech) || boom.Affects(FoodBeverage) {
		t.Fatalf("scoped event category check wrong")
	}
	if !boom.AffectsSector(SectorTech) || boom.AffectsSector(SectorFood) {
		t.Fatalf("scoped event sector check wrong")
	}

	crash, _ := EventByID("crash_global")
	if !crash.Affects(Finance) || !crash.Affects(Retail) {
		t.Fatalf("global event should hit every category")
	}
	if !crash.AffectsSector(SectorEnergy) {
		t.Fatalf("sectorless crash should spill into every sector")
	}

	holiday, _ := EventByID("holiday_season")
	if holiday.AffectsSector(SectorEnergy) {
		t.Fatalf("only crashes spill over when sectorless; scoped holiday must not")
	}
}
