package econ

import (
	"math"
	"testing"

	"mogul/internal/catalog"
)

func testPropertySpec() catalog.PropertySpec {
	return catalog.PropertySpec{
		ID:                "tp",
		Name:              "Test Flat",
		Category:          catalog.Residential,
		BaseIncomePerHour: 100,
		BaseCost:          10_000,
	}
}

func TestRentedIncome(t *testing.T) {
	spec := testPropertySpec()
	p := NewProperty(spec)
	p.Owned = true
	p.Level = 1

	sn := neutralSnapshot()
	m := ComputePropertyMetrics(&p, spec, sn)

	// tenant B, no amenities, regional index 1.0
	wantIncome := 100.0 * 1.0 * (0.9 + 0.2*1.0) * (1 - 0.04)
	if math.Abs(m.IncomePerHour-wantIncome) > 1e-9 {
		t.Fatalf("income got %v want %v", m.IncomePerHour, wantIncome)
	}
	wantMaint := maintenanceBase * wantIncome * 1.01
	if math.Abs(m.MaintenancePerHour-wantMaint) > 1e-9 {
		t.Fatalf("maintenance got %v want %v", m.MaintenancePerHour, wantMaint)
	}
	if math.Abs(m.NetIncomePerHour-(wantIncome-wantMaint)) > 1e-9 {
		t.Fatalf("net got %v want %v", m.NetIncomePerHour, wantIncome-wantMaint)
	}
}

func TestUseIncomeIgnoresRentalMarket(t *testing.T) {
	spec := testPropertySpec()
	p := NewProperty(spec)
	p.Owned = true
	p.Level = 2
	p.Rented = false
	p.Tenant = catalog.TenantC // must be irrelevant

	m := ComputePropertyMetrics(&p, spec, neutralSnapshot())
	want := 100.0 * 2 * useIncomeFraction
	if math.Abs(m.IncomePerHour-want) > 1e-9 {
		t.Fatalf("use income got %v want %v", m.IncomePerHour, want)
	}
}

func TestVacancyFloorsAtZero(t *testing.T) {
	spec := testPropertySpec()
	p := NewProperty(spec)
	p.Owned = true
	p.Level = 1
	p.Tenant = catalog.TenantA
	p.Tracks[TrackScreening] = 5
	p.Amenities = []catalog.Amenity{catalog.AmenitySecurity}

	m := ComputePropertyMetrics(&p, spec, neutralSnapshot())
	// Vacancy would be 0.02 - 0.05 - 0.01 < 0: clamp means no vacancy
	// loss at all.
	want := 100.0 * 1.10 * 1.02 * (0.9 + 0.2*1.0)
	if math.Abs(m.IncomePerHour-want) > 1e-9 {
		t.Fatalf("income got %v want %v", m.IncomePerHour, want)
	}
}

func TestTaxesAndInsuranceOnMarketValue(t *testing.T) {
	spec := testPropertySpec()
	p := NewProperty(spec)
	p.Owned = true
	p.Level = 1
	p.CurrentMarketValue = 1_000_000

	m := ComputePropertyMetrics(&p, spec, neutralSnapshot())
	wantTaxes := 1_000_000 * propertyTaxMonthly / secondsPerMonth
	wantInsurance := 1_000_000 * insuranceMonthly / secondsPerMonth
	if math.Abs(m.TaxesPerSec-wantTaxes) > 1e-12 {
		t.Fatalf("taxes got %v want %v", m.TaxesPerSec, wantTaxes)
	}
	if math.Abs(m.InsurancePerSec-wantInsurance) > 1e-12 {
		t.Fatalf("insurance got %v want %v", m.InsurancePerSec, wantInsurance)
	}
}

func TestAmenityCost(t *testing.T) {
	spec := testPropertySpec()
	if got := AmenityCost(spec, catalog.AmenityPool); got != 1200 {
		t.Fatalf("pool cost got %v want 1200", got)
	}
}

func TestLuxuryMultiplierCaps(t *testing.T) {
	spec := catalog.LuxurySpec{ID: "tl", Name: "Test Toy", Cost: 1000, BaseMultiplier: 0.10, BrandScore: 3}
	l := NewLuxuryItem(spec)
	if l.CurrentMultiplier(spec) != 0 {
		t.Fatalf("unowned item should contribute nothing")
	}
	l.Owned = true
	l.Tracks[TrackPolish] = 10
	l.Tracks[TrackRefit] = 10
	got := l.CurrentMultiplier(spec)
	want := 0.10 + polishCap + refitCap
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("multiplier got %v want %v", got, want)
	}
}

func TestBrandScoreOwnedOnly(t *testing.T) {
	items := []LuxuryItem{}
	for _, spec := range catalog.LuxuryItems {
		items = append(items, NewLuxuryItem(spec))
	}
	if got := BrandScore(items); got != 0 {
		t.Fatalf("unowned items should score 0, got %d", got)
	}
	items[0].Owned = true
	if got := BrandScore(items); got != catalog.LuxuryItems[0].BrandScore {
		t.Fatalf("brand score got %d want %d", got, catalog.LuxuryItems[0].BrandScore)
	}
}
