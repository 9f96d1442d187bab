package econ

import (
	"math"

	"mogul/internal/catalog"
	"mogul/internal/macro"
)

const (
	maintenanceBase   = 0.12
	smartMgmtPerLevel = 0.08
	smartMgmtCap      = 0.60
	renovationBonus   = 0.10
	screeningPerLevel = 0.01

	propertyTaxMonthly    = 0.0008
	insuranceMonthly      = 0.0004
	secondsPerMonth       = 30 * 24 * 3600.0
	useIncomeFraction     = 0.40
	upgradeValueRetention = 0.70
)

// Property is the mutable state of one catalog property.
type Property struct {
	ID                 string             `json:"id"`
	Level              int                `json:"level"`
	Owned              bool               `json:"owned"`
	Rented             bool               `json:"rented"`
	Tenant             catalog.TenantTier `json:"tenant"`
	Amenities          []catalog.Amenity  `json:"amenities"`
	CurrentMarketValue float64            `json:"current_market_value"`
	TotalInvested      float64            `json:"total_invested"`
	ConditionScore     int                `json:"condition_score"`
	EnergyEfficiency   int                `json:"energy_efficiency"`
	SecurityLevel      int                `json:"security_level"`
	AmenitiesLevel     int                `json:"amenities_level"`
	Tracks             map[TrackKind]int  `json:"tracks"`
	Metrics            PropertyMetrics    `json:"metrics"`
}

type PropertyMetrics struct {
	IncomePerHour      float64 `json:"income_per_hour"`
	MaintenancePerHour float64 `json:"maintenance_per_hour"`
	TaxesPerSec        float64 `json:"taxes_per_sec"`
	InsurancePerSec    float64 `json:"insurance_per_sec"`
	NetIncomePerHour   float64 `json:"net_income_per_hour"`
}

func NewProperty(spec catalog.PropertySpec) Property {
	return Property{
		ID:     spec.ID,
		Rented: true,
		Tenant: catalog.TenantB,
		Tracks: map[TrackKind]int{},
	}
}

func (p *Property) Track(kind TrackKind) int {
	if p.Tracks == nil {
		return 0
	}
	return p.Tracks[kind]
}

func (p *Property) LevelUpCost(spec catalog.PropertySpec) float64 {
	return spec.BaseCost * math.Pow(LevelCostGrowth, float64(p.Level))
}

func (p *Property) HasAmenity(a catalog.Amenity) bool {
	for _, have := range p.Amenities {
		if have == a {
			return true
		}
	}
	return false
}

type tenantParams struct {
	rentMult float64
	vacancy  float64
	maintAdd float64
}

var tenantTable = map[catalog.TenantTier]tenantParams{
	catalog.TenantA: {rentMult: 1.10, vacancy: 0.02, maintAdd: 0.00},
	catalog.TenantB: {rentMult: 1.00, vacancy: 0.04, maintAdd: 0.01},
	catalog.TenantC: {rentMult: 0.90, vacancy: 0.07, maintAdd: 0.03},
}

type amenityParams struct {
	rentBonus  float64
	maintAdd   float64
	vacancyCut float64
	cost       float64 // fraction of property base cost
}

var amenityTable = map[catalog.Amenity]amenityParams{
	catalog.AmenityPool:     {rentBonus: 0.06, maintAdd: 0.010, cost: 0.12},
	catalog.AmenityGym:      {rentBonus: 0.04, maintAdd: 0.005, cost: 0.08},
	catalog.AmenityParking:  {rentBonus: 0.03, maintAdd: 0.002, cost: 0.06},
	catalog.AmenitySecurity: {rentBonus: 0.02, maintAdd: 0.003, vacancyCut: 0.01, cost: 0.05},
}

// AmenityCost prices an amenity install for a given property.
func AmenityCost(spec catalog.PropertySpec, a catalog.Amenity) float64 {
	return spec.BaseCost * amenityTable[a].cost
}

// regionalMultiplier selects the macro index relevant to the property
// category and folds it in with a fixed base + weight curve.
func regionalMultiplier(cat catalog.PropertyCategory, reg macro.RegionalModifiers) float64 {
	switch cat {
	case catalog.Residential:
		return 0.9 + 0.2*reg.HousingPrice
	case catalog.Commercial:
		return 0.9 + 0.2*reg.BusinessRent
	case catalog.LuxuryDev:
		return 0.8 + 0.3*reg.Tourism
	default:
		return 1.0
	}
}

// ComputePropertyMetrics derives the per-hour picture for a property.
// Taxes and insurance are charged on market value, not income, and are
// therefore returned per second.
func ComputePropertyMetrics(p *Property, spec catalog.PropertySpec, sn macro.Snapshot) PropertyMetrics {
	if !p.Owned || p.Level == 0 {
		return PropertyMetrics{}
	}

	tenant := tenantTable[p.Tenant]

	var income float64
	if p.Rented {
		income = spec.BaseIncomePerHour * float64(p.Level) * tenant.rentMult
		income *= 1 + renovationBonus*float64(p.Track(TrackRenovation))
		rentBonus := 0.0
		for _, a := range p.Amenities {
			rentBonus += amenityTable[a].rentBonus
		}
		income *= 1 + rentBonus
		income *= regionalMultiplier(spec.Category, sn.Regional)

		vacancy := tenant.vacancy - screeningPerLevel*float64(p.Track(TrackScreening))
		for _, a := range p.Amenities {
			vacancy -= amenityTable[a].vacancyCut
		}
		if vacancy < 0 {
			vacancy = 0
		}
		income *= 1 - vacancy
	} else {
		// Owner-occupied "use" income ignores tenants and the rental
		// market entirely.
		income = spec.BaseIncomePerHour * float64(p.Level) * useIncomeFraction
	}

	maintAdd := tenant.maintAdd
	for _, a := range p.Amenities {
		maintAdd += amenityTable[a].maintAdd
	}
	smartCut := smartMgmtPerLevel * float64(p.Track(TrackSmartManagement))
	if smartCut > smartMgmtCap {
		smartCut = smartMgmtCap
	}
	maintenance := maintenanceBase * income * (1 + maintAdd) * (1 - smartCut)

	taxes := p.CurrentMarketValue * propertyTaxMonthly / secondsPerMonth
	insurance := p.CurrentMarketValue * insuranceMonthly / secondsPerMonth

	return PropertyMetrics{
		IncomePerHour:      income,
		MaintenancePerHour: maintenance,
		TaxesPerSec:        taxes,
		InsurancePerSec:    insurance,
		NetIncomePerHour:   income - maintenance - (taxes+insurance)*3600,
	}
}
