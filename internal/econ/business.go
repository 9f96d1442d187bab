// Package econ is the valuation engine: pure functions turning entity
// state plus a macro snapshot into per-hour economics, and the composer
// that folds every global multiplier into one bounded scalar.
package econ

import (
	"math"

	"mogul/internal/catalog"
	"mogul/internal/macro"
)

const (
	RevenueGrowth   = 1.17
	LevelCostGrowth = 1.15

	employeeCostBase   = 0.15
	operationsCostBase = 0.08
	marketingCostBase  = 0.02

	marketingUpkeepSlope = 0.10
	automationCap        = 0.70

	// SaleRecovery is the fraction of invested capital paid out when a
	// business is sold back.
	SaleRecovery = 0.70

	demandClampMin = 0.6
	demandClampMax = 1.3
)

// Business is the mutable state of one catalog business.
type Business struct {
	ID            string            `json:"id"`
	Level         int               `json:"level"`
	Owned         bool              `json:"owned"`
	AutoGenerate  bool              `json:"auto_generate"`
	PriceIndex    float64           `json:"price_index"`
	FootTraffic   float64           `json:"foot_traffic"`
	Employees     int               `json:"employees"`
	TotalInvested float64           `json:"total_invested"`
	Tracks        map[TrackKind]int `json:"tracks"`
	Metrics       BusinessMetrics   `json:"metrics"`
}

// BusinessMetrics are the per-hour economics recomputed after every
// mutation. Net income may be negative.
type BusinessMetrics struct {
	RevenuePerHour        float64 `json:"revenue_per_hour"`
	EmployeeCostPerHour   float64 `json:"employee_cost_per_hour"`
	OperationsCostPerHour float64 `json:"operations_cost_per_hour"`
	MarketingCostPerHour  float64 `json:"marketing_cost_per_hour"`
	TotalCostsPerHour     float64 `json:"total_costs_per_hour"`
	NetIncomePerHour      float64 `json:"net_income_per_hour"`
}

// NewBusiness builds the unowned default for a catalog entry.
func NewBusiness(spec catalog.BusinessSpec) Business {
	return Business{
		ID:          spec.ID,
		PriceIndex:  1.0,
		FootTraffic: 1.0,
		Tracks:      map[TrackKind]int{},
	}
}

func (b *Business) Track(kind TrackKind) int {
	if b.Tracks == nil {
		return 0
	}
	return b.Tracks[kind]
}

// LevelUpCost is the price of the next level: the base cost at level 0
// (the initial purchase), growing geometrically from there.
func (b *Business) LevelUpCost(spec catalog.BusinessSpec) float64 {
	return spec.BaseCost * math.Pow(LevelCostGrowth, float64(b.Level))
}

// SaleValue is what selling the business pays out.
func (b *Business) SaleValue() float64 {
	return b.TotalInvested * SaleRecovery
}

type categoryParams struct {
	elasticity float64
	opsBase    float64
	costAddOn  float64 // COGS, shrinkage, compliance
}

var businessCategoryTable = map[catalog.BusinessCategory]categoryParams{
	catalog.FoodBeverage: {elasticity: -0.8, opsBase: operationsCostBase, costAddOn: 0.28},
	catalog.Retail:       {elasticity: -0.6, opsBase: operationsCostBase, costAddOn: 0.02},
	catalog.Tech:         {elasticity: -0.3, opsBase: operationsCostBase},
	catalog.Industrial:   {elasticity: -0.4, opsBase: 0.10},
	catalog.RealEstate:   {elasticity: -0.4, opsBase: operationsCostBase},
	catalog.Finance:      {elasticity: -0.2, opsBase: operationsCostBase, costAddOn: 0.02},
}

// baseRevenuePerHour is the revenue before the dominance bonus: level
// growth, upgrade bonuses, demand elasticity, and any structural
// category multiplier. Used both by the metrics computation and by the
// category share calculation that feeds dominance.
func baseRevenuePerHour(b *Business, spec catalog.BusinessSpec) float64 {
	if !b.Owned || b.Level == 0 {
		return 0
	}
	revenue := spec.BaseRevenuePerHour * math.Pow(RevenueGrowth, float64(b.Level-1))

	add := 0.10*float64(b.Track(TrackEfficiency)) +
		0.12*float64(b.Track(TrackQuality)) +
		0.08*float64(b.Track(TrackMarketing))
	revenue *= 1 + add

	params := businessCategoryTable[spec.Category]
	demand := 1 + params.elasticity*(b.PriceIndex-1)
	revenue *= clamp(demand, demandClampMin, demandClampMax)

	// Walk-in volume only matters for storefronts. Neutral at 1.0;
	// nothing in the catalog moves it yet.
	if spec.Category == catalog.Retail && b.FootTraffic > 0 {
		revenue *= b.FootTraffic
	}

	if spec.Category == catalog.Tech {
		// Network effects kick in every ten levels.
		revenue *= 1 + 0.02*float64(b.Level/10)
	}
	return revenue
}

// ComputeBusinessMetrics derives the full per-hour picture. Pure: same
// inputs always give the same outputs.
func ComputeBusinessMetrics(b *Business, spec catalog.BusinessSpec, sn macro.Snapshot, dom DominanceBonus) BusinessMetrics {
	if !b.Owned || b.Level == 0 {
		return BusinessMetrics{}
	}

	revenue := baseRevenuePerHour(b, spec) * (1 + dom.RevenueBonus)

	// Employee efficiency starts at 1 and only grows, so the divisor is
	// structurally safe.
	effMult := 1 + 0.15*float64(b.Track(TrackEfficiency))
	employeeCost := revenue * employeeCostBase / effMult

	params := businessCategoryTable[spec.Category]
	opsRate := params.opsBase + params.costAddOn
	if spec.Category == catalog.Tech && b.Level > 10 {
		opsRate += 0.005 * float64(b.Level-10)
	}
	operationsCost := revenue * opsRate

	marketingRate := marketingCostBase * (1 + marketingUpkeepSlope*float64(b.Track(TrackMarketing)))
	marketingCost := revenue * marketingRate * (1 - dom.MarketingDiscount)

	automationCut := 0.15 * float64(b.Track(TrackAutomation))
	if automationCut > automationCap {
		automationCut = automationCap
	}
	sustainabilityCut := 0.05 * float64(b.Track(TrackSustainability))

	total := (employeeCost + operationsCost + marketingCost) * (1 - automationCut) * (1 - sustainabilityCut)
	total *= sn.CostEventMult(spec.Category)

	return BusinessMetrics{
		RevenuePerHour:        revenue,
		EmployeeCostPerHour:   employeeCost,
		OperationsCostPerHour: operationsCost,
		MarketingCostPerHour:  marketingCost,
		TotalCostsPerHour:     total,
		NetIncomePerHour:      revenue - total,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
