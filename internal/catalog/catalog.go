// Package catalog holds the static game content: the templates every
// business, property, luxury item, stock, market event, and achievement
// is created from. The engine treats everything here as read-only.
package catalog

import "time"

type BusinessCategory string

const (
	FoodBeverage BusinessCategory = "food_beverage"
	Retail       BusinessCategory = "retail_services"
	Tech         BusinessCategory = "tech_apps"
	Industrial   BusinessCategory = "industrial"
	RealEstate   BusinessCategory = "real_estate_services"
	Finance      BusinessCategory = "finance_services"
)

var BusinessCategories = []BusinessCategory{
	FoodBeverage, Retail, Tech, Industrial, RealEstate, Finance,
}

type PropertyCategory string

const (
	Residential PropertyCategory = "residential"
	Commercial  PropertyCategory = "commercial"
	LuxuryDev   PropertyCategory = "luxury_development"
)

type TenantTier string

const (
	TenantA TenantTier = "A"
	TenantB TenantTier = "B"
	TenantC TenantTier = "C"
)

type Amenity string

const (
	AmenityPool     Amenity = "pool"
	AmenityGym      Amenity = "gym"
	AmenityParking  Amenity = "parking"
	AmenitySecurity Amenity = "security"
)

var Amenities = []Amenity{AmenityPool, AmenityGym, AmenityParking, AmenitySecurity}

type Sector string

const (
	SectorFood       Sector = "food"
	SectorRetail     Sector = "retail"
	SectorTech       Sector = "tech"
	SectorIndustrial Sector = "industrial"
	SectorProperty   Sector = "property"
	SectorServices   Sector = "services"
	SectorTourism    Sector = "tourism"
	SectorEnergy     Sector = "energy"
)

type Volatility string

const (
	VolLow  Volatility = "low"
	VolMed  Volatility = "med"
	VolHigh Volatility = "high"
)

type EventKind string

const (
	EventBoom      EventKind = "boom"
	EventCrash     EventKind = "crash"
	EventEmergency EventKind = "emergency"
	EventHoliday   EventKind = "holiday"
)

// BusinessSpec is the immutable template a Business is reset to when
// sold and created from at game start.
type BusinessSpec struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Category           BusinessCategory `json:"category"`
	BaseRevenuePerHour float64          `json:"base_revenue_per_hour"`
	BaseCost           float64          `json:"base_cost"`
	MaxEmployees       int              `json:"max_employees"`
}

type PropertySpec struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Category          PropertyCategory `json:"category"`
	BaseIncomePerHour float64          `json:"base_income_per_hour"`
	BaseCost          float64          `json:"base_cost"`
}

type LuxurySpec struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Cost           float64 `json:"cost"`
	BaseMultiplier float64 `json:"base_multiplier"`
	BrandScore     int     `json:"brand_score"`
	Entourage      bool    `json:"entourage,omitempty"`
}

type StockSpec struct {
	Symbol     string     `json:"symbol"`
	Name       string     `json:"name"`
	Sector     Sector     `json:"sector"`
	Volatility Volatility `json:"volatility"`
	BasePrice  float64    `json:"base_price"`
}

// EventSpec is a market event template. Multipliers of zero mean "does
// not touch that axis"; scoping lists that are empty mean "global".
type EventSpec struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Kind            EventKind          `json:"kind"`
	Duration        time.Duration      `json:"duration"`
	RevenueMult     float64            `json:"revenue_mult,omitempty"`
	CostMult        float64            `json:"cost_mult,omitempty"`
	Categories      []BusinessCategory `json:"categories,omitempty"`
	AffectedSectors []Sector           `json:"affected_sectors,omitempty"`
}

// Affects reports whether the event touches the given business category.
// An empty category list means the event is global.
func (e EventSpec) Affects(cat BusinessCategory) bool {
	if len(e.Categories) == 0 {
		return true
	}
	for _, c := range e.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// AffectsSector reports whether the event biases the given stock sector.
// Only crash events without a sector list spill over to every sector.
func (e EventSpec) AffectsSector(sec Sector) bool {
	if len(e.AffectedSectors) == 0 {
		return e.Kind == EventCrash
	}
	for _, s := range e.AffectedSectors {
		if s == sec {
			return true
		}
	}
	return false
}

// MultiplierSpec is a one-time purchasable income or tap booster.
type MultiplierSpec struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cost        float64 `json:"cost"`
	IncomeBoost float64 `json:"income_boost,omitempty"`
	TapBoost    float64 `json:"tap_boost,omitempty"`
}

type AchievementSpec struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func BusinessByID(id string) (BusinessSpec, bool) {
	for _, b := range Businesses {
		if b.ID == id {
			return b, true
		}
	}
	return BusinessSpec{}, false
}

func PropertyByID(id string) (PropertySpec, bool) {
	for _, p := range Properties {
		if p.ID == id {
			return p, true
		}
	}
	return PropertySpec{}, false
}

func LuxuryByID(id string) (LuxurySpec, bool) {
	for _, l := range LuxuryItems {
		if l.ID == id {
			return l, true
		}
	}
	return LuxurySpec{}, false
}

func StockBySymbol(symbol string) (StockSpec, bool) {
	for _, s := range Stocks {
		if s.Symbol == symbol {
			return s, true
		}
	}
	return StockSpec{}, false
}

func MultiplierByID(id string) (MultiplierSpec, bool) {
	for _, m := range Multipliers {
		if m.ID == id {
			return m, true
		}
	}
	return MultiplierSpec{}, false
}

func AchievementByID(id string) (AchievementSpec, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return AchievementSpec{}, false
}
