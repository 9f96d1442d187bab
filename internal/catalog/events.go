package catalog

import "time"

// MarketEvents are the templates the macro driver samples from. A
// revenue or cost multiplier of zero leaves that axis untouched.
var MarketEvents = []EventSpec{
	{
		ID: "boom_tech", Name: "Tech Gold Rush", Kind: EventBoom,
		Duration: 15 * time.Minute, RevenueMult: 1.5,
		Categories:      []BusinessCategory{Tech},
		AffectedSectors: []Sector{SectorTech},
	},
	{
		ID: "boom_food", Name: "Street Food Craze", Kind: EventBoom,
		Duration: 20 * time.Minute, RevenueMult: 1.6,
		Categories:      []BusinessCategory{FoodBeverage},
		AffectedSectors: []Sector{SectorFood},
	},
	{
		ID: "boom_retail", Name: "Shopping Frenzy", Kind: EventBoom,
		Duration: 18 * time.Minute, RevenueMult: 1.55,
		Categories:      []BusinessCategory{Retail},
		AffectedSectors: []Sector{SectorRetail},
	},
	{
		ID: "crash_global", Name: "Market Crash", Kind: EventCrash,
		Duration: 25 * time.Minute, RevenueMult: 0.7,
	},
	{
		ID: "crash_finance", Name: "Credit Crunch", Kind: EventCrash,
		Duration: 30 * time.Minute, RevenueMult: 0.65,
		Categories:      []BusinessCategory{Finance, RealEstate},
		AffectedSectors: []Sector{SectorProperty},
	},
	{
		ID: "emergency_supply", Name: "Supply Chain Breakdown", Kind: EventEmergency,
		Duration: 20 * time.Minute, RevenueMult: 0.85, CostMult: 1.25,
		Categories:      []BusinessCategory{Industrial, Retail},
		AffectedSectors: []Sector{SectorIndustrial},
	},
	{
		ID: "emergency_energy", Name: "Energy Price Spike", Kind: EventEmergency,
		Duration: 25 * time.Minute, CostMult: 1.3,
		Categories:      []BusinessCategory{Industrial, FoodBeverage},
		AffectedSectors: []Sector{SectorEnergy},
	},
	{
		ID: "holiday_season", Name: "Holiday Season", Kind: EventHoliday,
		Duration: 30 * time.Minute, CostMult: 0.7,
		AffectedSectors: []Sector{SectorRetail, SectorTourism},
	},
	{
		ID: "holiday_tax", Name: "Tax Holiday", Kind: EventHoliday,
		Duration: 15 * time.Minute, CostMult: 0.6,
		Categories: []BusinessCategory{Finance},
	},
}

func EventByID(id string) (EventSpec, bool) {
	for _, e := range MarketEvents {
		if e.ID == id {
			return e, true
		}
	}
	return EventSpec{}, false
}
