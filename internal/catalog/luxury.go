package catalog

var LuxuryItems = []LuxurySpec{
	{ID: "l1", Name: "Designer Watch", Cost: 50_000, BaseMultiplier: 0.02, BrandScore: 1},
	{ID: "l2", Name: "Sports Car", Cost: 500_000, BaseMultiplier: 0.08, BrandScore: 3},
	{ID: "l3", Name: "Ocean Yacht", Cost: 5_000_000, BaseMultiplier: 0.20, BrandScore: 5, Entourage: true},
	{ID: "l4", Name: "Private Jet", Cost: 15_000_000, BaseMultiplier: 0.50, BrandScore: 8, Entourage: true},
}

// BrandBonus maps the summed brand score of owned items to an additive
// global bonus. Highest reached tier applies, not cumulative.
func BrandBonus(totalScore int) float64 {
	switch {
	case totalScore >= 12:
		return 0.06
	case totalScore >= 7:
		return 0.04
	case totalScore >= 3:
		return 0.02
	default:
		return 0
	}
}
