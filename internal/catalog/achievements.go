package catalog

// Multipliers are one-time purchasable boosters. Income boosts stack
// additively into the passive income multiplier; tap boosts add to the
// per-tap payout multiplier.
var Multipliers = []MultiplierSpec{
	{ID: "m1", Name: "Business Mentor", Cost: 25_000, IncomeBoost: 0.10},
	{ID: "m2", Name: "Marketing Blitz", Cost: 120_000, IncomeBoost: 0.20},
	{ID: "m3", Name: "Executive Team", Cost: 750_000, IncomeBoost: 0.35},
	{ID: "m4", Name: "Global Brand Deal", Cost: 4_000_000, IncomeBoost: 0.60},
	{ID: "tap1", Name: "Golden Touch", Cost: 50_000, TapBoost: 1.0},
}

var Achievements = []AchievementSpec{
	{ID: "first_business", Name: "Open for Business"},
	{ID: "five_businesses", Name: "Serial Founder"},
	{ID: "first_property", Name: "Landlord"},
	{ID: "property_mogul", Name: "Property Mogul"},
	{ID: "first_luxury", Name: "Taste of Luxury"},
	{ID: "high_roller", Name: "High Roller"},
	{ID: "millionaire", Name: "Millionaire"},
	{ID: "multi_millionaire", Name: "Multi-Millionaire"},
	{ID: "billionaire", Name: "Billionaire"},
	{ID: "tap_master", Name: "Tap Master"},
	{ID: "first_trade", Name: "Market Debut"},
	{ID: "profit_trader", Name: "Profit Taker"},
	{ID: "first_prestige", Name: "Born Again"},
}
