package catalog

var Properties = []PropertySpec{
	{ID: "p1", Name: "Studio Apartment", Category: Residential, BaseIncomePerHour: 120, BaseCost: 10_000},
	{ID: "p2", Name: "Suburban House", Category: Residential, BaseIncomePerHour: 420, BaseCost: 45_000},
	{ID: "p3", Name: "Retail Storefront", Category: Commercial, BaseIncomePerHour: 1_100, BaseCost: 130_000},
	{ID: "p4", Name: "Duplex Block", Category: Residential, BaseIncomePerHour: 2_600, BaseCost: 340_000},
	{ID: "p5", Name: "Office Floor", Category: Commercial, BaseIncomePerHour: 6_800, BaseCost: 950_000},
	{ID: "p6", Name: "Apartment Tower", Category: Residential, BaseIncomePerHour: 16_500, BaseCost: 2_600_000},
	{ID: "p7", Name: "Shopping Plaza", Category: Commercial, BaseIncomePerHour: 41_000, BaseCost: 6_800_000},
	{ID: "p8", Name: "Marina Villas", Category: LuxuryDev, BaseIncomePerHour: 98_000, BaseCost: 16_000_000},
	{ID: "p9", Name: "Downtown Skyrise", Category: Commercial, BaseIncomePerHour: 210_000, BaseCost: 38_000_000},
	{ID: "p10", Name: "Beachfront Resort", Category: LuxuryDev, BaseIncomePerHour: 450_000, BaseCost: 30_000_000},
}
