package catalog

// Businesses is the full roster a fresh game starts with, ordered by
// base cost. IDs are stable across versions; saves merge against them.
var Businesses = []BusinessSpec{
	{ID: "b1", Name: "Lemonade Stand", Category: FoodBeverage, BaseRevenuePerHour: 30, BaseCost: 100, MaxEmployees: 2},
	{ID: "b2", Name: "Food Truck", Category: FoodBeverage, BaseRevenuePerHour: 120, BaseCost: 850, MaxEmployees: 3},
	{ID: "b3", Name: "Corner Store", Category: Retail, BaseRevenuePerHour: 320, BaseCost: 3_000, MaxEmployees: 4},
	{ID: "b4", Name: "Coffee House", Category: FoodBeverage, BaseRevenuePerHour: 700, BaseCost: 9_500, MaxEmployees: 6},
	{ID: "b5", Name: "Car Wash", Category: Retail, BaseRevenuePerHour: 1_400, BaseCost: 24_000, MaxEmployees: 5},
	{ID: "b6", Name: "Mobile App Studio", Category: Tech, BaseRevenuePerHour: 2_800, BaseCost: 60_000, MaxEmployees: 8},
	{ID: "b7", Name: "Fitness Center", Category: Retail, BaseRevenuePerHour: 5_200, BaseCost: 140_000, MaxEmployees: 10},
	{ID: "b8", Name: "Restaurant Chain", Category: FoodBeverage, BaseRevenuePerHour: 9_800, BaseCost: 330_000, MaxEmployees: 14},
	{ID: "b9", Name: "Machine Shop", Category: Industrial, BaseRevenuePerHour: 17_500, BaseCost: 720_000, MaxEmployees: 16},
	{ID: "b10", Name: "SaaS Platform", Category: Tech, BaseRevenuePerHour: 31_000, BaseCost: 1_550_000, MaxEmployees: 20},
	{ID: "b11", Name: "Realty Agency", Category: RealEstate, BaseRevenuePerHour: 54_000, BaseCost: 3_200_000, MaxEmployees: 22},
	{ID: "b12", Name: "Logistics Fleet", Category: Industrial, BaseRevenuePerHour: 92_000, BaseCost: 6_600_000, MaxEmployees: 28},
	{ID: "b13", Name: "Accounting Firm", Category: Finance, BaseRevenuePerHour: 155_000, BaseCost: 13_000_000, MaxEmployees: 30},
	{ID: "b14", Name: "Data Center", Category: Tech, BaseRevenuePerHour: 260_000, BaseCost: 26_000_000, MaxEmployees: 34},
	{ID: "b15", Name: "Construction Group", Category: RealEstate, BaseRevenuePerHour: 430_000, BaseCost: 52_000_000, MaxEmployees: 40},
	{ID: "b16", Name: "Shipping Line", Category: Industrial, BaseRevenuePerHour: 720_000, BaseCost: 105_000_000, MaxEmployees: 46},
	{ID: "b17", Name: "Investment Fund", Category: Finance, BaseRevenuePerHour: 1_250_000, BaseCost: 215_000_000, MaxEmployees: 50},
	{ID: "b18", Name: "Hotel Group", Category: RealEstate, BaseRevenuePerHour: 2_600_000, BaseCost: 450_000_000, MaxEmployees: 60},
	{ID: "b19", Name: "National Bank", Category: Finance, BaseRevenuePerHour: 6_500_000, BaseCost: 900_000_000, MaxEmployees: 75},
	{ID: "b20", Name: "Franchise Empire", Category: Retail, BaseRevenuePerHour: 16_000_000, BaseCost: 1_500_000_000, MaxEmployees: 100},
}
