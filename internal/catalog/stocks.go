package catalog

var Stocks = []StockSpec{
	{Symbol: "FOOD", Name: "Golden Harvest Foods", Sector: SectorFood, Volatility: VolLow, BasePrice: 50},
	{Symbol: "RETL", Name: "Mercado Retail Group", Sector: SectorRetail, Volatility: VolLow, BasePrice: 65},
	{Symbol: "TECH", Name: "Nova Systems", Sector: SectorTech, Volatility: VolHigh, BasePrice: 180},
	{Symbol: "IMOT", Name: "Imot Heavy Industries", Sector: SectorIndustrial, Volatility: VolMed, BasePrice: 95},
	{Symbol: "PROP", Name: "Keystone Properties", Sector: SectorProperty, Volatility: VolMed, BasePrice: 120},
	{Symbol: "SERV", Name: "Atlas Services", Sector: SectorServices, Volatility: VolLow, BasePrice: 80},
	{Symbol: "TOUR", Name: "Azure Tourism Holdings", Sector: SectorTourism, Volatility: VolHigh, BasePrice: 110},
	{Symbol: "ENGY", Name: "Meridian Energy", Sector: SectorEnergy, Volatility: VolMed, BasePrice: 250},
}
