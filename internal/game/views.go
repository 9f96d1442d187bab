package game

import (
	"mogul/internal/catalog"
	"mogul/internal/econ"
	"mogul/internal/macro"
	"mogul/internal/market"
)

// Views are read-only projections handed to the HTTP layer. They carry
// display figures (costs, names, rates) so clients never reimplement
// the formulas.

type BusinessView struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Category      catalog.BusinessCategory `json:"category"`
	Owned         bool                     `json:"owned"`
	Level         int                      `json:"level"`
	Employees     int                      `json:"employees"`
	PriceIndex    float64                  `json:"price_index"`
	BuyCost       float64                  `json:"buy_cost"`
	NextLevelCost float64                  `json:"next_level_cost"`
	SaleValue     float64                  `json:"sale_value"`
	Tracks        map[econ.TrackKind]int   `json:"tracks,omitempty"`
	Metrics       econ.BusinessMetrics     `json:"metrics"`
}

type PropertyView struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Category      catalog.PropertyCategory `json:"category"`
	Owned         bool                     `json:"owned"`
	Level         int                      `json:"level"`
	Rented        bool                     `json:"rented"`
	Tenant        catalog.TenantTier       `json:"tenant"`
	Amenities     []catalog.Amenity        `json:"amenities,omitempty"`
	BuyCost       float64                  `json:"buy_cost"`
	NextLevelCost float64                  `json:"next_level_cost"`
	MarketValue   float64                  `json:"market_value"`
	Tracks        map[econ.TrackKind]int   `json:"tracks,omitempty"`
	Metrics       econ.PropertyMetrics     `json:"metrics"`
}

type LuxuryView struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Owned      bool                   `json:"owned"`
	Cost       float64                `json:"cost"`
	Multiplier float64                `json:"multiplier"`
	BrandScore int                    `json:"brand_score"`
	Tracks     map[econ.TrackKind]int `json:"tracks,omitempty"`
}

type StockView struct {
	Symbol          string         `json:"symbol"`
	Name            string         `json:"name"`
	Sector          catalog.Sector `json:"sector"`
	CurrentPrice    float64        `json:"current_price"`
	ChangePct       float64        `json:"change_pct"`
	SharesOwned     int64          `json:"shares_owned"`
	AverageBuyPrice float64        `json:"average_buy_price"`
	HoldingValue    float64        `json:"holding_value"`
	StopLoss        float64        `json:"stop_loss,omitempty"`
	TakeProfit      float64        `json:"take_profit,omitempty"`
	PriceHistory    []float64      `json:"price_history"`
}

type MacroView struct {
	Phase       string  `json:"phase"`
	PhaseMult   float64 `json:"phase_mult"`
	Sentiment   float64 `json:"sentiment"`
	Efficiency  float64 `json:"efficiency"`
	ActiveEvent string  `json:"active_event,omitempty"`
}

type AchievementView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Unlocked bool   `json:"unlocked"`
}

type MultiplierView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cost        float64 `json:"cost"`
	IncomeBoost float64 `json:"income_boost"`
	TapBoost    float64 `json:"tap_boost"`
	Owned       bool    `json:"owned"`
}

// StateView is the whole dashboard in one document.
type StateView struct {
	Cash             float64 `json:"cash"`
	NetWorth         float64 `json:"net_worth"`
	TotalEarnings    float64 `json:"total_earnings"`
	TotalSpent       float64 `json:"total_spent"`
	IncomePerSecond  float64 `json:"income_per_second"`
	GlobalMultiplier float64 `json:"global_multiplier"`

	PrestigeLevel      int     `json:"prestige_level"`
	PrestigeMultiplier float64 `json:"prestige_multiplier"`
	PrestigeReady      bool    `json:"prestige_ready"`

	TradingUnlocked bool `json:"trading_unlocked"`
	IsPremium       bool `json:"is_premium"`

	TapValue         float64 `json:"tap_value"`
	AdReady          bool    `json:"ad_ready"`
	AdWaitSeconds    float64 `json:"ad_wait_seconds"`
	ForcedAdDue      bool    `json:"forced_ad_due"`
	FreeUpgradeReady bool    `json:"free_upgrade_ready"`
	LoanLimit        float64 `json:"loan_limit"`
	LoanOwed         float64 `json:"loan_owed"`
	PortfolioValue   float64 `json:"portfolio_value"`

	Macro MacroView `json:"macro"`

	Businesses  []BusinessView   `json:"businesses"`
	Properties  []PropertyView   `json:"properties"`
	LuxuryItems []LuxuryView     `json:"luxury_items"`
	Multipliers []MultiplierView `json:"multipliers"`
	Loans       []Loan           `json:"loans"`
}

// IncomeView breaks passive income into its sources.
type IncomeView struct {
	PerSecond        float64            `json:"per_second"`
	PerHour          float64            `json:"per_hour"`
	GlobalMultiplier float64            `json:"global_multiplier"`
	Sources          map[string]float64 `json:"sources"`
}

// incomePerSecondLocked is the same figure the cash tick accrues for
// one second, with revenue events applied per category.
func (s *Store) incomePerSecondLocked(sn macro.Snapshot) (total float64, sources map[string]float64) {
	sources = map[string]float64{}
	for i := range s.state.Businesses {
		b := &s.state.Businesses[i]
		if !b.Owned || !b.AutoGenerate {
			continue
		}
		spec, ok := catalog.BusinessByID(b.ID)
		if !ok {
			continue
		}
		mult := s.composeLocked(sn.SentimentMult(), sn.PhaseMult, sn.Efficiency, sn.RevenueEventMult(spec.Category))
		rate := b.Metrics.NetIncomePerHour / 3600 * mult
		sources[b.ID] = rate
		total += rate
	}
	for i := range s.state.Properties {
		p := &s.state.Properties[i]
		if !p.Owned {
			continue
		}
		mult := s.composeLocked(sn.SentimentMult(), sn.PhaseMult, sn.Efficiency, 1.0)
		rate := p.Metrics.NetIncomePerHour / 3600 * mult
		sources[p.ID] = rate
		total += rate
	}
	return total, sources
}

// View builds the full dashboard snapshot.
func (s *Store) View() StateView {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sn := s.state.Macro.Snapshot(now)
	income, _ := s.incomePerSecondLocked(sn)
	adReady, adWait := s.canWatchAdLocked(now)

	view := StateView{
		Cash:               s.state.Cash,
		NetWorth:           s.netWorthLocked(),
		TotalEarnings:      s.state.TotalEarnings,
		TotalSpent:         s.state.TotalSpent,
		IncomePerSecond:    income,
		GlobalMultiplier:   s.composeLocked(sn.SentimentMult(), sn.PhaseMult, sn.Efficiency, 1.0),
		PrestigeLevel:      s.state.PrestigeLevel,
		PrestigeMultiplier: s.state.PrestigeMultiplier,
		PrestigeReady:      s.state.TotalEarnings >= PrestigeRequirement,
		TradingUnlocked:    s.state.TradingUnlocked(),
		IsPremium:          s.state.IsPremium,
		TapValue:           TapBaseValue * s.state.TapMultiplier * s.state.PrestigeMultiplier,
		AdReady:            adReady,
		AdWaitSeconds:      adWait.Seconds(),
		ForcedAdDue:        s.forcedAdDueLocked(now),
		FreeUpgradeReady:   s.freeUpgradeReadyLocked(now),
		LoanLimit:          LoanLimit(s.netWorthLocked()),
		PortfolioValue:     market.PortfolioValue(s.state.Stocks),
		Macro: MacroView{
			Phase:      string(s.state.Macro.Phase),
			PhaseMult:  sn.PhaseMult,
			Sentiment:  s.state.Macro.Sentiment,
			Efficiency: s.state.Macro.Efficiency,
		},
		Loans: append([]Loan(nil), s.state.Loans...),
	}
	if len(sn.Events) > 0 {
		view.Macro.ActiveEvent = sn.Events[0].Name
	}
	for _, l := range s.state.Loans {
		view.LoanOwed += l.Outstanding
	}

	for i := range s.state.Businesses {
		b := &s.state.Businesses[i]
		spec, ok := catalog.BusinessByID(b.ID)
		if !ok {
			continue
		}
		view.Businesses = append(view.Businesses, BusinessView{
			ID:            b.ID,
			Name:          spec.Name,
			Category:      spec.Category,
			Owned:         b.Owned,
			Level:         b.Level,
			Employees:     b.Employees,
			PriceIndex:    b.PriceIndex,
			BuyCost:       spec.BaseCost,
			NextLevelCost: b.LevelUpCost(spec),
			SaleValue:     b.SaleValue(),
			Tracks:        b.Tracks,
			Metrics:       b.Metrics,
		})
	}
	for i := range s.state.Properties {
		p := &s.state.Properties[i]
		spec, ok := catalog.PropertyByID(p.ID)
		if !ok {
			continue
		}
		view.Properties = append(view.Properties, PropertyView{
			ID:            p.ID,
			Name:          spec.Name,
			Category:      spec.Category,
			Owned:         p.Owned,
			Level:         p.Level,
			Rented:        p.Rented,
			Tenant:        p.Tenant,
			Amenities:     p.Amenities,
			BuyCost:       spec.BaseCost,
			NextLevelCost: p.LevelUpCost(spec),
			MarketValue:   p.CurrentMarketValue,
			Tracks:        p.Tracks,
			Metrics:       p.Metrics,
		})
	}
	for i := range s.state.LuxuryItems {
		l := &s.state.LuxuryItems[i]
		spec, ok := catalog.LuxuryByID(l.ID)
		if !ok {
			continue
		}
		view.LuxuryItems = append(view.LuxuryItems, LuxuryView{
			ID:         l.ID,
			Name:       spec.Name,
			Owned:      l.Owned,
			Cost:       spec.Cost,
			Multiplier: l.CurrentMultiplier(spec),
			BrandScore: spec.BrandScore,
			Tracks:     l.Tracks,
		})
	}
	for _, spec := range catalog.Multipliers {
		view.Multipliers = append(view.Multipliers, MultiplierView{
			ID:          spec.ID,
			Name:        spec.Name,
			Cost:        spec.Cost,
			IncomeBoost: spec.IncomeBoost,
			TapBoost:    spec.TapBoost,
			Owned:       s.state.hasMultiplier(spec.ID),
		})
	}
	return view
}

// Income reports the per-source passive income rates.
func (s *Store) Income() IncomeView {
	s.mu.Lock()
	defer s.mu.Unlock()

	sn := s.state.Macro.Snapshot(s.now())
	total, sources := s.incomePerSecondLocked(sn)
	return IncomeView{
		PerSecond:        total,
		PerHour:          total * 3600,
		GlobalMultiplier: s.composeLocked(sn.SentimentMult(), sn.PhaseMult, sn.Efficiency, 1.0),
		Sources:          sources,
	}
}

// StocksView lists the market with holdings attached.
func (s *Store) StocksView() []StockView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]StockView, 0, len(s.state.Stocks))
	for i := range s.state.Stocks {
		st := &s.state.Stocks[i]
		spec, ok := catalog.StockBySymbol(st.Symbol)
		if !ok {
			continue
		}
		views = append(views, StockView{
			Symbol:          st.Symbol,
			Name:            spec.Name,
			Sector:          spec.Sector,
			CurrentPrice:    st.CurrentPrice,
			ChangePct:       st.ChangePct(),
			SharesOwned:     st.SharesOwned,
			AverageBuyPrice: st.AverageBuyPrice,
			HoldingValue:    st.CurrentPrice * float64(st.SharesOwned),
			StopLoss:        st.StopLoss,
			TakeProfit:      st.TakeProfit,
			PriceHistory:    append([]float64(nil), st.PriceHistory...),
		})
	}
	return views
}

// AchievementsView lists every achievement with unlock status.
func (s *Store) AchievementsView() []AchievementView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]AchievementView, 0, len(catalog.Achievements))
	for _, spec := range catalog.Achievements {
		views = append(views, AchievementView{
			ID:       spec.ID,
			Name:     spec.Name,
			Unlocked: s.state.hasAchievement(spec.ID),
		})
	}
	return views
}
