package game

import (
	"context"
	"time"

	"mogul/internal/catalog"
	"mogul/internal/econ"
	"mogul/internal/macro"
)

const (
	cashTickEvery  = 1 * time.Second
	stockTickEvery = 5 * time.Second
	fastMacroEvery = 10 * time.Second
	slowMacroEvery = 30 * time.Second
)

// composeLocked builds the global multiplier for one entity, taking the
// entity-scoped event multiplier as input.
func (s *Store) composeLocked(sentimentMult, phaseMult, efficiency, eventMult float64) float64 {
	additive := econ.LuxuryBonus(s.state.LuxuryItems)
	additive += catalog.BrandBonus(econ.BrandScore(s.state.LuxuryItems))
	additive += s.state.IncomeBoost
	if s.state.IsPremium {
		additive += premiumBonusMultiplier
	}
	return econ.Compose(s.state.PrestigeLevel, additive, phaseMult, sentimentMult, efficiency, eventMult)
}

// TickCash accrues one interval of passive income using the macro
// snapshot captured at tick time, and compounds overdue loan interest.
func (s *Store) TickCash() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sn := s.state.Macro.Snapshot(now)
	s.accrueLocked(cashTickEvery.Seconds(), sn)

	for i := range s.state.Loans {
		l := &s.state.Loans[i]
		if now.Before(l.NextInterestAt) {
			continue
		}
		l.Outstanding *= 1 + l.InterestRate/12
		l.NextInterestAt = l.NextInterestAt.Add(30 * 24 * time.Hour)
	}

	s.entourageBonusLocked(now)
}

// entourageBonusLocked pays the periodic perk unlocked by luxury items
// that come with staff. The payout scales with current income, floored
// so early owners still feel it.
func (s *Store) entourageBonusLocked(now time.Time) {
	staffed := false
	for i := range s.state.LuxuryItems {
		if s.state.LuxuryItems[i].Entourage {
			staffed = true
			break
		}
	}
	if !staffed {
		return
	}
	anchor := s.state.LastEntourageBonus
	if anchor.IsZero() {
		anchor = s.state.SessionStart
	}
	if now.Sub(anchor) < EntourageBonusInterval {
		return
	}

	rate := 0.0
	for i := range s.state.Businesses {
		if b := &s.state.Businesses[i]; b.Owned {
			rate += b.Metrics.NetIncomePerHour
		}
	}
	for i := range s.state.Properties {
		if p := &s.state.Properties[i]; p.Owned {
			rate += p.Metrics.NetIncomePerHour
		}
	}
	amount := rate * entourageBonusShare
	if amount < BonusCashBase {
		amount = BonusCashBase
	}
	s.earn(amount)
	s.state.LastEntourageBonus = now
	s.log.Info("entourage bonus", "amount", amount)
}

func (s *Store) accrueLocked(seconds float64, sn macro.Snapshot) {
	delta := 0.0
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
		delta += b.Metrics.NetIncomePerHour / 3600 * seconds * mult
	}
	for i := range s.state.Properties {
		p := &s.state.Properties[i]
		if !p.Owned {
			continue
		}
		mult := s.composeLocked(sn.SentimentMult(), sn.PhaseMult, sn.Efficiency, 1.0)
		delta += p.Metrics.NetIncomePerHour / 3600 * seconds * mult
	}
	if delta >= 0 {
		s.earn(delta)
		return
	}
	s.state.Cash += delta
	if s.state.Cash < 0 {
		s.state.Cash = 0
	}
}

// TickStocks advances every price once trading is unlocked, then fires
// any armed stop-loss / take-profit triggers.
func (s *Store) TickStocks() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.TradingUnlocked() {
		return
	}
	sn := s.state.Macro.Snapshot(s.now())
	var triggered []string
	for i := range s.state.Stocks {
		st := &s.state.Stocks[i]
		spec, ok := catalog.StockBySymbol(st.Symbol)
		if !ok {
			continue
		}
		st.Tick(spec, sn, s.rng)
		if st.TriggerHit() {
			triggered = append(triggered, st.Symbol)
		}
	}
	for _, symbol := range triggered {
		st := s.state.stock(symbol)
		shares := st.SharesOwned
		st.StopLoss = 0
		st.TakeProfit = 0
		if s.sellStockLocked(symbol, shares) {
			s.log.Info("trigger sell", "symbol", symbol, "shares", shares, "price", st.CurrentPrice)
		}
	}
}

// TickMacroFast runs the 10-second macro work: phase cycling and the
// sentiment walk.
func (s *Store) TickMacroFast() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Macro.AdvancePhase(s.now()) {
		s.log.Info("economic phase change", "phase", string(s.state.Macro.Phase))
		s.recomputeAll()
	}
	s.state.Macro.StepSentiment(s.rng)
}

// TickMacroSlow runs the 30-second macro work: the efficiency walk,
// regional drift, and event spawn/expiry.
func (s *Store) TickMacroSlow() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Macro.StepEfficiency(s.rng)
	s.state.Macro.StepRegional(s.rng)
	if ev := s.state.Macro.StepEvents(s.now(), s.rng); ev != nil {
		s.log.Info("market event", "template", ev.TemplateID, "ends_at", ev.EndsAt)
	}
	s.recomputeAll()
}

// Run drives the periodic schedules until the context is canceled. The
// store itself serializes all mutations, so the loop stays single
// goroutine.
func (s *Store) Run(ctx context.Context) {
	cash := time.NewTicker(cashTickEvery)
	defer cash.Stop()
	stocks := time.NewTicker(stockTickEvery)
	defer stocks.Stop()
	fast := time.NewTicker(fastMacroEvery)
	defer fast.Stop()
	slow := time.NewTicker(slowMacroEvery)
	defer slow.Stop()
	save := time.NewTicker(SaveInterval)
	defer save.Stop()

	s.log.Info("tick scheduler started")
	for {
		select {
		case <-ctx.Done():
			if err := s.Save(context.Background()); err != nil {
				s.log.Error("final save failed", "err", err)
			}
			s.log.Info("tick scheduler stopped")
			return
		case <-cash.C:
			s.TickCash()
		case <-stocks.C:
			s.TickStocks()
		case <-fast.C:
			s.TickMacroFast()
		case <-slow.C:
			s.TickMacroSlow()
		case <-save.C:
			if err := s.Save(ctx); err != nil {
				// Retried next interval; progress loss is bounded by
				// the save cadence.
				s.log.Error("save failed", "err", err)
			}
		}
	}
}
