package game

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mogul/internal/catalog"
	"mogul/internal/econ"
	"mogul/internal/macro"
	"mogul/internal/market"
	"mogul/internal/persist"
)

// Load restores the saved document, merges it against the current
// catalogs, and grants capped offline earnings. Corrupt or missing
// saves fall back to fresh defaults; loading never fails the session.
func (s *Store) Load(ctx context.Context) error {
	raw, err := s.saves.Load(ctx, persist.StorageKey)
	if err != nil {
		if !errors.Is(err, persist.ErrNotFound) {
			s.log.Warn("saved state unreadable, starting fresh", "err", err)
		}
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	loaded := DefaultState(now)
	if err := json.Unmarshal(raw, &loaded); err != nil {
		s.log.Warn("saved state corrupt, starting fresh", "err", err)
		return nil
	}

	s.state = mergeState(loaded, now)
	s.recomputeAll()
	s.grantOfflineEarningsLocked(now)
	s.state.LastSaveTime = now
	s.state.SessionStart = now
	s.evaluateAchievements()
	s.log.Info("state loaded",
		"cash", s.state.Cash,
		"total_earnings", s.state.TotalEarnings,
		"prestige", s.state.PrestigeLevel)
	return nil
}

// mergeState reconciles a deserialized state with the current catalogs.
// The catalog is the source of truth for which entities exist: new
// entries appear with defaults, removed entries vanish, and everything
// else keeps its persisted progress.
func mergeState(loaded State, now time.Time) State {
	merged := loaded

	byBusiness := map[string]econ.Business{}
	for _, b := range loaded.Businesses {
		byBusiness[b.ID] = b
	}
	merged.Businesses = nil
	for _, spec := range catalog.Businesses {
		if b, ok := byBusiness[spec.ID]; ok {
			if b.Tracks == nil {
				b.Tracks = map[econ.TrackKind]int{}
			}
			if b.PriceIndex == 0 {
				b.PriceIndex = 1.0
			}
			if b.FootTraffic == 0 {
				b.FootTraffic = 1.0
			}
			merged.Businesses = append(merged.Businesses, b)
			continue
		}
		merged.Businesses = append(merged.Businesses, econ.NewBusiness(spec))
	}

	byProperty := map[string]econ.Property{}
	for _, p := range loaded.Properties {
		byProperty[p.ID] = p
	}
	merged.Properties = nil
	for _, spec := range catalog.Properties {
		if p, ok := byProperty[spec.ID]; ok {
			if p.Tracks == nil {
				p.Tracks = map[econ.TrackKind]int{}
			}
			if p.Tenant == "" {
				p.Tenant = catalog.TenantB
			}
			merged.Properties = append(merged.Properties, p)
			continue
		}
		merged.Properties = append(merged.Properties, econ.NewProperty(spec))
	}

	byLuxury := map[string]econ.LuxuryItem{}
	for _, l := range loaded.LuxuryItems {
		byLuxury[l.ID] = l
	}
	merged.LuxuryItems = nil
	for _, spec := range catalog.LuxuryItems {
		if l, ok := byLuxury[spec.ID]; ok {
			l.Entourage = l.Owned && spec.Entourage
			merged.LuxuryItems = append(merged.LuxuryItems, l)
			continue
		}
		merged.LuxuryItems = append(merged.LuxuryItems, econ.NewLuxuryItem(spec))
	}

	byStock := map[string]market.Stock{}
	for _, st := range loaded.Stocks {
		byStock[st.Symbol] = st
	}
	merged.Stocks = nil
	for _, spec := range catalog.Stocks {
		if st, ok := byStock[spec.Symbol]; ok && st.CurrentPrice > 0 {
			merged.Stocks = append(merged.Stocks, st)
			continue
		}
		merged.Stocks = append(merged.Stocks, market.NewStock(spec))
	}

	// Boosts are derived, not trusted: rebuild them from the owned
	// multipliers that still exist in the catalog.
	merged.OwnedMultipliers = nil
	merged.IncomeBoost = 0
	merged.TapMultiplier = 1.0
	for _, id := range loaded.OwnedMultipliers {
		spec, ok := catalog.MultiplierByID(id)
		if !ok {
			continue
		}
		merged.OwnedMultipliers = append(merged.OwnedMultipliers, id)
		merged.IncomeBoost += spec.IncomeBoost
		merged.TapMultiplier += spec.TapBoost
	}

	merged.Achievements = nil
	for _, id := range loaded.Achievements {
		if _, ok := catalog.AchievementByID(id); ok {
			merged.Achievements = append(merged.Achievements, id)
		}
	}

	if merged.PrestigeMultiplier == 0 {
		merged.PrestigeMultiplier = econ.PrestigeMultiplier(merged.PrestigeLevel)
	}
	if merged.Macro.Phase == "" {
		merged.Macro = macro.DefaultState(now)
	}
	return merged
}

// grantOfflineEarningsLocked pays out income for the wall-clock gap
// since the last save, capped. Metrics must already be recomputed.
func (s *Store) grantOfflineEarningsLocked(now time.Time) {
	if s.state.LastSaveTime.IsZero() {
		return
	}
	elapsed := now.Sub(s.state.LastSaveTime).Seconds()
	if elapsed <= 0 {
		return
	}
	if elapsed > OfflineCapSeconds {
		elapsed = OfflineCapSeconds
	}

	ratePerSec := 0.0
	for i := range s.state.Businesses {
		b := &s.state.Businesses[i]
		if b.Owned && b.AutoGenerate {
			ratePerSec += b.Metrics.NetIncomePerHour / 3600
		}
	}
	for i := range s.state.Properties {
		p := &s.state.Properties[i]
		if p.Owned {
			ratePerSec += p.Metrics.NetIncomePerHour / 3600
		}
	}
	if ratePerSec <= 0 {
		return
	}
	earned := ratePerSec * elapsed
	s.earn(earned)
	s.log.Info("offline earnings granted", "seconds", elapsed, "amount", earned)
}

// Save snapshots the state under the storage key with a fresh
// last-save watermark.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	s.state.LastSaveTime = s.now()
	doc, err := json.Marshal(s.state)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.saves.Save(ctx, persist.StorageKey, doc)
}
