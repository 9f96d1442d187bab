package game

// evaluateAchievements scans state against the static thresholds and
// records new unlocks. Unlocks are monotone: once earned, never
// revoked.
func (s *Store) evaluateAchievements() {
	ownedBusinesses := 0
	for i := range s.state.Businesses {
		if s.state.Businesses[i].Owned {
			ownedBusinesses++
		}
	}
	ownedProperties := 0
	for i := range s.state.Properties {
		if s.state.Properties[i].Owned {
			ownedProperties++
		}
	}
	ownedLuxury := 0
	for i := range s.state.LuxuryItems {
		if s.state.LuxuryItems[i].Owned {
			ownedLuxury++
		}
	}

	checks := []struct {
		id  string
		met bool
	}{
		{"first_business", ownedBusinesses >= 1},
		{"five_businesses", ownedBusinesses >= 5},
		{"first_property", ownedProperties >= 1},
		{"property_mogul", ownedProperties >= 5},
		{"first_luxury", ownedLuxury >= 1},
		{"high_roller", ownedLuxury >= len(s.state.LuxuryItems)},
		{"millionaire", s.state.TotalEarnings >= 1_000_000},
		{"multi_millionaire", s.state.TotalEarnings >= 10_000_000},
		{"billionaire", s.state.TotalEarnings >= 1_000_000_000},
		{"tap_master", s.state.LifetimeTaps >= 1_000},
		{"first_trade", s.state.TradesExecuted >= 1},
		{"profit_trader", s.state.RealizedProfit >= 10_000},
		{"first_prestige", s.state.PrestigeLevel >= 1},
	}
	for _, c := range checks {
		if c.met && !s.state.hasAchievement(c.id) {
			s.state.Achievements = append(s.state.Achievements, c.id)
			s.log.Info("achievement unlocked", "id", c.id)
		}
	}
}
