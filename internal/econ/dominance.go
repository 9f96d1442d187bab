package econ

import "mogul/internal/catalog"

// NPCBaselineRevenue is the fixed hourly revenue the rest of the market
// is assumed to hold in every category when computing dominance share.
const NPCBaselineRevenue = 1_000_000.0

// DominanceBonus is the reward for controlling a large share of a
// category's revenue. The highest threshold met applies; tiers do not
// stack.
type DominanceBonus struct {
	RevenueBonus      float64
	MarketingDiscount float64
}

var dominanceTiers = []struct {
	share float64
	bonus DominanceBonus
}{
	{share: 0.75, bonus: DominanceBonus{RevenueBonus: 0.20, MarketingDiscount: 0.05}},
	{share: 0.50, bonus: DominanceBonus{RevenueBonus: 0.12, MarketingDiscount: 0.02}},
	{share: 0.25, bonus: DominanceBonus{RevenueBonus: 0.05}},
}

// DominanceForShare maps a revenue share onto its bonus tier.
func DominanceForShare(share float64) DominanceBonus {
	for _, tier := range dominanceTiers {
		if share >= tier.share {
			return tier.bonus
		}
	}
	return DominanceBonus{}
}

// CategoryShares computes the player's revenue share per category from
// pre-dominance revenue, against the fixed NPC baseline.
func CategoryShares(businesses []Business) map[catalog.BusinessCategory]float64 {
	revenue := map[catalog.BusinessCategory]float64{}
	for i := range businesses {
		spec, ok := catalog.BusinessByID(businesses[i].ID)
		if !ok {
			continue
		}
		revenue[spec.Category] += baseRevenuePerHour(&businesses[i], spec)
	}
	shares := make(map[catalog.BusinessCategory]float64, len(revenue))
	for cat, r := range revenue {
		shares[cat] = r / (r + NPCBaselineRevenue)
	}
	return shares
}
