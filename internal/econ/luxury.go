package econ

import "mogul/internal/catalog"

const (
	polishPerLevel = 0.005
	polishCap      = 0.05
	refitPerLevel  = 0.01
	refitCap       = 0.10
)

// LuxuryItem is a one-time purchase with no levels; its contribution to
// the global multiplier is additive across owned items.
type LuxuryItem struct {
	ID        string            `json:"id"`
	Owned     bool              `json:"owned"`
	Entourage bool              `json:"entourage"`
	Tracks    map[TrackKind]int `json:"tracks"`
}

func NewLuxuryItem(spec catalog.LuxurySpec) LuxuryItem {
	return LuxuryItem{ID: spec.ID, Tracks: map[TrackKind]int{}}
}

func (l *LuxuryItem) Track(kind TrackKind) int {
	if l.Tracks == nil {
		return 0
	}
	return l.Tracks[kind]
}

// CurrentMultiplier is the item's additive bonus: base plus capped
// polish and refit upgrades.
func (l *LuxuryItem) CurrentMultiplier(spec catalog.LuxurySpec) float64 {
	if !l.Owned {
		return 0
	}
	polish := polishPerLevel * float64(l.Track(TrackPolish))
	if polish > polishCap {
		polish = polishCap
	}
	refit := refitPerLevel * float64(l.Track(TrackRefit))
	if refit > refitCap {
		refit = refitCap
	}
	return spec.BaseMultiplier + polish + refit
}

// LuxuryBonus sums the current multipliers of all owned items.
func LuxuryBonus(items []LuxuryItem) float64 {
	total := 0.0
	for i := range items {
		spec, ok := catalog.LuxuryByID(items[i].ID)
		if !ok {
			continue
		}
		total += items[i].CurrentMultiplier(spec)
	}
	return total
}

// BrandScore sums the brand scores of owned items; the tier table in
// the catalog turns it into an additive bonus.
func BrandScore(items []LuxuryItem) int {
	total := 0
	for i := range items {
		if !items[i].Owned {
			continue
		}
		if spec, ok := catalog.LuxuryByID(items[i].ID); ok {
			total += spec.BrandScore
		}
	}
	return total
}
