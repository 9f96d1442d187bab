package econ

import "math"

// TrackKind names an upgrade track. Businesses, properties, and luxury
// items all hang their upgrade progress off the same representation: a
// map of track kind to integer level.
type TrackKind string

const (
	TrackEfficiency     TrackKind = "efficiency"
	TrackQuality        TrackKind = "quality"
	TrackMarketing      TrackKind = "marketing"
	TrackAutomation     TrackKind = "automation"
	TrackSustainability TrackKind = "sustainability"

	TrackSmartManagement TrackKind = "smart_management"
	TrackRenovation      TrackKind = "renovation"
	TrackScreening       TrackKind = "screening"

	TrackPolish TrackKind = "polish"
	TrackRefit  TrackKind = "refit"
)

// UpgradeCostGrowth is the geometric growth rate shared by every
// upgrade track cost curve.
const UpgradeCostGrowth = 2.35

// TrackSpec parameterizes one upgrade track: how far it goes and how
// its cost scales off the owning entity's base cost.
type TrackSpec struct {
	Kind       TrackKind
	MaxLevel   int
	CostFactor float64
}

// CostAt is the price of buying the next level when the track currently
// sits at level. Strictly increasing in level.
func (t TrackSpec) CostAt(entityBaseCost float64, level int) float64 {
	return entityBaseCost * t.CostFactor * math.Pow(UpgradeCostGrowth, float64(level))
}

var BusinessTracks = []TrackSpec{
	{Kind: TrackEfficiency, MaxLevel: 10, CostFactor: 0.50},
	{Kind: TrackQuality, MaxLevel: 10, CostFactor: 0.60},
	{Kind: TrackMarketing, MaxLevel: 10, CostFactor: 0.45},
	{Kind: TrackAutomation, MaxLevel: 6, CostFactor: 0.80},
	{Kind: TrackSustainability, MaxLevel: 6, CostFactor: 0.40},
}

var PropertyTracks = []TrackSpec{
	{Kind: TrackSmartManagement, MaxLevel: 10, CostFactor: 0.35},
	{Kind: TrackRenovation, MaxLevel: 10, CostFactor: 0.55},
	{Kind: TrackScreening, MaxLevel: 5, CostFactor: 0.25},
}

var LuxuryTracks = []TrackSpec{
	{Kind: TrackPolish, MaxLevel: 10, CostFactor: 0.10},
	{Kind: TrackRefit, MaxLevel: 10, CostFactor: 0.20},
}

// TrackByKind looks a spec up in one of the lists above.
func TrackByKind(specs []TrackSpec, kind TrackKind) (TrackSpec, bool) {
	for _, t := range specs {
		if t.Kind == kind {
			return t, true
		}
	}
	return TrackSpec{}, false
}
