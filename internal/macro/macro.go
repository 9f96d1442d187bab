// Package macro drives the background economy: the five-phase business
// cycle, mean-reverting sentiment and efficiency walks, regional price
// indices, and randomly spawned market events.
package macro

import (
	"time"

	"github.com/google/uuid"

	"mogul/internal/catalog"
)

type Phase string

const (
	PhaseExpansion Phase = "expansion"
	PhasePeak      Phase = "peak"
	PhaseRecession Phase = "recession"
	PhaseTrough    Phase = "trough"
	PhaseRecovery  Phase = "recovery"
)

const (
	SentimentMin    = 0.0
	SentimentMax    = 100.0
	SentimentTarget = 50.0
	sentimentRevert = 0.02
	sentimentStep   = 2.0

	EfficiencyMin    = 0.5
	EfficiencyMax    = 2.5
	EfficiencyTarget = 1.3
	efficiencyVol    = 0.001
	efficiencyRevert = 0.02

	RegionalMin = 0.5
	RegionalMax = 2.0

	EventSpawnChance = 0.10
	EventCooldown    = 5 * time.Minute
)

type phaseParams struct {
	mult     float64
	duration time.Duration
	next     Phase
}

var phaseTable = map[Phase]phaseParams{
	PhaseExpansion: {mult: 1.10, duration: 10 * time.Minute, next: PhasePeak},
	PhasePeak:      {mult: 1.20, duration: 5 * time.Minute, next: PhaseRecession},
	PhaseRecession: {mult: 0.85, duration: 8 * time.Minute, next: PhaseTrough},
	PhaseTrough:    {mult: 0.90, duration: 2 * time.Minute, next: PhaseRecovery},
	PhaseRecovery:  {mult: 1.05, duration: 5 * time.Minute, next: PhaseExpansion},
}

// Multiplier returns the phase's passive income multiplier.
func (p Phase) Multiplier() float64 {
	if params, ok := phaseTable[p]; ok {
		return params.mult
	}
	return 1.0
}

// PriceBias is the additive per-tick drift adjustment stocks receive
// during this phase.
func (p Phase) PriceBias() float64 {
	switch p {
	case PhasePeak:
		return 0.002
	case PhaseExpansion:
		return 0.001
	case PhaseRecovery:
		return 0.0005
	case PhaseTrough:
		return -0.001
	case PhaseRecession:
		return -0.002
	default:
		return 0
	}
}

// RegionalModifiers are slow-moving price indices the property
// valuations key off. All start at 1.0 and stay within [0.5, 2.0].
type RegionalModifiers struct {
	HousingPrice float64 `json:"housing_price"`
	BusinessRent float64 `json:"business_rent"`
	Tourism      float64 `json:"tourism"`
}

// ActiveEvent is a live instance of a catalog event template.
type ActiveEvent struct {
	InstanceID string    `json:"instance_id"`
	TemplateID string    `json:"template_id"`
	StartedAt  time.Time `json:"started_at"`
	EndsAt     time.Time `json:"ends_at"`
}

func (e ActiveEvent) Expired(now time.Time) bool {
	return !now.Before(e.EndsAt)
}

// State is the persisted macro condition of the world.
type State struct {
	Phase          Phase             `json:"phase"`
	PhaseStartedAt time.Time         `json:"phase_started_at"`
	Sentiment      float64           `json:"sentiment"`
	Efficiency     float64           `json:"efficiency"`
	Regional       RegionalModifiers `json:"regional"`
	Events         []ActiveEvent     `json:"events"`
	LastEventAt    time.Time         `json:"last_event_at"`
}

func DefaultState(now time.Time) State {
	return State{
		Phase:          PhaseExpansion,
		PhaseStartedAt: now,
		Sentiment:      SentimentTarget,
		Efficiency:     EfficiencyTarget,
		Regional:       RegionalModifiers{HousingPrice: 1.0, BusinessRent: 1.0, Tourism: 1.0},
	}
}

// Rand is the randomness the walks consume. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// AdvancePhase moves to the next phase once the current one has run its
// duration. At most one transition per call.
func (s *State) AdvancePhase(now time.Time) bool {
	params, ok := phaseTable[s.Phase]
	if !ok {
		s.Phase = PhaseExpansion
		s.PhaseStartedAt = now
		return false
	}
	if now.Sub(s.PhaseStartedAt) <= params.duration {
		return false
	}
	s.Phase = params.next
	s.PhaseStartedAt = now
	return true
}

// StepSentiment applies one mean-reverting random step.
func (s *State) StepSentiment(rng Rand) {
	step := (rng.Float64()*2 - 1) * sentimentStep
	next := s.Sentiment + step + sentimentRevert*(SentimentTarget-s.Sentiment)
	s.Sentiment = clamp(next, SentimentMin, SentimentMax)
}

// StepEfficiency applies one mean-reverting random step.
func (s *State) StepEfficiency(rng Rand) {
	step := (rng.Float64()*2 - 1) * efficiencyVol
	next := s.Efficiency + step + efficiencyRevert*(EfficiencyTarget-s.Efficiency)
	s.Efficiency = clamp(next, EfficiencyMin, EfficiencyMax)
}

var phaseRegionalDrift = map[Phase]RegionalModifiers{
	PhaseExpansion: {HousingPrice: 0.002, BusinessRent: 0.003, Tourism: 0.0025},
	PhasePeak:      {HousingPrice: 0.003, BusinessRent: 0.004, Tourism: 0.003},
	PhaseRecession: {HousingPrice: -0.003, BusinessRent: -0.004, Tourism: -0.0035},
	PhaseTrough:    {HousingPrice: -0.001, BusinessRent: -0.0015, Tourism: -0.001},
	PhaseRecovery:  {HousingPrice: 0.0015, BusinessRent: 0.002, Tourism: 0.0015},
}

// StepRegional drifts the indices in the direction of the current phase
// with a little noise on top.
func (s *State) StepRegional(rng Rand) {
	drift := phaseRegionalDrift[s.Phase]
	noise := func() float64 { return (rng.Float64()*2 - 1) * 0.001 }
	s.Regional.HousingPrice = clamp(s.Regional.HousingPrice+drift.HousingPrice+noise(), RegionalMin, RegionalMax)
	s.Regional.BusinessRent = clamp(s.Regional.BusinessRent+drift.BusinessRent+noise(), RegionalMin, RegionalMax)
	s.Regional.Tourism = clamp(s.Regional.Tourism+drift.Tourism+noise(), RegionalMin, RegionalMax)
}

// StepEvents expires finished events and rolls for a new one. Returns
// the spawned event, if any.
func (s *State) StepEvents(now time.Time, rng Rand) *ActiveEvent {
	kept := s.Events[:0]
	for _, e := range s.Events {
		if !e.Expired(now) {
			kept = append(kept, e)
		}
	}
	s.Events = kept

	if !s.LastEventAt.IsZero() && now.Sub(s.LastEventAt) < EventCooldown {
		return nil
	}
	if rng.Float64() >= EventSpawnChance {
		return nil
	}
	spec := catalog.MarketEvents[int(rng.Float64()*float64(len(catalog.MarketEvents)))%len(catalog.MarketEvents)]
	ev := ActiveEvent{
		InstanceID: uuid.NewString(),
		TemplateID: spec.ID,
		StartedAt:  now,
		EndsAt:     now.Add(spec.Duration),
	}
	s.Events = append(s.Events, ev)
	s.LastEventAt = now
	return &ev
}

// Snapshot is the frozen macro view a single tick computes against.
// Expired events are filtered out at capture time so downstream math
// never sees them.
type Snapshot struct {
	Phase      Phase
	PhaseMult  float64
	Sentiment  float64
	Efficiency float64
	Regional   RegionalModifiers
	Events     []catalog.EventSpec
}

func (s *State) Snapshot(now time.Time) Snapshot {
	sn := Snapshot{
		Phase:      s.Phase,
		PhaseMult:  s.Phase.Multiplier(),
		Sentiment:  s.Sentiment,
		Efficiency: s.Efficiency,
		Regional:   s.Regional,
	}
	for _, e := range s.Events {
		if e.Expired(now) {
			continue
		}
		if spec, ok := catalog.EventByID(e.TemplateID); ok {
			sn.Events = append(sn.Events, spec)
		}
	}
	return sn
}

// SentimentMult maps sentiment 0..100 onto the 0.5..1.5 income range.
func (sn Snapshot) SentimentMult() float64 {
	return 0.5 + sn.Sentiment/100
}

// RevenueEventMult is the product of active event revenue multipliers
// touching the category.
func (sn Snapshot) RevenueEventMult(cat catalog.BusinessCategory) float64 {
	mult := 1.0
	for _, e := range sn.Events {
		if e.RevenueMult > 0 && e.Affects(cat) {
			mult *= e.RevenueMult
		}
	}
	return mult
}

// CostEventMult is the product of active event cost multipliers touching
// the category.
func (sn Snapshot) CostEventMult(cat catalog.BusinessCategory) float64 {
	mult := 1.0
	for _, e := range sn.Events {
		if e.CostMult > 0 && e.Affects(cat) {
			mult *= e.CostMult
		}
	}
	return mult
}

// SectorBias sums the per-event price drift adjustments for a stock
// sector: booms push up, crashes push down.
func (sn Snapshot) SectorBias(sec catalog.Sector) float64 {
	bias := 0.0
	for _, e := range sn.Events {
		if !e.AffectsSector(sec) {
			continue
		}
		switch e.Kind {
		case catalog.EventBoom:
			bias += 0.01
		case catalog.EventCrash:
			bias -= 0.01
		}
	}
	return bias
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
