package macro

import (
	"math"
	"testing"
	"time"

	"mogul/internal/catalog"
)

// fixedRand always returns the same roll.
type fixedRand struct{ v float64 }

func (r fixedRand) Float64() float64 { return r.v }

func TestAdvancePhaseSingleTransition(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := DefaultState(start)

	if s.AdvancePhase(start.Add(9 * time.Minute)) {
		t.Fatalf("phase advanced before its duration elapsed")
	}

	now := start.Add(11 * time.Minute)
	if !s.AdvancePhase(now) {
		t.Fatalf("expected transition after 11 minutes")
	}
	if s.Phase != PhasePeak {
		t.Fatalf("expected peak, got %s", s.Phase)
	}
	// The next call sees a freshly started peak: no second jump even
	// though the wall gap from the original start is large.
	if s.AdvancePhase(now) {
		t.Fatalf("expected exactly one transition per elapsed window")
	}
}

func TestPhaseCycleOrder(t *testing.T) {
	order := []Phase{PhasePeak, PhaseRecession, PhaseTrough, PhaseRecovery, PhaseExpansion}
	now := time.Now()
	s := DefaultState(now)
	for _, want := range order {
		now = now.Add(phaseTable[s.Phase].duration + time.Second)
		if !s.AdvancePhase(now) {
			t.Fatalf("expected transition into %s", want)
		}
		if s.Phase != want {
			t.Fatalf("got %s want %s", s.Phase, want)
		}
	}
}

func TestSentimentStaysInRange(t *testing.T) {
	s := DefaultState(time.Now())
	up := fixedRand{v: 1.0}
	for i := 0; i < 1000; i++ {
		s.StepSentiment(up)
	}
	if s.Sentiment > SentimentMax {
		t.Fatalf("sentiment above max: %v", s.Sentiment)
	}
	down := fixedRand{v: 0.0}
	for i := 0; i < 1000; i++ {
		s.StepSentiment(down)
	}
	if s.Sentiment < SentimentMin {
		t.Fatalf("sentiment below min: %v", s.Sentiment)
	}
}

func TestEfficiencyMeanReverts(t *testing.T) {
	s := DefaultState(time.Now())
	s.Efficiency = EfficiencyMax
	neutral := fixedRand{v: 0.5} // zero noise
	s.StepEfficiency(neutral)
	if s.Efficiency >= EfficiencyMax {
		t.Fatalf("efficiency did not revert toward target: %v", s.Efficiency)
	}
}

func TestRegionalClamped(t *testing.T) {
	s := DefaultState(time.Now())
	s.Phase = PhasePeak
	up := fixedRand{v: 1.0}
	for i := 0; i < 10_000; i++ {
		s.StepRegional(up)
	}
	if s.Regional.HousingPrice > RegionalMax || s.Regional.BusinessRent > RegionalMax || s.Regional.Tourism > RegionalMax {
		t.Fatalf("regional index above max: %+v", s.Regional)
	}
}

func TestEventSpawnAndCooldown(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := DefaultState(now)
	always := fixedRand{v: 0.0} // roll always under the spawn chance

	ev := s.StepEvents(now, always)
	if ev == nil {
		t.Fatalf("expected an event to spawn")
	}
	if len(s.Events) != 1 {
		t.Fatalf("expected one active event, got %d", len(s.Events))
	}

	if again := s.StepEvents(now.Add(time.Minute), always); again != nil {
		t.Fatalf("cooldown ignored: second event spawned")
	}

	spec, ok := catalog.EventByID(ev.TemplateID)
	if !ok {
		t.Fatalf("spawned event references unknown template %q", ev.TemplateID)
	}
	after := now.Add(spec.Duration + EventCooldown + time.Second)
	s.StepEvents(after, fixedRand{v: 0.99})
	if len(s.Events) != 0 {
		t.Fatalf("expired event not removed")
	}
}

func TestSnapshotFiltersExpired(t *testing.T) {
	now := time.Now()
	s := DefaultState(now)
	s.Events = []ActiveEvent{
		{InstanceID: "a", TemplateID: catalog.MarketEvents[0].ID, StartedAt: now.Add(-time.Hour), EndsAt: now.Add(-time.Minute)},
		{InstanceID: "b", TemplateID: catalog.MarketEvents[1].ID, StartedAt: now, EndsAt: now.Add(time.Hour)},
	}
	sn := s.Snapshot(now)
	if len(sn.Events) != 1 {
		t.Fatalf("expected one live event in snapshot, got %d", len(sn.Events))
	}
	if sn.Events[0].ID != catalog.MarketEvents[1].ID {
		t.Fatalf("wrong event survived: %s", sn.Events[0].ID)
	}
}

func TestSentimentMult(t *testing.T) {
	sn := Snapshot{Sentiment: 50}
	if got := sn.SentimentMult(); got != 1.0 {
		t.Fatalf("neutral sentiment should be x1.0, got %v", got)
	}
	sn.Sentiment = 0
	if got := sn.SentimentMult(); got != 0.5 {
		t.Fatalf("floor sentiment got %v want 0.5", got)
	}
	sn.Sentiment = 100
	if got := sn.SentimentMult(); got != 1.5 {
		t.Fatalf("peak sentiment got %v want 1.5", got)
	}
}

func TestEventScoping(t *testing.T) {
	global := catalog.EventSpec{ID: "g", Kind: catalog.EventCrash, RevenueMult: 0.7}
	scoped := catalog.EventSpec{ID: "s", Kind: catalog.EventBoom, RevenueMult: 1.5, Categories: []catalog.BusinessCategory{catalog.Tech}}
	sn := Snapshot{Events: []catalog.EventSpec{global, scoped}}

	if got := sn.RevenueEventMult(catalog.Tech); math.Abs(got-0.7*1.5) > 1e-9 {
		t.Fatalf("tech revenue mult got %v", got)
	}
	if got := sn.RevenueEventMult(catalog.Retail); got != 0.7 {
		t.Fatalf("retail revenue mult got %v", got)
	}
}

func TestSectorBias(t *testing.T) {
	boom := catalog.EventSpec{ID: "b", Kind: catalog.EventBoom, AffectedSectors: []catalog.Sector{catalog.SectorTech}}
	crash := catalog.EventSpec{ID: "c", Kind: catalog.EventCrash} // sectorless crash hits everyone
	sn := Snapshot{Events: []catalog.EventSpec{boom, crash}}

	if got := sn.SectorBias(catalog.SectorTech); got != 0.0 {
		t.Fatalf("boom and crash should cancel for tech, got %v", got)
	}
	if got := sn.SectorBias(catalog.SectorFood); got != -0.01 {
		t.Fatalf("food should only feel the crash, got %v", got)
	}
}
