package game

import (
	"log/slog"
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"mogul/internal/catalog"
	"mogul/internal/econ"
	"mogul/internal/market"
	"mogul/internal/persist"
)

// Store is the single writer over the game state. Every mutation, player
// action or tick, goes through the mutex; nothing else touches State.
type Store struct {
	log   *slog.Logger
	saves persist.Store

	mu    sync.Mutex
	state State
	rng   *mathrand.Rand
	now   func() time.Time
}

func NewStore(saves persist.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		log:   logger,
		saves: saves,
		rng:   mathrand.New(mathrand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
	}
	s.state = DefaultState(s.now())
	s.recomputeAll()
	return s
}

// spend deducts cost if affordable. The single affordability gate every
// purchase goes through; cash never goes negative.
func (s *Store) spend(cost float64) bool {
	if cost < 0 || s.state.Cash < cost {
		return false
	}
	s.state.Cash -= cost
	s.state.TotalSpent += cost
	return true
}

func (s *Store) earn(amount float64) {
	if amount <= 0 {
		return
	}
	s.state.Cash += amount
	s.state.TotalEarnings += amount
}

// recomputeAll re-derives every entity's stored metrics from the
// current macro snapshot. Metrics are never mutated incrementally.
func (s *Store) recomputeAll() {
	sn := s.state.Macro.Snapshot(s.now())
	shares := econ.CategoryShares(s.state.Businesses)
	for i := range s.state.Businesses {
		b := &s.state.Businesses[i]
		spec, ok := catalog.BusinessByID(b.ID)
		if !ok {
			continue
		}
		dom := econ.DominanceForShare(shares[spec.Category])
		b.Metrics = econ.ComputeBusinessMetrics(b, spec, sn, dom)
		if b.Owned {
			b.Employees = min(b.Level, spec.MaxEmployees)
		}
	}
	for i := range s.state.Properties {
		p := &s.state.Properties[i]
		if spec, ok := catalog.PropertyByID(p.ID); ok {
			p.Metrics = econ.ComputePropertyMetrics(p, spec, sn)
		}
	}
}

// BuyBusiness purchases the first level. No-op if already owned or
// unaffordable.
func (s *Store) BuyBusiness(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.state.business(id)
	spec, ok := catalog.BusinessByID(id)
	if b == nil || !ok || b.Owned {
		return false
	}
	if !s.spend(spec.BaseCost) {
		return false
	}
	b.Owned = true
	b.Level = 1
	b.AutoGenerate = true
	b.TotalInvested += spec.BaseCost
	s.recomputeAll()
	s.evaluateAchievements()
	return true
}

// UpgradeBusiness buys the next level.
func (s *Store) UpgradeBusiness(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.state.business(id)
	spec, ok := catalog.BusinessByID(id)
	if b == nil || !ok || !b.Owned {
		return false
	}
	cost := b.LevelUpCost(spec)
	if !s.spend(cost) {
		return false
	}
	b.Level++
	b.TotalInvested += cost
	s.recomputeAll()
	s.evaluateAchievements()
	return true
}

// UpgradeBusinessTrack buys the next level of one upgrade track.
func (s *Store) UpgradeBusinessTrack(id string, kind econ.TrackKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.state.business(id)
	spec, ok := catalog.BusinessByID(id)
	if b == nil || !ok || !b.Owned {
		return false
	}
	track, ok := econ.TrackByKind(econ.BusinessTracks, kind)
	if !ok {
		return false
	}
	level := b.Track(kind)
	if level >= track.MaxLevel {
		return false
	}
	cost := track.CostAt(spec.BaseCost, level)
	if !s.spend(cost) {
		return false
	}
	if b.Tracks == nil {
		b.Tracks = map[econ.TrackKind]int{}
	}
	b.Tracks[kind] = level + 1
	b.TotalInvested += cost
	s.recomputeAll()
	return true
}

// SetBusinessPriceIndex moves the demand lever. Free, but clamped.
func (s *Store) SetBusinessPriceIndex(id string, index float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.state.business(id)
	if b == nil || !b.Owned {
		return false
	}
	if index < priceIndexMin {
		index = priceIndexMin
	}
	if index > priceIndexMax {
		index = priceIndexMax
	}
	b.PriceIndex = index
	s.recomputeAll()
	return true
}

// SellBusiness pays out a fraction of invested capital and resets the
// business to its catalog defaults.
func (s *Store) SellBusiness(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.state.business(id)
	spec, ok := catalog.BusinessByID(id)
	if b == nil || !ok || !b.Owned {
		return false
	}
	s.earn(b.SaleValue())
	*b = econ.NewBusiness(spec)
	s.recomputeAll()
	return true
}

func (s *Store) BuyProperty(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.state.property(id)
	spec, ok := catalog.PropertyByID(id)
	if p == nil || !ok || p.Owned {
		return false
	}
	if !s.spend(spec.BaseCost) {
		return false
	}
	p.Owned = true
	p.Level = 1
	p.CurrentMarketValue = spec.BaseCost
	p.TotalInvested += spec.BaseCost
	s.recomputeAll()
	s.evaluateAchievements()
	return true
}

// UpgradeProperty buys the next level; most of the spend sticks to the
// market value.
func (s *Store) UpgradeProperty(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.state.property(id)
	spec, ok := catalog.PropertyByID(id)
	if p == nil || !ok || !p.Owned {
		return false
	}
	cost := p.LevelUpCost(spec)
	if !s.spend(cost) {
		return false
	}
	p.Level++
	p.TotalInvested += cost
	p.CurrentMarketValue += cost * 0.7
	p.ConditionScore++
	s.recomputeAll()
	s.evaluateAchievements()
	return true
}

func (s *Store) UpgradePropertyTrack(id string, kind econ.TrackKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.state.property(id)
	spec, ok := catalog.PropertyByID(id)
	if p == nil || !ok || !p.Owned {
		return false
	}
	track, ok := econ.TrackByKind(econ.PropertyTracks, kind)
	if !ok {
		return false
	}
	level := p.Track(kind)
	if level >= track.MaxLevel {
		return false
	}
	cost := track.CostAt(spec.BaseCost, level)
	if !s.spend(cost) {
		return false
	}
	if p.Tracks == nil {
		p.Tracks = map[econ.TrackKind]int{}
	}
	p.Tracks[kind] = level + 1
	p.TotalInvested += cost
	p.CurrentMarketValue += cost * 0.7
	switch kind {
	case econ.TrackRenovation:
		p.ConditionScore++
	case econ.TrackSmartManagement:
		p.EnergyEfficiency++
	case econ.TrackScreening:
		p.SecurityLevel++
	}
	s.recomputeAll()
	return true
}

// AddAmenity installs an amenity once.
func (s *Store) AddAmenity(id string, a catalog.Amenity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.state.property(id)
	spec, ok := catalog.PropertyByID(id)
	if p == nil || !ok || !p.Owned || p.HasAmenity(a) {
		return false
	}
	cost := econ.AmenityCost(spec, a)
	if !s.spend(cost) {
		return false
	}
	p.Amenities = append(p.Amenities, a)
	p.TotalInvested += cost
	p.CurrentMarketValue += cost * 0.7
	p.AmenitiesLevel++
	s.recomputeAll()
	return true
}

// SetRented toggles between rent income and flat use income.
func (s *Store) SetRented(id string, rented bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.state.property(id)
	if p == nil || !p.Owned {
		return false
	}
	p.Rented = rented
	s.recomputeAll()
	return true
}

func (s *Store) SetTenantTier(id string, tier catalog.TenantTier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.state.property(id)
	if p == nil || !p.Owned {
		return false
	}
	switch tier {
	case catalog.TenantA, catalog.TenantB, catalog.TenantC:
	default:
		return false
	}
	p.Tenant = tier
	s.recomputeAll()
	return true
}

// SellProperty pays out the current market value and resets to catalog
// defaults.
func (s *Store) SellProperty(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.state.property(id)
	spec, ok := catalog.PropertyByID(id)
	if p == nil || !ok || !p.Owned {
		return false
	}
	s.earn(p.CurrentMarketValue)
	*p = econ.NewProperty(spec)
	s.recomputeAll()
	return true
}

func (s *Store) BuyLuxury(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.state.luxury(id)
	spec, ok := catalog.LuxuryByID(id)
	if l == nil || !ok || l.Owned {
		return false
	}
	if !s.spend(spec.Cost) {
		return false
	}
	l.Owned = true
	l.Entourage = spec.Entourage
	s.evaluateAchievements()
	return true
}

func (s *Store) UpgradeLuxuryTrack(id string, kind econ.TrackKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.state.luxury(id)
	spec, ok := catalog.LuxuryByID(id)
	if l == nil || !ok || !l.Owned {
		return false
	}
	track, ok := econ.TrackByKind(econ.LuxuryTracks, kind)
	if !ok {
		return false
	}
	level := l.Track(kind)
	if level >= track.MaxLevel {
		return false
	}
	if !s.spend(track.CostAt(spec.Cost, level)) {
		return false
	}
	if l.Tracks == nil {
		l.Tracks = map[econ.TrackKind]int{}
	}
	l.Tracks[kind] = level + 1
	return true
}

// BuyStock purchases shares at the current price. Locked until lifetime
// earnings cross the trading threshold.
func (s *Store) BuyStock(symbol string, shares int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.TradingUnlocked() || shares <= 0 {
		return false
	}
	st := s.state.stock(symbol)
	if st == nil {
		return false
	}
	cost := st.CurrentPrice * float64(shares)
	if !s.spend(cost) {
		return false
	}
	st.ApplyBuy(shares, st.CurrentPrice)
	s.state.TradesExecuted++
	s.evaluateAchievements()
	return true
}

// SellStock sells shares at the current price; rejected when
// overselling.
func (s *Store) SellStock(symbol string, shares int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sellStockLocked(symbol, shares)
}

func (s *Store) sellStockLocked(symbol string, shares int64) bool {
	st := s.state.stock(symbol)
	if st == nil {
		return false
	}
	proceeds, realized, ok := st.ApplySell(shares, st.CurrentPrice)
	if !ok {
		return false
	}
	s.earn(proceeds)
	s.state.RealizedProfit += realized
	s.state.TradesExecuted++
	s.evaluateAchievements()
	return true
}

// SetStockTriggers arms stop-loss / take-profit levels; zero disarms.
func (s *Store) SetStockTriggers(symbol string, stopLoss, takeProfit float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state.stock(symbol)
	if st == nil || stopLoss < 0 || takeProfit < 0 {
		return false
	}
	st.StopLoss = stopLoss
	st.TakeProfit = takeProfit
	return true
}

// Tap is the active income path.
func (s *Store) Tap() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	value := TapBaseValue * s.state.TapMultiplier * s.state.PrestigeMultiplier
	s.earn(value)
	s.state.LifetimeTaps++
	s.evaluateAchievements()
	return value
}

// BuyMultiplier purchases a one-time income or tap booster.
func (s *Store) BuyMultiplier(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	spec, ok := catalog.MultiplierByID(id)
	if !ok || s.state.hasMultiplier(id) {
		return false
	}
	if !s.spend(spec.Cost) {
		return false
	}
	s.state.OwnedMultipliers = append(s.state.OwnedMultipliers, id)
	s.state.IncomeBoost += spec.IncomeBoost
	s.state.TapMultiplier += spec.TapBoost
	return true
}

// PurchasePremium flips the premium flag; payment happens outside the
// economy.
func (s *Store) PurchasePremium() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsPremium = true
}

// CanWatchAd is the same predicate GrantBonusCash enforces, exposed so
// the UI can gray the button with identical logic.
func (s *Store) CanWatchAd() (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canWatchAdLocked(s.now())
}

func (s *Store) canWatchAdLocked(now time.Time) (bool, time.Duration) {
	if wait := InitialAdDelay - now.Sub(s.state.SessionStart); wait > 0 {
		return false, wait
	}
	if !s.state.LastAdWatch.IsZero() {
		if wait := AdCooldown - now.Sub(s.state.LastAdWatch); wait > 0 {
			return false, wait
		}
	}
	if last := s.lastAnyAdLocked(); !last.IsZero() {
		if wait := MinAdGap - now.Sub(last); wait > 0 {
			return false, wait
		}
	}
	return true, 0
}

// lastAnyAdLocked is the most recent ad of any kind; the minimum gap
// applies across reward, forced, and free-upgrade ads alike.
func (s *Store) lastAnyAdLocked() time.Time {
	last := s.state.LastAdWatch
	if s.state.LastForcedAd.After(last) {
		last = s.state.LastForcedAd
	}
	if s.state.LastFreeAd.After(last) {
		last = s.state.LastFreeAd
	}
	return last
}

// GrantBonusCash is the ad-reward hook: gated by the ad timestamps,
// scaled by progress, doubled for premium.
func (s *Store) GrantBonusCash() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if ok, _ := s.canWatchAdLocked(now); !ok {
		return false
	}
	progress := s.state.TotalEarnings / bonusProgressDivisor
	if progress < 1 {
		progress = 1
	}
	amount := BonusCashBase * progress
	if s.state.IsPremium {
		amount *= premiumBonusCashMultiple
	}
	s.earn(amount)
	s.state.AdsWatched++
	s.state.LastAdWatch = now
	return true
}

// MarkForcedAd records that the client showed an interstitial ad. The
// due flag in the state view flips back off until the next interval.
func (s *Store) MarkForcedAd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LastForcedAd = s.now()
	s.state.AdsWatched++
}

func (s *Store) forcedAdDueLocked(now time.Time) bool {
	anchor := s.state.SessionStart
	if s.state.LastForcedAd.After(anchor) {
		anchor = s.state.LastForcedAd
	}
	return now.Sub(anchor) >= ForcedAdInterval
}

func (s *Store) freeUpgradeReadyLocked(now time.Time) bool {
	if now.Sub(s.state.SessionStart) < InitialAdDelay {
		return false
	}
	if last := s.lastAnyAdLocked(); !last.IsZero() && now.Sub(last) < MinAdGap {
		return false
	}
	anchor := s.state.SessionStart
	if s.state.LastFreeAd.After(anchor) {
		anchor = s.state.LastFreeAd
	}
	return now.Sub(anchor) >= FreeUpgradeAdGap
}

// FreeUpgradeBusiness grants one business level for an ad watch instead
// of cash. Same gating rhythm as bonus cash, on its own timestamp.
func (s *Store) FreeUpgradeBusiness(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !s.freeUpgradeReadyLocked(now) {
		return false
	}
	b := s.state.business(id)
	if b == nil || !b.Owned {
		return false
	}
	b.Level++
	s.state.LastFreeAd = now
	s.state.AdsWatched++
	s.recomputeAll()
	s.evaluateAchievements()
	return true
}

// TakeLoan borrows against net worth.
func (s *Store) TakeLoan(amount float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 {
		return false
	}
	outstanding := 0.0
	for _, l := range s.state.Loans {
		outstanding += l.Outstanding
	}
	if outstanding+amount > LoanLimit(s.netWorthLocked()) {
		return false
	}
	now := s.now()
	rate := LoanRate(amount)
	s.state.Loans = append(s.state.Loans, Loan{
		ID:             uuid.NewString(),
		Principal:      amount,
		Outstanding:    amount,
		InterestRate:   rate,
		MonthlyPayment: MonthlyPayment(amount, rate),
		TakenAt:        now,
		NextInterestAt: now.Add(30 * 24 * time.Hour),
	})
	s.state.Cash += amount
	return true
}

// PayLoan pays down a loan; fully repaid loans disappear.
func (s *Store) PayLoan(id string, amount float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 {
		return false
	}
	for i := range s.state.Loans {
		l := &s.state.Loans[i]
		if l.ID != id {
			continue
		}
		if amount > l.Outstanding {
			amount = l.Outstanding
		}
		if !s.spend(amount) {
			return false
		}
		l.Outstanding -= amount
		if l.Outstanding <= 0.01 {
			s.state.Loans = append(s.state.Loans[:i], s.state.Loans[i+1:]...)
		}
		return true
	}
	return false
}

// Prestige resets the game with a curated carry-over. Gated on lifetime
// earnings.
func (s *Store) Prestige() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.TotalEarnings < PrestigeRequirement {
		return false
	}
	old := s.state
	next := DefaultState(s.now())

	// The carry-over allowlist. Everything else starts fresh.
	next.LifetimeTaps = old.LifetimeTaps
	next.Achievements = old.Achievements
	next.IsPremium = old.IsPremium
	next.AdsWatched = old.AdsWatched
	next.LuxuryItems = old.LuxuryItems

	next.PrestigeLevel = old.PrestigeLevel + 1
	next.PrestigeMultiplier = econ.PrestigeMultiplier(next.PrestigeLevel)

	s.state = next
	s.recomputeAll()
	s.evaluateAchievements()
	return true
}

// ResetGame wipes everything.
func (s *Store) ResetGame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = DefaultState(s.now())
	s.recomputeAll()
}

func (s *Store) netWorthLocked() float64 {
	worth := s.state.Cash + market.PortfolioValue(s.state.Stocks)
	for i := range s.state.Properties {
		if s.state.Properties[i].Owned {
			worth += s.state.Properties[i].CurrentMarketValue
		}
	}
	for i := range s.state.Businesses {
		if s.state.Businesses[i].Owned {
			worth += s.state.Businesses[i].TotalInvested
		}
	}
	for _, l := range s.state.Loans {
		worth -= l.Outstanding
	}
	return worth
}
