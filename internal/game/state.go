// Package game owns the canonical mutable state: the single-writer
// store, the tick scheduler, player actions, persistence merge, and the
// achievement scan.
package game

import (
	"errors"
	"math"
	"time"

	"mogul/internal/catalog"
	"mogul/internal/econ"
	"mogul/internal/macro"
	"mogul/internal/market"
)

const (
	PrestigeRequirement = 10_000_000.0

	OfflineCapSeconds = 14_400.0
	SaveInterval      = 5 * time.Second

	TapBaseValue = 1.0

	BonusCashBase            = 1_000.0
	bonusProgressDivisor     = 100_000.0
	premiumBonusMultiplier   = 0.5
	premiumBonusCashMultiple = 2.0

	EntourageBonusInterval = 10 * time.Minute
	entourageBonusShare    = 0.05

	AdCooldown       = 300 * time.Second
	ForcedAdInterval = 180 * time.Second
	FreeUpgradeAdGap = 180 * time.Second
	InitialAdDelay   = 150 * time.Second
	MinAdGap         = 60 * time.Second

	MinLoanLimit   = 10_000.0
	MaxLoanLimit   = 50_000_000.0
	loanTermMonths = 12

	priceIndexMin = 0.5
	priceIndexMax = 2.0
)

// Declined actions surface these on the HTTP boundary; inside the
// engine a failed precondition is a silent no-op.
var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientShares = errors.New("insufficient shares")
	ErrUnknownID          = errors.New("unknown id")
	ErrAlreadyOwned       = errors.New("already owned")
	ErrNotOwned           = errors.New("not owned")
	ErrMaxLevel           = errors.New("already at max level")
	ErrLocked             = errors.New("locked")
	ErrDeclined           = errors.New("action declined")
)

// Loan is borrowed capital with a fixed 12-month amortization schedule.
type Loan struct {
	ID             string    `json:"id"`
	Principal      float64   `json:"principal"`
	Outstanding    float64   `json:"outstanding"`
	InterestRate   float64   `json:"interest_rate"`
	MonthlyPayment float64   `json:"monthly_payment"`
	TakenAt        time.Time `json:"taken_at"`
	NextInterestAt time.Time `json:"next_interest_at"`
}

// State is the whole serializable game document.
type State struct {
	Cash           float64 `json:"cash"`
	TotalEarnings  float64 `json:"total_earnings"`
	TotalSpent     float64 `json:"total_spent"`
	LifetimeTaps   int64   `json:"lifetime_taps"`
	TradesExecuted int64   `json:"trades_executed"`
	RealizedProfit float64 `json:"realized_profit"`

	PrestigeLevel      int     `json:"prestige_level"`
	PrestigeMultiplier float64 `json:"prestige_multiplier"`

	IsPremium  bool `json:"is_premium"`
	AdsWatched int  `json:"ads_watched"`

	TapMultiplier    float64  `json:"tap_multiplier"`
	IncomeBoost      float64  `json:"income_boost"`
	OwnedMultipliers []string `json:"owned_multipliers"`

	Businesses  []econ.Business   `json:"businesses"`
	Properties  []econ.Property   `json:"properties"`
	LuxuryItems []econ.LuxuryItem `json:"luxury_items"`
	Stocks      []market.Stock    `json:"stocks"`

	Macro macro.State `json:"macro"`

	Achievements []string `json:"achievements"`
	Loans        []Loan   `json:"loans"`

	SessionStart       time.Time `json:"session_start"`
	LastAdWatch        time.Time `json:"last_ad_watch"`
	LastEntourageBonus time.Time `json:"last_entourage_bonus"`
	LastForcedAd       time.Time `json:"last_forced_ad"`
	LastFreeAd         time.Time `json:"last_free_ad"`
	LastSaveTime       time.Time `json:"last_save_time"`
}

// DefaultState builds a fresh game from the catalogs.
func DefaultState(now time.Time) State {
	st := State{
		PrestigeMultiplier: 1.0,
		TapMultiplier:      1.0,
		Macro:              macro.DefaultState(now),
		SessionStart:       now,
		LastSaveTime:       now,
	}
	for _, spec := range catalog.Businesses {
		st.Businesses = append(st.Businesses, econ.NewBusiness(spec))
	}
	for _, spec := range catalog.Properties {
		st.Properties = append(st.Properties, econ.NewProperty(spec))
	}
	for _, spec := range catalog.LuxuryItems {
		st.LuxuryItems = append(st.LuxuryItems, econ.NewLuxuryItem(spec))
	}
	for _, spec := range catalog.Stocks {
		st.Stocks = append(st.Stocks, market.NewStock(spec))
	}
	return st
}

// TradingUnlocked gates the stock market on lifetime earnings.
func (st *State) TradingUnlocked() bool {
	return st.TotalEarnings >= market.TradingUnlockEarnings
}

// LoanLimit scales with net worth the same way a bank would size a
// credit line, clamped to sane bounds.
func LoanLimit(netWorth float64) float64 {
	limit := netWorth * 0.35
	if limit < MinLoanLimit {
		return MinLoanLimit
	}
	if limit > MaxLoanLimit {
		return MaxLoanLimit
	}
	return limit
}

// LoanRate prices a loan by size: bigger loans pay more.
func LoanRate(amount float64) float64 {
	return 0.05 + amount/10_000_000*0.02
}

// MonthlyPayment is the standard amortized installment for the loan
// term.
func MonthlyPayment(amount, annualRate float64) float64 {
	r := annualRate / 12
	if r <= 0 {
		return amount / loanTermMonths
	}
	return amount * r / (1 - math.Pow(1+r, -loanTermMonths))
}

func (st *State) hasAchievement(id string) bool {
	for _, a := range st.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

func (st *State) hasMultiplier(id string) bool {
	for _, m := range st.OwnedMultipliers {
		if m == id {
			return true
		}
	}
	return false
}

func (st *State) business(id string) *econ.Business {
	for i := range st.Businesses {
		if st.Businesses[i].ID == id {
			return &st.Businesses[i]
		}
	}
	return nil
}

func (st *State) property(id string) *econ.Property {
	for i := range st.Properties {
		if st.Properties[i].ID == id {
			return &st.Properties[i]
		}
	}
	return nil
}

func (st *State) luxury(id string) *econ.LuxuryItem {
	for i := range st.LuxuryItems {
		if st.LuxuryItems[i].ID == id {
			return &st.LuxuryItems[i]
		}
	}
	return nil
}

func (st *State) stock(symbol string) *market.Stock {
	for i := range st.Stocks {
		if st.Stocks[i].Symbol == symbol {
			return &st.Stocks[i]
		}
	}
	return nil
}
