package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mogul/internal/catalog"
	"mogul/internal/econ"
	"mogul/internal/game"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server exposes the game store over HTTP. Every mutating route maps
// onto exactly one store action; a declined action comes back as 409.
type Server struct {
	log   *slog.Logger
	store *game.Store
	mux   *chi.Mux
}

func New(logger *slog.Logger, store *game.Store) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		log:   logger,
		store: store,
		mux:   chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/views/income", s.handleIncome)
		r.Get("/stocks", s.handleStocks)
		r.Get("/achievements", s.handleAchievements)

		r.Post("/businesses/{id}/buy", s.action(func(id string) bool { return s.store.BuyBusiness(id) }))
		r.Post("/businesses/{id}/upgrade", s.action(func(id string) bool { return s.store.UpgradeBusiness(id) }))
		r.Post("/businesses/{id}/sell", s.action(func(id string) bool { return s.store.SellBusiness(id) }))
		r.Post("/businesses/{id}/tracks/{track}", s.handleBusinessTrack)
		r.Post("/businesses/{id}/price", s.handleBusinessPrice)
		r.Post("/businesses/{id}/free-upgrade", s.action(func(id string) bool { return s.store.FreeUpgradeBusiness(id) }))

		r.Post("/properties/{id}/buy", s.action(func(id string) bool { return s.store.BuyProperty(id) }))
		r.Post("/properties/{id}/upgrade", s.action(func(id string) bool { return s.store.UpgradeProperty(id) }))
		r.Post("/properties/{id}/sell", s.action(func(id string) bool { return s.store.SellProperty(id) }))
		r.Post("/properties/{id}/tracks/{track}", s.handlePropertyTrack)
		r.Post("/properties/{id}/rent", s.handlePropertyRent)
		r.Post("/properties/{id}/tenant", s.handlePropertyTenant)
		r.Post("/properties/{id}/amenities/{amenity}", s.handlePropertyAmenity)

		r.Post("/luxury/{id}/buy", s.action(func(id string) bool { return s.store.BuyLuxury(id) }))
		r.Post("/luxury/{id}/tracks/{track}", s.handleLuxuryTrack)

		r.Post("/stocks/{symbol}/buy", s.handleStockBuy)
		r.Post("/stocks/{symbol}/sell", s.handleStockSell)
		r.Post("/stocks/{symbol}/triggers", s.handleStockTriggers)

		r.Post("/multipliers/{id}/buy", s.action(func(id string) bool { return s.store.BuyMultiplier(id) }))

		r.Post("/tap", s.handleTap)
		r.Post("/prestige", s.handlePrestige)
		r.Post("/reset", s.handleReset)
		r.Post("/premium", s.handlePremium)
		r.Post("/bonus-cash", s.handleBonusCash)
		r.Post("/ads/forced", s.handleForcedAd)

		r.Post("/loans", s.handleTakeLoan)
		r.Post("/loans/{id}/pay", s.handlePayLoan)
	})
}

// action wraps the common id-keyed succeeded-or-declined pattern.
func (s *Server) action(fn func(id string) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !fn(chi.URLParam(r, "id")) {
			writeDeclined(w)
			return
		}
		writeJSON(w, http.StatusOK, s.store.View())
	}
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.View())
}

func (s *Server) handleIncome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Income())
}

func (s *Server) handleStocks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"stocks": s.store.StocksView()})
}

func (s *Server) handleAchievements(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"achievements": s.store.AchievementsView()})
}

func (s *Server) handleBusinessTrack(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	kind := econ.TrackKind(chi.URLParam(r, "track"))
	if !s.store.UpgradeBusinessTrack(id, kind) {
		writeDeclined(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.View())
}

func (s *Server) handleBusinessPrice(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Index float64 `json:"index"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.store.SetBusinessPriceIndex(chi.URLParam(r, "id"), in.Index) {
		writeDeclined(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.View())
}

func (s *Server) handlePropertyTrack(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	kind := econ.TrackKind(chi.URLParam(r, "track"))
	if !s.store.UpgradePropertyTrack(id, kind) {
		writeDeclined(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.View())
}

func (s *Server) handlePropertyRent(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Rented bool `json:"rented"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.store.SetRented(chi.URLParam(r, "id"), in.Rented) {
		writeDeclined(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.View())
}

func (s *Server) handlePropertyTenant(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Tier string `json:"tier"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.store.SetTenantTier(chi.URLParam(r, "id"), catalog.TenantTier(strings.ToUpper(strings.TrimSpace(in.Tier)))) {
		writeDeclined(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.View())
}

func (s *Server) handlePropertyAmenity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	amenity := catalog.Amenity(chi.URLParam(r, "amenity"))
	if !s.store.AddAmenity(id, amenity) {
		writeDeclined(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.View())
}

func (s *Server) handleLuxuryTrack(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	kind := econ.TrackKind(chi.URLParam(r, "track"))
	if !s.store.UpgradeLuxuryTrack(id, kind) {
		writeDeclined(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.View())
}

func (s *Server) handleStockBuy(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Shares int64 `json:"shares"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.store.BuyStock(chi.URLParam(r, "symbol"), in.Shares) {
		writeDeclined(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stocks": s.store.StocksView()})
}

func (s *Server) handleStockSell(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Shares int64 `json:"shares"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.store.SellStock(chi.URLParam(r, "symbol"), in.Shares) {
		writeDeclined(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stocks": s.store.StocksView()})
}

func (s *Server) handleStockTriggers(w http.ResponseWriter, r *http.Request) {
	var in struct {
		StopLoss   float64 `json:"stop_loss"`
		TakeProfit float64 `json:"take_profit"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.store.SetStockTriggers(chi.URLParam(r, "symbol"), in.StopLoss, in.TakeProfit) {
		writeDeclined(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stocks": s.store.StocksView()})
}

func (s *Server) handleTap(w http.ResponseWriter, _ *http.Request) {
	value := s.store.Tap()
	writeJSON(w, http.StatusOK, map[string]any{"value": value})
}

func (s *Server) handlePrestige(w http.ResponseWriter, _ *http.Request) {
	if !s.store.Prestige() {
		writeDeclined(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.View())
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.store.ResetGame()
	writeJSON(w, http.StatusOK, s.store.View())
}

func (s *Server) handlePremium(w http.ResponseWriter, _ *http.Request) {
	s.store.PurchasePremium()
	writeJSON(w, http.StatusOK, s.store.View())
}

func (s *Server) handleForcedAd(w http.ResponseWriter, _ *http.Request) {
	s.store.MarkForcedAd()
	writeJSON(w, http.StatusOK, s.store.View())
}

func (s *Server) handleBonusCash(w http.ResponseWriter, _ *http.Request) {
	if !s.store.GrantBonusCash() {
		writeDeclined(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.View())
}

func (s *Server) handleTakeLoan(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Amount float64 `json:"amount"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.store.TakeLoan(in.Amount) {
		writeDeclined(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.View())
}

func (s *Server) handlePayLoan(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Amount float64 `json:"amount"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.store.PayLoan(chi.URLParam(r, "id"), in.Amount) {
		writeDeclined(w)
		return
	}
	writeJSON(w, http.StatusOK, s.store.View())
}

func writeDeclined(w http.ResponseWriter) {
	writeError(w, http.StatusConflict, game.ErrDeclined.Error())
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(message)})
}
