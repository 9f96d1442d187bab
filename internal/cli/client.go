package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mogul/internal/game"
)

// Client is a thin typed wrapper over the API's /v1 surface.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) State(ctx context.Context) (game.StateView, error) {
	var out game.StateView
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/state", nil, &out)
	return out, err
}

func (c *Client) Income(ctx context.Context) (game.IncomeView, error) {
	var out game.IncomeView
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/views/income", nil, &out)
	return out, err
}

func (c *Client) Stocks(ctx context.Context) ([]game.StockView, error) {
	var out struct {
		Stocks []game.StockView `json:"stocks"`
	}
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/stocks", nil, &out)
	return out.Stocks, err
}

func (c *Client) Achievements(ctx context.Context) ([]game.AchievementView, error) {
	var out struct {
		Achievements []game.AchievementView `json:"achievements"`
	}
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/achievements", nil, &out)
	return out.Achievements, err
}

func (c *Client) BuyBusiness(ctx context.Context, id string) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/businesses/"+url.PathEscape(id)+"/buy", nil)
}

func (c *Client) UpgradeBusiness(ctx context.Context, id string) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/businesses/"+url.PathEscape(id)+"/upgrade", nil)
}

func (c *Client) SellBusiness(ctx context.Context, id string) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/businesses/"+url.PathEscape(id)+"/sell", nil)
}

func (c *Client) UpgradeBusinessTrack(ctx context.Context, id, track string) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/businesses/"+url.PathEscape(id)+"/tracks/"+url.PathEscape(track), nil)
}

func (c *Client) SetBusinessPrice(ctx context.Context, id string, index float64) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/businesses/"+url.PathEscape(id)+"/price", map[string]any{"index": index})
}

func (c *Client) BuyProperty(ctx context.Context, id string) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/properties/"+url.PathEscape(id)+"/buy", nil)
}

func (c *Client) UpgradeProperty(ctx context.Context, id string) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/properties/"+url.PathEscape(id)+"/upgrade", nil)
}

func (c *Client) SellProperty(ctx context.Context, id string) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/properties/"+url.PathEscape(id)+"/sell", nil)
}

func (c *Client) UpgradePropertyTrack(ctx context.Context, id, track string) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/properties/"+url.PathEscape(id)+"/tracks/"+url.PathEscape(track), nil)
}

func (c *Client) SetRented(ctx context.Context, id string, rented bool) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/properties/"+url.PathEscape(id)+"/rent", map[string]any{"rented": rented})
}

func (c *Client) SetTenant(ctx context.Context, id, tier string) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/properties/"+url.PathEscape(id)+"/tenant", map[string]any{"tier": tier})
}

func (c *Client) AddAmenity(ctx context.Context, id, amenity string) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/properties/"+url.PathEscape(id)+"/amenities/"+url.PathEscape(amenity), nil)
}

func (c *Client) BuyLuxury(ctx context.Context, id string) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/luxury/"+url.PathEscape(id)+"/buy", nil)
}

func (c *Client) UpgradeLuxuryTrack(ctx context.Context, id, track string) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/luxury/"+url.PathEscape(id)+"/tracks/"+url.PathEscape(track), nil)
}

func (c *Client) FreeUpgradeBusiness(ctx context.Context, id string) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/businesses/"+url.PathEscape(id)+"/free-upgrade", nil)
}

func (c *Client) MarkForcedAd(ctx context.Context) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/ads/forced", nil)
}

func (c *Client) BuyMultiplier(ctx context.Context, id string) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/multipliers/"+url.PathEscape(id)+"/buy", nil)
}

func (c *Client) BuyStock(ctx context.Context, symbol string, shares int64) ([]game.StockView, error) {
	return c.stocksAction(ctx, "/v1/stocks/"+url.PathEscape(symbol)+"/buy", map[string]any{"shares": shares})
}

func (c *Client) SellStock(ctx context.Context, symbol string, shares int64) ([]game.StockView, error) {
	return c.stocksAction(ctx, "/v1/stocks/"+url.PathEscape(symbol)+"/sell", map[string]any{"shares": shares})
}

func (c *Client) SetStockTriggers(ctx context.Context, symbol string, stopLoss, takeProfit float64) ([]game.StockView, error) {
	return c.stocksAction(ctx, "/v1/stocks/"+url.PathEscape(symbol)+"/triggers", map[string]any{
		"stop_loss":   stopLoss,
		"take_profit": takeProfit,
	})
}

func (c *Client) Tap(ctx context.Context) (float64, error) {
	var out struct {
		Value float64 `json:"value"`
	}
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/tap", map[string]any{}, &out)
	return out.Value, err
}

func (c *Client) Prestige(ctx context.Context) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/prestige", nil)
}

func (c *Client) Reset(ctx context.Context) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/reset", nil)
}

func (c *Client) BonusCash(ctx context.Context) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/bonus-cash", nil)
}

func (c *Client) TakeLoan(ctx context.Context, amount float64) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/loans", map[string]any{"amount": amount})
}

func (c *Client) PayLoan(ctx context.Context, id string, amount float64) (game.StateView, error) {
	return c.stateAction(ctx, "/v1/loans/"+url.PathEscape(id)+"/pay", map[string]any{"amount": amount})
}

func (c *Client) stateAction(ctx context.Context, path string, body map[string]any) (game.StateView, error) {
	if body == nil {
		body = map[string]any{}
	}
	var out game.StateView
	err := c.jsonRequest(ctx, http.MethodPost, path, body, &out)
	return out, err
}

func (c *Client) stocksAction(ctx context.Context, path string, body map[string]any) ([]game.StockView, error) {
	var out struct {
		Stocks []game.StockView `json:"stocks"`
	}
	err := c.jsonRequest(ctx, http.MethodPost, path, body, &out)
	return out.Stocks, err
}

func (c *Client) jsonRequest(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("api status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
