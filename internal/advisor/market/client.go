package market

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/agrosmart-advisor/server/internal/advisor/model"
	errx "github.com/agrosmart-advisor/server/internal/core/error"
)

var (
	ErrMissingAPIKey = errors.New("market: AGMARKNET_API_KEY is not set")
	ErrNoRecords     = errors.New("market: agmarknet returned no records")
)

// upTrendAbove is the modal price (₹/quintal) above which a quote is marked rising.
const upTrendAbove = 2000

// Client queries the data.gov.in Agmarknet daily price resource for one commodity.
type Client struct {
	cfg  model.MarketConfig
	http *http.Client
}

func NewClient(cfg model.MarketConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Commodity is the commodity this client is filtered to.
func (c *Client) Commodity() string {
	return c.cfg.Commodity
}

type recordsResponse struct {
	Records []record `json:"records"`
}

type record struct {
	Commodity  flexString `json:"commodity"`
	Market     flexString `json:"market"`
	State      flexString `json:"state"`
	ModalPrice flexString `json:"modal_price"`
}

// flexString accepts both JSON strings and numbers; the resource is not
// consistent about which one it sends for prices.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

func (c *Client) Fetch(ctx context.Context) ([]model.PriceEntry, error) {
	if c.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("api-key", c.cfg.APIKey)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(c.cfg.Limit))
	q.Set("offset", "0")
	q.Set("filters[commodity]", c.cfg.Commodity)
	endpoint := fmt.Sprintf("%s/resource/%s?%s", strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.ResourceID, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build market request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("market request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errx.WrapUpstream("agmarknet", resp.StatusCode, nil)
	}

	var body recordsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode market response: %w", err)
	}
	if len(body.Records) == 0 {
		return nil, ErrNoRecords
	}

	prices := make([]model.PriceEntry, 0, len(body.Records))
	for _, r := range body.Records {
		prices = append(prices, toPriceEntry(r))
	}
	return prices, nil
}

func toPriceEntry(r record) model.PriceEntry {
	modal := strings.TrimSpace(string(r.ModalPrice))

	entry := model.PriceEntry{
		Commodity: orNA(string(r.Commodity)),
		Market:    orNA(string(r.Market)),
		State:     orNA(string(r.State)),
		Price:     "N/A",
		Trend:     model.TrendFlat,
	}
	if modal != "" {
		entry.Price = fmt.Sprintf("₹%s/quintal", modal)
		if v, err := strconv.ParseFloat(modal, 64); err == nil && v > upTrendAbove {
			entry.Trend = model.TrendUp
		}
	}
	return entry
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
