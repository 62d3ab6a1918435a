package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"QuantDesk/internal/model"
)

const defaultCryptoCompareBaseURL = "https://min-api.cryptocompare.com"

// CryptoCompareProvider implements Provider using the CryptoCompare histoday API.
type CryptoCompareProvider struct {
	BaseURL  string
	APIKey   string
	Currency string // quote currency, e.g. "USD"
	Client   *http.Client
}

// NewCryptoCompareProvider creates a CryptoCompare provider with optional proxy support.
func NewCryptoCompareProvider(apiKey, currency, proxyURL string) *CryptoCompareProvider {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if currency == "" {
		currency = "USD"
	}
	return &CryptoCompareProvider{
		BaseURL:  defaultCryptoCompareBaseURL,
		APIKey:   apiKey,
		Currency: currency,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (p *CryptoCompareProvider) Name() string { return "cryptocompare" }

// histodayResponse is the expected JSON shape from the histoday endpoint.
type histodayResponse struct {
	Response string `json:"Response"`
	Message  string `json:"Message"`
	Data     struct {
		Data []struct {
			Time  int64   `json:"time"`
			Close float64 `json:"close"`
		} `json:"Data"`
	} `json:"Data"`
}

func (p *CryptoCompareProvider) DailyCloses(ctx context.Context, symbol string, days int) (model.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/data/v2/histoday?fsym=%s&tsym=%s&limit=%d",
		p.BaseURL, url.QueryEscape(symbol), url.QueryEscape(p.Currency), days)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.PriceSeries{}, err
	}
	if p.APIKey != "" {
		req.Header.Set("Authorization", "Apikey "+p.APIKey)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("cryptocompare fetch: %w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.PriceSeries{}, fmt.Errorf("cryptocompare: %w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var hist histodayResponse
	if err := json.NewDecoder(resp.Body).Decode(&hist); err != nil {
		return model.PriceSeries{}, fmt.Errorf("cryptocompare decode: %w: %v", ErrUnavailable, err)
	}
	if hist.Response == "Error" {
		// The API reports unknown symbols as an error message, not a status code.
		if strings.Contains(strings.ToLower(hist.Message), "no data") ||
			strings.Contains(strings.ToLower(hist.Message), "does not exist") {
			return model.PriceSeries{}, fmt.Errorf("cryptocompare: %w: %s", ErrNotFound, symbol)
		}
		return model.PriceSeries{}, fmt.Errorf("cryptocompare: %w: %s", ErrUnavailable, hist.Message)
	}

	points := make([]model.PricePoint, 0, len(hist.Data.Data))
	for _, bar := range hist.Data.Data {
		if bar.Close == 0 {
			continue // leading zero bars before the asset existed
		}
		points = append(points, model.PricePoint{Time: time.Unix(bar.Time, 0).UTC(), Close: bar.Close})
	}
	if len(points) == 0 {
		return model.PriceSeries{}, fmt.Errorf("cryptocompare: %w: no data for %s", ErrNotFound, symbol)
	}

	series := model.PriceSeries{Symbol: symbol, Points: points, FetchedAt: time.Now()}
	return series.Tail(days), nil
}
