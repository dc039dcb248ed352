package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jekabolt/currency-exchange/internal/currency"
	"github.com/jekabolt/currency-exchange/internal/dto"
	gerr "github.com/jekabolt/currency-exchange/internal/errors"
	"github.com/jekabolt/currency-exchange/internal/metrics"
	"github.com/shopspring/decimal"
)

var (
	exchangeRatesBaseURL = "https://api.exchangeratesapi.io/"

	defaultTimeout = 10 * time.Second
)

type Config struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Timeout     time.Duration `mapstructure:"timeout"`
	DefaultBase string        `mapstructure:"default_base"`
}

// StatusAdapter interprets provider responses that the generic flow can't.
type StatusAdapter interface {
	// RejectsBase reports whether resp means the provider refused the base currency.
	RejectsBase(resp *resty.Response) bool
}

// BadRequestAdapter treats HTTP 400 as an unknown base currency,
// which is how exchangeratesapi.io answers ?base=XYZ.
type BadRequestAdapter struct{}

func (BadRequestAdapter) RejectsBase(resp *resty.Response) bool {
	return resp.StatusCode() == http.StatusBadRequest
}

type Client struct {
	c       *Config
	cli     *resty.Client
	adapter StatusAdapter
	base    string
}

type Option func(*Client)

// WithStatusAdapter swaps the provider status interpretation.
func WithStatusAdapter(a StatusAdapter) Option {
	return func(cli *Client) {
		cli.adapter = a
	}
}

func New(c *Config, opts ...Option) *Client {
	baseURL := exchangeRatesBaseURL
	if c.BaseURL != "" {
		baseURL = c.BaseURL
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cli := resty.New()
	cli.SetBaseURL(baseURL)
	cli.SetTimeout(timeout)
	cli.SetHeader("Accept", "application/json")
	if c.APIKey != "" {
		cli.SetQueryParam("access_key", c.APIKey)
	}
	cli.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		metrics.ObserveUpstream(resp.StatusCode(), resp.Time())
		return nil
	})
	cli.OnError(func(req *resty.Request, _ error) {
		metrics.ObserveUpstream(0, time.Since(req.Time))
	})

	base := currency.Normalize(c.DefaultBase)
	if base == "" {
		base = currency.DefaultBase
	}

	client := &Client{
		c:       c,
		cli:     cli,
		adapter: BadRequestAdapter{},
		base:    base,
	}
	for _, o := range opts {
		o(client)
	}
	return client
}

// GetLatestRatesResponse is the provider payload, error is only set by keyed plans.
type GetLatestRatesResponse struct {
	Success *bool              `json:"success,omitempty"`
	Base    string             `json:"base"`
	Date    string             `json:"date"`
	Rates   map[string]float64 `json:"rates"`
	Error   *struct {
		Code int    `json:"code"`
		Type string `json:"type"`
		Info string `json:"info"`
	} `json:"error,omitempty"`
}

// GetRates returns the provider's rate table for timeIndicator with the provider's default base.
func (client *Client) GetRates(ctx context.Context, timeIndicator string) (*dto.RateSnapshot, error) {
	resp, err := client.get(ctx, timeIndicator, "")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, statusError(resp)
	}
	return decode(resp)
}

// GetExchangeRate returns how many target units one base unit buys.
func (client *Client) GetExchangeRate(ctx context.Context, target, base, timeIndicator string) (float64, error) {
	target = currency.Normalize(target)
	if target == "" {
		return 0, gerr.InvalidArgument("please provide a currency code")
	}
	base = currency.Normalize(base)
	if base == "" {
		base = client.base
	}

	resp, err := client.get(ctx, timeIndicator, base)
	if err != nil {
		return 0, err
	}
	if !resp.IsSuccess() {
		if client.adapter.RejectsBase(resp) {
			return 0, gerr.NotFound("The country code %s is invalid for the currency you want to convert FROM.", base)
		}
		return 0, statusError(resp)
	}

	snap, err := decode(resp)
	if err != nil {
		return 0, err
	}
	rate, ok := snap.Rate(target)
	if !ok {
		return 0, gerr.NotFound("The country code %s is invalid for the currency you want to convert TO.", target)
	}
	return rate, nil
}

// Convert converts amount of from into to at the rate of timeIndicator.
func (client *Client) Convert(ctx context.Context, amount float64, from, to, timeIndicator string) (float64, error) {
	rate, err := client.GetExchangeRate(ctx, to, from, timeIndicator)
	if err != nil {
		return 0, err
	}
	res, _ := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).Float64()
	return res, nil
}

func (client *Client) get(ctx context.Context, timeIndicator, base string) (*resty.Response, error) {
	req := client.cli.R().SetContext(ctx)
	if base != "" {
		req.SetQueryParam("base", base)
	}
	resp, err := req.Get(url.PathEscape(currency.TimeIndicator(timeIndicator)))
	if err != nil {
		return nil, transportError(err)
	}
	return resp, nil
}

func decode(resp *resty.Response) (*dto.RateSnapshot, error) {
	var res GetLatestRatesResponse
	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		return nil, gerr.Upstream(fmt.Errorf("could not unmarshal response: %w : body: %v", err, body(resp)), "rates provider returned a malformed response")
	}
	if res.Error != nil || (res.Success != nil && !*res.Success) {
		return nil, gerr.Upstream(fmt.Errorf("rates api request failed: %v", body(resp)), "rates provider request failed")
	}
	return &dto.RateSnapshot{
		Base:  res.Base,
		Date:  res.Date,
		Rates: res.Rates,
	}, nil
}

func statusError(resp *resty.Response) error {
	return gerr.Upstream(fmt.Errorf("rates provider http %d: %s", resp.StatusCode(), body(resp)), "rates provider returned status %d", resp.StatusCode())
}

func transportError(err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return gerr.UpstreamTimeout(err, "rates provider timed out")
	}
	return gerr.Upstream(err, "could not reach rates provider")
}

func body(resp *resty.Response) string {
	const max = 512
	b := resp.String()
	if len(b) > max {
		return b[:max] + "..."
	}
	return b
}
