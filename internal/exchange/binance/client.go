package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ShouterLab/binance-api-svr/pkg/logger"
	"github.com/ShouterLab/binance-api-svr/pkg/schema"
)

const (
	spotBaseURL    = "https://api.binance.com"
	futuresBaseURL = "https://fapi.binance.com"

	// Spot API endpoints
	apiV3Account     = "/api/v3/account"
	apiV3Order       = "/api/v3/order"
	apiV3TickerPrice = "/api/v3/ticker/price"
	apiV3MyTrades    = "/api/v3/myTrades"

	// USDT-margined futures API endpoints
	fapiV2Account     = "/fapi/v2/account"
	fapiV1Order       = "/fapi/v1/order"
	fapiV1TickerPrice = "/fapi/v1/ticker/price"
	fapiV1UserTrades  = "/fapi/v1/userTrades"
)

// Config carries the credentials and optional endpoint overrides for a
// Client. Base URLs default to the production endpoints.
type Config struct {
	APIKey         string
	SecretKey      string
	SpotBaseURL    string
	FuturesBaseURL string
	Timeout        time.Duration
}

// Client issues signed and unsigned requests against Binance spot and
// USDT-margined futures. Safe for concurrent use; credentials are immutable
// after construction.
type Client struct {
	apiKey    string
	secretKey string
	routes    map[schema.MarketType]*marketRoute
}

// marketRoute declares everything market-specific in one place: transport,
// endpoint paths, and the decoders/filters for payloads whose shape differs
// between spot and futures.
type marketRoute struct {
	http        *resty.Client
	accountPath string
	orderPath   string
	tickerPath  string
	tradesPath  string

	decodeAccount func([]byte) (interface{}, error)
	filterFunded  func(account interface{}) interface{}
	decodeTrades  func([]byte) (interface{}, error)
	decodeOrder   func([]byte) (interface{}, error)
}

// NewClient builds a client for both markets. Fails with
// ErrCredentialsRequired when either credential is empty.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" || cfg.SecretKey == "" {
		return nil, ErrCredentialsRequired
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	spotURL := cfg.SpotBaseURL
	if spotURL == "" {
		spotURL = spotBaseURL
	}
	futuresURL := cfg.FuturesBaseURL
	if futuresURL == "" {
		futuresURL = futuresBaseURL
	}

	c := &Client{apiKey: cfg.APIKey, secretKey: cfg.SecretKey}
	c.routes = map[schema.MarketType]*marketRoute{
		schema.SPOT: {
			http:        resty.New().SetBaseURL(spotURL).SetTimeout(timeout),
			accountPath: apiV3Account,
			orderPath:   apiV3Order,
			tickerPath:  apiV3TickerPrice,
			tradesPath:  apiV3MyTrades,
			decodeAccount: func(b []byte) (interface{}, error) {
				var acct schema.SpotAccount
				if err := json.Unmarshal(b, &acct); err != nil {
					return nil, err
				}
				return &acct, nil
			},
			filterFunded: func(account interface{}) interface{} {
				return nonZeroBalances(account.(*schema.SpotAccount).Balances)
			},
			decodeTrades: func(b []byte) (interface{}, error) {
				var trades []schema.Trade
				if err := json.Unmarshal(b, &trades); err != nil {
					return nil, err
				}
				return trades, nil
			},
			decodeOrder: func(b []byte) (interface{}, error) {
				var ord schema.OrderResponse
				if err := json.Unmarshal(b, &ord); err != nil {
					return nil, err
				}
				return &ord, nil
			},
		},
		schema.FUTURES: {
			http:        resty.New().SetBaseURL(futuresURL).SetTimeout(timeout),
			accountPath: fapiV2Account,
			orderPath:   fapiV1Order,
			tickerPath:  fapiV1TickerPrice,
			tradesPath:  fapiV1UserTrades,
			decodeAccount: func(b []byte) (interface{}, error) {
				var acct schema.FuturesAccount
				if err := json.Unmarshal(b, &acct); err != nil {
					return nil, err
				}
				return &acct, nil
			},
			filterFunded: func(account interface{}) interface{} {
				return nonZeroAssets(account.(*schema.FuturesAccount).Assets)
			},
			decodeTrades: func(b []byte) (interface{}, error) {
				var trades []schema.FuturesTrade
				if err := json.Unmarshal(b, &trades); err != nil {
					return nil, err
				}
				return trades, nil
			},
			decodeOrder: func(b []byte) (interface{}, error) {
				var ord schema.FuturesOrderResponse
				if err := json.Unmarshal(b, &ord); err != nil {
					return nil, err
				}
				return &ord, nil
			},
		},
	}
	return c, nil
}

func (c *Client) route(market schema.MarketType) (*marketRoute, error) {
	rt, ok := c.routes[market]
	if !ok {
		return nil, &ValidationError{Msg: fmt.Sprintf("unknown market type %q", market)}
	}
	return rt, nil
}

// dispatch performs one request against a market route. Signed requests get a
// millisecond timestamp appended to params last, and the HMAC signature of
// the exact serialized query string appended to the URL after it. The
// signature parameter is never part of the signed bytes.
func (c *Client) dispatch(ctx context.Context, rt *marketRoute, method, path string, params *Params, signed bool) ([]byte, error) {
	if params == nil {
		params = NewParams()
	}
	if signed {
		params.Add("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))
	}
	qs := params.Encode()
	u := path
	if qs != "" {
		u += "?" + qs
	}
	if signed {
		u += "&signature=" + sign(c.secretKey, qs)
	}

	r, err := rt.http.R().
		SetContext(ctx).
		SetHeader("X-MBX-APIKEY", c.apiKey).
		SetHeader("Content-Type", "application/json").
		Execute(method, u)
	if err != nil {
		return nil, fmt.Errorf("binance %s %s: %w", method, path, err)
	}
	if r.IsError() {
		return nil, &UpstreamError{Status: r.StatusCode(), Body: string(r.Body())}
	}

	// 保存原始响应结果用于调试
	logger.Debug("binance %s %s: %d bytes", method, path, len(r.Body()))
	return r.Body(), nil
}
