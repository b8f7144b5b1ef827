package binance

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ShouterLab/binance-api-svr/pkg/schema"
)

// Ticker fetches the latest price for one symbol. Unsigned.
func (c *Client) Ticker(ctx context.Context, market schema.MarketType, symbol string) (*schema.TickerPrice, error) {
	rt, err := c.route(market)
	if err != nil {
		return nil, err
	}
	body, err := c.dispatch(ctx, rt, http.MethodGet, rt.tickerPath, NewParams().Add("symbol", symbol), false)
	if err != nil {
		return nil, err
	}
	var ticker schema.TickerPrice
	if err := json.Unmarshal(body, &ticker); err != nil {
		return nil, err
	}
	return &ticker, nil
}

// Tickers fetches the latest prices for all symbols of a market. Unsigned.
func (c *Client) Tickers(ctx context.Context, market schema.MarketType) ([]schema.TickerPrice, error) {
	rt, err := c.route(market)
	if err != nil {
		return nil, err
	}
	body, err := c.dispatch(ctx, rt, http.MethodGet, rt.tickerPath, NewParams(), false)
	if err != nil {
		return nil, err
	}
	var tickers []schema.TickerPrice
	if err := json.Unmarshal(body, &tickers); err != nil {
		return nil, err
	}
	return tickers, nil
}

// Trades fetches account trades for a symbol, capped by limit. The payload
// shape differs per market: []schema.Trade or []schema.FuturesTrade.
func (c *Client) Trades(ctx context.Context, market schema.MarketType, symbol string, limit int) (interface{}, error) {
	rt, err := c.route(market)
	if err != nil {
		return nil, err
	}
	params := NewParams().
		Add("symbol", symbol).
		Add("limit", strconv.Itoa(limit))
	body, err := c.dispatch(ctx, rt, http.MethodGet, rt.tradesPath, params, true)
	if err != nil {
		return nil, err
	}
	return rt.decodeTrades(body)
}
