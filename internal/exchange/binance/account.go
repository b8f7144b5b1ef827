package binance

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ShouterLab/binance-api-svr/pkg/schema"
)

// Account fetches the signed account snapshot for a market. The payload
// shape differs per market: *schema.SpotAccount or *schema.FuturesAccount.
func (c *Client) Account(ctx context.Context, market schema.MarketType) (interface{}, error) {
	rt, err := c.route(market)
	if err != nil {
		return nil, err
	}
	body, err := c.dispatch(ctx, rt, http.MethodGet, rt.accountPath, NewParams(), true)
	if err != nil {
		return nil, err
	}
	return rt.decodeAccount(body)
}

// Balances fetches the account snapshot and keeps only funded entries: spot
// balances with free or locked > 0, futures assets with walletBalance > 0.
// Returns []schema.Balance or []schema.FuturesAsset.
func (c *Client) Balances(ctx context.Context, market schema.MarketType) (interface{}, error) {
	rt, err := c.route(market)
	if err != nil {
		return nil, err
	}
	account, err := c.Account(ctx, market)
	if err != nil {
		return nil, err
	}
	return rt.filterFunded(account), nil
}

// Positions returns futures positions with a nonzero position amount.
func (c *Client) Positions(ctx context.Context) ([]schema.FuturesPosition, error) {
	account, err := c.Account(ctx, schema.FUTURES)
	if err != nil {
		return nil, err
	}
	return nonZeroPositions(account.(*schema.FuturesAccount).Positions), nil
}

func nonZeroBalances(balances []schema.Balance) []schema.Balance {
	out := make([]schema.Balance, 0, len(balances))
	for _, b := range balances {
		free, _ := decimal.NewFromString(b.Free)
		locked, _ := decimal.NewFromString(b.Locked)
		if free.IsPositive() || locked.IsPositive() {
			out = append(out, b)
		}
	}
	return out
}

func nonZeroAssets(assets []schema.FuturesAsset) []schema.FuturesAsset {
	out := make([]schema.FuturesAsset, 0, len(assets))
	for _, a := range assets {
		wallet, _ := decimal.NewFromString(a.WalletBalance)
		if wallet.IsPositive() {
			out = append(out, a)
		}
	}
	return out
}

func nonZeroPositions(positions []schema.FuturesPosition) []schema.FuturesPosition {
	out := make([]schema.FuturesPosition, 0, len(positions))
	for _, p := range positions {
		amt, _ := decimal.NewFromString(p.PositionAmt)
		if !amt.IsZero() {
			out = append(out, p)
		}
	}
	return out
}
