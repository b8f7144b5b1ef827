package binance

import (
	"context"
	"net/http"

	"github.com/ShouterLab/binance-api-svr/pkg/schema"
)

// CreateOrder places a signed order. LIMIT orders without a price fail with a
// ValidationError before any network call. Upstream defaults applied here:
// timeInForce GTC for LIMIT orders, positionSide BOTH for futures. The
// returned payload is *schema.OrderResponse or *schema.FuturesOrderResponse.
func (c *Client) CreateOrder(ctx context.Context, market schema.MarketType, req *schema.OrderRequest) (interface{}, error) {
	rt, err := c.route(market)
	if err != nil {
		return nil, err
	}
	if req.Type == schema.OrderTypeLimit && req.Price == "" {
		return nil, errPriceRequired
	}

	timeInForce := req.TimeInForce
	if req.Type == schema.OrderTypeLimit && timeInForce == "" {
		timeInForce = "GTC"
	}

	params := NewParams().
		Add("symbol", req.Symbol).
		Add("side", string(req.Side)).
		Add("type", string(req.Type)).
		Add("quantity", req.Quantity)
	if req.Price != "" {
		params.Add("price", req.Price)
	}
	if timeInForce != "" {
		params.Add("timeInForce", timeInForce)
	}

	if market == schema.FUTURES {
		positionSide := req.PositionSide
		if positionSide == "" {
			positionSide = schema.PositionSideBoth
		}
		params.Add("positionSide", string(positionSide))
		if req.ReduceOnly {
			params.Add("reduceOnly", "true")
		}
		if req.NewClientOrderID != "" {
			params.Add("newClientOrderId", req.NewClientOrderID)
		}
		if req.StopPrice != "" {
			params.Add("stopPrice", req.StopPrice)
		}
		if req.ClosePosition {
			params.Add("closePosition", "true")
		}
		if req.ActivationPrice != "" {
			params.Add("activationPrice", req.ActivationPrice)
		}
		if req.CallbackRate != "" {
			params.Add("callbackRate", req.CallbackRate)
		}
		if req.WorkingType != "" {
			params.Add("workingType", req.WorkingType)
		}
		if req.PriceProtect {
			params.Add("priceProtect", "true")
		}
	}

	body, err := c.dispatch(ctx, rt, http.MethodPost, rt.orderPath, params, true)
	if err != nil {
		return nil, err
	}
	return rt.decodeOrder(body)
}
