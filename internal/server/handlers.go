package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ShouterLab/binance-api-svr/pkg/response"
	"github.com/ShouterLab/binance-api-svr/pkg/schema"
)

const (
	defaultTradeLimit = 500
	maxTradeLimit     = 1000
)

// marketParam extracts the market query parameter, defaulting to spot.
// Writes the error envelope and reports false when the tag is invalid.
func marketParam(w http.ResponseWriter, r *http.Request) (schema.MarketType, bool) {
	market := schema.MarketType(r.URL.Query().Get("market"))
	if market == "" {
		market = schema.SPOT
	}
	if !market.Valid() {
		response.WriteError(w, response.CodeInvalidMarketType)
		return "", false
	}
	return market, true
}

// internalError collapses every facade failure (upstream rejection, network
// failure) into the generic internal-error envelope.
func (s *Server) internalError(w http.ResponseWriter, route string, err error) {
	s.log.WithField("route", route).Errorf("request failed: %v", err)
	response.WriteInternalError(w, err)
}

func (s *Server) handleAccount(w http.ResponseWriter, r *http.Request) {
	market, ok := marketParam(w, r)
	if !ok {
		return
	}
	account, err := s.client.Account(r.Context(), market)
	if err != nil {
		s.internalError(w, "account", err)
		return
	}
	response.WriteSuccess(w, account, market)
}

func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request) {
	market, ok := marketParam(w, r)
	if !ok {
		return
	}
	balances, err := s.client.Balances(r.Context(), market)
	if err != nil {
		s.internalError(w, "balances", err)
		return
	}
	response.WriteSuccess(w, balances, market)
}

func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	positions, err := s.client.Positions(r.Context())
	if err != nil {
		s.internalError(w, "positions", err)
		return
	}
	response.WriteSuccess(w, positions, schema.FUTURES)
}

func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	market, ok := marketParam(w, r)
	if !ok {
		return
	}
	symbol := r.URL.Query().Get("symbol")
	if symbol != "" {
		ticker, err := s.client.Ticker(r.Context(), market, symbol)
		if err != nil {
			s.internalError(w, "prices", err)
			return
		}
		response.WriteSuccess(w, ticker, market)
		return
	}
	tickers, err := s.client.Tickers(r.Context(), market)
	if err != nil {
		s.internalError(w, "prices", err)
		return
	}
	response.WriteSuccess(w, tickers, market)
}

func (s *Server) handleTrades(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		response.WriteError(w, response.CodeSymbolRequired)
		return
	}
	market, ok := marketParam(w, r)
	if !ok {
		return
	}
	limit := defaultTradeLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		n, err := strconv.Atoi(limitParam)
		if err != nil {
			response.WriteErrorMsg(w, response.CodeMissingParams, "limit must be an integer")
			return
		}
		limit = n
	}
	if limit > maxTradeLimit {
		response.WriteError(w, response.CodeLimitExceeded)
		return
	}
	trades, err := s.client.Trades(r.Context(), market, symbol, limit)
	if err != nil {
		s.internalError(w, "trades", err)
		return
	}
	response.WriteSuccess(w, trades, market)
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	market, ok := marketParam(w, r)
	if !ok {
		return
	}
	var req schema.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteErrorMsg(w, response.CodeMissingParams, "invalid JSON body")
		return
	}
	if req.Symbol == "" || req.Side == "" || req.Type == "" || req.Quantity == "" {
		response.WriteErrorMsg(w, response.CodeMissingParams,
			"Missing required parameters: symbol, side, type, quantity")
		return
	}
	if req.Type == schema.OrderTypeLimit && req.Price == "" {
		response.WriteError(w, response.CodePriceRequired)
		return
	}
	if req.Side != schema.OrderSideBuy && req.Side != schema.OrderSideSell {
		response.WriteError(w, response.CodeInvalidSide)
		return
	}
	if req.Type != schema.OrderTypeLimit && req.Type != schema.OrderTypeMarket {
		response.WriteError(w, response.CodeInvalidOrderType)
		return
	}
	order, err := s.client.CreateOrder(r.Context(), market, &req)
	if err != nil {
		s.internalError(w, "order", err)
		return
	}
	response.WriteSuccess(w, order, market)
}
