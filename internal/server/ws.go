package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ShouterLab/binance-api-svr/pkg/response"
)

const (
	priceStreamInterval = 2 * time.Second
	wsWriteTimeout      = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS handled by the outer handler
		return true
	},
}

// handlePriceStream upgrades the connection and pushes the ticker envelope
// for one symbol on a fixed interval until the peer disconnects.
func (s *Server) handlePriceStream(w http.ResponseWriter, r *http.Request) {
	market, ok := marketParam(w, r)
	if !ok {
		return
	}
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		response.WriteError(w, response.CodeSymbolRequired)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Errorf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The read loop only notices the peer going away.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(priceStreamInterval)
	defer ticker.Stop()

	for {
		var env response.Envelope
		price, err := s.client.Ticker(ctx, market, symbol)
		if err != nil {
			env = response.InternalError(err)
		} else {
			env = response.Success(price, market)
		}
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(env); err != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
