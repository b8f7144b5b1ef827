package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/ShouterLab/binance-api-svr/internal/exchange/binance"
	"github.com/ShouterLab/binance-api-svr/pkg/logger"
)

// Server exposes the gateway REST API and the price stream.
type Server struct {
	client *binance.Client
	router *mux.Router
	log    *logrus.Entry
}

// NewServer wires the routes around a Binance client.
func NewServer(client *binance.Client) *Server {
	s := &Server{
		client: client,
		router: mux.NewRouter(),
		log:    logger.WithComponent("server"),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/account", s.handleAccount).Methods("GET")
	api.HandleFunc("/balances", s.handleBalances).Methods("GET")
	api.HandleFunc("/positions", s.handlePositions).Methods("GET")
	api.HandleFunc("/prices", s.handlePrices).Methods("GET")
	api.HandleFunc("/trades", s.handleTrades).Methods("GET")
	api.HandleFunc("/order", s.handleOrder).Methods("POST")

	s.router.HandleFunc("/ws/prices", s.handlePriceStream)
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// Handler returns the router wrapped with CORS.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler(s.router)
}

// Start serves the API on addr, blocking until the listener fails.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Infof("gateway listening on %s", addr)
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
