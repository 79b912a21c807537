package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/mmp/nft"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// CallerHeader carries the Mixin user id of the caller. Authenticating it is
// left to whatever sits in front of this server.
const CallerHeader = "X-Mixin-User"

type Server struct {
	ledger *nft.Ledger
	router chi.Router
}

func NewServer(ledger *nft.Ledger) *Server {
	s := &Server{ledger: ledger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/price", s.getPrice)
	r.Route("/series/{id}", func(r chi.Router) {
		r.Get("/", s.getSeries)
		r.Put("/metadata", s.putMetadata)
		r.Post("/mint", s.postMint)
	})
	r.Route("/items/{id}", func(r chi.Router) {
		r.Get("/", s.getItem)
		r.Get("/uri", s.getURI)
		r.Get("/owner", s.getOwner)
		r.Post("/transfer", s.postTransfer)
	})
	r.Get("/owners/{id}/balance", s.getBalance)
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe blocks until ctx is done or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		sc, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		hs.Shutdown(sc)
	}()
	logger.Printf("Server.ListenAndServe(%s)\n", addr)
	err := hs.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func render(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func renderError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, nft.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, nft.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, nft.ErrMetadataNotSet):
		status = http.StatusPreconditionFailed
	case errors.Is(err, nft.ErrSeriesExhausted):
		status = http.StatusConflict
	case errors.Is(err, nft.ErrInsufficientPayment):
		status = http.StatusPaymentRequired
	case errors.Is(err, nft.ErrInvalidSeries), errors.Is(err, nft.ErrInvalidIdentity), errors.Is(err, nft.ErrInvalidPayment), errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, nft.ErrItemNotFound):
		status = http.StatusNotFound
	default:
		logger.Printf("api error %v\n", err)
	}
	render(w, status, map[string]string{"error": err.Error()})
}
