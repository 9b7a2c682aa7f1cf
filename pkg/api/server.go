package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const (
	historyRoute = "/v2/accounts/{account_id}/history"
	detailsRoute = "/v2/accounts/{account_id}/events/{event_id}/actions/{index:[0-9]+}"
)

// NewRouter registers the activity routes of the handler.
func NewRouter(log *zap.Logger, handler *Handler) http.Handler {
	router := mux.NewRouter()
	router.HandleFunc(historyRoute, handler.GetAccountHistory).Methods(http.MethodGet).Name("GetAccountHistory")
	router.HandleFunc(detailsRoute, handler.GetActionDetails).Methods(http.MethodGet).Name("GetActionDetails")
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet).Name("Health")
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, NotFound("route not found"))
	})
	router.Use(metricsMiddleware, loggingMiddleware(log))
	return cors.Default().Handler(router)
}

func NewServer(log *zap.Logger, handler *Handler, address string) *http.Server {
	return &http.Server{
		Addr:              address,
		Handler:           NewRouter(log, handler),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
