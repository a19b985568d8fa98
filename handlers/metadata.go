package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"dishdash/httputil"
)

// CuisinesHandler returns the full cuisine enumeration with display labels.
func CuisinesHandler(svc RestaurantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondJSON(w, http.StatusOK, svc.AllCuisines())
	}
}

// CurrenciesHandler lists the codes accepted in currencyUsed.
func CurrenciesHandler(svc RestaurantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondJSON(w, http.StatusOK, svc.AllCurrencies())
	}
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}

// HealthHandler reports liveness only.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Timestamp: time.Now().UTC()})
	}
}

// ReadyHandler answers 503 while the store cannot be reached.
func ReadyHandler(svc RestaurantService, logger *slog.Logger) http.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := svc.Ready(ctx); err != nil {
			logger.Warn("readiness check failed", slog.Any("error", err))
			httputil.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:    "not_ready",
				Timestamp: time.Now().UTC(),
				Reason:    "store unavailable",
			})
			return
		}
		httputil.RespondJSON(w, http.StatusOK, HealthResponse{Status: "ready", Timestamp: time.Now().UTC()})
	}
}
