// Package handlers translates HTTP requests into restaurant service calls.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	apperrors "dishdash/errors"
	"dishdash/httputil"
	"dishdash/models"
	"dishdash/service"
)

const maxBodyBytes = 1 << 20

// RestaurantService is the set of use cases the handlers expose.
type RestaurantService interface {
	Add(ctx context.Context, req models.RestaurantRequest) (models.RestaurantResponse, error)
	Get(ctx context.Context, id int64) (models.RestaurantResponse, error)
	Update(ctx context.Context, id int64, req models.RestaurantRequest) (models.RestaurantResponse, error)
	Delete(ctx context.Context, id int64) (models.RestaurantResponse, error)
	List(ctx context.Context, p service.ListParams) ([]models.RestaurantResponse, error)
	AllCuisines() []models.CuisineInfo
	AllCurrencies() []models.Currency
	Ready(ctx context.Context) error
}

// RegisterRoutes mounts the restaurant API under /api/restaurants. Unknown
// paths and unsupported methods below /api/ answer with the JSON error body.
func RegisterRoutes(mux *http.ServeMux, svc RestaurantService) {
	mux.HandleFunc("POST /api/restaurants", AddRestaurantHandler(svc))
	mux.HandleFunc("GET /api/restaurants", ListRestaurantsHandler(svc))
	mux.HandleFunc("GET /api/restaurants/cuisines", CuisinesHandler(svc))
	mux.HandleFunc("GET /api/restaurants/currencies", CurrenciesHandler(svc))
	mux.HandleFunc("GET /api/restaurants/{id}", GetRestaurantHandler(svc))
	mux.HandleFunc("PUT /api/restaurants/{id}", UpdateRestaurantHandler(svc))
	mux.HandleFunc("DELETE /api/restaurants/{id}", DeleteRestaurantHandler(svc))

	// Method-less patterns lose to the ones above, so they only see other verbs.
	mux.HandleFunc("/api/restaurants", methodNotAllowed(http.MethodGet, http.MethodPost))
	mux.HandleFunc("/api/restaurants/{id}", methodNotAllowed(http.MethodGet, http.MethodPut, http.MethodDelete))
	mux.HandleFunc("/api/", notFound)
}

func methodNotAllowed(allowed ...string) http.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		httputil.WriteErrorCode(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			fmt.Sprintf("method %s is not supported for %s", r.Method, r.URL.Path))
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	httputil.WriteErrorCode(w, r, http.StatusNotFound, apperrors.ErrCodeNotFound,
		fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path))
}

// pathID parses the {id} wildcard as a positive integer.
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.InvalidParam("id", raw)
	}
	return id, nil
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (models.RestaurantRequest, error) {
	var req models.RestaurantRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, apperrors.New(apperrors.ErrCodeBadRequest, "request body is required")
		}
		return req, apperrors.Wrap(apperrors.ErrCodeBadRequest, fmt.Sprintf("malformed request body: %v", err), err)
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return req, apperrors.New(apperrors.ErrCodeBadRequest, "malformed request body: unexpected data after JSON object")
	}
	return req, nil
}
