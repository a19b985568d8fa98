// Package service holds the restaurant use cases: validation, mapping,
// filtering and sorting on top of a RestaurantStore.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "dishdash/errors"
	"dishdash/events"
	"dishdash/models"
	"dishdash/store"
)

const resourceName = "Restaurant"

// publishTimeout caps the event write that follows a successful change.
const publishTimeout = 5 * time.Second

// ListParams carries the optional listing filters exactly as received. A nil
// field means the parameter was absent.
type ListParams struct {
	Cuisine *string
	SortBy  *string
	Search  *string
}

type RestaurantService struct {
	store     store.RestaurantStore
	publisher events.Publisher
	logger    *slog.Logger
}

func NewRestaurantService(s store.RestaurantStore, p events.Publisher, logger *slog.Logger) *RestaurantService {
	if p == nil {
		p = events.NopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RestaurantService{store: s, publisher: p, logger: logger.With("component", "restaurant_service")}
}

// Add creates a restaurant. The website pre-check reports the conflict with a
// readable message; the store's unique index catches creates that race past it.
func (s *RestaurantService) Add(ctx context.Context, req models.RestaurantRequest) (models.RestaurantResponse, error) {
	if err := req.Validate(); err != nil {
		return models.RestaurantResponse{}, apperrors.Wrap(apperrors.ErrCodeBadRequest, err.Error(), err)
	}

	if req.Website != "" {
		_, err := s.store.FindByWebsite(ctx, req.Website)
		switch {
		case err == nil:
			return models.RestaurantResponse{}, apperrors.AlreadyExists(resourceName, "website", req.Website)
		case !errors.Is(err, store.ErrNotFound):
			return models.RestaurantResponse{}, fmt.Errorf("check website %q: %w", req.Website, err)
		}
	}

	saved, err := s.store.Save(ctx, models.RestaurantFromRequest(req))
	if errors.Is(err, store.ErrDuplicateWebsite) {
		return models.RestaurantResponse{}, apperrors.AlreadyExists(resourceName, "website", req.Website)
	}
	if err != nil {
		return models.RestaurantResponse{}, fmt.Errorf("save restaurant: %w", err)
	}

	resp := models.ResponseFromRestaurant(saved)
	s.logger.Info("restaurant created", slog.Int64("id", saved.ID), slog.String("name", saved.Name))
	s.publish(ctx, events.ActionCreated, resp)
	return resp, nil
}

func (s *RestaurantService) Get(ctx context.Context, id int64) (models.RestaurantResponse, error) {
	r, err := s.find(ctx, id)
	if err != nil {
		return models.RestaurantResponse{}, err
	}
	return models.ResponseFromRestaurant(r), nil
}

// Delete removes a restaurant and returns the record as it was before removal.
func (s *RestaurantService) Delete(ctx context.Context, id int64) (models.RestaurantResponse, error) {
	r, err := s.find(ctx, id)
	if err != nil {
		return models.RestaurantResponse{}, err
	}

	err = s.store.DeleteByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.RestaurantResponse{}, apperrors.NotFound(resourceName, "id", id)
	}
	if err != nil {
		return models.RestaurantResponse{}, fmt.Errorf("delete restaurant %d: %w", id, err)
	}

	resp := models.ResponseFromRestaurant(r)
	s.logger.Info("restaurant deleted", slog.Int64("id", id))
	s.publish(ctx, events.ActionDeleted, resp)
	return resp, nil
}

// Update overwrites every mutable field of the stored restaurant. The id
// always comes from the lookup key, never from the request.
func (s *RestaurantService) Update(ctx context.Context, id int64, req models.RestaurantRequest) (models.RestaurantResponse, error) {
	r, err := s.find(ctx, id)
	if err != nil {
		return models.RestaurantResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return models.RestaurantResponse{}, apperrors.Wrap(apperrors.ErrCodeBadRequest, err.Error(), err)
	}

	r.ApplyRequest(req)
	saved, err := s.store.Save(ctx, r)
	switch {
	case errors.Is(err, store.ErrDuplicateWebsite):
		return models.RestaurantResponse{}, apperrors.AlreadyExists(resourceName, "website", req.Website)
	case errors.Is(err, store.ErrNotFound):
		return models.RestaurantResponse{}, apperrors.NotFound(resourceName, "id", id)
	case err != nil:
		return models.RestaurantResponse{}, fmt.Errorf("update restaurant %d: %w", id, err)
	}

	resp := models.ResponseFromRestaurant(saved)
	s.logger.Info("restaurant updated", slog.Int64("id", id))
	s.publish(ctx, events.ActionUpdated, resp)
	return resp, nil
}

// List filters by cuisine and name substring, then applies the requested
// ordering. Unparseable cuisine or sort values are rejected, not ignored.
func (s *RestaurantService) List(ctx context.Context, p ListParams) ([]models.RestaurantResponse, error) {
	var cuisine *models.Cuisine
	if p.Cuisine != nil {
		c, err := models.ParseCuisine(*p.Cuisine)
		if err != nil {
			return nil, apperrors.InvalidParam("Cuisine", *p.Cuisine)
		}
		cuisine = &c
	}

	var search *string
	if p.Search != nil {
		trimmed := strings.TrimSpace(*p.Search)
		search = &trimmed
	}

	var sortKey models.SortKey
	if p.SortBy != nil {
		k, err := models.ParseSortKey(*p.SortBy)
		if err != nil {
			return nil, apperrors.InvalidParam("sortBy", *p.SortBy)
		}
		sortKey = k
	}

	list, err := s.store.FindRestaurants(ctx, cuisine, search)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	if sortKey != "" {
		slices.SortStableFunc(list, sortKey.Compare)
	}
	return models.ResponsesFromRestaurants(list), nil
}

// AllCuisines returns the compiled-in cuisine enumeration.
func (s *RestaurantService) AllCuisines() []models.CuisineInfo {
	return models.Cuisines()
}

// AllCurrencies returns the supported currency codes.
func (s *RestaurantService) AllCurrencies() []models.Currency {
	return models.Currencies()
}

// Ready reports whether the backing store is reachable.
func (s *RestaurantService) Ready(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *RestaurantService) find(ctx context.Context, id int64) (models.Restaurant, error) {
	r, err := s.store.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Restaurant{}, apperrors.NotFound(resourceName, "id", id)
	}
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("find restaurant %d: %w", id, err)
	}
	return r, nil
}

// publish never fails the caller; a lost event is logged. The write outlives
// the request context so a client hanging up after the change is committed
// does not drop its event.
func (s *RestaurantService) publish(ctx context.Context, action string, resp models.RestaurantResponse) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	evt := events.NewEvent(events.EntityRestaurant, action, strconv.FormatInt(resp.ID, 10), resp)
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("failed to publish restaurant event",
			slog.String("action", action),
			slog.Int64("id", resp.ID),
			slog.Any("error", err))
	}
}
