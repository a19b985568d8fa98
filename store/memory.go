package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"dishdash/models"
)

// Memory is an in-process RestaurantStore with the same semantics as Postgres.
// Data does not survive a restart.
type Memory struct {
	mu     sync.RWMutex
	rows   map[int64]models.Restaurant
	nextID int64
}

func NewMemory() *Memory {
	return &Memory{rows: map[int64]models.Restaurant{}}
}

func (m *Memory) FindByID(_ context.Context, id int64) (models.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.rows[id]
	if !ok {
		return models.Restaurant{}, ErrNotFound
	}
	return r, nil
}

func (m *Memory) FindByWebsite(_ context.Context, website string) (models.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.ordered() {
		if r.Website == website {
			return r, nil
		}
	}
	return models.Restaurant{}, ErrNotFound
}

func (m *Memory) FindRestaurants(_ context.Context, cuisine *models.Cuisine, search *string) ([]models.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var needle string
	if search != nil {
		needle = strings.ToLower(*search)
	}

	results := []models.Restaurant{}
	for _, r := range m.ordered() {
		if cuisine != nil && r.Cuisine != *cuisine {
			continue
		}
		if search != nil && !strings.Contains(strings.ToLower(r.Name), needle) {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

func (m *Memory) Save(_ context.Context, r models.Restaurant) (models.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r.ID != 0 {
		if _, ok := m.rows[r.ID]; !ok {
			return models.Restaurant{}, ErrNotFound
		}
	}
	if r.Website != "" {
		for id, existing := range m.rows {
			if id != r.ID && existing.Website == r.Website {
				return models.Restaurant{}, ErrDuplicateWebsite
			}
		}
	}
	if r.ID == 0 {
		m.nextID++
		r.ID = m.nextID
	}
	m.rows[r.ID] = r
	return r, nil
}

func (m *Memory) DeleteByID(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *Memory) CountByCuisine(_ context.Context) (map[models.Cuisine]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := map[models.Cuisine]int{}
	for _, r := range m.rows {
		counts[r.Cuisine]++
	}
	return counts, nil
}

func (m *Memory) Ping(context.Context) error {
	return nil
}

// ordered returns rows by ascending id. Callers hold the lock.
func (m *Memory) ordered() []models.Restaurant {
	out := make([]models.Restaurant, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b models.Restaurant) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
