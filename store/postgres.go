package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"dishdash/models"
)

const uniqueViolation = "23505"

const selectColumns = `id, name, COALESCE(cuisine, ''), COALESCE(address, ''), rating, contact_number,
	COALESCE(website, ''), average_delivery_time_in_minutes, delivery_fee, minimum_order_amount,
	COALESCE(currency_used, '')`

// Postgres stores restaurants in the restaurants table created by database.Migrate.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (models.Restaurant, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM restaurants WHERE id = $1", id)
	return scanRestaurant(row)
}

func (s *Postgres) FindByWebsite(ctx context.Context, website string) (models.Restaurant, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM restaurants WHERE website = $1 LIMIT 1", website)
	return scanRestaurant(row)
}

// BuildListQuery generates the listing query and its arguments for the given filters.
func BuildListQuery(cuisine *models.Cuisine, search *string) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if cuisine != nil {
		conditions = append(conditions, fmt.Sprintf("cuisine = $%d", idx))
		args = append(args, string(*cuisine))
		idx++
	}
	if search != nil {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", idx))
		args = append(args, "%"+escapeLike(*search)+"%")
		idx++
	}

	query := "SELECT " + selectColumns + " FROM restaurants"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	return query + " ORDER BY id ASC", args
}

func (s *Postgres) FindRestaurants(ctx context.Context, cuisine *models.Cuisine, search *string) ([]models.Restaurant, error) {
	query, args := BuildListQuery(cuisine, search)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	results := []models.Restaurant{}
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return results, nil
}

func (s *Postgres) Save(ctx context.Context, r models.Restaurant) (models.Restaurant, error) {
	args := []any{
		r.Name,
		nullIfEmpty(string(r.Cuisine)),
		nullIfEmpty(r.Address),
		r.Rating,
		r.ContactNumber,
		nullIfEmpty(r.Website),
		r.AverageDeliveryTimeInMinutes,
		r.DeliveryFee,
		r.MinimumOrderAmount,
		nullIfEmpty(string(r.CurrencyUsed)),
	}

	if r.ID == 0 {
		err := s.db.QueryRowContext(ctx, `
			INSERT INTO restaurants (name, cuisine, address, rating, contact_number, website,
				average_delivery_time_in_minutes, delivery_fee, minimum_order_amount, currency_used)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`, args...).Scan(&r.ID)
		if err != nil {
			return models.Restaurant{}, translate("insert restaurant", err)
		}
		return r, nil
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE restaurants
		SET name = $1, cuisine = $2, address = $3, rating = $4, contact_number = $5, website = $6,
			average_delivery_time_in_minutes = $7, delivery_fee = $8, minimum_order_amount = $9, currency_used = $10
		WHERE id = $11
	`, append(args, r.ID)...)
	if err != nil {
		return models.Restaurant{}, translate("update restaurant", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Restaurant{}, ErrNotFound
	}
	return r, nil
}

func (s *Postgres) DeleteByID(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) CountByCuisine(ctx context.Context) (map[models.Cuisine]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT COALESCE(cuisine, ''), COUNT(*) FROM restaurants GROUP BY 1")
	if err != nil {
		return nil, fmt.Errorf("count restaurants: %w", err)
	}
	defer rows.Close()

	counts := map[models.Cuisine]int{}
	for rows.Next() {
		var cuisine string
		var n int
		if err := rows.Scan(&cuisine, &n); err != nil {
			return nil, fmt.Errorf("count restaurants: %w", err)
		}
		counts[models.Cuisine(cuisine)] = n
	}
	return counts, rows.Err()
}

func (s *Postgres) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row scanner) (models.Restaurant, error) {
	var r models.Restaurant
	var cuisine, currency string
	err := row.Scan(&r.ID, &r.Name, &cuisine, &r.Address, &r.Rating, &r.ContactNumber,
		&r.Website, &r.AverageDeliveryTimeInMinutes, &r.DeliveryFee, &r.MinimumOrderAmount, &currency)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Restaurant{}, ErrNotFound
	}
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("scan restaurant: %w", err)
	}
	r.Cuisine = models.Cuisine(cuisine)
	r.CurrencyUsed = models.Currency(currency)
	return r, nil
}

func translate(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateWebsite
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// escapeLike neutralizes LIKE wildcards so search matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
