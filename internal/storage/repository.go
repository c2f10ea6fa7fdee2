package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seaward-io/seaward/internal/geo"
	"github.com/seaward-io/seaward/internal/harbor"
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository provides database access for harbor reference data.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// ListHarbors returns every harbor, ordered by ID.
func (r *Repository) ListHarbors(ctx context.Context) ([]harbor.Harbor, error) {
	const q = `
		SELECT id, name, country, lat, lon, category
		FROM harbors
		ORDER BY id
	`

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying harbors: %w", err)
	}
	defer rows.Close()

	var harbors []harbor.Harbor
	for rows.Next() {
		var (
			h        harbor.Harbor
			lat, lon float64
			category string
		)
		if err := rows.Scan(&h.ID, &h.Name, &h.Country, &lat, &lon, &category); err != nil {
			return nil, fmt.Errorf("scanning harbor row: %w", err)
		}
		h.Position = geo.Coordinate{Lat: lat, Lon: lon}
		h.Category = harbor.Category(category)
		harbors = append(harbors, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating harbor rows: %w", err)
	}
	return harbors, nil
}

// GetHarbor returns one harbor by ID, or harbor.ErrNotFound.
func (r *Repository) GetHarbor(ctx context.Context, id string) (harbor.Harbor, error) {
	const q = `
		SELECT id, name, country, lat, lon, category
		FROM harbors
		WHERE id = $1
	`

	var (
		h        harbor.Harbor
		lat, lon float64
		category string
	)
	err := r.q.QueryRow(ctx, q, id).Scan(&h.ID, &h.Name, &h.Country, &lat, &lon, &category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return harbor.Harbor{}, harbor.ErrNotFound
		}
		return harbor.Harbor{}, fmt.Errorf("querying harbor %s: %w", id, err)
	}
	h.Position = geo.Coordinate{Lat: lat, Lon: lon}
	h.Category = harbor.Category(category)
	return h, nil
}

// UpsertHarbor inserts or updates one harbor record.
func (r *Repository) UpsertHarbor(ctx context.Context, h harbor.Harbor) error {
	const q = `
		INSERT INTO harbors (id, name, country, lat, lon, category, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (id) DO UPDATE
		SET name       = EXCLUDED.name,
		    country    = EXCLUDED.country,
		    lat        = EXCLUDED.lat,
		    lon        = EXCLUDED.lon,
		    category   = EXCLUDED.category,
		    updated_at = EXCLUDED.updated_at
	`

	if _, err := r.q.Exec(ctx, q, h.ID, h.Name, h.Country, h.Position.Lat, h.Position.Lon, string(h.Category)); err != nil {
		return fmt.Errorf("upserting harbor %s: %w", h.ID, err)
	}
	return nil
}

// SeedIfEmpty inserts the given harbors when the table has no rows yet.
// Returns how many rows were inserted.
func (r *Repository) SeedIfEmpty(ctx context.Context, harbors []harbor.Harbor) (int, error) {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM harbors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting harbors: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, h := range harbors {
		if err := r.UpsertHarbor(ctx, h); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
