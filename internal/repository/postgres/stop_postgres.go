package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"citycast/internal/model"
	"citycast/internal/repository"
)

const stopColumns = `stop_id, stop_city, tour_type, stop_name, stop_description, lat, lng,
	created_at, last_updated,
	enrichment_name, kinds, rate, xid, wikidata, wikipedia, url, image, preview, extract, enriched_at`

// StopPostgres is a PostgreSQL implementation of repository.StopRepository.
type StopPostgres struct {
	db *sql.DB
}

// NewStopPostgres creates a new StopPostgres repository.
func NewStopPostgres(db *sql.DB) *StopPostgres {
	return &StopPostgres{db: db}
}

var _ repository.StopRepository = (*StopPostgres)(nil)

// Create inserts a stop. The (city, name) unique key turns a second insert
// into repository.ErrDuplicate.
func (r *StopPostgres) Create(ctx context.Context, stop *model.Stop) (*model.Stop, error) {
	const q = `
		INSERT INTO city_stops (stop_id, stop_city, tour_type, stop_name, stop_description, lat, lng, created_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (stop_city, stop_name) DO NOTHING
		RETURNING ` + stopColumns
	row := r.db.QueryRowContext(ctx, q,
		stop.ID,
		stop.City,
		stop.TourType,
		stop.Name,
		stop.Description,
		stop.Lat,
		stop.Lng,
		stop.CreatedAt,
		stop.LastUpdated,
	)
	out, err := scanStop(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrDuplicate
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindByNameAndCity fetches a stop by its natural key.
func (r *StopPostgres) FindByNameAndCity(ctx context.Context, name, city string) (*model.Stop, error) {
	const q = `SELECT ` + stopColumns + `
		FROM city_stops
		WHERE stop_city = $1 AND stop_name = $2`
	s, err := scanStop(r.db.QueryRowContext(ctx, q, city, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return s, err
}

// ListByCity returns the stops of a city. An empty tourType matches all.
func (r *StopPostgres) ListByCity(ctx context.Context, city, tourType string) ([]model.Stop, error) {
	const q = `SELECT ` + stopColumns + `
		FROM city_stops
		WHERE stop_city = $1 AND ($2 = '' OR tour_type = $2)
		ORDER BY created_at, stop_name`
	rows, err := r.db.QueryContext(ctx, q, city, tourType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Stop, 0)
	for rows.Next() {
		s, err := scanStop(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListCities returns every city with at least one stop, alphabetically.
func (r *StopPostgres) ListCities(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT stop_city FROM city_stops ORDER BY stop_city`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

// GetEnrichment reads the enrichment columns of one stop.
func (r *StopPostgres) GetEnrichment(ctx context.Context, stopID, city string) (*model.Enrichment, error) {
	const q = `SELECT ` + stopColumns + `
		FROM city_stops
		WHERE stop_id = $1 AND stop_city = $2`
	s, err := scanStop(r.db.QueryRowContext(ctx, q, stopID, city))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if s.Enrichment == nil {
		return nil, repository.ErrNotFound
	}
	return s.Enrichment, nil
}

// SaveEnrichment overwrites the enrichment columns of an existing stop.
func (r *StopPostgres) SaveEnrichment(ctx context.Context, stopID, city string, e *model.Enrichment) error {
	kinds, err := json.Marshal(nonNilKinds(e.Kinds))
	if err != nil {
		return fmt.Errorf("encode kinds: %w", err)
	}
	preview, err := jsonOrNil(e.Preview)
	if err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	extract, err := jsonOrNil(e.Extract)
	if err != nil {
		return fmt.Errorf("encode extract: %w", err)
	}
	at := time.Now().UTC()
	if e.EnrichedAt != nil {
		at = e.EnrichedAt.UTC()
	}

	const q = `
		UPDATE city_stops SET
			enrichment_name = $3,
			kinds           = $4,
			rate            = $5,
			xid             = $6,
			wikidata        = $7,
			wikipedia       = $8,
			url             = $9,
			image           = $10,
			preview         = $11,
			extract         = $12,
			enriched_at     = $13,
			last_updated    = $13
		WHERE stop_id = $1 AND stop_city = $2`
	res, err := r.db.ExecContext(ctx, q,
		stopID,
		city,
		nullString(e.Name),
		string(kinds),
		e.Rate,
		nullString(e.XID),
		nullString(e.Wikidata),
		nullString(e.Wikipedia),
		nullString(e.URL),
		nullString(e.Image),
		preview,
		extract,
		at,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStop(row rowScanner) (*model.Stop, error) {
	var (
		s          model.Stop
		name       sql.NullString
		kinds      []byte
		rate       sql.NullInt64
		xid        sql.NullString
		wikidata   sql.NullString
		wikipedia  sql.NullString
		url        sql.NullString
		image      sql.NullString
		preview    []byte
		extract    []byte
		enrichedAt sql.NullTime
	)
	if err := row.Scan(
		&s.ID,
		&s.City,
		&s.TourType,
		&s.Name,
		&s.Description,
		&s.Lat,
		&s.Lng,
		&s.CreatedAt,
		&s.LastUpdated,
		&name,
		&kinds,
		&rate,
		&xid,
		&wikidata,
		&wikipedia,
		&url,
		&image,
		&preview,
		&extract,
		&enrichedAt,
	); err != nil {
		return nil, err
	}
	if !enrichedAt.Valid {
		return &s, nil
	}

	e := &model.Enrichment{
		Name:      name.String,
		Kinds:     []string{},
		Rate:      int(rate.Int64),
		XID:       xid.String,
		Wikidata:  wikidata.String,
		Wikipedia: wikipedia.String,
		URL:       url.String,
		Image:     image.String,
	}
	at := enrichedAt.Time
	e.EnrichedAt = &at
	if len(kinds) > 0 {
		if err := json.Unmarshal(kinds, &e.Kinds); err != nil {
			return nil, fmt.Errorf("decode kinds of stop %s: %w", s.ID, err)
		}
	}
	if len(preview) > 0 {
		if err := json.Unmarshal(preview, &e.Preview); err != nil {
			return nil, fmt.Errorf("decode preview of stop %s: %w", s.ID, err)
		}
	}
	if len(extract) > 0 {
		if err := json.Unmarshal(extract, &e.Extract); err != nil {
			return nil, fmt.Errorf("decode extract of stop %s: %w", s.ID, err)
		}
	}
	s.Enrichment = e
	return &s, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func jsonOrNil[T any](v *T) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func nonNilKinds(k []string) []string {
	if k == nil {
		return []string{}
	}
	return k
}
