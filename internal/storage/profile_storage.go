package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"nutriguide/internal/metrics"
	"nutriguide/internal/models"

	"go.uber.org/zap"
)

const profileColumns = "id, name, age, gender, height, weight, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

// Save appends p and returns the id SQLite assigned. p.ID is ignored; a zero
// CreatedAt is stamped with the current time.
func (s *Store) Save(ctx context.Context, p models.Profile) (int64, error) {
	defer metrics.TrackQuery("insert", "users")()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = models.StampNow()
	}

	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO users(name, age, gender, height, weight, created_at) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return 0, s.fail("insert", fmt.Errorf("storage.Save(): prepare: %w", classify(err)))
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, p.Name, p.Age, string(p.Gender), p.HeightCM, p.WeightKG,
		p.CreatedAt.UTC().Format(models.TimestampLayout))
	if err != nil {
		return 0, s.fail("insert", fmt.Errorf("storage.Save(): insert: %w", classify(err)))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, s.fail("insert", fmt.Errorf("storage.Save(): last insert id: %w", err))
	}
	metrics.ProfilesStored.Inc()
	s.logger.Debug("profile saved", zap.Int64("id", id))
	return id, nil
}

// Get returns the profile with the given id or ErrProfileNotFound.
func (s *Store) Get(ctx context.Context, id int64) (models.Profile, error) {
	defer metrics.TrackQuery("select", "users")()

	row := s.db.QueryRowContext(ctx, "SELECT "+profileColumns+" FROM users WHERE id = ?", id)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		return models.Profile{}, s.fail("select", fmt.Errorf("storage.Get(%d): %w", id, classify(err)))
	}
	return p, nil
}

// Latest returns the most recent submission or ErrProfileNotFound on an empty table.
func (s *Store) Latest(ctx context.Context) (models.Profile, error) {
	defer metrics.TrackQuery("select", "users")()

	row := s.db.QueryRowContext(ctx, "SELECT "+profileColumns+" FROM users ORDER BY id DESC LIMIT 1")
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		return models.Profile{}, s.fail("select", fmt.Errorf("storage.Latest(): %w", classify(err)))
	}
	return p, nil
}

// ListAll returns every profile in insertion order.
func (s *Store) ListAll(ctx context.Context) ([]models.Profile, error) {
	defer metrics.TrackQuery("select", "users")()

	rows, err := s.db.QueryContext(ctx, "SELECT "+profileColumns+" FROM users ORDER BY id ASC")
	if err != nil {
		return nil, s.fail("select", fmt.Errorf("storage.ListAll(): %w", classify(err)))
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, s.fail("select", fmt.Errorf("storage.ListAll(): scan: %w", err))
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("select", fmt.Errorf("storage.ListAll(): %w", classify(err)))
	}
	return profiles, nil
}

// Count returns the number of stored profiles and refreshes the
// nutriguide_profiles gauge.
func (s *Store) Count(ctx context.Context) (int, error) {
	defer metrics.TrackQuery("count", "users")()

	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, s.fail("count", fmt.Errorf("storage.Count(): %w", classify(err)))
	}
	metrics.ProfilesStored.Set(float64(n))
	return n, nil
}

func (s *Store) fail(operation string, err error) error {
	metrics.DatabaseErrorsTotal.WithLabelValues(operation).Inc()
	s.logger.Error("query failed", zap.String("operation", operation), zap.Error(err))
	return err
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var p models.Profile
	var gender, createdStr string
	if err := row.Scan(&p.ID, &p.Name, &p.Age, &gender, &p.HeightCM, &p.WeightKG, &createdStr); err != nil {
		return models.Profile{}, err
	}
	p.Gender = models.Gender(gender)

	createdAt, err := time.ParseInLocation(models.TimestampLayout, createdStr, time.UTC)
	if err != nil {
		return models.Profile{}, fmt.Errorf("bad created_at %q: %w", createdStr, err)
	}
	p.CreatedAt = createdAt
	return p, nil
}
