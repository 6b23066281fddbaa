// Package wellness is the core boundary: submit a profile, build its dashboard.
package wellness

import (
	"context"
	"errors"
	"fmt"

	"nutriguide/internal/advice"
	"nutriguide/internal/metrics"
	"nutriguide/internal/models"

	"go.uber.org/zap"
)

// ProfileStore is the slice of storage.Store the service needs.
type ProfileStore interface {
	Save(ctx context.Context, p models.Profile) (int64, error)
	Get(ctx context.Context, id int64) (models.Profile, error)
	ListAll(ctx context.Context) ([]models.Profile, error)
	Latest(ctx context.Context) (models.Profile, error)
	Count(ctx context.Context) (int, error)
}

// Report is the dashboard for one stored profile.
type Report struct {
	Profile models.Profile `json:"profile"`
	advice.Assessment
}

// Greeting is the dashboard header line.
func (r Report) Greeting() string {
	return fmt.Sprintf("Hello %s, your health dashboard", r.Profile.Name)
}

// Service composes the profile store and the advice engine.
type Service struct {
	store  ProfileStore
	engine *advice.Engine
	logger *zap.Logger
}

// NewService wires store and engine. A nil engine uses the embedded catalog.
func NewService(store ProfileStore, engine *advice.Engine, logger *zap.Logger) *Service {
	if engine == nil {
		engine = advice.NewEngine(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, engine: engine, logger: logger.Named("wellness")}
}

// Submit validates in and appends it to the store. Nothing is written when
// validation fails.
func (s *Service) Submit(ctx context.Context, in ProfileInput) (int64, error) {
	p, err := in.Normalize()
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			for field := range ve.Fields {
				metrics.ValidationFailuresTotal.WithLabelValues(field).Inc()
			}
		}
		return 0, err
	}

	id, err := s.store.Save(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("wellness.Submit(): %w", err)
	}

	cat := advice.Categorize(advice.ComputeBMI(p.WeightKG, p.HeightCM))
	metrics.SubmissionsTotal.WithLabelValues(string(cat)).Inc()
	s.logger.Info("profile submitted", zap.Int64("id", id), zap.String("category", string(cat)))
	return id, nil
}

// Dashboard re-reads profile id and evaluates it.
func (s *Service) Dashboard(ctx context.Context, id int64) (Report, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return Report{}, fmt.Errorf("wellness.Dashboard(%d): %w", id, err)
	}
	return s.Evaluate(p), nil
}

// LatestDashboard evaluates the most recent submission.
func (s *Service) LatestDashboard(ctx context.Context) (Report, error) {
	p, err := s.store.Latest(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("wellness.LatestDashboard(): %w", err)
	}
	return s.Evaluate(p), nil
}

// Evaluate builds the report for an already loaded profile.
func (s *Service) Evaluate(p models.Profile) Report {
	return Report{Profile: p, Assessment: s.engine.Assess(p.WeightKG, p.HeightCM)}
}

func (s *Service) Profile(ctx context.Context, id int64) (models.Profile, error) {
	return s.store.Get(ctx, id)
}

// ProfileCount is the number of stored submissions.
func (s *Service) ProfileCount(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// Profiles is the debug listing of every submission in order.
func (s *Service) Profiles(ctx context.Context) ([]models.Profile, error) {
	return s.store.ListAll(ctx)
}
