package service

import (
	"context"
	"time"

	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/repository"
	"github.com/pedrobarros/ironlog/internal/stats"
)

type statsService struct {
	workouts *repository.WorkoutRepo
	progress *repository.ProgressRepo
	now      func() time.Time
}

// NewStatsService creates the pull-based statistics reader. Every call
// recomputes from current repository state; nothing is cached or reactive.
func NewStatsService(workouts *repository.WorkoutRepo, progress *repository.ProgressRepo) StatsService {
	return &statsService{workouts: workouts, progress: progress, now: time.Now}
}

func (s *statsService) snapshot(ctx context.Context) ([]domain.Workout, map[string]bool, error) {
	completed, err := s.progress.CompletedSet(ctx)
	if err != nil {
		return nil, nil, err
	}
	return s.workouts.List(), completed, nil
}

func (s *statsService) General(ctx context.Context, period domain.Period) (stats.GeneralStats, error) {
	workouts, completed, err := s.snapshot(ctx)
	if err != nil {
		return stats.GeneralStats{}, err
	}
	return stats.General(workouts, completed, period, s.now()), nil
}

func (s *statsService) MuscleGroups(ctx context.Context, period domain.Period) ([]stats.MuscleGroupCount, error) {
	workouts, completed, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return stats.MuscleGroups(workouts, completed, period, s.now()), nil
}

func (s *statsService) Daily(ctx context.Context, month time.Month, year int) ([]stats.DayBucket, error) {
	workouts, completed, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return stats.DailySeries(workouts, completed, month, year), nil
}

func (s *statsService) Streaks(ctx context.Context) (StreakSummary, error) {
	workouts, completed, err := s.snapshot(ctx)
	if err != nil {
		return StreakSummary{}, err
	}
	days := stats.CompletedDays(workouts, completed)
	return StreakSummary{
		Current: stats.CurrentStreak(days, s.now()),
		Longest: stats.LongestStreak(days),
	}, nil
}
