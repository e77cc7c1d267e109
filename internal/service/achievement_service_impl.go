package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/pedrobarros/ironlog/internal/repository"
	"github.com/pedrobarros/ironlog/internal/stats"
)

// UnlockListener is notified exactly once per newly unlocked achievement.
type UnlockListener interface {
	AchievementUnlocked(ctx context.Context, def stats.AchievementDef)
}

// NoopUnlockListener discards unlock notifications.
type NoopUnlockListener struct{}

func (NoopUnlockListener) AchievementUnlocked(context.Context, stats.AchievementDef) {}

type logUnlockListener struct {
	logger *slog.Logger
}

// NewLogUnlockListener writes unlock notifications to the provided writer.
func NewLogUnlockListener(w io.Writer) UnlockListener {
	if w == nil {
		return NoopUnlockListener{}
	}
	return &logUnlockListener{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (l *logUnlockListener) AchievementUnlocked(ctx context.Context, def stats.AchievementDef) {
	l.logger.InfoContext(ctx, "achievement_unlocked", "key", def.Key, "label", def.Label)
}

type achievementService struct {
	achievements *repository.AchievementRepo
	workouts     *repository.WorkoutRepo
	progress     *repository.ProgressRepo
	records      *repository.RecordRepo
	listener     UnlockListener
	now          func() time.Time
}

// NewAchievementService wires the achievement evaluator. listener may be nil.
func NewAchievementService(
	achievements *repository.AchievementRepo,
	workouts *repository.WorkoutRepo,
	progress *repository.ProgressRepo,
	records *repository.RecordRepo,
	listener UnlockListener,
) AchievementService {
	if listener == nil {
		listener = NoopUnlockListener{}
	}
	return &achievementService{
		achievements: achievements,
		workouts:     workouts,
		progress:     progress,
		records:      records,
		listener:     listener,
		now:          time.Now,
	}
}

// counters assembles the evaluation inputs from current history.
func (s *achievementService) counters(ctx context.Context) (stats.Counters, error) {
	completed, err := s.progress.CompletedSet(ctx)
	if err != nil {
		return stats.Counters{}, err
	}
	recordCount, err := s.records.Count(ctx)
	if err != nil {
		return stats.Counters{}, err
	}
	workouts := s.workouts.List()
	days := stats.CompletedDays(workouts, completed)
	return stats.Counters{
		CompletedWorkouts: len(completed),
		PersonalRecords:   recordCount,
		CurrentStreak:     stats.CurrentStreak(days, s.now()),
	}, nil
}

func (s *achievementService) Evaluate(ctx context.Context) ([]string, error) {
	counters, err := s.counters(ctx)
	if err != nil {
		return nil, err
	}
	previous, err := s.achievements.Get(ctx)
	if err != nil {
		return nil, err
	}

	next, unlocked := stats.Evaluate(counters, previous)
	if len(unlocked) == 0 {
		return nil, nil
	}
	if err := s.achievements.Save(ctx, next); err != nil {
		return nil, err
	}

	defs := make(map[string]stats.AchievementDef)
	for _, d := range stats.Definitions() {
		defs[d.Key] = d
	}
	for _, key := range unlocked {
		s.listener.AchievementUnlocked(ctx, defs[key])
	}
	return unlocked, nil
}

func (s *achievementService) All(ctx context.Context) ([]AchievementView, error) {
	set, err := s.achievements.Get(ctx)
	if err != nil {
		return nil, err
	}
	var views []AchievementView
	for _, d := range stats.Definitions() {
		views = append(views, AchievementView{Key: d.Key, Label: d.Label, Unlocked: set[d.Key]})
	}
	return views, nil
}
