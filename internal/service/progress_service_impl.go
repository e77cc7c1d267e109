package service

import (
	"context"
	"time"

	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/repository"
)

type progressService struct {
	progress     *repository.ProgressRepo
	workouts     *repository.WorkoutRepo
	achievements AchievementService
	observer     UseCaseObserver
	now          func() time.Time
}

// NewProgressService wires the progress tracker. achievements may be nil;
// completion toggles then skip re-evaluation.
func NewProgressService(progress *repository.ProgressRepo, workouts *repository.WorkoutRepo, achievements AchievementService, observer UseCaseObserver) ProgressService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &progressService{
		progress:     progress,
		workouts:     workouts,
		achievements: achievements,
		observer:     observer,
		now:          time.Now,
	}
}

func (s *progressService) Progress(ctx context.Context, workoutID string) (domain.ProgressRecord, error) {
	return s.progress.GetProgress(ctx, workoutID)
}

func (s *progressService) IsExerciseCompleted(ctx context.Context, workoutID string, exerciseIndex int) (bool, error) {
	return s.progress.IsExerciseCompleted(ctx, workoutID, exerciseIndex)
}

func (s *progressService) ToggleExercise(ctx context.Context, workoutID string, exerciseIndex int, completed bool) (rec *domain.ProgressRecord, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "exercise_toggle", start, err, map[string]any{
			"workout_id": workoutID,
			"index":      exerciseIndex,
			"completed":  completed,
		})
	}()
	return s.progress.ToggleExercise(ctx, workoutID, exerciseIndex, completed)
}

// SetWorkoutCompleted flips the authoritative completed flag. Marking a
// workout completed also stamps CompletedAt when it has none, so the record
// resolves to a date for aggregation; unmarking clears the stamp. Achievement
// evaluation runs immediately after the toggle because the completed count
// and streak may have changed.
func (s *progressService) SetWorkoutCompleted(ctx context.Context, workoutID string, completed bool) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "workout_completion_toggle", start, err, map[string]any{
			"workout_id": workoutID,
			"completed":  completed,
		})
	}()

	if err = s.progress.ToggleWorkoutCompletion(ctx, workoutID, completed); err != nil {
		return err
	}

	w := s.workouts.GetByID(workoutID)
	if w != nil {
		if completed && w.CompletedAt == nil {
			now := s.now().UTC()
			if _, err = s.workouts.Update(ctx, workoutID, repository.WorkoutPatch{CompletedAt: &now}); err != nil {
				return err
			}
		} else if !completed && w.CompletedAt != nil {
			if _, err = s.workouts.Update(ctx, workoutID, repository.WorkoutPatch{ClearCompletedAt: true}); err != nil {
				return err
			}
		}
	}

	if s.achievements != nil {
		if _, err = s.achievements.Evaluate(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *progressService) CompletedSet(ctx context.Context) (map[string]bool, error) {
	return s.progress.CompletedSet(ctx)
}
