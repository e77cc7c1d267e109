package service

import (
	"context"
	"time"

	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/repository"
)

type workoutService struct {
	workouts *repository.WorkoutRepo
	observer UseCaseObserver
}

// NewWorkoutService wraps the workout repository with observability.
func NewWorkoutService(workouts *repository.WorkoutRepo, observer UseCaseObserver) WorkoutService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &workoutService{workouts: workouts, observer: observer}
}

func (s *workoutService) List(_ context.Context) ([]domain.Workout, error) {
	return s.workouts.List(), nil
}

func (s *workoutService) Get(_ context.Context, id string) (*domain.Workout, error) {
	return s.workouts.GetByID(id), nil
}

func (s *workoutService) Create(ctx context.Context, draft domain.Workout) (w *domain.Workout, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "workout_create", start, err, map[string]any{"name": draft.Name})
	}()
	return s.workouts.Add(ctx, draft)
}

func (s *workoutService) Update(ctx context.Context, id string, patch repository.WorkoutPatch) (w *domain.Workout, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "workout_update", start, err, map[string]any{"workout_id": id})
	}()
	return s.workouts.Update(ctx, id, patch)
}

func (s *workoutService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "workout_delete", start, err, map[string]any{"workout_id": id})
	}()
	return s.workouts.Remove(ctx, id)
}
