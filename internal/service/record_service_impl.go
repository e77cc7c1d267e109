package service

import (
	"context"
	"time"

	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/repository"
)

type recordService struct {
	records      *repository.RecordRepo
	achievements AchievementService
	observer     UseCaseObserver
}

// NewRecordService wires personal-record logging. achievements may be nil;
// improvements then skip re-evaluation.
func NewRecordService(records *repository.RecordRepo, achievements AchievementService, observer UseCaseObserver) RecordService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &recordService{records: records, achievements: achievements, observer: observer}
}

func (s *recordService) Log(ctx context.Context, exercise string, weightKg float64) (improved bool, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "record_log", start, err, map[string]any{
			"exercise": exercise,
			"improved": improved,
		})
	}()

	improved, err = s.records.Log(ctx, exercise, weightKg)
	if err != nil {
		return false, err
	}
	// Only an actual improvement can move the record counter.
	if improved && s.achievements != nil {
		if _, err = s.achievements.Evaluate(ctx); err != nil {
			return improved, err
		}
	}
	return improved, nil
}

func (s *recordService) List(ctx context.Context) (domain.PersonalRecords, error) {
	return s.records.List(ctx)
}
