package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"warbak/trainer-app/internal/domain"
	"warbak/trainer-app/internal/repository"
)

// WorkoutService manages logged training sessions.
type WorkoutService interface {
	Create(ctx context.Context, workout domain.Workout) (*domain.Workout, error)
	GetAll(ctx context.Context) ([]domain.Workout, error)
	GetByClientID(ctx context.Context, clientID string) ([]domain.Workout, error)
	Update(ctx context.Context, workoutID string, patch domain.WorkoutPatch) (*domain.Workout, error)
	Delete(ctx context.Context, workoutID string) error
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

// NewWorkoutService creates a workout service.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		now:         time.Now,
	}
}

// Create stores the workout under a freshly minted id. Date defaults to
// today and a nil exercise list becomes empty, so the returned record is
// always fully populated even when nothing was stored for a set-less
// workout.
func (s *workoutService) Create(ctx context.Context, workout domain.Workout) (*domain.Workout, error) {
	workout.WorkoutID = fmt.Sprintf("workout-%s", uuid.NewString())
	workout.CreatedAt = s.now().UTC().Format(time.RFC3339)
	if workout.Date == "" {
		workout.Date = s.now().Format("2006-01-02")
	}
	if workout.Exercises == nil {
		workout.Exercises = []domain.Exercise{}
	}

	if err := s.workoutRepo.Create(ctx, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (s *workoutService) GetAll(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.GetAll(ctx)
}

func (s *workoutService) GetByClientID(ctx context.Context, clientID string) ([]domain.Workout, error) {
	return s.workoutRepo.GetByClientID(ctx, clientID)
}

func (s *workoutService) Update(ctx context.Context, workoutID string, patch domain.WorkoutPatch) (*domain.Workout, error) {
	return s.workoutRepo.Update(ctx, workoutID, patch)
}

func (s *workoutService) Delete(ctx context.Context, workoutID string) error {
	return s.workoutRepo.Delete(ctx, workoutID)
}
