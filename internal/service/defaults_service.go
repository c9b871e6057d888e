package service

import (
	"context"
	"sort"
	"time"

	"warbak/trainer-app/internal/domain"
	"warbak/trainer-app/internal/repository"
)

// Fallback values suggested for an exercise the client has never done.
const (
	defaultReps   = 6
	defaultWeight = 0
)

// LastSet is the most recent recorded set of an exercise, with the date of
// the workout it came from.
type LastSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
	Date   string  `json:"date"`
}

// SetDefaults is the suggestion for pre-filling a new set's fields.
type SetDefaults struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// DefaultsService suggests reps and weight for a new set based on the
// client's history with the exercise.
type DefaultsService interface {
	// LastSetForExercise returns the final set of the exercise's most
	// recent occurrence for the client, or nil when the client has never
	// logged it.
	LastSetForExercise(ctx context.Context, clientID, exerciseName string) (*LastSet, error)
	// DefaultRepsAndWeight returns the last set's reps and weight, falling
	// back to 6 reps at weight 0 for a new exercise.
	DefaultRepsAndWeight(ctx context.Context, clientID, exerciseName string) (SetDefaults, error)
}

type defaultsService struct {
	workoutRepo repository.WorkoutRepository
}

// NewDefaultsService creates a defaults service.
func NewDefaultsService(workoutRepo repository.WorkoutRepository) DefaultsService {
	return &defaultsService{workoutRepo: workoutRepo}
}

func (s *defaultsService) LastSetForExercise(ctx context.Context, clientID, exerciseName string) (*LastSet, error) {
	workouts, err := s.workoutRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	// Newest first. Unparseable dates sort last.
	sort.SliceStable(workouts, func(i, j int) bool {
		return workoutDate(workouts[i]).After(workoutDate(workouts[j]))
	})

	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if !domain.ExerciseNamesMatch(ex.ExerciseName, exerciseName) || len(ex.Sets) == 0 {
				continue
			}
			last := ex.Sets[len(ex.Sets)-1]
			return &LastSet{Reps: last.Reps, Weight: last.Weight, Date: w.Date}, nil
		}
	}
	return nil, nil
}

func (s *defaultsService) DefaultRepsAndWeight(ctx context.Context, clientID, exerciseName string) (SetDefaults, error) {
	last, err := s.LastSetForExercise(ctx, clientID, exerciseName)
	if err != nil {
		return SetDefaults{}, err
	}
	return SuggestedDefaults(last), nil
}

// SuggestedDefaults derives the pre-fill suggestion from an already-fetched
// last set; nil means the exercise is new to the client. Callers that have
// the last set in hand use this instead of DefaultRepsAndWeight to avoid a
// second history scan.
func SuggestedDefaults(last *LastSet) SetDefaults {
	defaults := SetDefaults{Reps: defaultReps, Weight: defaultWeight}
	if last != nil {
		if last.Reps > 0 {
			defaults.Reps = last.Reps
		}
		if last.Weight > 0 {
			defaults.Weight = last.Weight
		}
	}
	return defaults
}

func workoutDate(w domain.Workout) time.Time {
	t, err := time.Parse("2006-01-02", w.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
