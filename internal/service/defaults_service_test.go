package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warbak/trainer-app/internal/domain"
)

func seedHistory(t *testing.T, svc WorkoutService, clientID string, date string, exercises ...domain.Exercise) {
	t.Helper()
	_, err := svc.Create(context.Background(), domain.Workout{
		ClientID:  clientID,
		Date:      date,
		Exercises: exercises,
	})
	require.NoError(t, err)
}

func TestDefaultsServiceLastSetPicksNewestDate(t *testing.T) {
	ctx := context.Background()
	_, workoutRepo, _ := newTestRepos()
	workouts := NewWorkoutService(workoutRepo)
	svc := NewDefaultsService(workoutRepo)

	// Logged out of date order on purpose.
	seedHistory(t, workouts, "client-1", "2024-01-20",
		domain.Exercise{ExerciseName: "Bench Press", Sets: []domain.Set{
			{Reps: 5, Weight: 140},
			{Reps: 5, Weight: 145},
		}})
	seedHistory(t, workouts, "client-1", "2024-01-10",
		domain.Exercise{ExerciseName: "Bench Press", Sets: []domain.Set{
			{Reps: 8, Weight: 120},
		}})

	last, err := svc.LastSetForExercise(ctx, "client-1", "bench press")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, 5, last.Reps)
	assert.Equal(t, 145.0, last.Weight)
	assert.Equal(t, "2024-01-20", last.Date)
}

func TestDefaultsServiceMatchesNormalizedNames(t *testing.T) {
	ctx := context.Background()
	_, workoutRepo, _ := newTestRepos()
	workouts := NewWorkoutService(workoutRepo)
	svc := NewDefaultsService(workoutRepo)

	seedHistory(t, workouts, "client-1", "2024-01-10",
		domain.Exercise{ExerciseName: "Overhead Press", Sets: []domain.Set{
			{Reps: 6, Weight: 50},
		}})

	last, err := svc.LastSetForExercise(ctx, "client-1", "  overhead   PRESS ")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, 50.0, last.Weight)
}

func TestDefaultsServiceUnknownExercise(t *testing.T) {
	ctx := context.Background()
	_, workoutRepo, _ := newTestRepos()
	workouts := NewWorkoutService(workoutRepo)
	svc := NewDefaultsService(workoutRepo)

	seedHistory(t, workouts, "client-1", "2024-01-10",
		domain.Exercise{ExerciseName: "Squat", Sets: []domain.Set{
			{Reps: 5, Weight: 100},
		}})

	last, err := svc.LastSetForExercise(ctx, "client-1", "Deadlift")
	require.NoError(t, err)
	assert.Nil(t, last)

	defaults, err := svc.DefaultRepsAndWeight(ctx, "client-1", "Deadlift")
	require.NoError(t, err)
	assert.Equal(t, SetDefaults{Reps: 6, Weight: 0}, defaults)
}

func TestDefaultsServiceRepsAndWeightFromHistory(t *testing.T) {
	ctx := context.Background()
	_, workoutRepo, _ := newTestRepos()
	workouts := NewWorkoutService(workoutRepo)
	svc := NewDefaultsService(workoutRepo)

	seedHistory(t, workouts, "client-1", "2024-01-10",
		domain.Exercise{ExerciseName: "Squat", Sets: []domain.Set{
			{Reps: 5, Weight: 100},
			{Reps: 3, Weight: 110},
		}})

	defaults, err := svc.DefaultRepsAndWeight(ctx, "client-1", "Squat")
	require.NoError(t, err)
	assert.Equal(t, SetDefaults{Reps: 3, Weight: 110}, defaults)
}

func TestSuggestedDefaults(t *testing.T) {
	assert.Equal(t, SetDefaults{Reps: 6, Weight: 0}, SuggestedDefaults(nil))
	assert.Equal(t, SetDefaults{Reps: 3, Weight: 110}, SuggestedDefaults(&LastSet{Reps: 3, Weight: 110, Date: "2024-01-10"}))

	// Zero values in the last set fall back per field.
	assert.Equal(t, SetDefaults{Reps: 6, Weight: 110}, SuggestedDefaults(&LastSet{Reps: 0, Weight: 110}))
	assert.Equal(t, SetDefaults{Reps: 3, Weight: 0}, SuggestedDefaults(&LastSet{Reps: 3, Weight: 0}))
}

func TestDefaultsServiceIgnoresOtherClients(t *testing.T) {
	ctx := context.Background()
	_, workoutRepo, _ := newTestRepos()
	workouts := NewWorkoutService(workoutRepo)
	svc := NewDefaultsService(workoutRepo)

	seedHistory(t, workouts, "client-2", "2024-01-10",
		domain.Exercise{ExerciseName: "Squat", Sets: []domain.Set{
			{Reps: 5, Weight: 100},
		}})

	last, err := svc.LastSetForExercise(ctx, "client-1", "Squat")
	require.NoError(t, err)
	assert.Nil(t, last)
}
