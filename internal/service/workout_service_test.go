package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warbak/trainer-app/internal/domain"
	"warbak/trainer-app/internal/repository"
)

func TestWorkoutServiceCreateDefaults(t *testing.T) {
	ctx := context.Background()
	_, workoutRepo, _ := newTestRepos()
	svc := NewWorkoutService(workoutRepo)

	created, err := svc.Create(ctx, domain.Workout{ClientID: "client-1"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.WorkoutID, "workout-"), "got id %q", created.WorkoutID)
	assert.Equal(t, time.Now().Format("2006-01-02"), created.Date)
	assert.NotNil(t, created.Exercises)
	assert.Empty(t, created.Exercises)

	_, err = time.Parse(time.RFC3339, created.CreatedAt)
	assert.NoError(t, err)

	// Without sets, nothing reaches the sheet.
	stored, err := svc.GetByClientID(ctx, "client-1")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestWorkoutServiceCreateKeepsSuppliedDate(t *testing.T) {
	ctx := context.Background()
	_, workoutRepo, _ := newTestRepos()
	svc := NewWorkoutService(workoutRepo)

	created, err := svc.Create(ctx, domain.Workout{
		ClientID: "client-1",
		Date:     "2024-01-15",
		Exercises: []domain.Exercise{
			{ExerciseName: "Squat", Sets: []domain.Set{{Reps: 5, Weight: 100}}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", created.Date)

	stored, err := svc.GetByClientID(ctx, "client-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, *created, stored[0])
}

func TestWorkoutServiceUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	_, workoutRepo, _ := newTestRepos()
	svc := NewWorkoutService(workoutRepo)

	created, err := svc.Create(ctx, domain.Workout{
		ClientID: "client-1",
		Date:     "2024-01-15",
		Exercises: []domain.Exercise{
			{ExerciseName: "Squat", Sets: []domain.Set{{Reps: 5, Weight: 100}}},
		},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.WorkoutID, domain.WorkoutPatch{Notes: strptr("deload")})
	require.NoError(t, err)
	assert.Equal(t, "deload", updated.Notes)
	assert.Equal(t, created.WorkoutID, updated.WorkoutID)

	require.NoError(t, svc.Delete(ctx, created.WorkoutID))
	err = svc.Delete(ctx, created.WorkoutID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
