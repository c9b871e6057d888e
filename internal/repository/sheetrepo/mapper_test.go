package sheetrepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warbak/trainer-app/internal/domain"
)

func TestClientRowRoundTrip(t *testing.T) {
	c := domain.Client{
		ClientID:  "client-1",
		Name:      "Anna Kowalska",
		Email:     "anna@example.com",
		Phone:     "555-0101",
		Notes:     "knee rehab",
		CreatedAt: "2024-01-10T09:00:00Z",
	}
	row := clientToRow(c)
	require.Len(t, row, len(ClientHeaders))
	assert.Equal(t, &c, rowToClient(row))
}

func TestRowToClientShortRow(t *testing.T) {
	c := rowToClient([]string{"client-1", "Anna"})
	require.NotNil(t, c)
	assert.Equal(t, "client-1", c.ClientID)
	assert.Equal(t, "Anna", c.Name)
	assert.Empty(t, c.Email)
	assert.Empty(t, c.CreatedAt)

	assert.Nil(t, rowToClient(nil))
}

func TestRowsToClientsSkipsEmptyRows(t *testing.T) {
	rows := [][]string{
		ClientHeaders,
		{"client-1", "Anna"},
		{},
		{"", "ghost"},
		{"client-2", "Bartek"},
	}
	clients := rowsToClients(rows)
	require.Len(t, clients, 2)
	assert.Equal(t, "client-1", clients[0].ClientID)
	assert.Equal(t, "client-2", clients[1].ClientID)
}

func TestWorkoutToRowsFlattening(t *testing.T) {
	w := domain.Workout{
		WorkoutID: "workout-1",
		ClientID:  "client-1",
		Date:      "2024-01-15",
		Exercises: []domain.Exercise{
			{ExerciseName: "Bench Press", Sets: []domain.Set{
				{Reps: 5, Weight: 135},
				{Reps: 5, Weight: 140},
			}},
		},
		CreatedAt: "2024-01-15T10:00:00Z",
	}

	rows := workoutToRows(w)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"workout-1", "client-1", "2024-01-15", "Bench Press", "1", "5", "135", "675", "", "2024-01-15T10:00:00Z"}, rows[0])
	assert.Equal(t, []string{"workout-1", "client-1", "2024-01-15", "Bench Press", "2", "5", "140", "700", "", "2024-01-15T10:00:00Z"}, rows[1])
}

func TestWorkoutToRowsCanonicalizesNames(t *testing.T) {
	w := domain.Workout{
		WorkoutID: "workout-1",
		ClientID:  "client-1",
		Exercises: []domain.Exercise{
			{ExerciseName: "  bench   press ", Sets: []domain.Set{{Reps: 5, Weight: 100}}},
		},
	}
	rows := workoutToRows(w)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bench Press", rows[0][3])
}

func TestWorkoutToRowsNotesFallback(t *testing.T) {
	w := domain.Workout{
		WorkoutID: "workout-1",
		ClientID:  "client-1",
		Notes:     "felt strong",
		Exercises: []domain.Exercise{
			{ExerciseName: "Squat", Sets: []domain.Set{
				{Reps: 5, Weight: 100},
				{Reps: 5, Weight: 100, Notes: "belt on"},
			}},
		},
	}
	rows := workoutToRows(w)
	require.Len(t, rows, 2)
	assert.Equal(t, "felt strong", rows[0][8])
	assert.Equal(t, "belt on", rows[1][8])
}

func TestWorkoutToRowsNoSets(t *testing.T) {
	assert.Empty(t, workoutToRows(domain.Workout{WorkoutID: "workout-1"}))
	assert.Empty(t, workoutToRows(domain.Workout{
		WorkoutID: "workout-1",
		Exercises: []domain.Exercise{{ExerciseName: "Squat"}},
	}))
}

func TestWorkoutRowRoundTrip(t *testing.T) {
	w := domain.Workout{
		WorkoutID: "workout-1",
		ClientID:  "client-1",
		Date:      "2024-01-15",
		Exercises: []domain.Exercise{
			{ExerciseName: "Bench Press", Sets: []domain.Set{
				{Reps: 5, Weight: 135},
				{Reps: 5, Weight: 140, Notes: "spotter"},
			}},
			{ExerciseName: "Squat", Sets: []domain.Set{
				{Reps: 8, Weight: 80.5},
			}},
		},
		Notes:     "morning session",
		CreatedAt: "2024-01-15T10:00:00Z",
	}

	rows := append([][]string{WorkoutHeaders}, workoutToRows(w)...)
	got := rowsToWorkouts(rows, 0)
	require.Len(t, got, 1)
	assert.Equal(t, w, got[0])
}

func TestRowsToWorkoutsGroupsInterleavedRows(t *testing.T) {
	rows := [][]string{
		WorkoutHeaders,
		{"workout-1", "client-1", "2024-01-15", "Bench Press", "1", "5", "135", "675", "", "2024-01-15T10:00:00Z"},
		{"workout-2", "client-2", "2024-01-16", "Deadlift", "1", "3", "180", "540", "", "2024-01-16T10:00:00Z"},
		{"workout-1", "client-1", "2024-01-15", "bench  press", "2", "5", "140", "700", "", "2024-01-15T10:00:00Z"},
	}
	workouts := rowsToWorkouts(rows, 0)
	require.Len(t, workouts, 2)

	assert.Equal(t, "workout-1", workouts[0].WorkoutID)
	require.Len(t, workouts[0].Exercises, 1)
	assert.Equal(t, "Bench Press", workouts[0].Exercises[0].ExerciseName)
	assert.Len(t, workouts[0].Exercises[0].Sets, 2)

	assert.Equal(t, "workout-2", workouts[1].WorkoutID)
}

func TestRowsToWorkoutsLegacyJSONCell(t *testing.T) {
	legacy := `[{"exerciseName":"Row","sets":[{"reps":10,"weight":60}]}]`
	rows := [][]string{
		WorkoutHeaders,
		{"workout-1", "client-1", "2024-01-15", legacy, "", "", "", "", "old format", "2024-01-15T10:00:00Z"},
	}
	workouts := rowsToWorkouts(rows, 0)
	require.Len(t, workouts, 1)
	require.Len(t, workouts[0].Exercises, 1)
	assert.Equal(t, "Row", workouts[0].Exercises[0].ExerciseName)
	require.Len(t, workouts[0].Exercises[0].Sets, 1)
	assert.Equal(t, 10, workouts[0].Exercises[0].Sets[0].Reps)
	assert.Equal(t, 60.0, workouts[0].Exercises[0].Sets[0].Weight)
}

func TestRowsToWorkoutsMalformedLegacyCell(t *testing.T) {
	rows := [][]string{
		WorkoutHeaders,
		{"workout-1", "client-1", "2024-01-15", "[not json", "", "", "", "", "", ""},
	}
	workouts := rowsToWorkouts(rows, 0)
	require.Len(t, workouts, 1)
	assert.Empty(t, workouts[0].Exercises)
}

func TestRowsToWorkoutsMalformedNumbers(t *testing.T) {
	rows := [][]string{
		WorkoutHeaders,
		{"workout-1", "client-1", "2024-01-15", "Squat", "oops", "x", "y", "z", "", ""},
	}
	workouts := rowsToWorkouts(rows, 0)
	require.Len(t, workouts, 1)
	set := workouts[0].Exercises[0].Sets[0]
	assert.Equal(t, 0, set.Reps)
	assert.Equal(t, 0.0, set.Weight)
}

func TestTrainerRowRoundTrip(t *testing.T) {
	tr := domain.Trainer{
		TrainerID:    "trainer-1",
		Name:         "Coach",
		Email:        "coach@example.com",
		PasswordHash: "$2a$10$abc",
		CreatedAt:    "2024-01-01T00:00:00Z",
	}
	assert.Equal(t, &tr, rowToTrainer(trainerToRow(tr)))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "135", formatNumber(135))
	assert.Equal(t, "22.5", formatNumber(22.5))
	assert.Equal(t, "0", formatNumber(0))
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 5, parseIntDefault("5", 0))
	assert.Equal(t, 5, parseIntDefault("5.0", 0))
	assert.Equal(t, 3, parseIntDefault("", 3))
	assert.Equal(t, 3, parseIntDefault("abc", 3))
}
