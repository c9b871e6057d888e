// Package sheetrepo implements the repository interfaces on top of a tabular
// sheets.Store, mapping records onto flat spreadsheet rows and mutating them
// by position.
package sheetrepo

import (
	"context"

	"warbak/trainer-app/internal/sheets"
)

// Sheet names and their header rows. Header names and order are a
// compatibility contract with existing spreadsheets and must not change.
const (
	ClientsSheet  = "Clients"
	WorkoutsSheet = "Workouts"
	TrainersSheet = "Trainers"
)

var (
	ClientHeaders  = []string{"clientId", "name", "email", "phone", "notes", "createdAt"}
	WorkoutHeaders = []string{"workoutId", "clientId", "date", "exerciseName", "setNumber", "reps", "weight", "volume", "notes", "createdAt"}
	TrainerHeaders = []string{"trainerId", "name", "email", "passwordHash", "createdAt"}
)

// InitializeTables creates the application's sheets and header rows if they
// are missing. Safe to call at every startup.
func InitializeTables(ctx context.Context, store sheets.Store) error {
	for _, t := range []struct {
		name    string
		headers []string
	}{
		{ClientsSheet, ClientHeaders},
		{WorkoutsSheet, WorkoutHeaders},
		{TrainersSheet, TrainerHeaders},
	} {
		if err := store.EnsureSheet(ctx, t.name); err != nil {
			return err
		}
		if err := store.EnsureHeaders(ctx, t.name, t.headers); err != nil {
			return err
		}
	}
	return nil
}
