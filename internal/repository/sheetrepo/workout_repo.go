package sheetrepo

import (
	"context"

	"warbak/trainer-app/internal/domain"
	"warbak/trainer-app/internal/repository"
	"warbak/trainer-app/internal/sheets"
)

// Column positions within WorkoutHeaders used for locating rows.
const (
	workoutIDColumn       = 0
	workoutClientIDColumn = 1
)

// sheetWorkoutRepository implements repository.WorkoutRepository on a
// sheets.Store. A workout occupies one row per set in the Workouts sheet;
// updates replace the whole row group by position.
type sheetWorkoutRepository struct {
	store sheets.Store
}

// NewWorkoutRepository creates a workout repository backed by the given
// store.
func NewWorkoutRepository(store sheets.Store) repository.WorkoutRepository {
	return &sheetWorkoutRepository{store: store}
}

func (r *sheetWorkoutRepository) ensure(ctx context.Context) error {
	if err := r.store.EnsureSheet(ctx, WorkoutsSheet); err != nil {
		return err
	}
	return r.store.EnsureHeaders(ctx, WorkoutsSheet, WorkoutHeaders)
}

func (r *sheetWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	rows := workoutToRows(*workout)
	if len(rows) == 0 {
		// A workout without sets stores nothing; it exists only in the
		// response the caller already has.
		return nil
	}
	return r.store.AppendRows(ctx, WorkoutsSheet, rows)
}

func (r *sheetWorkoutRepository) GetAll(ctx context.Context) ([]domain.Workout, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := r.store.ReadAll(ctx, WorkoutsSheet)
	if err != nil {
		return nil, err
	}
	return rowsToWorkouts(rows, 0), nil
}

func (r *sheetWorkoutRepository) GetByClientID(ctx context.Context, clientID string) ([]domain.Workout, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	workouts := make([]domain.Workout, 0, len(all))
	for _, w := range all {
		if w.ClientID == clientID {
			workouts = append(workouts, w)
		}
	}
	return workouts, nil
}

// Update replaces the workout's whole row group with rows built from the
// merged record, letting the set count grow or shrink. The replace runs as
// one delete+insert batch followed by a range write; a failure between those
// two calls leaves the gap rows empty until retried, which is the documented
// non-atomicity of the backend.
func (r *sheetWorkoutRepository) Update(ctx context.Context, workoutID string, patch domain.WorkoutPatch) (*domain.Workout, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := r.store.ReadAll(ctx, WorkoutsSheet)
	if err != nil {
		return nil, err
	}
	indices := locateAll(rows, workoutIDColumn, workoutID)
	if len(indices) == 0 {
		return nil, &repository.NotFoundError{Kind: "workout", ID: workoutID, KnownIDs: knownIDs(rows, workoutIDColumn)}
	}

	// Rebuild the stored workout from its own rows to default any field the
	// patch leaves out.
	group := make([][]string, 0, len(indices)+1)
	group = append(group, rows[0])
	for _, idx := range indices {
		group = append(group, rows[idx])
	}
	existing := rowsToWorkouts(group, 0)[0]

	merged := domain.Workout{
		WorkoutID: existing.WorkoutID,
		ClientID:  override(existing.ClientID, patch.ClientID),
		Date:      override(existing.Date, patch.Date),
		Exercises: existing.Exercises,
		Notes:     override(existing.Notes, patch.Notes),
		CreatedAt: existing.CreatedAt,
	}
	if patch.Exercises != nil {
		merged.Exercises = *patch.Exercises
	}

	newRows := workoutToRows(merged)
	if len(newRows) == 0 {
		// Refuse to silently erase every set; deletion is its own
		// operation. Nothing has been written yet at this point.
		return nil, repository.ErrEmptyUpdate
	}

	anchor := minIndex(indices)
	if err := r.store.ReplaceRows(ctx, WorkoutsSheet, indices, len(newRows)); err != nil {
		return nil, err
	}
	// The gap starts at array index anchor, i.e. 1-indexed sheet row
	// anchor+1.
	if err := r.store.UpdateRange(ctx, WorkoutsSheet, anchor+1, anchor+len(newRows), newRows); err != nil {
		return nil, err
	}
	return &merged, nil
}

func (r *sheetWorkoutRepository) Delete(ctx context.Context, workoutID string) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	rows, err := r.store.ReadAll(ctx, WorkoutsSheet)
	if err != nil {
		return err
	}
	indices := locateAll(rows, workoutIDColumn, workoutID)
	if len(indices) == 0 {
		return &repository.NotFoundError{Kind: "workout", ID: workoutID, KnownIDs: knownIDs(rows, workoutIDColumn)}
	}
	return r.store.DeleteRows(ctx, WorkoutsSheet, indices)
}

func (r *sheetWorkoutRepository) DeleteByClientID(ctx context.Context, clientID string) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	rows, err := r.store.ReadAll(ctx, WorkoutsSheet)
	if err != nil {
		return err
	}
	indices := locateAll(rows, workoutClientIDColumn, clientID)
	if len(indices) == 0 {
		return nil
	}
	return r.store.DeleteRows(ctx, WorkoutsSheet, indices)
}
