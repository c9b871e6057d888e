package sheetrepo

import (
	"context"
	"strings"

	"warbak/trainer-app/internal/domain"
	"warbak/trainer-app/internal/repository"
	"warbak/trainer-app/internal/sheets"
)

const trainerEmailColumn = 2

// sheetTrainerRepository implements repository.TrainerRepository on a
// sheets.Store, one row per trainer account.
type sheetTrainerRepository struct {
	store sheets.Store
}

// NewTrainerRepository creates a trainer repository backed by the given
// store.
func NewTrainerRepository(store sheets.Store) repository.TrainerRepository {
	return &sheetTrainerRepository{store: store}
}

func (r *sheetTrainerRepository) ensure(ctx context.Context) error {
	if err := r.store.EnsureSheet(ctx, TrainersSheet); err != nil {
		return err
	}
	return r.store.EnsureHeaders(ctx, TrainersSheet, TrainerHeaders)
}

func (r *sheetTrainerRepository) Create(ctx context.Context, trainer *domain.Trainer) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	return r.store.AppendRows(ctx, TrainersSheet, [][]string{trainerToRow(*trainer)})
}

// GetByEmail finds an account by email, compared case-insensitively the way
// mail addresses are entered in practice.
func (r *sheetTrainerRepository) GetByEmail(ctx context.Context, email string) (*domain.Trainer, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := r.store.ReadAll(ctx, TrainersSheet)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if v := cell(row, trainerEmailColumn); v != "" && strings.EqualFold(v, email) {
			return rowToTrainer(row), nil
		}
	}
	return nil, &repository.NotFoundError{Kind: "trainer", ID: email}
}

func (r *sheetTrainerRepository) GetByID(ctx context.Context, trainerID string) (*domain.Trainer, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := r.store.ReadAll(ctx, TrainersSheet)
	if err != nil {
		return nil, err
	}
	idx := locateFirst(rows, 0, trainerID)
	if idx == -1 {
		return nil, &repository.NotFoundError{Kind: "trainer", ID: trainerID, KnownIDs: knownIDs(rows, 0)}
	}
	return rowToTrainer(rows[idx]), nil
}
