package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"warbak/trainer-app/internal/domain"
)

// Sentinel errors for the repository layer. Callers discriminate with
// errors.Is; the message is never part of the contract.
var (
	// ErrNotFound matches any NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrEmptyUpdate is returned when a workout update would leave the
	// workout with zero sets without explicitly replacing them.
	ErrEmptyUpdate = errors.New("empty update")
)

// NotFoundError reports a mutation against an entity id that is not present
// in its sheet. KnownIDs carries up to ten other ids of the same kind as a
// diagnostic aid.
type NotFoundError struct {
	Kind     string // "client", "workout" or "trainer"
	ID       string
	KnownIDs []string
}

func (e *NotFoundError) Error() string {
	known := "none"
	if len(e.KnownIDs) > 0 {
		known = strings.Join(e.KnownIDs, ", ")
	}
	return fmt.Sprintf("%s with ID %q not found (known %s IDs: %s)", e.Kind, e.ID, e.Kind, known)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ClientRepository persists client records, one sheet row per client.
type ClientRepository interface {
	// Create appends the already-populated client as a new row.
	Create(ctx context.Context, client *domain.Client) error
	// GetAll returns every stored client in row order.
	GetAll(ctx context.Context) ([]domain.Client, error)
	// GetByID returns the first row matching the id.
	GetByID(ctx context.Context, clientID string) (*domain.Client, error)
	// Update merges the patch over the stored record (ClientID and
	// CreatedAt always kept) and rewrites the row in place.
	Update(ctx context.Context, clientID string, patch domain.ClientPatch) (*domain.Client, error)
	// Delete removes the client's row.
	Delete(ctx context.Context, clientID string) error
}

// WorkoutRepository persists workouts, one sheet row per set, grouped by
// workout id on read.
type WorkoutRepository interface {
	// Create appends one row per set; a workout with no sets appends
	// nothing.
	Create(ctx context.Context, workout *domain.Workout) error
	// GetAll returns every stored workout, grouped, in first-seen order.
	GetAll(ctx context.Context) ([]domain.Workout, error)
	// GetByClientID returns the client's workouts in first-seen order.
	GetByClientID(ctx context.Context, clientID string) ([]domain.Workout, error)
	// Update merges the patch over the stored workout (WorkoutID and
	// CreatedAt always kept) and replaces the whole row group, which may
	// grow or shrink. A merge resolving to zero rows fails with
	// ErrEmptyUpdate.
	Update(ctx context.Context, workoutID string, patch domain.WorkoutPatch) (*domain.Workout, error)
	// Delete removes all rows of the workout in one batch.
	Delete(ctx context.Context, workoutID string) error
	// DeleteByClientID removes every workout row belonging to the client.
	// Deleting for a client with no workouts is a no-op, not an error.
	DeleteByClientID(ctx context.Context, clientID string) error
}

// TrainerRepository persists trainer login accounts.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) error
	GetByEmail(ctx context.Context, email string) (*domain.Trainer, error)
	GetByID(ctx context.Context, trainerID string) (*domain.Trainer, error)
}
