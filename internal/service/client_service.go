// Package service holds the application services sitting between the HTTP
// handlers and the repositories. Services own id minting, timestamps and
// cross-entity rules; row-level concerns stay in the repositories.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"warbak/trainer-app/internal/domain"
	"warbak/trainer-app/internal/repository"
)

// ClientService manages the trainer's client roster.
type ClientService interface {
	Create(ctx context.Context, client domain.Client) (*domain.Client, error)
	GetAll(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, clientID string) (*domain.Client, error)
	Update(ctx context.Context, clientID string, patch domain.ClientPatch) (*domain.Client, error)
	// Delete removes the client; with cascade set, the client's workouts
	// are removed first.
	Delete(ctx context.Context, clientID string, cascade bool) error
}

type clientService struct {
	clientRepo  repository.ClientRepository
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

// NewClientService creates a client service. The workout repository is needed
// for cascading deletes.
func NewClientService(clientRepo repository.ClientRepository, workoutRepo repository.WorkoutRepository) ClientService {
	return &clientService{
		clientRepo:  clientRepo,
		workoutRepo: workoutRepo,
		now:         time.Now,
	}
}

// Create stores the client under a freshly minted id. Whatever id or
// createdAt the caller supplied is discarded.
func (s *clientService) Create(ctx context.Context, client domain.Client) (*domain.Client, error) {
	client.ClientID = fmt.Sprintf("client-%s", uuid.NewString())
	client.CreatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.clientRepo.Create(ctx, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *clientService) GetAll(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.GetAll(ctx)
}

func (s *clientService) GetByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, clientID)
}

func (s *clientService) Update(ctx context.Context, clientID string, patch domain.ClientPatch) (*domain.Client, error) {
	return s.clientRepo.Update(ctx, clientID, patch)
}

// Delete removes the client row. With cascade, the client's workout rows are
// removed before the client row itself.
func (s *clientService) Delete(ctx context.Context, clientID string, cascade bool) error {
	if cascade {
		if err := s.workoutRepo.DeleteByClientID(ctx, clientID); err != nil {
			return err
		}
	}
	return s.clientRepo.Delete(ctx, clientID)
}
