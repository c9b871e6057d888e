package sheetrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warbak/trainer-app/internal/domain"
	"warbak/trainer-app/internal/repository"
	"warbak/trainer-app/internal/sheets"
)

func strptr(s string) *string { return &s }

func seedClients(store *sheets.MemoryStore, clients ...domain.Client) {
	rows := [][]string{ClientHeaders}
	for _, c := range clients {
		rows = append(rows, clientToRow(c))
	}
	store.Seed(ClientsSheet, rows)
}

func TestClientRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := sheets.NewMemoryStore()
	repo := NewClientRepository(store)

	c := domain.Client{ClientID: "client-1", Name: "Anna", Email: "anna@example.com", CreatedAt: "2024-01-10T09:00:00Z"}
	require.NoError(t, repo.Create(ctx, &c))

	got, err := repo.GetByID(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, &c, got)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Client{c}, all)
}

func TestClientRepositoryCreatesSheetOnFirstUse(t *testing.T) {
	ctx := context.Background()
	store := sheets.NewMemoryStore()
	repo := NewClientRepository(store)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	rows := store.Rows(ClientsSheet)
	require.Len(t, rows, 1)
	assert.Equal(t, ClientHeaders, rows[0])
}

func TestClientRepositoryUpdatePartial(t *testing.T) {
	ctx := context.Background()
	store := sheets.NewMemoryStore()
	repo := NewClientRepository(store)
	seedClients(store,
		domain.Client{ClientID: "client-1", Name: "Anna", Email: "anna@example.com", Phone: "555-0101", Notes: "rehab", CreatedAt: "2024-01-10T09:00:00Z"},
		domain.Client{ClientID: "client-2", Name: "Bartek", CreatedAt: "2024-01-11T09:00:00Z"},
	)

	got, err := repo.Update(ctx, "client-1", domain.ClientPatch{Phone: strptr("555-0202")})
	require.NoError(t, err)

	// Only the patched field changes; the rest keep their stored values.
	assert.Equal(t, "555-0202", got.Phone)
	assert.Equal(t, "Anna", got.Name)
	assert.Equal(t, "anna@example.com", got.Email)
	assert.Equal(t, "rehab", got.Notes)
	assert.Equal(t, "2024-01-10T09:00:00Z", got.CreatedAt)

	stored, err := repo.GetByID(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, got, stored)

	// Neighbors are untouched.
	other, err := repo.GetByID(ctx, "client-2")
	require.NoError(t, err)
	assert.Equal(t, "Bartek", other.Name)
}

func TestClientRepositoryUpdateClearsWithEmptyString(t *testing.T) {
	ctx := context.Background()
	store := sheets.NewMemoryStore()
	repo := NewClientRepository(store)
	seedClients(store, domain.Client{ClientID: "client-1", Name: "Anna", Notes: "rehab"})

	got, err := repo.Update(ctx, "client-1", domain.ClientPatch{Notes: strptr("")})
	require.NoError(t, err)
	assert.Empty(t, got.Notes)
	assert.Equal(t, "Anna", got.Name)
}

func TestClientRepositoryNotFoundListsKnownIDs(t *testing.T) {
	ctx := context.Background()
	store := sheets.NewMemoryStore()
	repo := NewClientRepository(store)
	seedClients(store,
		domain.Client{ClientID: "client-1"},
		domain.Client{ClientID: "client-2"},
	)

	_, err := repo.GetByID(ctx, "client-404")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	var nf *repository.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "client", nf.Kind)
	assert.Equal(t, "client-404", nf.ID)
	assert.Equal(t, []string{"client-1", "client-2"}, nf.KnownIDs)
	assert.Contains(t, err.Error(), "client-1, client-2")
}

func TestClientRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	store := sheets.NewMemoryStore()
	repo := NewClientRepository(store)
	seedClients(store,
		domain.Client{ClientID: "client-1", Name: "Anna"},
		domain.Client{ClientID: "client-2", Name: "Bartek"},
	)

	require.NoError(t, repo.Delete(ctx, "client-1"))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "client-2", all[0].ClientID)

	err = repo.Delete(ctx, "client-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTrainerRepository(t *testing.T) {
	ctx := context.Background()
	store := sheets.NewMemoryStore()
	repo := NewTrainerRepository(store)

	tr := domain.Trainer{
		TrainerID:    "trainer-1",
		Name:         "Coach",
		Email:        "coach@example.com",
		PasswordHash: "$2a$10$abc",
		CreatedAt:    "2024-01-01T00:00:00Z",
	}
	require.NoError(t, repo.Create(ctx, &tr))

	byEmail, err := repo.GetByEmail(ctx, "Coach@Example.com")
	require.NoError(t, err)
	assert.Equal(t, &tr, byEmail)

	byID, err := repo.GetByID(ctx, "trainer-1")
	require.NoError(t, err)
	assert.Equal(t, &tr, byID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByID(ctx, "trainer-404")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestInitializeTables(t *testing.T) {
	ctx := context.Background()
	store := sheets.NewMemoryStore()

	require.NoError(t, InitializeTables(ctx, store))
	names, err := store.ListSheetNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{ClientsSheet, WorkoutsSheet, TrainersSheet}, names)
	assert.Equal(t, 3, store.HeaderWrites)

	// Re-running writes nothing new.
	require.NoError(t, InitializeTables(ctx, store))
	assert.Equal(t, 3, store.HeaderWrites)
}
