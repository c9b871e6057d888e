package sheetrepo

import (
	"context"

	"warbak/trainer-app/internal/domain"
	"warbak/trainer-app/internal/repository"
	"warbak/trainer-app/internal/sheets"
)

// sheetClientRepository implements repository.ClientRepository on a
// sheets.Store, one row per client in the Clients sheet.
type sheetClientRepository struct {
	store sheets.Store
}

// NewClientRepository creates a client repository backed by the given store.
func NewClientRepository(store sheets.Store) repository.ClientRepository {
	return &sheetClientRepository{store: store}
}

// ensure makes the Clients sheet and its headers exist before any access, so
// a freshly shared spreadsheet works without manual setup.
func (r *sheetClientRepository) ensure(ctx context.Context) error {
	if err := r.store.EnsureSheet(ctx, ClientsSheet); err != nil {
		return err
	}
	return r.store.EnsureHeaders(ctx, ClientsSheet, ClientHeaders)
}

func (r *sheetClientRepository) Create(ctx context.Context, client *domain.Client) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	return r.store.AppendRows(ctx, ClientsSheet, [][]string{clientToRow(*client)})
}

func (r *sheetClientRepository) GetAll(ctx context.Context) ([]domain.Client, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := r.store.ReadAll(ctx, ClientsSheet)
	if err != nil {
		return nil, err
	}
	return rowsToClients(rows), nil
}

func (r *sheetClientRepository) GetByID(ctx context.Context, clientID string) (*domain.Client, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := r.store.ReadAll(ctx, ClientsSheet)
	if err != nil {
		return nil, err
	}
	idx := locateFirst(rows, 0, clientID)
	if idx == -1 {
		return nil, &repository.NotFoundError{Kind: "client", ID: clientID, KnownIDs: knownIDs(rows, 0)}
	}
	return rowToClient(rows[idx]), nil
}

// Update merges the patch over the stored record and rewrites the located row
// in place. ClientID and CreatedAt always keep their stored values, whatever
// the patch says.
func (r *sheetClientRepository) Update(ctx context.Context, clientID string, patch domain.ClientPatch) (*domain.Client, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := r.store.ReadAll(ctx, ClientsSheet)
	if err != nil {
		return nil, err
	}
	idx := locateFirst(rows, 0, clientID)
	if idx == -1 {
		return nil, &repository.NotFoundError{Kind: "client", ID: clientID, KnownIDs: knownIDs(rows, 0)}
	}

	existing := rowToClient(rows[idx])
	merged := domain.Client{
		ClientID:  existing.ClientID,
		Name:      override(existing.Name, patch.Name),
		Email:     override(existing.Email, patch.Email),
		Phone:     override(existing.Phone, patch.Phone),
		Notes:     override(existing.Notes, patch.Notes),
		CreatedAt: existing.CreatedAt,
	}

	// Array index idx corresponds to 1-indexed sheet row idx+1 (the header
	// occupies array index 0 / sheet row 1).
	sheetRow := idx + 1
	if err := r.store.UpdateRange(ctx, ClientsSheet, sheetRow, sheetRow, [][]string{clientToRow(merged)}); err != nil {
		return nil, err
	}
	return &merged, nil
}

func (r *sheetClientRepository) Delete(ctx context.Context, clientID string) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	rows, err := r.store.ReadAll(ctx, ClientsSheet)
	if err != nil {
		return err
	}
	idx := locateFirst(rows, 0, clientID)
	if idx == -1 {
		return &repository.NotFoundError{Kind: "client", ID: clientID, KnownIDs: knownIDs(rows, 0)}
	}
	return r.store.DeleteRows(ctx, ClientsSheet, []int{idx})
}

// override returns *patch when the patch field was supplied, else the stored
// value.
func override(stored string, patch *string) string {
	if patch != nil {
		return *patch
	}
	return stored
}
