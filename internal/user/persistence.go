package user

import (
	"context"
	"fmt"
)

// Persister is the subset of the persistence contract the repository
// bridges need. The Store interface in internal/user/storage satisfies it.
type Persister interface {
	PutUser(ctx context.Context, u User) error
	ListUsers(ctx context.Context) ([]User, error)
}

// SaveAll writes every record into st, overwriting stored records that
// share an identifier.
func (r *Repository[S]) SaveAll(ctx context.Context, st Persister) error {
	for _, u := range r.List() {
		if err := st.PutUser(ctx, u); err != nil {
			return fmt.Errorf("save user %d: %w", u.ID, err)
		}
	}
	return nil
}

// SaveAll writes every record into st, overwriting stored records that
// share an identifier.
func (r *DynRepository) SaveAll(ctx context.Context, st Persister) error {
	return r.inner.SaveAll(ctx, st)
}

// Load hydrates backend from st and returns a repository over it.
// The backend must be empty; records already present surface as
// ErrDuplicateID.
func Load[S Backend](ctx context.Context, st Persister, backend S) (*Repository[S], error) {
	users, err := st.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	r := NewRepository(backend)
	for _, u := range users {
		if err := r.Add(u); err != nil {
			return nil, fmt.Errorf("load user %d: %w", u.ID, err)
		}
	}
	return r, nil
}

// LoadDyn hydrates backend from st and returns a run-time-bound repository
// over it. The backend must be empty.
func LoadDyn(ctx context.Context, st Persister, backend Backend) (*DynRepository, error) {
	inner, err := Load(ctx, st, backend)
	if err != nil {
		return nil, err
	}
	return &DynRepository{inner: *inner}, nil
}
