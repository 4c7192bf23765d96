package user

import (
	"fmt"
	"sort"
	"strconv"

	apperrors "github.com/louisbranch/recordstore/internal/platform/errors"
	"github.com/louisbranch/recordstore/internal/store"
)

var (
	// ErrDuplicateID indicates an add for an identifier that is already live.
	ErrDuplicateID = apperrors.New(apperrors.CodeDuplicateID, "record identifier already exists")
	// ErrNotFound indicates an update or remove for a missing identifier.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")
)

// Backend is the storage contract repositories bind to.
type Backend = store.Backend[uint64, User]

// Repository manages user records over a backend whose concrete type is
// fixed at construction. Calls dispatch directly on S with no interface
// indirection.
//
// The repository owns its backend exclusively and enforces two invariants:
// no two live records share an identifier, and update/remove require a
// prior add. Failed operations leave the backend unchanged.
type Repository[S Backend] struct {
	backend S
}

// NewRepository creates a repository over the given backend.
func NewRepository[S Backend](backend S) *Repository[S] {
	return &Repository[S]{backend: backend}
}

// Add inserts a new record. It fails with ErrDuplicateID when a record with
// the same identifier is already stored.
func (r *Repository[S]) Add(u User) error {
	if _, ok := r.backend.Get(u.ID); ok {
		return apperrors.WithMetadata(
			apperrors.CodeDuplicateID,
			fmt.Sprintf("user %d already exists", u.ID),
			map[string]string{"id": strconv.FormatUint(u.ID, 10)},
		)
	}
	r.backend.Set(u.ID, u)
	return nil
}

// Get returns the record at id when present. It never fails.
func (r *Repository[S]) Get(id uint64) (User, bool) {
	return r.backend.Get(id)
}

// Update overwrites an existing record, keyed by its identifier. It fails
// with ErrNotFound when no record exists at that identifier.
func (r *Repository[S]) Update(u User) error {
	if _, ok := r.backend.Get(u.ID); !ok {
		return apperrors.WithMetadata(
			apperrors.CodeNotFound,
			fmt.Sprintf("user %d not found", u.ID),
			map[string]string{"id": strconv.FormatUint(u.ID, 10)},
		)
	}
	r.backend.Set(u.ID, u)
	return nil
}

// Remove deletes and returns the record at id. It fails with ErrNotFound
// when no record exists at that identifier.
func (r *Repository[S]) Remove(id uint64) (User, error) {
	removed, ok := r.backend.Remove(id)
	if !ok {
		return User{}, apperrors.WithMetadata(
			apperrors.CodeNotFound,
			fmt.Sprintf("user %d not found", id),
			map[string]string{"id": strconv.FormatUint(id, 10)},
		)
	}
	return removed, nil
}

// Len returns the number of stored records.
func (r *Repository[S]) Len() int {
	return r.backend.Len()
}

// List returns all records ascending by identifier, regardless of backend.
func (r *Repository[S]) List() []User {
	users := make([]User, 0, r.backend.Len())
	r.backend.Each(func(_ uint64, u User) bool {
		users = append(users, u)
		return true
	})
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// DynRepository manages user records over a backend chosen at run time and
// held behind the Backend interface. Repositories with different backends
// can share one collection.
//
// Behavior is identical to Repository: every call delegates to a Repository
// instantiated at the interface type, so both front-ends run the same
// operation logic.
type DynRepository struct {
	inner Repository[Backend]
}

// NewDynRepository creates a repository over any backend implementation.
func NewDynRepository(backend Backend) *DynRepository {
	return &DynRepository{inner: Repository[Backend]{backend: backend}}
}

// Add inserts a new record. It fails with ErrDuplicateID when a record with
// the same identifier is already stored.
func (r *DynRepository) Add(u User) error {
	return r.inner.Add(u)
}

// Get returns the record at id when present. It never fails.
func (r *DynRepository) Get(id uint64) (User, bool) {
	return r.inner.Get(id)
}

// Update overwrites an existing record, keyed by its identifier. It fails
// with ErrNotFound when no record exists at that identifier.
func (r *DynRepository) Update(u User) error {
	return r.inner.Update(u)
}

// Remove deletes and returns the record at id. It fails with ErrNotFound
// when no record exists at that identifier.
func (r *DynRepository) Remove(id uint64) (User, error) {
	return r.inner.Remove(id)
}

// Len returns the number of stored records.
func (r *DynRepository) Len() int {
	return r.inner.Len()
}

// List returns all records ascending by identifier.
func (r *DynRepository) List() []User {
	return r.inner.List()
}
