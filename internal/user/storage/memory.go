package storage

import (
	"context"
	"errors"

	"github.com/louisbranch/recordstore/internal/store"
	"github.com/louisbranch/recordstore/internal/user"
)

// Memory stores user records in memory. It is safe for concurrent use.
type Memory struct {
	backend *store.Guarded[uint64, user.User]
}

// NewMemory creates a new in-memory user store. Records are kept in an
// ordered backend so listing needs no extra sort.
func NewMemory() *Memory {
	return &Memory{
		backend: store.Guard[uint64, user.User](store.NewOrdered[uint64, user.User]()),
	}
}

// PutUser inserts or overwrites a record by its identifier.
func (m *Memory) PutUser(ctx context.Context, u user.User) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if m == nil {
		return errors.New("user store is required")
	}

	m.backend.Set(u.ID, u)
	return nil
}

// GetUser returns the record at id, or ErrNotFound.
func (m *Memory) GetUser(ctx context.Context, id uint64) (user.User, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return user.User{}, err
		}
	}
	if m == nil {
		return user.User{}, errors.New("user store is required")
	}

	u, ok := m.backend.Get(id)
	if !ok {
		return user.User{}, ErrNotFound
	}
	return u, nil
}

// DeleteUser removes the record at id, or fails with ErrNotFound.
func (m *Memory) DeleteUser(ctx context.Context, id uint64) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if m == nil {
		return errors.New("user store is required")
	}

	if _, ok := m.backend.Remove(id); !ok {
		return ErrNotFound
	}
	return nil
}

// ListUsers returns all records ascending by identifier.
func (m *Memory) ListUsers(ctx context.Context) ([]user.User, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if m == nil {
		return nil, errors.New("user store is required")
	}

	users := make([]user.User, 0, m.backend.Len())
	m.backend.Each(func(_ uint64, u user.User) bool {
		users = append(users, u)
		return true
	})
	return users, nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error {
	return nil
}
