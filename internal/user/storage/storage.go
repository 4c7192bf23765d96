package storage

import (
	"context"

	apperrors "github.com/louisbranch/recordstore/internal/platform/errors"
	"github.com/louisbranch/recordstore/internal/user"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// Store persists user records.
type Store interface {
	// PutUser inserts or overwrites a record by its identifier.
	PutUser(ctx context.Context, u user.User) error
	// GetUser returns the record at id, or ErrNotFound.
	GetUser(ctx context.Context, id uint64) (user.User, error)
	// DeleteUser removes the record at id, or fails with ErrNotFound.
	DeleteUser(ctx context.Context, id uint64) error
	// ListUsers returns all records ascending by identifier.
	ListUsers(ctx context.Context) ([]user.User, error)
	Close() error
}
