package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/louisbranch/recordstore/internal/platform/errors"
	sqlitemigrate "github.com/louisbranch/recordstore/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/recordstore/internal/user"
	"github.com/louisbranch/recordstore/internal/user/storage"
	"github.com/louisbranch/recordstore/internal/user/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// errUnconfigured reports use of a store that was never opened.
var errUnconfigured = apperrors.New(apperrors.CodeStorageUnavailable, "storage is not configured")

// Store provides SQLite-backed persistence for user records.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a user SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutUser inserts or overwrites a record by its identifier.
func (s *Store) PutUser(ctx context.Context, u user.User) error {
	if s == nil || s.sqlDB == nil {
		return errUnconfigured
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO users (id, email, activated, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   email = excluded.email,
		   activated = excluded.activated,
		   updated_at = excluded.updated_at`,
		int64(u.ID),
		u.Email,
		boolToInt(u.Activated),
		u.CreatedAt.UTC().UnixMilli(),
		u.UpdatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorageUnavailable, "put user", err)
	}
	return nil
}

// GetUser returns the record at id, or storage.ErrNotFound.
func (s *Store) GetUser(ctx context.Context, id uint64) (user.User, error) {
	if s == nil || s.sqlDB == nil {
		return user.User{}, errUnconfigured
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, email, activated, created_at, updated_at FROM users WHERE id = ?`,
		int64(id),
	)
	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, storage.ErrNotFound
		}
		return user.User{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "get user", err)
	}
	return u, nil
}

// DeleteUser removes the record at id, or fails with storage.ErrNotFound.
func (s *Store) DeleteUser(ctx context.Context, id uint64) error {
	if s == nil || s.sqlDB == nil {
		return errUnconfigured
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, int64(id))
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorageUnavailable, "delete user", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorageUnavailable, "delete user rows affected", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListUsers returns all records ascending by identifier.
func (s *Store) ListUsers(ctx context.Context) ([]user.User, error) {
	if s == nil || s.sqlDB == nil {
		return nil, errUnconfigured
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, email, activated, created_at, updated_at FROM users ORDER BY id ASC`,
	)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorageUnavailable, "list users", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeStorageUnavailable, "scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorageUnavailable, "list users", err)
	}
	return users, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (user.User, error) {
	var u user.User
	var id int64
	var activated int64
	var createdAt int64
	var updatedAt int64
	if err := row.Scan(&id, &u.Email, &activated, &createdAt, &updatedAt); err != nil {
		return user.User{}, err
	}
	u.ID = uint64(id)
	u.Activated = activated != 0
	u.CreatedAt = unixMillisToTime(createdAt)
	u.UpdatedAt = unixMillisToTime(updatedAt)
	return u, nil
}

func boolToInt(value bool) int64 {
	if value {
		return 1
	}
	return 0
}

func unixMillisToTime(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}
