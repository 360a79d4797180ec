package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dkalinin/eduhub/internal/client/models"
	"github.com/dkalinin/eduhub/internal/dbx"
)

const userKey = "user"

// SQLiteStore keeps the session slot in a key-value table of the client
// database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Load reads the persisted user. Missing rows and payloads that do not
// unmarshal into a valid user both yield (nil, nil).
func (s *SQLiteStore) Load(ctx context.Context) (*models.User, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, userKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(value, &user); err != nil {
		return nil, nil
	}
	if !user.Valid() {
		return nil, nil
	}
	return &user, nil
}

// Save replaces the slot with the full user record. The delete+insert pair
// runs in one transaction so a concurrent Load never sees a partial write.
func (s *SQLiteStore) Save(ctx context.Context, user *models.User) error {
	value, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, userKey); err != nil {
			return fmt.Errorf("failed to clear session slot: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO session (key, value) VALUES (?, ?)`, userKey, value); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		return nil
	})
}

// Clear removes the slot.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, userKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
