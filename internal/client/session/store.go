// Package session holds the single durable slot identifying the currently
// authenticated user. It is the only place any part of the client may ask
// "who is logged in"; views and workflows receive a Store by injection.
package session

import (
	"context"

	"github.com/dkalinin/eduhub/internal/client/models"
)

// Store persists the current user across process restarts.
//
// Contract:
//   - Load returns (nil, nil) when no session exists or the persisted
//     payload is malformed; the caller does not distinguish the two.
//     A non-nil error means the storage itself failed.
//   - Save overwrites the slot with the full record.
//   - Clear removes the slot (logout).
//
// The slot is process-local shared state with last-writer-wins semantics;
// two concurrent clients pointed at the same database can overwrite each
// other and no coordination is attempted.
type Store interface {
	Load(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	Clear(ctx context.Context) error
}
