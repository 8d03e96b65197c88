package storage

import (
	"context"

	"github.com/jlattimer/skillrank/internal/model"
)

// Storage defines the interface for roster persistence. The roster is
// persisted as a single flat snapshot: every save overwrites the whole
// player list, never an incremental patch.
type Storage interface {
	// LoadRoster returns the persisted roster snapshot.
	// Returns model.ErrSnapshotNotFound if nothing has been saved yet.
	LoadRoster(ctx context.Context) ([]model.Player, error)

	// SaveRoster overwrites the persisted roster snapshot.
	SaveRoster(ctx context.Context, players []model.Player) error
}
