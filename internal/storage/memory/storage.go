package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jlattimer/skillrank/internal/model"
	"github.com/jlattimer/skillrank/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// The snapshot is held in serialized form so reads can never observe a
// shared mutable player list.
type Storage struct {
	mu       sync.RWMutex
	snapshot []byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadRoster(ctx context.Context) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, model.ErrSnapshotNotFound
	}

	var players []model.Player
	if err := json.Unmarshal(s.snapshot, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (s *Storage) SaveRoster(ctx context.Context, players []model.Player) error {
	data, err := json.Marshal(players)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = data
	return nil
}
