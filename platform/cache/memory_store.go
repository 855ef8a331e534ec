package cache

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/saimerit/monopoly-game/app/models"
)

// MemoryStore is an in-process Store for tests and single-node runs. Writes
// compare the version read against the stored one.
type MemoryStore struct {
	mu      sync.Mutex
	games   map[string][]byte
	retries int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{games: make(map[string][]byte), retries: DefaultRetries}
}

func (s *MemoryStore) Create(_ context.Context, g *models.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[g.Id]; ok {
		return ErrExists
	}
	s.games[g.Id] = data
	return nil
}

func (s *MemoryStore) Load(_ context.Context, id string) (*models.Game, error) {
	s.mu.Lock()
	data, ok := s.games[id]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	var g models.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, fn UpdateFunc) (*models.Game, error) {
	for attempt := 0; attempt < s.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur, err := s.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		base := cur.Version
		next, err := fn(cur)
		if err != nil {
			return nil, err
		}
		next.Version = base + 1
		data, err := json.Marshal(next)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		var stored models.Game
		if raw, ok := s.games[id]; ok {
			if err := json.Unmarshal(raw, &stored); err != nil {
				s.mu.Unlock()
				return nil, err
			}
		} else {
			s.mu.Unlock()
			return nil, ErrNotFound
		}
		if stored.Version != base {
			s.mu.Unlock()
			continue
		}
		s.games[id] = data
		s.mu.Unlock()
		return next, nil
	}
	return nil, ErrConflict
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// Balances reads money straight from the stored document.
func (s *MemoryStore) Balances(ctx context.Context, id string) (map[string]int, error) {
	g, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return balances(g), nil
}
