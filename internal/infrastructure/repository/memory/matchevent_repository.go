package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/coachmate/matchday/internal/domain/matchevent"
)

type MatchEventRepository struct {
	mu    sync.RWMutex
	items map[string]map[string]matchevent.Event
}

func NewMatchEventRepository() *MatchEventRepository {
	return &MatchEventRepository{items: make(map[string]map[string]matchevent.Event)}
}

func (r *MatchEventRepository) ListByGame(_ context.Context, gameID string) ([]matchevent.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byGame := r.items[gameID]
	out := make([]matchevent.Event, 0, len(byGame))
	for _, item := range byGame {
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *MatchEventRepository) GetByID(_ context.Context, gameID, eventID string) (matchevent.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[gameID][eventID]
	if !ok {
		return matchevent.Event{}, false, nil
	}

	return item, true, nil
}

func (r *MatchEventRepository) Create(_ context.Context, item matchevent.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.GameID]; !ok {
		r.items[item.GameID] = make(map[string]matchevent.Event)
	}
	r.items[item.GameID][item.ID] = item

	return nil
}

func (r *MatchEventRepository) Update(_ context.Context, item matchevent.Event) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.GameID][item.ID]; !ok {
		return false, nil
	}
	r.items[item.GameID][item.ID] = item

	return true, nil
}

func (r *MatchEventRepository) Delete(_ context.Context, gameID, eventID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[gameID][eventID]; !ok {
		return false, nil
	}
	delete(r.items[gameID], eventID)

	return true, nil
}
