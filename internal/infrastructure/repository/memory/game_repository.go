package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/coachmate/matchday/internal/domain/game"
	"github.com/coachmate/matchday/internal/domain/squad"
)

type GameRepository struct {
	mu    sync.RWMutex
	items map[string]game.Game
	now   func() time.Time
}

func NewGameRepository(games []game.Game) *GameRepository {
	items := make(map[string]game.Game, len(games))
	for _, g := range games {
		items[g.ID] = cloneGame(g)
	}

	return &GameRepository{items: items, now: time.Now}
}

func (r *GameRepository) GetByID(_ context.Context, gameID string) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[gameID]
	if !ok {
		return game.Game{}, false, nil
	}

	return cloneGame(item), true, nil
}

func (r *GameRepository) ListByTeam(_ context.Context, teamID string) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0)
	for _, item := range r.items {
		if item.TeamID != teamID {
			continue
		}
		out = append(out, cloneGame(item))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *GameRepository) Create(_ context.Context, item game.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneGame(item)
	return nil
}

func (r *GameRepository) SaveDraft(_ context.Context, gameID string, draft squad.Draft) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[gameID]
	if !ok || item.Status != game.StatusScheduled {
		return false, nil
	}

	copied := draft.Clone()
	item.LineupDraft = &copied
	item.UpdatedAt = r.now().UTC()
	r.items[gameID] = item

	return true, nil
}

func (r *GameRepository) CommitLineup(_ context.Context, gameID string, lineup squad.Draft) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[gameID]
	if !ok || item.Status != game.StatusScheduled {
		return false, nil
	}

	copied := lineup.Clone()
	item.Lineup = &copied
	item.LineupDraft = nil
	item.Status = game.StatusPlayed
	item.UpdatedAt = r.now().UTC()
	r.items[gameID] = item

	return true, nil
}

func (r *GameRepository) Finalize(_ context.Context, gameID string, score game.Score, summaries game.TeamSummaries) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[gameID]
	if !ok || item.Status != game.StatusPlayed {
		return false, nil
	}

	final := score
	item.FinalScore = &final
	item.Summaries = summaries
	item.Status = game.StatusDone
	item.UpdatedAt = r.now().UTC()
	r.items[gameID] = item

	return true, nil
}

func cloneGame(g game.Game) game.Game {
	copied := g
	if g.FinalScore != nil {
		score := *g.FinalScore
		copied.FinalScore = &score
	}
	if g.LineupDraft != nil {
		draft := g.LineupDraft.Clone()
		copied.LineupDraft = &draft
	}
	if g.Lineup != nil {
		lineup := g.Lineup.Clone()
		copied.Lineup = &lineup
	}
	return copied
}
