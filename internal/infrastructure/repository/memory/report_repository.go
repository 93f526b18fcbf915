package memory

import (
	"context"
	"sync"

	"github.com/coachmate/matchday/internal/domain/report"
)

type ReportRepository struct {
	mu    sync.RWMutex
	items map[string]report.Report
}

func NewReportRepository() *ReportRepository {
	return &ReportRepository{items: make(map[string]report.Report)}
}

func (r *ReportRepository) GetByGameAndPlayer(_ context.Context, gameID, playerID string) (report.Report, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[reportKey(gameID, playerID)]
	if !ok {
		return report.Report{}, false, nil
	}

	return item, true, nil
}

func (r *ReportRepository) ListByGame(_ context.Context, gameID string) ([]report.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]report.Report, 0)
	for _, item := range r.items {
		if item.GameID != gameID {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *ReportRepository) Upsert(_ context.Context, item report.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[reportKey(item.GameID, item.PlayerID)] = item
	return nil
}

func reportKey(gameID, playerID string) string {
	return gameID + "::" + playerID
}
