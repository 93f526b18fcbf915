package report

import "context"

// Repository persists performance reports.
type Repository interface {
	GetByGameAndPlayer(ctx context.Context, gameID, playerID string) (Report, bool, error)
	ListByGame(ctx context.Context, gameID string) ([]Report, error)
	Upsert(ctx context.Context, item Report) error
}
