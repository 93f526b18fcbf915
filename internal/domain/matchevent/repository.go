package matchevent

import "context"

// Repository persists match events for played games.
type Repository interface {
	ListByGame(ctx context.Context, gameID string) ([]Event, error)
	GetByID(ctx context.Context, gameID, eventID string) (Event, bool, error)
	Create(ctx context.Context, item Event) error
	Update(ctx context.Context, item Event) (bool, error)
	Delete(ctx context.Context, gameID, eventID string) (bool, error)
}
