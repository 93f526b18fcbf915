package player

import "context"

// Repository exposes the read-only player pool of a team.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	GetByIDs(ctx context.Context, teamID string, ids []string) ([]Player, error)
}
