package game

import (
	"context"

	"github.com/coachmate/matchday/internal/domain/squad"
)

// Repository persists games and their guarded lifecycle writes.
//
// SaveDraft, CommitLineup and Finalize return false without error when no
// game in the required status matched; callers map that to a conflict. The
// guards keep draft writes meaningless for played games and transitions
// irreversible at the storage layer, not only in the service.
type Repository interface {
	GetByID(ctx context.Context, gameID string) (Game, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]Game, error)
	Create(ctx context.Context, item Game) error

	// SaveDraft overwrites the lineup draft of a scheduled game.
	SaveDraft(ctx context.Context, gameID string, draft squad.Draft) (bool, error)

	// CommitLineup promotes the draft composite to the authoritative roster,
	// clears the stale draft and moves the game to played.
	CommitLineup(ctx context.Context, gameID string, lineup squad.Draft) (bool, error)

	// Finalize records the final score and summaries and moves a played game
	// to done.
	Finalize(ctx context.Context, gameID string, score Score, summaries TeamSummaries) (bool, error)
}
