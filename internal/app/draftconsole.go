package app

import (
	"context"

	"github.com/coachmate/matchday/internal/config"
	"github.com/coachmate/matchday/internal/domain/squad"
	"github.com/coachmate/matchday/internal/engine"
	"github.com/coachmate/matchday/internal/infrastructure/gamestore"
	"github.com/coachmate/matchday/internal/platform/logging"
	"github.com/coachmate/matchday/internal/platform/resilience"
)

// DraftConsole binds the lineup editing engine to a remote matchday server:
// game and pool reads come from the gamestore client and debounced draft
// writes flow back through it, tuned by the service config.
type DraftConsole struct {
	store *gamestore.Client
	deps  engine.SessionDeps
}

// NewDraftConsole builds the console for one authenticated coach.
func NewDraftConsole(cfg config.Config, serverURL, accessToken string, logger *logging.Logger) *DraftConsole {
	if logger == nil {
		logger = logging.Default()
	}

	store := gamestore.NewClient(gamestore.ClientConfig{
		BaseURL:        serverURL,
		Token:          accessToken,
		Logger:         logger,
		CircuitBreaker: resilience.DefaultCircuitBreakerConfig(),
	})

	return &DraftConsole{
		store: store,
		deps: engine.SessionDeps{
			Games:   store,
			Players: store,
			Drafts:  store,
			Rules:   squad.DefaultRules(),
			Autosave: engine.AutosaverOptions{
				Debounce:       cfg.DraftDebounce,
				HydrationGrace: cfg.DraftHydrationGrace,
				Logger:         logger,
			},
			Logger: logger,
		},
	}
}

// Open starts the editing session for one game. Draft edits autosave while
// the game is scheduled; played and done games open read-only.
func (c *DraftConsole) Open(ctx context.Context, gameID string) (*engine.Session, error) {
	return engine.OpenSession(ctx, gameID, c.deps)
}

// Store exposes the underlying client for lifecycle calls.
func (c *DraftConsole) Store() *gamestore.Client {
	return c.store
}
