package engine

import (
	"context"
	"fmt"

	"github.com/coachmate/matchday/internal/domain/game"
	"github.com/coachmate/matchday/internal/domain/player"
	"github.com/coachmate/matchday/internal/domain/squad"
	"github.com/coachmate/matchday/internal/platform/logging"
)

// GameLoader fetches the working copy of a game from the backing store.
type GameLoader interface {
	GetByID(ctx context.Context, gameID string) (game.Game, bool, error)
}

// PlayerPool supplies the read-only eligible player pool of a team. Higher
// layers typically back it with the shared entity cache.
type PlayerPool interface {
	ListByTeam(ctx context.Context, teamID string) ([]player.Player, error)
}

type SessionDeps struct {
	Games    GameLoader
	Players  PlayerPool
	Drafts   DraftWriter
	Rules    squad.Rules
	Autosave AutosaverOptions
	Logger   *logging.Logger
}

// Session is the single active editing surface for one game. It owns the
// lineup board, wires board changes into the autosaver while the game is
// scheduled, and answers validation queries for lifecycle transitions.
type Session struct {
	game   game.Game
	pool   []player.Player
	board  *squad.Board
	saver  *Autosaver
	rules  squad.Rules
	logger *logging.Logger
}

// OpenSession loads the game and hydrates the board. Hydration priority: the
// saved draft while scheduled, then the committed lineup, then an empty board
// with every team player defaulting to not-in-squad.
func OpenSession(ctx context.Context, gameID string, deps SessionDeps) (*Session, error) {
	if deps.Logger == nil {
		deps.Logger = logging.Default()
	}
	if deps.Rules == (squad.Rules{}) {
		deps.Rules = squad.DefaultRules()
	}

	g, exists, err := deps.Games.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", gameID, err)
	}
	if !exists {
		return nil, fmt.Errorf("game %s not found", gameID)
	}

	pool, err := deps.Players.ListByTeam(ctx, g.TeamID)
	if err != nil {
		return nil, fmt.Errorf("load player pool for team %s: %w", g.TeamID, err)
	}

	source := hydrationSource(g)
	layoutKey := squad.DefaultLayoutKey
	if source != nil {
		if _, ok := squad.LayoutByKey(source.FormationType); ok {
			layoutKey = source.FormationType
		}
	}

	playerIDs := make([]string, 0, len(pool))
	for _, p := range pool {
		playerIDs = append(playerIDs, p.ID)
	}
	board := squad.NewBoard(squad.MustLayout(layoutKey), playerIDs)
	if source != nil {
		if err := board.Hydrate(*source); err != nil {
			deps.Logger.WarnContext(ctx, "discarding unusable lineup state",
				"game_id", gameID, "error", err)
		}
	}

	s := &Session{
		game:   g,
		pool:   pool,
		board:  board,
		rules:  deps.Rules,
		logger: deps.Logger,
	}

	if g.Status == game.StatusScheduled && deps.Drafts != nil {
		s.saver = NewAutosaver(ctx, deps.Drafts, gameID, deps.Autosave)
		board.OnChange(func() {
			s.saver.Observe(board.Snapshot())
		})
		// Seed the baseline inside the grace window so hydration itself is
		// never mistaken for a user edit.
		s.saver.Observe(board.Snapshot())
	}

	return s, nil
}

func hydrationSource(g game.Game) *squad.Draft {
	if g.Status == game.StatusScheduled && g.LineupDraft != nil {
		return g.LineupDraft
	}
	if g.Lineup != nil {
		return g.Lineup
	}
	return nil
}

func (s *Session) Game() game.Game {
	return s.game
}

func (s *Session) Board() *squad.Board {
	return s.board
}

func (s *Session) Players() []player.Player {
	return append([]player.Player(nil), s.pool...)
}

// AutoBuild delegates to the board with the session's player pool.
func (s *Session) AutoBuild() {
	s.board.AutoBuild(s.pool)
}

// Validate runs the kickoff squad checks over the current board state.
func (s *Session) Validate() squad.Result {
	return squad.ValidateMatchday(s.board.Layout(), s.board.Snapshot(), s.rules)
}

// SaveState surfaces the autosaver status, or idle when no autosaver is
// active (played and done games do not persist drafts).
func (s *Session) SaveState() SaveState {
	if s.saver == nil {
		return SaveIdle
	}
	return s.saver.State()
}

// Close tears down the session; any in-flight draft write is abandoned.
func (s *Session) Close() {
	if s.saver != nil {
		s.saver.Close()
	}
}
