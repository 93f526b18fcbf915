package app

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coachmate/matchday/internal/config"
	"github.com/coachmate/matchday/internal/domain/squad"
	"github.com/coachmate/matchday/internal/domain/user"
	"github.com/coachmate/matchday/internal/infrastructure/repository/memory"
	"github.com/coachmate/matchday/internal/interfaces/httpapi"
	"github.com/coachmate/matchday/internal/platform/logging"
	"github.com/coachmate/matchday/internal/usecase"
)

type acceptAllVerifier struct{}

func (acceptAllVerifier) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	return user.Principal{UserID: "coach-1", Email: "coach@coachmate.example"}, nil
}

type consoleSeqIDGenerator struct {
	next int
}

func (g *consoleSeqIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("id-%03d", g.next), nil
}

// newConsoleTestServer serves the full HTTP surface over seeded memory
// repositories so the console exercises the real wire path.
func newConsoleTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	teams := memory.NewTeamRepository(memory.SeedTeams())
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	games := memory.NewGameRepository(memory.SeedGames())
	events := memory.NewMatchEventRepository()
	reports := memory.NewReportRepository()

	logger := logging.NewNop()
	teamSvc := usecase.NewTeamService(teams, players)
	gameSvc := usecase.NewGameService(games, teams, players, events, reports,
		squad.DefaultRules(), &consoleSeqIDGenerator{}, logger)
	eventSvc := usecase.NewEventService(games, events, &consoleSeqIDGenerator{}, logger)
	reportSvc := usecase.NewReportService(games, events, reports, logger)

	handler := httpapi.NewHandler(teamSvc, gameSvc, eventSvc, reportSvc, logger)
	router := httpapi.NewRouter(handler, acceptAllVerifier{}, logger, []string{"*"}, "job-secret")

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func consoleTestConfig() config.Config {
	return config.Config{
		DraftDebounce: 20 * time.Millisecond,
		// Grace disabled so the test can edit immediately after opening.
		DraftHydrationGrace: -1,
	}
}

func TestDraftConsole_EditsReachTheServer(t *testing.T) {
	srv := newConsoleTestServer(t)

	console := NewDraftConsole(consoleTestConfig(), srv.URL, "session-token", logging.NewNop())
	session, err := console.Open(t.Context(), "gm-u17-001")
	require.NoError(t, err)
	defer session.Close()

	require.Len(t, session.Players(), 16)
	require.Equal(t, squad.DefaultLayoutKey, session.Board().Layout().Key)

	require.NoError(t, session.Board().SetStatus("u17-fwd-01", squad.StatusStarting))
	require.NoError(t, session.Board().Assign("u17-fwd-01", "ls"))

	require.Eventually(t, func() bool {
		g, err := console.Store().GetGame(t.Context(), "gm-u17-001")
		if err != nil || g.LineupDraft == nil {
			return false
		}
		return g.LineupDraft.Rosters["u17-fwd-01"] == squad.StatusStarting &&
			g.LineupDraft.Formation["ls"] == "u17-fwd-01"
	}, 2*time.Second, 25*time.Millisecond, "expected the debounced draft write to land on the server")
}

func TestDraftConsole_HydratesFromTheServer(t *testing.T) {
	srv := newConsoleTestServer(t)

	console := NewDraftConsole(consoleTestConfig(), srv.URL, "session-token", logging.NewNop())

	// First session saves a draft; a later session must see it.
	first, err := console.Open(t.Context(), "gm-u17-001")
	require.NoError(t, err)
	require.NoError(t, first.Board().SetStatus("u17-gk-01", squad.StatusStarting))
	require.NoError(t, first.Board().Assign("u17-gk-01", "gk"))
	require.Eventually(t, func() bool {
		g, err := console.Store().GetGame(t.Context(), "gm-u17-001")
		return err == nil && g.LineupDraft != nil && g.LineupDraft.Formation["gk"] == "u17-gk-01"
	}, 2*time.Second, 25*time.Millisecond)
	first.Close()

	second, err := console.Open(t.Context(), "gm-u17-001")
	require.NoError(t, err)
	defer second.Close()

	occupant, ok := second.Board().SlotOccupant("gk")
	require.True(t, ok)
	require.Equal(t, "u17-gk-01", occupant)
}

func TestDraftConsole_UnknownGame(t *testing.T) {
	srv := newConsoleTestServer(t)

	console := NewDraftConsole(consoleTestConfig(), srv.URL, "session-token", logging.NewNop())
	_, err := console.Open(t.Context(), "gm-missing")
	require.Error(t, err)
}
