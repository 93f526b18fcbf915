package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coachmate/matchday/internal/domain/game"
	"github.com/coachmate/matchday/internal/domain/squad"
	"github.com/coachmate/matchday/internal/infrastructure/repository/memory"
	"github.com/coachmate/matchday/internal/platform/logging"
)

func testSessionDeps(writer DraftWriter) SessionDeps {
	return SessionDeps{
		Games:   memory.NewGameRepository(memory.SeedGames()),
		Players: memory.NewPlayerRepository(memory.SeedPlayers()),
		Drafts:  writer,
		Autosave: AutosaverOptions{
			Debounce:       20 * time.Millisecond,
			HydrationGrace: 500 * time.Millisecond,
			Logger:         logging.NewNop(),
		},
		Logger: logging.NewNop(),
	}
}

func TestOpenSession_DefaultsToEmptyBoard(t *testing.T) {
	writer := &recordingWriter{}
	session, err := OpenSession(t.Context(), "gm-u17-001", testSessionDeps(writer))
	require.NoError(t, err)
	defer session.Close()

	require.Equal(t, squad.DefaultLayoutKey, session.Board().Layout().Key)
	require.Empty(t, session.Board().Starting())
	require.Equal(t, SaveIdle, session.SaveState())
	require.Len(t, session.Players(), 16)
}

func TestOpenSession_HydratesSavedDraft(t *testing.T) {
	games := memory.NewGameRepository(memory.SeedGames())

	draft := squad.NewDraft("1-4-3-3")
	draft.Rosters["u17-gk-01"] = squad.StatusStarting
	draft.Rosters["u17-mid-05"] = squad.StatusBench
	draft.Formation["gk"] = "u17-gk-01"

	saved, err := games.SaveDraft(t.Context(), "gm-u17-001", draft)
	require.NoError(t, err)
	require.True(t, saved)

	deps := testSessionDeps(&recordingWriter{})
	deps.Games = games

	session, err := OpenSession(t.Context(), "gm-u17-001", deps)
	require.NoError(t, err)
	defer session.Close()

	board := session.Board()
	require.Equal(t, "1-4-3-3", board.Layout().Key)

	occupant, ok := board.SlotOccupant("gk")
	require.True(t, ok)
	require.Equal(t, "u17-gk-01", occupant)
	require.Equal(t, squad.StatusBench, board.Status("u17-mid-05"))
}

func TestOpenSession_HydrationDoesNotTriggerAutosave(t *testing.T) {
	games := memory.NewGameRepository(memory.SeedGames())

	draft := squad.NewDraft(squad.DefaultLayoutKey)
	draft.Rosters["u17-fwd-01"] = squad.StatusStarting
	draft.Formation["ls"] = "u17-fwd-01"
	_, err := games.SaveDraft(t.Context(), "gm-u17-001", draft)
	require.NoError(t, err)

	writer := &recordingWriter{}
	deps := testSessionDeps(writer)
	deps.Games = games

	session, err := OpenSession(t.Context(), "gm-u17-001", deps)
	require.NoError(t, err)
	defer session.Close()

	time.Sleep(80 * time.Millisecond)
	require.Empty(t, writer.saved(), "expected opening a session never to write a draft by itself")
}

func TestSession_EditSchedulesAutosave(t *testing.T) {
	writer := &recordingWriter{}
	deps := testSessionDeps(writer)
	deps.Autosave.HydrationGrace = -1

	session, err := OpenSession(t.Context(), "gm-u17-001", deps)
	require.NoError(t, err)
	defer session.Close()

	require.NoError(t, session.Board().SetStatus("u17-mid-01", squad.StatusBench))

	require.Eventually(t, func() bool {
		return len(writer.saved()) == 1
	}, time.Second, 5*time.Millisecond)

	require.Equal(t, squad.StatusBench, writer.saved()[0].Rosters["u17-mid-01"])
}

func TestOpenSession_PlayedGameHasNoAutosaver(t *testing.T) {
	seeded := memory.SeedGames()
	lineup := squad.NewDraft(squad.DefaultLayoutKey)
	lineup.Rosters["u17-gk-01"] = squad.StatusStarting
	lineup.Formation["gk"] = "u17-gk-01"
	seeded[0].Status = game.StatusPlayed
	seeded[0].Lineup = &lineup

	writer := &recordingWriter{}
	deps := testSessionDeps(writer)
	deps.Games = memory.NewGameRepository(seeded)
	deps.Autosave.HydrationGrace = -1

	session, err := OpenSession(t.Context(), seeded[0].ID, deps)
	require.NoError(t, err)
	defer session.Close()

	require.Equal(t, SaveIdle, session.SaveState())

	require.NoError(t, session.Board().SetStatus("u17-mid-01", squad.StatusBench))
	time.Sleep(80 * time.Millisecond)
	require.Empty(t, writer.saved(), "expected a played game never to persist draft edits")
	require.Equal(t, SaveIdle, session.SaveState())
}

func TestSession_ValidateReflectsBoardState(t *testing.T) {
	session, err := OpenSession(t.Context(), "gm-u17-001", testSessionDeps(&recordingWriter{}))
	require.NoError(t, err)
	defer session.Close()

	result := session.Validate()
	require.False(t, result.IsValid, "expected an empty board to fail the kickoff checks")

	board := session.Board()
	for _, p := range session.Players() {
		require.NoError(t, board.SetStatus(p.ID, squad.StatusStarting))
	}
	session.AutoBuild()

	_, gkFilled := board.SlotOccupant("gk")
	require.True(t, gkFilled, "expected auto-build to place a goalkeeper")
}

func TestOpenSession_UnknownGame(t *testing.T) {
	_, err := OpenSession(t.Context(), "gm-missing", testSessionDeps(&recordingWriter{}))
	require.Error(t, err)
}
