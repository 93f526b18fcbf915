package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/coachmate/matchday/internal/app"
	"github.com/coachmate/matchday/internal/config"
	"github.com/coachmate/matchday/internal/engine"
	"github.com/coachmate/matchday/internal/platform/logging"
)

// draftconsole opens a lineup editing session against a running matchday
// server: it hydrates the saved draft, optionally auto-fills open formation
// slots, reports the kickoff validation outcome, and lets the autosaver
// flush any resulting edits before exiting.
func main() {
	var (
		serverURL = flag.String("server", "http://localhost:8080", "matchday server base URL")
		token     = flag.String("token", "", "bearer access token")
		gameID    = flag.String("game", "", "game ID to open")
		autobuild = flag.Bool("autobuild", false, "auto-assign starting players to open formation slots")
	)
	flag.Parse()

	if *gameID == "" || *token == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()
	console := app.NewDraftConsole(cfg, *serverURL, *token, logger)

	session, err := console.Open(ctx, *gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open session for game %s: %v\n", *gameID, err)
		os.Exit(1)
	}
	defer session.Close()

	g := session.Game()
	fmt.Printf("game %s vs %s (%s)\n", g.ID, g.Opponent, g.Status)
	fmt.Printf("pool: %d players, layout %s\n", len(session.Players()), session.Board().Layout().Key)

	if *autobuild {
		session.AutoBuild()
	}

	result := session.Validate()
	fmt.Printf("kickoff-ready: %t (confirmation needed: %t)\n", result.IsValid, result.NeedsConfirmation)
	for _, msg := range result.Messages {
		fmt.Printf("  [%s] %s: %s\n", msg.Severity, msg.Code, msg.Text)
	}

	if err := waitForAutosave(session, cfg.DraftDebounce); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// waitForAutosave blocks until pending draft writes settle so the session can
// close without abandoning an edit.
func waitForAutosave(session *engine.Session, debounce time.Duration) error {
	deadline := time.Now().Add(debounce + 10*time.Second)
	for time.Now().Before(deadline) {
		switch session.SaveState() {
		case engine.SaveIdle:
			return nil
		case engine.SaveError:
			return fmt.Errorf("draft autosave failed; edits may be unsaved")
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("draft autosave did not settle before timeout")
}
