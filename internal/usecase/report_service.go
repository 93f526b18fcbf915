package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/coachmate/matchday/internal/domain/game"
	"github.com/coachmate/matchday/internal/domain/matchevent"
	"github.com/coachmate/matchday/internal/domain/report"
	"github.com/coachmate/matchday/internal/domain/squad"
	"github.com/coachmate/matchday/internal/platform/logging"
)

const derivedRefreshWorkers = 4

type UpsertReportInput struct {
	GameID   string
	PlayerID string
	Ratings  report.Ratings
	Notes    string
}

// ReportService manages per-player performance reports for a game, plus the
// derived ledger figures (minutes, goals, assists) attached to each report.
type ReportService struct {
	gameRepo   game.Repository
	eventRepo  matchevent.Repository
	reportRepo report.Repository
	logger     *logging.Logger
	now        func() time.Time
}

func NewReportService(
	gameRepo game.Repository,
	eventRepo matchevent.Repository,
	reportRepo report.Repository,
	logger *logging.Logger,
) *ReportService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ReportService{
		gameRepo:   gameRepo,
		eventRepo:  eventRepo,
		reportRepo: reportRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *ReportService) GetByGameAndPlayer(ctx context.Context, gameID, playerID string) (report.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.GetByGameAndPlayer")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	playerID = strings.TrimSpace(playerID)
	if gameID == "" || playerID == "" {
		return report.Report{}, fmt.Errorf("%w: game_id and player_id are required", ErrInvalidInput)
	}

	item, exists, err := s.reportRepo.GetByGameAndPlayer(ctx, gameID, playerID)
	if err != nil {
		return report.Report{}, fmt.Errorf("get report: %w", err)
	}
	if !exists {
		return report.Report{}, fmt.Errorf("%w: report for player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *ReportService) ListByGame(ctx context.Context, gameID string) ([]report.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.ListByGame")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, fmt.Errorf("%w: game_id is required", ErrInvalidInput)
	}
	if _, err := s.requireGame(ctx, gameID); err != nil {
		return nil, err
	}

	items, err := s.reportRepo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("list reports by game: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].PlayerID < items[j].PlayerID })
	return items, nil
}

// Upsert stores a coach-authored report for a rostered player. Writing a
// report clears any earlier autofill marker.
func (s *ReportService) Upsert(ctx context.Context, input UpsertReportInput) (report.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Upsert")
	defer span.End()

	gameID := strings.TrimSpace(input.GameID)
	playerID := strings.TrimSpace(input.PlayerID)
	if gameID == "" || playerID == "" {
		return report.Report{}, fmt.Errorf("%w: game_id and player_id are required", ErrInvalidInput)
	}

	g, err := s.requirePlayedGame(ctx, gameID)
	if err != nil {
		return report.Report{}, err
	}
	if !isRostered(g, playerID) {
		return report.Report{}, fmt.Errorf("%w: player %s is not on the matchday roster", ErrInvalidInput, playerID)
	}
	if err := input.Ratings.Validate(); err != nil {
		return report.Report{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now().UTC()
	item := report.Report{
		GameID:     gameID,
		PlayerID:   playerID,
		Ratings:    input.Ratings,
		Notes:      strings.TrimSpace(input.Notes),
		AutoFilled: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if existing, exists, err := s.reportRepo.GetByGameAndPlayer(ctx, gameID, playerID); err != nil {
		return report.Report{}, fmt.Errorf("get report: %w", err)
	} else if exists {
		item.Derived = existing.Derived
		item.CreatedAt = existing.CreatedAt
	} else {
		item.Derived = s.deriveForPlayer(ctx, g, playerID)
	}

	if err := s.reportRepo.Upsert(ctx, item); err != nil {
		return report.Report{}, fmt.Errorf("upsert report: %w", err)
	}

	return item, nil
}

// AutofillMissing writes default-rated reports for every rostered player
// without one, so the final report can close the game. Returns the player IDs
// that were filled.
func (s *ReportService) AutofillMissing(ctx context.Context, gameID string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.AutofillMissing")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, fmt.Errorf("%w: game_id is required", ErrInvalidInput)
	}

	g, err := s.requirePlayedGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	existing, err := s.reportRepo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("list reports by game: %w", err)
	}
	covered := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		covered[item.PlayerID] = struct{}{}
	}

	now := s.now().UTC()
	var filled []string
	for _, playerID := range rosteredPlayers(g) {
		if _, ok := covered[playerID]; ok {
			continue
		}

		item := report.Report{
			GameID:     gameID,
			PlayerID:   playerID,
			Ratings:    report.DefaultRatings(),
			AutoFilled: true,
			Derived:    s.deriveForPlayer(ctx, g, playerID),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.reportRepo.Upsert(ctx, item); err != nil {
			return nil, fmt.Errorf("autofill report for player %s: %w", playerID, err)
		}
		filled = append(filled, playerID)
	}

	sort.Strings(filled)
	return filled, nil
}

// RefreshDerived recomputes the ledger-derived figures for every rostered
// player and stores them on the player's report. Players without a report yet
// are skipped; their figures are derived on first write.
func (s *ReportService) RefreshDerived(ctx context.Context, g game.Game) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.RefreshDerived")
	defer span.End()

	reports, err := s.reportRepo.ListByGame(ctx, g.ID)
	if err != nil {
		return fmt.Errorf("list reports by game: %w", err)
	}
	if len(reports) == 0 {
		return nil
	}

	events, err := s.eventRepo.ListByGame(ctx, g.ID)
	if err != nil {
		return fmt.Errorf("list events by game: %w", err)
	}
	starters := starterSet(g)
	totalMinutes := g.Duration.TotalMinutes()

	pool, err := ants.NewPool(derivedRefreshWorkers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var failedCount atomic.Int32
	var workers sync.WaitGroup
	for _, item := range reports {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			item.Derived = matchevent.DerivePlayerAggregates(item.PlayerID, starters, events, totalMinutes)
			item.UpdatedAt = s.now().UTC()
			if err := s.reportRepo.Upsert(ctx, item); err != nil {
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "refresh derived figures failed",
					"game_id", g.ID, "player_id", item.PlayerID, "error", err)
			}
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if failed := failedCount.Load(); failed > 0 {
		return fmt.Errorf("refresh derived figures: %d of %d reports failed", failed, len(reports))
	}
	return nil
}

// Aggregates derives every rostered player's figures straight from the
// ledger, without touching stored reports.
func (s *ReportService) Aggregates(ctx context.Context, gameID string) (map[string]matchevent.PlayerAggregates, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Aggregates")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, fmt.Errorf("%w: game_id is required", ErrInvalidInput)
	}

	g, err := s.requireGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("list events by game: %w", err)
	}

	starters := starterSet(g)
	totalMinutes := g.Duration.TotalMinutes()
	out := make(map[string]matchevent.PlayerAggregates)
	for _, playerID := range rosteredPlayers(g) {
		out[playerID] = matchevent.DerivePlayerAggregates(playerID, starters, events, totalMinutes)
	}

	return out, nil
}

func (s *ReportService) deriveForPlayer(ctx context.Context, g game.Game, playerID string) matchevent.PlayerAggregates {
	events, err := s.eventRepo.ListByGame(ctx, g.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "derive player figures failed",
			"game_id", g.ID, "player_id", playerID, "error", err)
		return matchevent.PlayerAggregates{}
	}
	return matchevent.DerivePlayerAggregates(playerID, starterSet(g), events, g.Duration.TotalMinutes())
}

func (s *ReportService) requireGame(ctx context.Context, gameID string) (game.Game, error) {
	item, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game by id: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}
	return item, nil
}

func (s *ReportService) requirePlayedGame(ctx context.Context, gameID string) (game.Game, error) {
	item, err := s.requireGame(ctx, gameID)
	if err != nil {
		return game.Game{}, err
	}
	switch item.Status {
	case game.StatusPlayed:
		return item, nil
	case game.StatusDone:
		return game.Game{}, fmt.Errorf("%w: game=%s is closed and read-only", ErrConflict, gameID)
	default:
		return game.Game{}, fmt.Errorf("%w: reports can only be written for played games", ErrConflict)
	}
}

func isRostered(g game.Game, playerID string) bool {
	if g.Lineup == nil {
		return false
	}
	status := g.Lineup.Rosters[playerID]
	return status == squad.StatusStarting || status == squad.StatusBench
}

func rosteredPlayers(g game.Game) []string {
	if g.Lineup == nil {
		return nil
	}
	out := make([]string, 0, len(g.Lineup.Rosters))
	for playerID, status := range g.Lineup.Rosters {
		if status == squad.StatusStarting || status == squad.StatusBench {
			out = append(out, playerID)
		}
	}
	sort.Strings(out)
	return out
}

func starterSet(g game.Game) map[string]struct{} {
	starters := make(map[string]struct{})
	if g.Lineup == nil {
		return starters
	}
	for playerID, status := range g.Lineup.Rosters {
		if status == squad.StatusStarting {
			starters[playerID] = struct{}{}
		}
	}
	return starters
}
