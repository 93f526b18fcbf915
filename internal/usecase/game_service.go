package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coachmate/matchday/internal/domain/game"
	"github.com/coachmate/matchday/internal/domain/matchevent"
	"github.com/coachmate/matchday/internal/domain/player"
	"github.com/coachmate/matchday/internal/domain/report"
	"github.com/coachmate/matchday/internal/domain/squad"
	"github.com/coachmate/matchday/internal/domain/team"
	idgen "github.com/coachmate/matchday/internal/platform/id"
	"github.com/coachmate/matchday/internal/platform/logging"
)

type CreateGameInput struct {
	TeamID    string
	Opponent  string
	KickoffAt time.Time
	Duration  game.MatchDuration
}

type StartGameInput struct {
	GameID string
	Lineup squad.Draft

	// AcknowledgeWarnings confirms soft validation findings, e.g. a bench
	// outside the recommended size.
	AcknowledgeWarnings bool
}

type SubmitReportInput struct {
	GameID    string
	Summaries game.TeamSummaries

	// FinalScore is optional; when present it must agree with the score
	// derived from the goal ledger, which is the authoritative value.
	FinalScore *game.Score
}

// GameService drives the one-way matchday lifecycle and the draft
// persistence surface around it.
type GameService struct {
	gameRepo   game.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	eventRepo  matchevent.Repository
	reportRepo report.Repository
	rules      squad.Rules
	idgen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewGameService(
	gameRepo game.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	eventRepo matchevent.Repository,
	reportRepo report.Repository,
	rules squad.Rules,
	generator idgen.Generator,
	logger *logging.Logger,
) *GameService {
	if logger == nil {
		logger = logging.Default()
	}

	return &GameService{
		gameRepo:   gameRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		eventRepo:  eventRepo,
		reportRepo: reportRepo,
		rules:      rules,
		idgen:      generator,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *GameService) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GetByID")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return game.Game{}, false, fmt.Errorf("%w: game_id is required", ErrInvalidInput)
	}

	item, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, false, fmt.Errorf("get game by id: %w", err)
	}

	return item, exists, nil
}

func (s *GameService) ListByTeam(ctx context.Context, teamID string) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}
	if _, exists, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, fmt.Errorf("get team by id: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	items, err := s.gameRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list games by team: %w", err)
	}

	return items, nil
}

func (s *GameService) Create(ctx context.Context, input CreateGameInput) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Create")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.Opponent = strings.TrimSpace(input.Opponent)
	if input.TeamID == "" {
		return game.Game{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}
	if input.Opponent == "" {
		return game.Game{}, fmt.Errorf("%w: opponent is required", ErrInvalidInput)
	}
	if input.KickoffAt.IsZero() {
		return game.Game{}, fmt.Errorf("%w: kickoff_at is required", ErrInvalidInput)
	}
	if input.Duration == (game.MatchDuration{}) {
		input.Duration = game.DefaultDuration()
	}
	if err := input.Duration.Validate(); err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
		return game.Game{}, fmt.Errorf("get team by id: %w", err)
	} else if !exists {
		return game.Game{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	id, err := s.idgen.NewID()
	if err != nil {
		return game.Game{}, fmt.Errorf("generate game id: %w", err)
	}

	now := s.now().UTC()
	item := game.Game{
		ID:        id,
		TeamID:    input.TeamID,
		Opponent:  input.Opponent,
		KickoffAt: input.KickoffAt.UTC(),
		Status:    game.StatusScheduled,
		Duration:  input.Duration,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.gameRepo.Create(ctx, item); err != nil {
		return game.Game{}, fmt.Errorf("create game: %w", err)
	}

	return item, nil
}

// SaveDraft overwrites the lineup draft of a scheduled game. A draft write
// against a played or done game is rejected; drafts stop being authoritative
// at kickoff.
func (s *GameService) SaveDraft(ctx context.Context, gameID string, draft squad.Draft) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.SaveDraft")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return fmt.Errorf("%w: game_id is required", ErrInvalidInput)
	}

	item, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return fmt.Errorf("get game by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}
	if item.Status != game.StatusScheduled {
		return fmt.Errorf("%w: drafts can only be saved while a game is scheduled", ErrConflict)
	}

	if err := draft.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkDraftMembership(ctx, item.TeamID, draft); err != nil {
		return err
	}

	saved, err := s.gameRepo.SaveDraft(ctx, gameID, draft)
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	if !saved {
		return fmt.Errorf("%w: game=%s is no longer scheduled", ErrConflict, gameID)
	}

	return nil
}

// StartGame validates the squad and commits the draft composite as the
// authoritative roster, moving the game from scheduled to played. The
// transition is irreversible.
func (s *GameService) StartGame(ctx context.Context, input StartGameInput) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.StartGame")
	defer span.End()

	input.GameID = strings.TrimSpace(input.GameID)
	if input.GameID == "" {
		return game.Game{}, fmt.Errorf("%w: game_id is required", ErrInvalidInput)
	}

	item, exists, err := s.gameRepo.GetByID(ctx, input.GameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game by id: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%s", ErrNotFound, input.GameID)
	}
	if item.Status != game.StatusScheduled {
		return game.Game{}, fmt.Errorf("%w: game=%s is not scheduled", ErrConflict, input.GameID)
	}

	if err := input.Lineup.Validate(); err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkDraftMembership(ctx, item.TeamID, input.Lineup); err != nil {
		return game.Game{}, err
	}

	layout := squad.MustLayout(input.Lineup.FormationType)
	result := squad.ValidateMatchday(layout, input.Lineup, s.rules)
	if !result.IsValid {
		return game.Game{}, &SquadValidationError{Result: result}
	}
	if result.NeedsConfirmation && !input.AcknowledgeWarnings {
		return game.Game{}, &SquadValidationError{Result: result, ConfirmationOnly: true}
	}

	committed, err := s.gameRepo.CommitLineup(ctx, input.GameID, input.Lineup)
	if err != nil {
		return game.Game{}, fmt.Errorf("commit lineup: %w", err)
	}
	if !committed {
		return game.Game{}, fmt.Errorf("%w: game=%s is no longer scheduled", ErrConflict, input.GameID)
	}

	s.logger.InfoContext(ctx, "game started",
		"game_id", input.GameID,
		"formation", input.Lineup.FormationType,
	)

	updated, _, err := s.gameRepo.GetByID(ctx, input.GameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("reload game after start: %w", err)
	}

	return updated, nil
}

// SubmitReport closes a played game: the team summaries must be complete,
// every rostered player needs a finished or auto-filled performance report,
// and the final score is the one derived from the goal ledger.
func (s *GameService) SubmitReport(ctx context.Context, input SubmitReportInput) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.SubmitReport")
	defer span.End()

	input.GameID = strings.TrimSpace(input.GameID)
	if input.GameID == "" {
		return game.Game{}, fmt.Errorf("%w: game_id is required", ErrInvalidInput)
	}

	item, exists, err := s.gameRepo.GetByID(ctx, input.GameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game by id: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%s", ErrNotFound, input.GameID)
	}
	if item.Status != game.StatusPlayed {
		return game.Game{}, fmt.Errorf("%w: only played games can be closed", ErrConflict)
	}

	missing, err := s.playersMissingReports(ctx, item)
	if err != nil {
		return game.Game{}, err
	}

	result := squad.ValidateFinalReport(squad.FinalReportInput{
		DefenseSummary:        input.Summaries.Defense,
		MidfieldSummary:       input.Summaries.Midfield,
		AttackSummary:         input.Summaries.Attack,
		GeneralSummary:        input.Summaries.General,
		PlayersMissingReports: missing,
	})
	if !result.IsValid {
		return game.Game{}, &SquadValidationError{Result: result}
	}

	events, err := s.eventRepo.ListByGame(ctx, input.GameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("list events for final score: %w", err)
	}
	derived := matchevent.DeriveScore(events)
	score := game.Score{Ours: derived.Ours, Opponent: derived.Opponent}
	if input.FinalScore != nil && *input.FinalScore != score {
		return game.Game{}, fmt.Errorf(
			"%w: submitted score %d-%d does not match the recorded goals %d-%d",
			ErrInvalidInput,
			input.FinalScore.Ours, input.FinalScore.Opponent,
			score.Ours, score.Opponent,
		)
	}

	finalized, err := s.gameRepo.Finalize(ctx, input.GameID, score, input.Summaries)
	if err != nil {
		return game.Game{}, fmt.Errorf("finalize game: %w", err)
	}
	if !finalized {
		return game.Game{}, fmt.Errorf("%w: game=%s is no longer played", ErrConflict, input.GameID)
	}

	s.logger.InfoContext(ctx, "game closed",
		"game_id", input.GameID,
		"our_score", score.Ours,
		"opponent_score", score.Opponent,
	)

	updated, _, err := s.gameRepo.GetByID(ctx, input.GameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("reload game after close: %w", err)
	}

	return updated, nil
}

func (s *GameService) checkDraftMembership(ctx context.Context, teamID string, draft squad.Draft) error {
	ids := make([]string, 0, len(draft.Rosters))
	for playerID := range draft.Rosters {
		ids = append(ids, playerID)
	}
	if len(ids) == 0 {
		return nil
	}

	members, err := s.playerRepo.GetByIDs(ctx, teamID, ids)
	if err != nil {
		return fmt.Errorf("get players by ids: %w", err)
	}
	if len(members) != len(ids) {
		return fmt.Errorf("%w: the draft references players outside the team", ErrInvalidInput)
	}

	return nil
}

func (s *GameService) playersMissingReports(ctx context.Context, item game.Game) ([]string, error) {
	if item.Lineup == nil {
		return nil, nil
	}

	reports, err := s.reportRepo.ListByGame(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list reports by game: %w", err)
	}
	reported := make(map[string]struct{}, len(reports))
	for _, r := range reports {
		if r.AutoFilled || r.Ratings.Validate() == nil {
			reported[r.PlayerID] = struct{}{}
		}
	}

	var missing []string
	for playerID, status := range item.Lineup.Rosters {
		if status != squad.StatusStarting && status != squad.StatusBench {
			continue
		}
		if _, ok := reported[playerID]; !ok {
			missing = append(missing, playerID)
		}
	}

	return missing, nil
}
