package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coachmate/matchday/internal/domain/game"
	"github.com/coachmate/matchday/internal/domain/matchevent"
	"github.com/coachmate/matchday/internal/domain/squad"
	idgen "github.com/coachmate/matchday/internal/platform/id"
	"github.com/coachmate/matchday/internal/platform/logging"
)

type GoalInput struct {
	GameID         string
	Minute         int
	ScorerID       string
	AssistedByID   string
	GoalType       matchevent.GoalType
	IsOpponentGoal bool
}

type CardInput struct {
	GameID   string
	Minute   int
	PlayerID string
	CardType matchevent.CardType
}

type SubstitutionInput struct {
	GameID      string
	Minute      int
	PlayerOutID string
	PlayerInID  string
}

// DerivedStatsRefresher recomputes the per-player aggregates after a
// committed event change.
type DerivedStatsRefresher interface {
	RefreshDerived(ctx context.Context, item game.Game) error
}

// EventService is the match event ledger: goal, card and substitution CRUD
// for games in played status. Event mutations persist first; only successful
// writes reach the derived views, so a failed call leaves the ledger exactly
// as the server last confirmed it.
type EventService struct {
	gameRepo  game.Repository
	eventRepo matchevent.Repository
	refresher DerivedStatsRefresher
	idgen     idgen.Generator
	logger    *logging.Logger
	now       func() time.Time
}

func NewEventService(
	gameRepo game.Repository,
	eventRepo matchevent.Repository,
	generator idgen.Generator,
	logger *logging.Logger,
) *EventService {
	if logger == nil {
		logger = logging.Default()
	}

	return &EventService{
		gameRepo:  gameRepo,
		eventRepo: eventRepo,
		idgen:     generator,
		logger:    logger,
		now:       time.Now,
	}
}

// SetRefresher wires the derived-stats read model. Optional; nil disables
// the refresh step.
func (s *EventService) SetRefresher(refresher DerivedStatsRefresher) {
	s.refresher = refresher
}

func (s *EventService) CreateGoal(ctx context.Context, input GoalInput) (matchevent.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.CreateGoal")
	defer span.End()

	return s.create(ctx, matchevent.Event{
		GameID:         strings.TrimSpace(input.GameID),
		Type:           matchevent.TypeGoal,
		Minute:         input.Minute,
		ScorerID:       strings.TrimSpace(input.ScorerID),
		AssistedByID:   strings.TrimSpace(input.AssistedByID),
		GoalType:       input.GoalType,
		IsOpponentGoal: input.IsOpponentGoal,
	})
}

func (s *EventService) UpdateGoal(ctx context.Context, eventID string, input GoalInput) (matchevent.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.UpdateGoal")
	defer span.End()

	return s.update(ctx, eventID, matchevent.Event{
		GameID:         strings.TrimSpace(input.GameID),
		Type:           matchevent.TypeGoal,
		Minute:         input.Minute,
		ScorerID:       strings.TrimSpace(input.ScorerID),
		AssistedByID:   strings.TrimSpace(input.AssistedByID),
		GoalType:       input.GoalType,
		IsOpponentGoal: input.IsOpponentGoal,
	})
}

func (s *EventService) CreateCard(ctx context.Context, input CardInput) (matchevent.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.CreateCard")
	defer span.End()

	return s.create(ctx, matchevent.Event{
		GameID:   strings.TrimSpace(input.GameID),
		Type:     matchevent.TypeCard,
		Minute:   input.Minute,
		PlayerID: strings.TrimSpace(input.PlayerID),
		CardType: input.CardType,
	})
}

func (s *EventService) UpdateCard(ctx context.Context, eventID string, input CardInput) (matchevent.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.UpdateCard")
	defer span.End()

	return s.update(ctx, eventID, matchevent.Event{
		GameID:   strings.TrimSpace(input.GameID),
		Type:     matchevent.TypeCard,
		Minute:   input.Minute,
		PlayerID: strings.TrimSpace(input.PlayerID),
		CardType: input.CardType,
	})
}

func (s *EventService) CreateSubstitution(ctx context.Context, input SubstitutionInput) (matchevent.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.CreateSubstitution")
	defer span.End()

	return s.create(ctx, matchevent.Event{
		GameID:      strings.TrimSpace(input.GameID),
		Type:        matchevent.TypeSubstitution,
		Minute:      input.Minute,
		PlayerOutID: strings.TrimSpace(input.PlayerOutID),
		PlayerInID:  strings.TrimSpace(input.PlayerInID),
	})
}

func (s *EventService) UpdateSubstitution(ctx context.Context, eventID string, input SubstitutionInput) (matchevent.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.UpdateSubstitution")
	defer span.End()

	return s.update(ctx, eventID, matchevent.Event{
		GameID:      strings.TrimSpace(input.GameID),
		Type:        matchevent.TypeSubstitution,
		Minute:      input.Minute,
		PlayerOutID: strings.TrimSpace(input.PlayerOutID),
		PlayerInID:  strings.TrimSpace(input.PlayerInID),
	})
}

func (s *EventService) Delete(ctx context.Context, gameID, eventID string, eventType matchevent.Type) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Delete")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	eventID = strings.TrimSpace(eventID)
	if gameID == "" || eventID == "" {
		return fmt.Errorf("%w: game_id and event_id are required", ErrInvalidInput)
	}

	item, err := s.requirePlayedGame(ctx, gameID)
	if err != nil {
		return err
	}

	existing, exists, err := s.eventRepo.GetByID(ctx, gameID, eventID)
	if err != nil {
		return fmt.Errorf("get event by id: %w", err)
	}
	if !exists || existing.Type != eventType {
		return fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	deleted, err := s.eventRepo.Delete(ctx, gameID, eventID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	s.refreshDerived(ctx, item)
	return nil
}

// ListByGame returns the raw ledger for a game, newest last.
func (s *EventService) ListByGame(ctx context.Context, gameID string) ([]matchevent.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListByGame")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, fmt.Errorf("%w: game_id is required", ErrInvalidInput)
	}
	if _, err := s.requireGame(ctx, gameID); err != nil {
		return nil, err
	}

	items, err := s.eventRepo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("list events by game: %w", err)
	}

	return items, nil
}

// ListByType returns the ledger filtered to one event type, newest last.
func (s *EventService) ListByType(ctx context.Context, gameID string, eventType matchevent.Type) ([]matchevent.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListByType")
	defer span.End()

	items, err := s.ListByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	out := make([]matchevent.Event, 0, len(items))
	for _, item := range items {
		if item.Type == eventType {
			out = append(out, item)
		}
	}

	return out, nil
}

// Timeline merges all event types into the minute-ordered match view.
func (s *EventService) Timeline(ctx context.Context, gameID string) ([]matchevent.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Timeline")
	defer span.End()

	items, err := s.ListByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return matchevent.SortTimeline(items), nil
}

// Score derives the displayed score from the goal ledger.
func (s *EventService) Score(ctx context.Context, gameID string) (matchevent.Score, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Score")
	defer span.End()

	items, err := s.ListByGame(ctx, gameID)
	if err != nil {
		return matchevent.Score{}, err
	}

	return matchevent.DeriveScore(items), nil
}

func (s *EventService) create(ctx context.Context, item matchevent.Event) (matchevent.Event, error) {
	if item.GameID == "" {
		return matchevent.Event{}, fmt.Errorf("%w: game_id is required", ErrInvalidInput)
	}

	g, err := s.requirePlayedGame(ctx, item.GameID)
	if err != nil {
		return matchevent.Event{}, err
	}

	if err := item.Validate(g.Duration.TotalMinutes()); err != nil {
		return matchevent.Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkEventPlayers(g, item); err != nil {
		return matchevent.Event{}, err
	}

	id, err := s.idgen.NewID()
	if err != nil {
		return matchevent.Event{}, fmt.Errorf("generate event id: %w", err)
	}

	now := s.now().UTC()
	item.ID = id
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.eventRepo.Create(ctx, item); err != nil {
		return matchevent.Event{}, fmt.Errorf("create %s event: %w", strings.ToLower(string(item.Type)), err)
	}

	s.refreshDerived(ctx, g)
	return item, nil
}

func (s *EventService) update(ctx context.Context, eventID string, item matchevent.Event) (matchevent.Event, error) {
	eventID = strings.TrimSpace(eventID)
	if item.GameID == "" || eventID == "" {
		return matchevent.Event{}, fmt.Errorf("%w: game_id and event_id are required", ErrInvalidInput)
	}

	g, err := s.requirePlayedGame(ctx, item.GameID)
	if err != nil {
		return matchevent.Event{}, err
	}

	existing, exists, err := s.eventRepo.GetByID(ctx, item.GameID, eventID)
	if err != nil {
		return matchevent.Event{}, fmt.Errorf("get event by id: %w", err)
	}
	if !exists || existing.Type != item.Type {
		return matchevent.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	if err := item.Validate(g.Duration.TotalMinutes()); err != nil {
		return matchevent.Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkEventPlayers(g, item); err != nil {
		return matchevent.Event{}, err
	}

	item.ID = eventID
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = s.now().UTC()

	updated, err := s.eventRepo.Update(ctx, item)
	if err != nil {
		return matchevent.Event{}, fmt.Errorf("update %s event: %w", strings.ToLower(string(item.Type)), err)
	}
	if !updated {
		return matchevent.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	s.refreshDerived(ctx, g)
	return item, nil
}

func (s *EventService) requireGame(ctx context.Context, gameID string) (game.Game, error) {
	item, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game by id: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}
	return item, nil
}

func (s *EventService) requirePlayedGame(ctx context.Context, gameID string) (game.Game, error) {
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
		return game.Game{}, fmt.Errorf("%w: events can only be recorded for played games", ErrConflict)
	}
}

// checkEventPlayers verifies every referenced player is on the committed
// matchday roster. Finer eligibility (sent off, already substituted) is the
// timeline view's concern, not a storage invariant.
func (s *EventService) checkEventPlayers(g game.Game, item matchevent.Event) error {
	if g.Lineup == nil {
		return nil
	}

	rostered := func(playerID string) bool {
		if playerID == "" {
			return true
		}
		status := g.Lineup.Rosters[playerID]
		return status == squad.StatusStarting || status == squad.StatusBench
	}

	for _, playerID := range []string{item.ScorerID, item.AssistedByID, item.PlayerID, item.PlayerOutID, item.PlayerInID} {
		if !rostered(playerID) {
			return fmt.Errorf("%w: player %s is not on the matchday roster", ErrInvalidInput, playerID)
		}
	}

	return nil
}

func (s *EventService) refreshDerived(ctx context.Context, g game.Game) {
	if s.refresher == nil {
		return
	}
	if err := s.refresher.RefreshDerived(ctx, g); err != nil {
		s.logger.WarnContext(ctx, "refresh derived stats failed", "game_id", g.ID, "error", err)
	}
}
