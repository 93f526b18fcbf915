package httpapi

import (
	"net/http"
	"strings"

	"github.com/coachmate/matchday/internal/domain/matchevent"
	"github.com/coachmate/matchday/internal/usecase"
)

type goalRequest struct {
	Minute         int    `json:"minute" validate:"required,min=1"`
	ScorerID       string `json:"scorerId" validate:"omitempty"`
	AssistedByID   string `json:"assistedById" validate:"omitempty"`
	GoalType       string `json:"goalType" validate:"required,oneof=OPEN_PLAY PENALTY FREE_KICK OWN_GOAL"`
	IsOpponentGoal bool   `json:"isOpponentGoal"`
}

type cardRequest struct {
	Minute   int    `json:"minute" validate:"required,min=1"`
	PlayerID string `json:"playerId" validate:"required"`
	CardType string `json:"cardType" validate:"required,oneof=YELLOW RED"`
}

type substitutionRequest struct {
	Minute      int    `json:"minute" validate:"required,min=1"`
	PlayerOutID string `json:"playerOutId" validate:"required"`
	PlayerInID  string `json:"playerInId" validate:"required"`
}

func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGoal")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	var req goalRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.CreateGoal(ctx, usecase.GoalInput{
		GameID:         gameID,
		Minute:         req.Minute,
		ScorerID:       req.ScorerID,
		AssistedByID:   req.AssistedByID,
		GoalType:       matchevent.GoalType(req.GoalType),
		IsOpponentGoal: req.IsOpponentGoal,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create goal failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, eventToDTO(item))
}

func (h *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGoal")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	eventID := strings.TrimSpace(r.PathValue("eventID"))
	var req goalRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.UpdateGoal(ctx, eventID, usecase.GoalInput{
		GameID:         gameID,
		Minute:         req.Minute,
		ScorerID:       req.ScorerID,
		AssistedByID:   req.AssistedByID,
		GoalType:       matchevent.GoalType(req.GoalType),
		IsOpponentGoal: req.IsOpponentGoal,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update goal failed", "game_id", gameID, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	h.deleteEvent(w, r, matchevent.TypeGoal)
}

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCard")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	var req cardRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.CreateCard(ctx, usecase.CardInput{
		GameID:   gameID,
		Minute:   req.Minute,
		PlayerID: req.PlayerID,
		CardType: matchevent.CardType(req.CardType),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create card failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, eventToDTO(item))
}

func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCard")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	eventID := strings.TrimSpace(r.PathValue("eventID"))
	var req cardRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.UpdateCard(ctx, eventID, usecase.CardInput{
		GameID:   gameID,
		Minute:   req.Minute,
		PlayerID: req.PlayerID,
		CardType: matchevent.CardType(req.CardType),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update card failed", "game_id", gameID, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	h.deleteEvent(w, r, matchevent.TypeCard)
}

func (h *Handler) CreateSubstitution(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSubstitution")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	var req substitutionRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.CreateSubstitution(ctx, usecase.SubstitutionInput{
		GameID:      gameID,
		Minute:      req.Minute,
		PlayerOutID: req.PlayerOutID,
		PlayerInID:  req.PlayerInID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create substitution failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, eventToDTO(item))
}

func (h *Handler) UpdateSubstitution(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSubstitution")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	eventID := strings.TrimSpace(r.PathValue("eventID"))
	var req substitutionRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.UpdateSubstitution(ctx, eventID, usecase.SubstitutionInput{
		GameID:      gameID,
		Minute:      req.Minute,
		PlayerOutID: req.PlayerOutID,
		PlayerInID:  req.PlayerInID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update substitution failed", "game_id", gameID, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) DeleteSubstitution(w http.ResponseWriter, r *http.Request) {
	h.deleteEvent(w, r, matchevent.TypeSubstitution)
}

func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	h.listEvents(w, r, matchevent.TypeGoal)
}

func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	h.listEvents(w, r, matchevent.TypeCard)
}

func (h *Handler) ListSubstitutions(w http.ResponseWriter, r *http.Request) {
	h.listEvents(w, r, matchevent.TypeSubstitution)
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request, eventType matchevent.Type) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.listEvents")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	items, err := h.eventService.ListByType(ctx, gameID, eventType)
	if err != nil {
		h.logger.WarnContext(ctx, "list events failed", "game_id", gameID, "event_type", string(eventType), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventsToDTO(items))
}

func (h *Handler) GetMatchTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchTimeline")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	items, err := h.eventService.Timeline(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match timeline failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, timelineDTO{
		Events: eventsToDTO(items),
		Score:  matchevent.DeriveScore(items),
	})
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request, eventType matchevent.Type) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.deleteEvent")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	eventID := strings.TrimSpace(r.PathValue("eventID"))
	if err := h.eventService.Delete(ctx, gameID, eventID, eventType); err != nil {
		h.logger.WarnContext(ctx, "delete event failed", "game_id", gameID, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
