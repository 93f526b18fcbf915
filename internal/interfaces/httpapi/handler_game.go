package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coachmate/matchday/internal/domain/game"
	"github.com/coachmate/matchday/internal/domain/squad"
	"github.com/coachmate/matchday/internal/usecase"
)

type createGameRequest struct {
	TeamID    string    `json:"teamId" validate:"required"`
	Opponent  string    `json:"opponent" validate:"required,max=120"`
	KickoffAt time.Time `json:"kickoffAt" validate:"required"`

	Duration *game.MatchDuration `json:"duration" validate:"omitempty"`
}

type draftRequest struct {
	Rosters       map[string]string `json:"rosters"`
	Formation     map[string]string `json:"formation"`
	FormationType string            `json:"formationType" validate:"required"`
}

func (req draftRequest) toDraft() (squad.Draft, error) {
	draft := squad.NewDraft(strings.TrimSpace(req.FormationType))
	for playerID, raw := range req.Rosters {
		status, err := squad.ParseStatus(raw)
		if err != nil {
			return squad.Draft{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		draft.Rosters[strings.TrimSpace(playerID)] = status
	}
	for slotID, playerID := range req.Formation {
		draft.Formation[strings.TrimSpace(slotID)] = strings.TrimSpace(playerID)
	}
	return draft, nil
}

// startGameRequest carries the draft composite inline, with the soft-warning
// acknowledgement flag alongside it.
type startGameRequest struct {
	draftRequest
	AcknowledgeWarnings bool `json:"acknowledgeWarnings"`
}

type submitReportRequest struct {
	Summaries  game.TeamSummaries `json:"summaries"`
	FinalScore *game.Score        `json:"finalScore" validate:"omitempty"`
}

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGame")
	defer span.End()

	var req createGameRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.CreateGameInput{
		TeamID:    req.TeamID,
		Opponent:  req.Opponent,
		KickoffAt: req.KickoffAt,
	}
	if req.Duration != nil {
		input.Duration = *req.Duration
	}

	item, err := h.gameService.Create(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create game failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameToDTO(item))
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	item, exists, err := h.gameService.GetByID(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeError(ctx, w, fmt.Errorf("%w: game=%s", usecase.ErrNotFound, gameID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

func (h *Handler) SaveGameDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveGameDraft")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	var req draftRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	draft, err := req.toDraft()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.gameService.SaveDraft(ctx, gameID, draft); err != nil {
		h.logger.WarnContext(ctx, "save game draft failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartGame")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	var req startGameRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	lineup, err := req.toDraft()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.StartGame(ctx, usecase.StartGameInput{
		GameID:              gameID,
		Lineup:              lineup,
		AcknowledgeWarnings: req.AcknowledgeWarnings,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "start game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

func (h *Handler) SubmitGameReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitGameReport")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	var req submitReportRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.SubmitReport(ctx, usecase.SubmitReportInput{
		GameID:     gameID,
		Summaries:  req.Summaries,
		FinalScore: req.FinalScore,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit game report failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}
