package httpapi

import (
	"net/http"
	"strings"

	"github.com/coachmate/matchday/internal/domain/report"
	"github.com/coachmate/matchday/internal/usecase"
)

type upsertReportRequest struct {
	Ratings ratingsDTO `json:"ratings" validate:"required"`
	Notes   string     `json:"notes" validate:"omitempty,max=2000"`
}

func (h *Handler) ListGameReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGameReports")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	items, err := h.reportService.ListByGame(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "list game reports failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportsToDTO(items))
}

func (h *Handler) GetPlayerReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerReport")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	item, err := h.reportService.GetByGameAndPlayer(ctx, gameID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player report failed", "game_id", gameID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportToDTO(item))
}

func (h *Handler) UpsertPlayerReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertPlayerReport")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	var req upsertReportRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.reportService.Upsert(ctx, usecase.UpsertReportInput{
		GameID:   gameID,
		PlayerID: playerID,
		Ratings: report.Ratings{
			Physical:  req.Ratings.Physical,
			Technical: req.Ratings.Technical,
			Tactical:  req.Ratings.Tactical,
			Mental:    req.Ratings.Mental,
		},
		Notes: req.Notes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert player report failed", "game_id", gameID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportToDTO(item))
}

func (h *Handler) AutofillGameReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AutofillGameReports")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	filled, err := h.reportService.AutofillMissing(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "autofill game reports failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"filledPlayerIds": filled})
}

func (h *Handler) RefreshDerivedStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshDerivedStats")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	item, exists, err := h.gameService.GetByID(ctx, gameID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeError(ctx, w, usecase.ErrNotFound)
		return
	}

	if err := h.reportService.RefreshDerived(ctx, item); err != nil {
		h.logger.WarnContext(ctx, "refresh derived stats failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "refreshed"})
}
