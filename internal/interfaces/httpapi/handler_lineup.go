package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/pennantrace/sandlot/internal/domain/player"
	"github.com/pennantrace/sandlot/internal/usecase"
)

func (h *Handler) GetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineup")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	entries, err := h.lineupService.GetByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get lineup failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupEntriesToDTO(entries))
}

type lineupEntryRequest struct {
	PlayerID         string  `json:"player_id" validate:"required"`
	FieldingPosition *string `json:"fielding_position" validate:"omitempty,oneof=C 1B 2B 3B SS LF CF RF P"`
	BattingOrder     *int    `json:"batting_order" validate:"omitempty,min=1,max=9"`
}

type saveLineupRequest struct {
	Entries []lineupEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

func (h *Handler) SaveLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveLineup")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	var req saveLineupRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries := make([]usecase.LineupEntryInput, 0, len(req.Entries))
	for _, entry := range req.Entries {
		var position *player.FieldingPosition
		if entry.FieldingPosition != nil {
			value := player.FieldingPosition(*entry.FieldingPosition)
			position = &value
		}
		entries = append(entries, usecase.LineupEntryInput{
			PlayerID:         entry.PlayerID,
			FieldingPosition: position,
			BattingOrder:     entry.BattingOrder,
		})
	}

	saved, err := h.lineupService.Save(ctx, principal, teamID, entries)
	if err != nil {
		h.logger.WarnContext(ctx, "save lineup failed", "team_id", teamID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupEntriesToDTO(saved))
}

type setStarredRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	Starred  *bool  `json:"starred" validate:"required"`
}

func (h *Handler) SetStarredPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetStarredPlayer")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	var req setStarredRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.lineupService.SetStarred(ctx, principal, teamID, req.PlayerID, *req.Starred); err != nil {
		h.logger.WarnContext(ctx, "set starred player failed", "team_id", teamID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"starred": *req.Starred})
}
