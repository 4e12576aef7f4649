package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/pennantrace/sandlot/internal/domain/stats"
	"github.com/pennantrace/sandlot/internal/usecase"
)

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSchedule")
	defer span.End()

	days, err := h.matchService.Schedule(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get schedule failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scheduleDayDTO, 0, len(days))
	for _, day := range days {
		items = append(items, scheduleDayToDTO(day))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type setMatchResultRequest struct {
	TeamAScore *int `json:"team_a_score" validate:"required,min=0"`
	TeamBScore *int `json:"team_b_score" validate:"required,min=0"`
}

func (h *Handler) SetMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetMatchResult")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req setMatchResultRequest
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

	finished, err := h.matchService.SetResult(ctx, principal, matchID, *req.TeamAScore, *req.TeamBScore)
	if err != nil {
		h.logger.WarnContext(ctx, "set match result failed", "match_id", matchID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(finished))
}

type recordStatLineRequest struct {
	PlayerID             string `json:"player_id" validate:"required"`
	PlateAppearances     int    `json:"plate_appearances" validate:"min=0"`
	Hits                 int    `json:"hits" validate:"min=0"`
	HomeRuns             int    `json:"home_runs" validate:"min=0"`
	Outs                 int    `json:"outs" validate:"min=0"`
	RunsBattedIn         int    `json:"runs_batted_in" validate:"min=0"`
	InningsPitched       int    `json:"innings_pitched" validate:"min=0"`
	InningsPitchedThirds int    `json:"innings_pitched_thirds" validate:"min=0,max=2"`
	Strikeouts           int    `json:"strikeouts" validate:"min=0"`
	EarnedRuns           int    `json:"earned_runs" validate:"min=0"`
	Putouts              int    `json:"putouts" validate:"min=0"`
	Assists              int    `json:"assists" validate:"min=0"`
	DoublePlays          int    `json:"double_plays" validate:"min=0"`
	TriplePlays          int    `json:"triple_plays" validate:"min=0"`
	FieldingErrors       int    `json:"fielding_errors" validate:"min=0"`
}

func (h *Handler) RecordStatLine(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordStatLine")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req recordStatLineRequest
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

	line := stats.MatchPlayerStat{
		MatchID:              matchID,
		PlayerID:             req.PlayerID,
		PlateAppearances:     req.PlateAppearances,
		Hits:                 req.Hits,
		HomeRuns:             req.HomeRuns,
		Outs:                 req.Outs,
		RunsBattedIn:         req.RunsBattedIn,
		InningsPitched:       req.InningsPitched,
		InningsPitchedThirds: req.InningsPitchedThirds,
		Strikeouts:           req.Strikeouts,
		EarnedRuns:           req.EarnedRuns,
		Putouts:              req.Putouts,
		Assists:              req.Assists,
		DoublePlays:          req.DoublePlays,
		TriplePlays:          req.TriplePlays,
		FieldingErrors:       req.FieldingErrors,
	}
	if err := h.matchService.RecordStatLine(ctx, principal, line); err != nil {
		h.logger.WarnContext(ctx, "record stat line failed", "match_id", matchID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"matchId": matchID, "playerId": req.PlayerID})
}
