package httpapi

import "net/http"

type leaderboardRowDTO struct {
	PlayerID       string         `json:"playerId"`
	PlayerName     string         `json:"playerName"`
	MatchCount     int            `json:"matchCount"`
	Stats          map[string]int `json:"stats"`
	HitRatePct     *float64       `json:"hitRatePct"`
	InningsPitched string         `json:"inningsPitched"`
}

type leaderboardColumnDTO struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	rows, err := h.leaderboardService.Leaderboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	columns := h.leaderboardService.Columns()
	items := make([]leaderboardRowDTO, 0, len(rows))
	for _, row := range rows {
		values := make(map[string]int, len(columns))
		for _, column := range columns {
			values[column.Key] = column.Accessor(row.Totals)
		}
		items = append(items, leaderboardRowDTO{
			PlayerID:       row.PlayerID,
			PlayerName:     row.PlayerName,
			MatchCount:     row.Totals.MatchCount,
			Stats:          values,
			HitRatePct:     row.HitRatePct,
			InningsPitched: row.InningsPitched,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeaderboardColumns(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboardColumns")
	defer span.End()

	columns := h.leaderboardService.Columns()
	items := make([]leaderboardColumnDTO, 0, len(columns))
	for _, column := range columns {
		items = append(items, leaderboardColumnDTO{Key: column.Key, Label: column.Label})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
