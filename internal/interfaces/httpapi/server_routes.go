package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/season", handler.GetSeason)
	mux.HandleFunc("GET /v1/users", handler.ListUsers)
	mux.HandleFunc("GET /v1/users/{userID}", handler.GetUser)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}/lineup", handler.GetLineup)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/conferences", handler.ListConferences)
	mux.HandleFunc("GET /v1/draft/current", handler.GetCurrentDrafter)
	mux.HandleFunc("GET /v1/schedule", handler.GetSchedule)
	mux.HandleFunc("GET /v1/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/leaderboard/columns", handler.GetLeaderboardColumns)
	mux.HandleFunc("GET /v1/events", handler.StreamEvents)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("PUT /v1/season/state", RequireAuth(verifier, http.HandlerFunc(handler.SetSeasonState)))

	mux.Handle("POST /v1/draft/picks", RequireAuth(verifier, http.HandlerFunc(handler.DraftPick)))
	mux.Handle("POST /v1/draft/picks/validate", RequireAuth(verifier, http.HandlerFunc(handler.ValidateDraftPick)))
	mux.Handle("POST /v1/draft/shuffle", RequireAuth(verifier, http.HandlerFunc(handler.ShuffleDraftOrder)))

	mux.Handle("PUT /v1/teams/{teamID}/lineup", RequireAuth(verifier, http.HandlerFunc(handler.SaveLineup)))
	mux.Handle("PUT /v1/teams/{teamID}/lineup/star", RequireAuth(verifier, http.HandlerFunc(handler.SetStarredPlayer)))

	mux.Handle("POST /v1/teams/{teamID}/claim", RequireAuth(verifier, http.HandlerFunc(handler.ClaimTeam)))
	mux.Handle("POST /v1/teams/assign-random", RequireAuth(verifier, http.HandlerFunc(handler.AssignRandomTeams)))
	mux.Handle("PATCH /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.RenameTeam)))
	mux.Handle("PUT /v1/teams/{teamID}/captain", RequireAuth(verifier, http.HandlerFunc(handler.SetTeamCaptain)))
	mux.Handle("PUT /v1/teams/{teamID}/conference", RequireAuth(verifier, http.HandlerFunc(handler.SetTeamConference)))
	mux.Handle("DELETE /v1/teams/{teamID}/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.RemoveTeamPlayer)))

	mux.Handle("POST /v1/conferences", RequireAuth(verifier, http.HandlerFunc(handler.CreateConference)))
	mux.Handle("POST /v1/users", RequireAuth(verifier, http.HandlerFunc(handler.CreateUser)))

	mux.Handle("PUT /v1/matches/{matchID}/result", RequireAuth(verifier, http.HandlerFunc(handler.SetMatchResult)))
	mux.Handle("PUT /v1/matches/{matchID}/stats", RequireAuth(verifier, http.HandlerFunc(handler.RecordStatLine)))
}
