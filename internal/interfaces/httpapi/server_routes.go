package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedTeamRoutes(mux, handler, verifier)
	registerAuthorizedGameRoutes(mux, handler, verifier)
	registerAuthorizedEventRoutes(mux, handler, verifier)
	registerAuthorizedReportRoutes(mux, handler, verifier)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/refresh-derived/{gameID}", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RefreshDerivedStats)))
}

func registerAuthorizedTeamRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.ListTeams)))
	mux.Handle("GET /v1/teams/{teamID}/players", RequireAuth(verifier, http.HandlerFunc(handler.ListTeamPlayers)))
	mux.Handle("GET /v1/teams/{teamID}/games", RequireAuth(verifier, http.HandlerFunc(handler.ListTeamGames)))
}

func registerAuthorizedGameRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/games", RequireAuth(verifier, http.HandlerFunc(handler.CreateGame)))
	mux.Handle("GET /v1/games/{gameID}", RequireAuth(verifier, http.HandlerFunc(handler.GetGame)))
	mux.Handle("PUT /v1/games/{gameID}/draft", RequireAuth(verifier, http.HandlerFunc(handler.SaveGameDraft)))
	mux.Handle("POST /v1/games/{gameID}/start-game", RequireAuth(verifier, http.HandlerFunc(handler.StartGame)))
	mux.Handle("POST /v1/games/{gameID}/submit-report", RequireAuth(verifier, http.HandlerFunc(handler.SubmitGameReport)))
}

func registerAuthorizedEventRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/games/{gameID}/match-timeline", RequireAuth(verifier, http.HandlerFunc(handler.GetMatchTimeline)))

	mux.Handle("GET /v1/games/{gameID}/goals", RequireAuth(verifier, http.HandlerFunc(handler.ListGoals)))
	mux.Handle("POST /v1/games/{gameID}/goals", RequireAuth(verifier, http.HandlerFunc(handler.CreateGoal)))
	mux.Handle("PUT /v1/games/{gameID}/goals/{eventID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateGoal)))
	mux.Handle("DELETE /v1/games/{gameID}/goals/{eventID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteGoal)))

	mux.Handle("GET /v1/games/{gameID}/cards", RequireAuth(verifier, http.HandlerFunc(handler.ListCards)))
	mux.Handle("POST /v1/games/{gameID}/cards", RequireAuth(verifier, http.HandlerFunc(handler.CreateCard)))
	mux.Handle("PUT /v1/games/{gameID}/cards/{eventID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateCard)))
	mux.Handle("DELETE /v1/games/{gameID}/cards/{eventID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteCard)))

	mux.Handle("GET /v1/games/{gameID}/substitutions", RequireAuth(verifier, http.HandlerFunc(handler.ListSubstitutions)))
	mux.Handle("POST /v1/games/{gameID}/substitutions", RequireAuth(verifier, http.HandlerFunc(handler.CreateSubstitution)))
	mux.Handle("PUT /v1/games/{gameID}/substitutions/{eventID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateSubstitution)))
	mux.Handle("DELETE /v1/games/{gameID}/substitutions/{eventID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteSubstitution)))
}

func registerAuthorizedReportRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/games/{gameID}/reports", RequireAuth(verifier, http.HandlerFunc(handler.ListGameReports)))
	mux.Handle("GET /v1/games/{gameID}/reports/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.GetPlayerReport)))
	mux.Handle("PUT /v1/games/{gameID}/reports/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpsertPlayerReport)))
	mux.Handle("POST /v1/games/{gameID}/reports/autofill", RequireAuth(verifier, http.HandlerFunc(handler.AutofillGameReports)))
}
