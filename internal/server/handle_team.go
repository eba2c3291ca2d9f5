package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nextgenaiclub/codehunt/internal/hunt"
)

func handleTeamLookup(engine *hunt.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team, err := engine.TeamByName(r.Context(), chi.URLParam(r, "teamName"))
		if err != nil {
			apiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, team)
	}
}
