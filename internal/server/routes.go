package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/nextgenaiclub/codehunt/internal/hunt"
)

func addRoutes(r chi.Router, logger *slog.Logger, engine *hunt.Engine, checks []HealthCheck, adminHash, spaDir string) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("CodeHunt API", "/openapi.json", "/docs"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handleHealth(logger, checks))
		r.Post("/register", handleRegister(logger, engine))
		r.Get("/teams/{teamName}", handleTeamLookup(engine))
		r.Get("/leaderboard", handleLeaderboard(engine))

		r.Post("/phase1/submit", handlePhase1Submit(engine))

		r.Get("/phase2/questions", handlePhase2Questions(engine))
		r.Post("/phase2/check-answer", handlePhase2CheckAnswer(engine))
		r.Post("/phase2/complete", handlePhase2Complete(engine))
		r.Post("/phase2/submit", handlePhase2Submit(engine))

		r.Get("/phase3/questions", handlePhase3Questions(engine))
		r.Post("/phase3/submit", handlePhase3Submit(engine))

		r.Get("/phase4/code", handlePhase4Code(engine))
		r.Get("/phase4/hints", handlePhase4Hints(engine))
		r.Post("/phase4/submit", handlePhase4Submit(engine))

		r.Get("/phase5/riddles", handlePhase5Riddles(engine))
		r.Post("/phase5/answer", handlePhase5Answer(engine))
		r.Post("/phase5/complete", handlePhase5Complete(engine))

		r.Post("/phase6/submit", handlePhase6Submit(logger, engine))

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminAuthMiddleware(adminHash))
			r.Get("/teams", handleAdminListTeams(engine))
			r.Get("/stats", handleAdminStats(engine))
			r.Delete("/teams", handleAdminClearTeams(logger, engine))
			r.Delete("/teams/{teamID}", handleAdminDeleteTeam(logger, engine))
		})
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
