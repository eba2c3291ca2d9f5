package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthCheck pings one backend dependency.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type HealthResult struct {
	Status string `json:"status"`
}

func handleHealth(logger *slog.Logger, checks []HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		results := map[string]HealthResult{"server": {Status: "ok"}}
		status := http.StatusOK

		for _, c := range checks {
			results[c.Name] = HealthResult{Status: "ok"}
			if err := c.Ping(ctx); err != nil {
				logger.Error("health check failed", "name", c.Name, "error", err)
				results[c.Name] = HealthResult{Status: "error"}
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, status, results)
	}
}
