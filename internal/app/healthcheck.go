package app

import (
	"context"
	"net/http"
	"time"

	"github.com/metinatakli/filmes-api/api"
	"github.com/metinatakli/filmes-api/internal/vcs"
)

const healthcheckTimeout = 2 * time.Second

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := "UP"
	code := http.StatusOK

	if app.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		if err := app.db.Ping(ctx); err != nil {
			app.contextGetLogger(r).Error("database ping failed", "error", err)
			status = "DOWN"
			code = http.StatusServiceUnavailable
		}
	}

	systemInfo := api.SystemInfo{
		Version:     vcs.Version(),
		Environment: app.config.Env,
	}

	resp := api.HealthcheckResponse{
		Status:     status,
		SystemInfo: systemInfo,
	}

	err := app.writeJSON(w, code, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
