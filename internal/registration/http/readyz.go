package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/oidcreg/internal/registration/store"
	"github.com/aussiebroadwan/oidcreg/pkg/httpx"
	"github.com/aussiebroadwan/oidcreg/pkg/oidcsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and the client store connection status
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	oidcsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	oidcsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &oidcsdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := oidcsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
