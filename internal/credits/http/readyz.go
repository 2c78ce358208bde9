package http

import (
	"net/http"
	"time"

	"github.com/lumenart/credits/internal/credits/store"
	"github.com/lumenart/credits/pkg/creditsdk"
	"github.com/lumenart/credits/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint verifying the service can reach its database
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	creditsdk.HealthResponse	"status, uptime, version"
//	@Failure		503	{object}	creditsdk.HealthResponse	"status, uptime, version - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := creditsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
