package health

import (
	"context"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// GetServerHealth reports process liveness: uptime and memory.
func (hrm *HealthRoutesManager) GetServerHealth(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(hrm.healthService.GetServerHealthStatus()),
		gecho.Send(),
	)
}

// GetSessionStoreHealth pings the session backend with a short deadline, a
// hung Redis must not hang the probe.
func (hrm *HealthRoutesManager) GetSessionStoreHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), sessionProbeTimeout)
	defer cancel()

	status, err := hrm.healthService.GetSessionStoreHealthStatus(ctx)
	if err != nil {
		hrm.logger.Warn("Session store unreachable", gecho.Field("backend", status.Backend))
		gecho.ServiceUnavailable(w,
			gecho.WithMessage("Session store health check failed"),
			gecho.WithData(status),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(status),
		gecho.Send(),
	)
}
