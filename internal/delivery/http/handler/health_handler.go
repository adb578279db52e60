package handler

import (
	"context"
	"net/http"
	"time"

	"clinic-admin/pkg/response"

	"github.com/sirupsen/logrus"
)

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]HealthCheck
	log    *logrus.Logger
}

func NewHealthHandler(log *logrus.Logger, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, log: log}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.log.Warnf("Health check %s failed: %+v", name, err)
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}

	if !healthy {
		response.ServiceUnavailable(w, "", status)
		return
	}
	response.OK(w, map[string]interface{}{"status": "ok", "checks": status})
}
