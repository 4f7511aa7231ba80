package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
	"github.com/UnknownOlympus/athena/internal/models"
)

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
	statusUnreachable = "unreachable"
	statusDegraded    = "degraded"
)

type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker reports the state of the database and of the employee list API the page fetches from.
type HealthChecker struct {
	db         DBPinger
	apiURL     string
	httpClient *http.Client
	log        *slog.Logger
}

func NewHealthChecker(db DBPinger, apiURL string, log *slog.Logger) *HealthChecker {
	clientTO := 5
	return &HealthChecker{
		db:         db,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: time.Duration(clientTO) * time.Second},
		log:        log,
	}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	h.log.DebugContext(ctx, "Performing health checks...")

	status := map[string]string{
		"database":     h.checkDatabase(ctx),
		"employee_api": h.checkEmployeeAPI(ctx),
	}

	overallStatus := http.StatusOK
	for _, value := range status {
		if value != statusOK {
			overallStatus = http.StatusServiceUnavailable
		}
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err := json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(ctx, "Failed to write health check response", sl.Err(err))
	}

	h.log.DebugContext(ctx, "Health checks completed", "status", overallStatus)
}

func (h *HealthChecker) checkDatabase(ctx context.Context) string {
	if err := h.db.Ping(ctx); err != nil {
		h.log.WarnContext(ctx, "Health check failed: DB ping", sl.Err(err))
		return statusUnavailable
	}

	return statusOK
}

func (h *HealthChecker) checkEmployeeAPI(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.apiURL, nil)
	if err != nil {
		h.log.WarnContext(ctx, "Health check failed: invalid employee API url", "url", h.apiURL, sl.Err(err))
		return statusUnreachable
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", models.UserAgent)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		h.log.WarnContext(ctx, "Health check failed: employee API unreachable", "url", h.apiURL, sl.Err(err))
		return statusUnreachable
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			h.log.WarnContext(ctx, "Failed to close response body", sl.Err(err))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusBadRequest {
		h.log.WarnContext(
			ctx,
			"Health check failed: employee API returned error status",
			"url",
			h.apiURL,
			"status_code",
			resp.StatusCode,
		)
		return statusDegraded
	}

	return statusOK
}
