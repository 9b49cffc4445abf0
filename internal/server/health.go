package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"github.com/andrasnagy-data/loginform/internal/shared/config"
)

const backendProbeTimeout = 2 * time.Second

type (
	// HealthSrvc probes the login backend the page forwards to
	HealthSrvc struct {
		client     *http.Client
		backendURL string
	}

	// HealthResponse represents the response structure for health check endpoint
	HealthResponse struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
		Backend   bool      `json:"backend"`
	}
)

func NewHealthHandler(srvc *HealthSrvc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := hlog.FromRequest(r)

		response := srvc.check(ctx)

		w.Header().Set("Content-Type", "application/json")

		if response.Backend {
			logger.Debug().Msg("Backend healthcheck ok")
			w.WriteHeader(http.StatusOK)
		} else {
			logger.Error().Str("backend", srvc.backendURL).Msg("Backend healthcheck failed")
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error().Err(err).Msg("Failed to encode health check response")
			return
		}
	}
}

func NewHealthSrvc(cfg *config.Config) *HealthSrvc {
	return &HealthSrvc{
		client:     &http.Client{Timeout: backendProbeTimeout},
		backendURL: cfg.LoginBackendURL,
	}
}

// check treats any HTTP answer from the backend as reachable; only transport
// failures count as down.
func (s *HealthSrvc) check(ctx context.Context) HealthResponse {
	now := time.Now().UTC()

	backendOk := false
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.backendURL, nil)
	if err == nil {
		resp, err := s.client.Do(req)
		if err == nil {
			resp.Body.Close()
			backendOk = true
		}
	}

	if backendOk {
		return HealthResponse{
			Status:    "serving",
			Timestamp: now,
			Backend:   backendOk,
		}
	}
	return HealthResponse{
		Status:    "not serving",
		Timestamp: now,
		Backend:   backendOk,
	}
}
