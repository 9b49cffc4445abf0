package proxy

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/rs/zerolog/hlog"

	"github.com/andrasnagy-data/loginform/internal/shared/config"
)

// NewLoginProxy forwards login submissions to the configured backend so the
// page can post to its own origin. Requests and responses pass through
// unchanged; the backend alone decides the verdict.
func NewLoginProxy(cfg *config.Config) (http.Handler, error) {
	target, err := url.Parse(cfg.LoginBackendURL)
	if err != nil {
		return nil, fmt.Errorf("parse LOGIN_BACKEND_URL: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("LOGIN_BACKEND_URL must be absolute, got %q", cfg.LoginBackendURL)
	}

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			hlog.FromRequest(r).Error().
				Err(err).
				Str("backend", target.Host).
				Msg("Login backend unreachable")
			http.Error(w, "Bad gateway", http.StatusBadGateway)
		},
	}, nil
}
