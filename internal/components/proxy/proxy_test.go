package proxy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrasnagy-data/loginform/internal/shared/config"
)

func TestLoginProxyForwards(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotType   string
		gotBody   string
		gotFwd    string
	)
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotFwd = r.Header.Get("X-Forwarded-Host")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success": false}`))
	}))
	defer backend.Close()

	handler, err := NewLoginProxy(&config.Config{LoginBackendURL: backend.URL})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "http://page.local/login", strings.NewReader(`{"email":"a@b.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success": false}`, rec.Body.String())
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/login", gotPath)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "page.local", gotFwd)
	assert.JSONEq(t, `{"email":"a@b.com","password":"secret"}`, gotBody)
}

func TestLoginProxyBackendPathPrefix(t *testing.T) {
	var gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success": true}`))
	}))
	defer backend.Close()

	handler, err := NewLoginProxy(&config.Config{LoginBackendURL: backend.URL + "/api"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/login", gotPath)
}

func TestLoginProxyBackendDown(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	url := backend.URL
	backend.Close()

	handler, err := NewLoginProxy(&config.Config{LoginBackendURL: url})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "success")
}

func TestNewLoginProxyInvalidURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:5000/x", "://bad"} {
		_, err := NewLoginProxy(&config.Config{LoginBackendURL: raw})
		assert.Error(t, err, raw)
	}
}
