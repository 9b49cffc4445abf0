package loginclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSendsJSONPost(t *testing.T) {
	var (
		calls     int
		gotMethod string
		gotPath   string
		gotType   string
		gotBody   string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL, srv.Client()).Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/login", gotPath)
	assert.Equal(t, "application/json", gotType)
	assert.JSONEq(t, `{"email":"a@b.com","password":"secret"}`, gotBody)
	assert.True(t, resp.Truthy())
}

func TestLoginTrailingSlashBaseURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success": false}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL+"/", srv.Client()).Login(context.Background(), LoginRequest{})
	require.NoError(t, err)
	assert.Equal(t, "/login", gotPath)
}

func TestLoginVerdicts(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		truthy bool
	}{
		{"true", http.StatusOK, `{"success": true}`, true},
		{"false", http.StatusOK, `{"success": false}`, false},
		{"false with unauthorized status", http.StatusUnauthorized, `{"success": false, "message": "nope"}`, false},
		{"null", http.StatusOK, `{"success": null}`, false},
		{"zero", http.StatusOK, `{"success": 0}`, false},
		{"one", http.StatusOK, `{"success": 1}`, true},
		{"negative zero", http.StatusOK, `{"success": -0.0}`, false},
		{"overflowing number", http.StatusOK, `{"success": 1e400}`, true},
		{"overflowing negative number", http.StatusOK, `{"success": -1e400}`, true},
		{"underflowing number", http.StatusOK, `{"success": 1e-400}`, false},
		{"empty string", http.StatusOK, `{"success": ""}`, false},
		{"non-empty string", http.StatusOK, `{"success": "yes"}`, true},
		{"object", http.StatusOK, `{"success": {}}`, true},
		{"array", http.StatusOK, `{"success": []}`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			resp, err := New(srv.URL, srv.Client()).Login(context.Background(), LoginRequest{})
			require.NoError(t, err)
			assert.Equal(t, tc.truthy, resp.Truthy())
		})
	}
}

func TestLoginDecodeFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"html", `<html>oops</html>`},
		{"empty", ``},
		{"array", `[true]`},
		{"null body", `null`},
		{"missing success", `{"ok": true}`},
		{"truncated", `{"success": tr`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			resp, err := New(srv.URL, srv.Client()).Login(context.Background(), LoginRequest{})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrDecode)
			assert.NotErrorIs(t, err, ErrTransport)
		})
	}
}

func TestLoginTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	resp, err := New(url, nil).Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "secret"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrDecode)
}

func TestLoginCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL, srv.Client()).Login(ctx, LoginRequest{})
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTruthyMissingField(t *testing.T) {
	var resp LoginResponse
	require.NoError(t, json.Unmarshal([]byte(`{}`), &resp))
	assert.False(t, resp.Truthy())
}
