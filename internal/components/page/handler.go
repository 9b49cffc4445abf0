package page

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/andrasnagy-data/loginform/internal/components/submit"
)

const (
	FormID       = "loginForm"
	StaticPrefix = "/static"
)

//go:embed templates/login.html
var templates embed.FS

var loginTemplate = template.Must(template.ParseFS(templates, "templates/login.html"))

type loginPageData struct {
	Title         string
	FormID        string
	EmailField    string
	PasswordField string
	StaticPrefix  string
}

// NewLoginPageHandler renders the form the browser build binds to.
func NewLoginPageHandler() http.HandlerFunc {
	data := loginPageData{
		Title:         "Login",
		FormID:        FormID,
		EmailField:    submit.FieldEmail,
		PasswordField: submit.FieldPassword,
		StaticPrefix:  StaticPrefix,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		logger := hlog.FromRequest(r)

		var buf bytes.Buffer
		if err := loginTemplate.Execute(&buf, data); err != nil {
			logger.Error().Err(err).Msg("Failed to execute login template")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}
