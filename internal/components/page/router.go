package page

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type (
	Router struct {
		page  http.HandlerFunc
		login http.Handler
	}
)

// NewRouter serves the login page and hands submissions posted to it to login.
func NewRouter(login http.Handler) chi.Router {
	router := &Router{page: NewLoginPageHandler(), login: login}
	return router.Routes()
}

func (r *Router) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", r.page)
	router.Method(http.MethodPost, "/", r.login)
	return router
}
