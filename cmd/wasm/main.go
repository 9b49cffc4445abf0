//go:build js && wasm

// Command wasm binds the login form handler to the page's #loginForm.
// Build with GOOS=js GOARCH=wasm and serve as static/main.wasm.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/andrasnagy-data/loginform/internal/components/form"
	"github.com/andrasnagy-data/loginform/internal/components/loginclient"
	"github.com/andrasnagy-data/loginform/internal/components/page"
	"github.com/andrasnagy-data/loginform/internal/components/submit"
)

func main() {
	// The Go runtime forwards stderr to the browser console.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		With().
		Timestamp().
		Logger()

	dom, err := form.NewDOM(page.FormID)
	if err != nil {
		logger.Error().Err(err).Msg("Login form not bound")
		return
	}

	handler := submit.NewHandler(loginclient.New(dom.Origin(), nil), dom, dom, logger)
	handler.Bind(context.Background(), dom)

	// Bound until page unload.
	select {}
}
