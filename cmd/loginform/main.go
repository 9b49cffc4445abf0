// Command loginform submits login credentials to a backend from a terminal.
package main

import (
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/andrasnagy-data/loginform/internal/components/form"
	"github.com/andrasnagy-data/loginform/internal/components/loginclient"
	"github.com/andrasnagy-data/loginform/internal/components/submit"
	"github.com/andrasnagy-data/loginform/internal/shared/config"
	"github.com/andrasnagy-data/loginform/internal/shared/logging"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logger := logging.NewConsoleLogger(os.Stderr)
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	backend := flag.String("backend", cfg.LoginBackendURL, "base URL of the login backend")
	once := flag.Bool("once", false, "exit after the first submission")
	flag.Parse()

	logger, sentryWriter := logging.NewLogger(cfg)

	err = run(context.Background(), os.Stdin, os.Stdout, *backend, cfg.RequestTimeout, *once, logger)

	if sentryWriter != nil {
		sentryWriter.Close()
	}
	if err != nil {
		logger.Error().Err(err).Msg("Terminal form stopped")
		os.Exit(1)
	}
}

// run drives the terminal form until input ends and waits for every
// submission to be answered before returning.
func run(ctx context.Context, in io.Reader, out io.Writer, backend string, timeout time.Duration, once bool, logger zerolog.Logger) error {
	terminal := form.NewTerminal(in, out)
	client := loginclient.New(backend, &http.Client{Timeout: timeout})

	handler := submit.NewHandler(client, terminal, terminal, logger)
	unbind := handler.Bind(ctx, terminal)
	defer unbind()

	logger.Debug().Str("backend", backend).Msg("Terminal form ready")

	err := terminal.Run(ctx, once)
	handler.Wait()
	return err
}
