package submit

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/andrasnagy-data/loginform/internal/components/loginclient"
)

type (
	loginer interface {
		Login(context.Context, loginclient.LoginRequest) (*loginclient.LoginResponse, error)
	}

	// Handler turns submit events into login requests and shows the verdict.
	// Submissions are independent: none is skipped, merged or cancelled by a
	// later one.
	Handler struct {
		client   loginer
		form     Form
		notifier Notifier
		logger   zerolog.Logger
		inflight sync.WaitGroup
	}
)

func NewHandler(client loginer, form Form, notifier Notifier, logger zerolog.Logger) *Handler {
	return &Handler{
		client:   client,
		form:     form,
		notifier: notifier,
		logger:   logger.With().Str("component", "submit").Logger(),
	}
}

// Bind registers the handler on src. Every submission made through the
// binding runs under ctx. The returned function unbinds.
func (h *Handler) Bind(ctx context.Context, src EventSource) func() {
	return src.OnSubmit(func(ev Event) {
		h.HandleEvent(ctx, ev)
	})
}

// HandleEvent prevents the default action, reads the fields and dispatches
// the request in the background. It returns without waiting for a response.
func (h *Handler) HandleEvent(ctx context.Context, ev Event) {
	ev.PreventDefault()

	creds := Credentials{
		Email:    h.form.Value(FieldEmail),
		Password: h.form.Value(FieldPassword),
	}

	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		h.Render(h.Submit(ctx, creds))
	}()
}

// Submit sends creds and classifies the result. It blocks until the backend
// answers or the request fails.
func (h *Handler) Submit(ctx context.Context, creds Credentials) Outcome {
	out := Outcome{SubmissionID: uuid.New()}
	logger := h.logger.With().Str("submission_id", out.SubmissionID.String()).Logger()

	logger.Debug().Bool("email_present", creds.Email != "").Msg("Login submission")

	resp, err := h.client.Login(ctx, loginclient.LoginRequest{
		Email:    creds.Email,
		Password: creds.Password,
	})
	switch {
	case err != nil:
		out.Kind = OutcomeTransportError
		out.Err = err
	case resp.Truthy():
		out.Kind = OutcomeSuccess
	default:
		out.Kind = OutcomeRejected
	}

	logger.Debug().Stringer("outcome", out.Kind).Msg("Login submission resolved")
	return out
}

// Render alerts the user for success and rejection. Transport errors only go
// to the diagnostic log.
func (h *Handler) Render(out Outcome) {
	if msg := out.Message(); msg != "" {
		h.notifier.Alert(msg)
		return
	}

	h.logger.Error().
		Err(out.Err).
		Str("submission_id", out.SubmissionID.String()).
		Msg("Login request failed")
}

// Wait blocks until every dispatched submission has been rendered.
func (h *Handler) Wait() {
	h.inflight.Wait()
}
