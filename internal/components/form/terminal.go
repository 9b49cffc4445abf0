package form

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/andrasnagy-data/loginform/internal/components/submit"
)

type (
	// Terminal is a line oriented login form. Each completed email/password
	// pair is one submit event. It implements submit.EventSource, submit.Form
	// and submit.Notifier.
	Terminal struct {
		in           *bufio.Reader
		out          io.Writer
		readPassword func() (string, error)

		mu       sync.Mutex
		values   map[string]string
		listener func(submit.Event)
	}

	terminalEvent struct {
		prevented bool
	}
)

func (e *terminalEvent) PreventDefault() { e.prevented = true }

// NewTerminal reads from in and writes prompts and alerts to out. When in is a
// terminal the password is read without echo.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{
		in:     bufio.NewReader(in),
		out:    out,
		values: make(map[string]string),
	}
	t.readPassword = t.readLine

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.readPassword = func() (string, error) {
			b, err := term.ReadPassword(int(f.Fd()))
			t.print("\n")
			return string(b), err
		}
	}
	return t
}

func (t *Terminal) OnSubmit(listener func(submit.Event)) func() {
	t.mu.Lock()
	t.listener = listener
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		t.listener = nil
		t.mu.Unlock()
	}
}

func (t *Terminal) Value(field string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.values[field]
}

func (t *Terminal) Alert(message string) {
	t.print(message + "\n")
}

// Run prompts for submissions until in is exhausted, ctx is done, or, with
// once set, after the first submission. EOF ends the loop without error.
func (t *Terminal) Run(ctx context.Context, once bool) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		t.print("Email: ")
		email, err := t.readLine()
		if err != nil {
			return ignoreEOF(err)
		}

		t.print("Password: ")
		password, err := t.readPassword()
		if err != nil {
			return ignoreEOF(err)
		}

		t.submit(email, password)

		if once {
			return nil
		}
	}
}

func (t *Terminal) submit(email, password string) {
	t.mu.Lock()
	t.values[submit.FieldEmail] = email
	t.values[submit.FieldPassword] = password
	listener := t.listener
	t.mu.Unlock()

	ev := &terminalEvent{}
	if listener != nil {
		listener(ev)
	}

	// Without a listener that prevents it, submitting resets the form.
	if !ev.prevented {
		t.mu.Lock()
		clear(t.values)
		t.mu.Unlock()
	}
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) print(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprint(t.out, s)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
