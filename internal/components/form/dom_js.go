//go:build js && wasm

package form

import (
	"fmt"
	"syscall/js"

	"github.com/andrasnagy-data/loginform/internal/components/submit"
)

type (
	// DOM binds a page's form element. Field values are looked up by element
	// id, so the inputs must carry the ids "email" and "password".
	DOM struct {
		document js.Value
		form     js.Value
	}

	domEvent struct {
		event js.Value
	}
)

func (e domEvent) PreventDefault() { e.event.Call("preventDefault") }

// NewDOM looks up the form element with the given id.
func NewDOM(formID string) (*DOM, error) {
	document := js.Global().Get("document")
	form := document.Call("getElementById", formID)
	if form.IsNull() || form.IsUndefined() {
		return nil, fmt.Errorf("form element %q not found", formID)
	}
	return &DOM{document: document, form: form}, nil
}

func (d *DOM) OnSubmit(listener func(submit.Event)) func() {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		listener(domEvent{event: args[0]})
		return nil
	})
	d.form.Call("addEventListener", "submit", cb)

	return func() {
		d.form.Call("removeEventListener", "submit", cb)
		cb.Release()
	}
}

func (d *DOM) Value(field string) string {
	el := d.document.Call("getElementById", field)
	if el.IsNull() || el.IsUndefined() {
		return ""
	}
	return el.Get("value").String()
}

func (d *DOM) Alert(message string) {
	js.Global().Call("alert", message)
}

// Origin returns the page origin, used as the base URL for /login.
func (d *DOM) Origin() string {
	return js.Global().Get("location").Get("origin").String()
}
