package loginclient

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// LoginResponse is the backend's verdict. Success is kept raw so that any
	// JSON value can be judged by Truthy.
	LoginResponse struct {
		Success json.RawMessage `json:"success"`
	}
)

// Truthy reports whether the success field holds a truthy value: false,
// null, 0 and "" are falsy, anything else is truthy.
func (r LoginResponse) Truthy() bool {
	raw := bytes.TrimSpace(r.Success)
	if len(raw) == 0 {
		return false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return false
	}

	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case json.Number:
		// Out of range magnitudes parse as +-Inf, which is non-zero.
		f, _ := strconv.ParseFloat(val.String(), 64)
		return f != 0
	case string:
		return val != ""
	default:
		return true
	}
}
