// Package httputil holds the JSON response helpers shared by all handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "ferry/pkg/domain-errors"
)

type errorBody struct {
	Error       string              `json:"error"`
	Description string              `json:"error_description,omitempty"`
	Fields      []dErrors.FieldError `json:"fields,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a coded error into its HTTP response. Internal errors
// omit the description so storage details never reach clients; every other
// code surfaces its message, and validation errors carry the field list.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := errorBody{Error: string(code)}
	if code != dErrors.CodeInternal {
		var de *dErrors.Error
		if errors.As(err, &de) {
			body.Description = de.Message
		}
		body.Fields = dErrors.FieldsOf(err)
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}
