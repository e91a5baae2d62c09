// Package httputil writes the JSON envelopes the editor API answers with.
//
// Every response is a JSON object carrying a boolean "success" field;
// failures add an "error" message. The HTTP status is informational only.
package httputil

import (
	"encoding/json"
	"io"
	"net/http"
)

// Envelope field names.
const (
	FieldSuccess = "success"
	FieldError   = "error"
)

// WriteJSON writes a JSON response with the given status code.
// It sets the Content-Type header to application/json.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteSuccess writes a 200 envelope with success=true merged over fields.
func WriteSuccess(w http.ResponseWriter, fields map[string]any) {
	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body[FieldSuccess] = true
	WriteJSON(w, http.StatusOK, body)
}

// WriteFailure writes a failure envelope with the given status code.
func WriteFailure(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]any{
		FieldSuccess: false,
		FieldError:   message,
	})
}

// WriteBadRequest writes a 400 failure envelope.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteFailure(w, http.StatusBadRequest, message)
}

// WriteNotFound writes a 404 failure envelope.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteFailure(w, http.StatusNotFound, message)
}

// WriteConflict writes a 409 failure envelope.
func WriteConflict(w http.ResponseWriter, message string) {
	WriteFailure(w, http.StatusConflict, message)
}

// WriteMethodNotAllowed writes a 405 failure envelope and sets Allow.
func WriteMethodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	WriteFailure(w, http.StatusMethodNotAllowed, "method not allowed, use "+allowed)
}

// DecodeObject reads a JSON object body. An empty body yields an empty map.
func DecodeObject(r io.Reader) (map[string]any, error) {
	out := map[string]any{}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		if err == io.EOF {
			return map[string]any{}, nil
		}
		return nil, err
	}
	return out, nil
}
