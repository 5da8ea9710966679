package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/projectmanager/internal/server/services"
)

const msgInvalidBody = "invalid request body"

// envelope is the body of every successful manager call.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// errorBody is the body of every failed call.
type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"detail":"json encoding failed"}`, http.StatusInternalServerError)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}

// respond maps a manager result to HTTP: 200 with the envelope on success,
// 400 with {"detail": message} on any failure.
func respond[T any](h *Handlers, w http.ResponseWriter, resource string, res services.Result[T]) {
	h.metrics.Result(resource, res.Kind().String())

	data, ok := res.Data()
	if !ok {
		writeDetail(w, http.StatusBadRequest, res.Message())
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: res.Message(), Data: data})
}

// decodeBody reads a single JSON value into dst. An empty body is an error.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("trailing data after JSON body")
	}
	return nil
}
