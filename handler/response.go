package handler

import (
	"encoding/json"
	"net/http"
)

// errorBody is the envelope rendered for extraction and pipeline
// failures. Invalid validation results render the result itself instead,
// since it already carries field-level errors and sanitized data.
type errorBody struct {
	Error errorInfo `json:"error"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
