package handlers

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(payload)
	if err != nil {
		writeText(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeText is http.Error without the trailing newline, so bodies match
// their message exactly.
func writeText(w http.ResponseWriter, status int, message string) {
	h := w.Header()
	h.Del("Content-Length")
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}
