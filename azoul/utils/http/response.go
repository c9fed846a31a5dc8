package httputils

import (
	"encoding/json"
	"net/http"
	"time"
)

// TimestampLayout is ISO 8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ErrorBody is the JSON shape of every API error.
type ErrorBody struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// WriteJSON sets the status and encodes v. A nil v writes no body.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(v)
}

// WriteError writes msg as an ErrorBody stamped with the current time.
func WriteError(w http.ResponseWriter, status int, msg string) error {
	return WriteJSON(w, status, ErrorBody{Error: msg, Timestamp: Timestamp(time.Now())})
}
