package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"azoul/azoul/chat"
	"azoul/azoul/sources/psql/dao"
	"azoul/azoul/sources/psql/models"
	"azoul/azoul/sources/storage"
	httputils "azoul/azoul/utils/http"
	"azoul/azoul/utils/logging"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

var now = func() time.Time { return time.Now().UTC() }

func timestamp() string {
	return httputils.Timestamp(now())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	if err := httputils.WriteJSON(w, status, v); err != nil {
		logging.ErrorLogger.Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		logging.ErrorLogger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		msg = http.StatusText(status)
	}
	writeJSON(w, status, httputils.ErrorBody{Error: msg, Timestamp: timestamp()})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.Is(err, dao.ErrNotFound), errors.Is(err, storage.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrValidation), errors.Is(err, chat.ErrEmptyMessage):
		return http.StatusBadRequest
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// handleJSON runs handler and writes its result, or a JSON error body.
// A zero status from the handler means statusFor(err).
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			if status == 0 {
				status = statusFor(err)
			}
			writeError(w, r, status, err)
			return
		}
		if status == http.StatusNoContent {
			w.WriteHeader(status)
			return
		}
		writeJSON(w, status, res)
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return err
		}
		return &models.ValidationError{Field: "body", Reason: "invalid JSON"}
	}
	return nil
}

// paging reads ?limit=&offset=; limit defaults to 50 and is capped at 200.
func paging(r *http.Request) (limit, offset int) {
	limit, offset = 50, 0
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = min(v, 200)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
