package routes

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"azoul/azoul/config"
	"azoul/azoul/controllers"
	"azoul/azoul/middlewares"
	"azoul/azoul/utils/logging"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxUploadBytes = 32 << 20

// MediaRoutes is the admin media library.
func MediaRoutes(ctrl *controllers.MediaController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AdminMiddleware(cfg))

	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, r, http.StatusBadRequest, err)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, errors.New("file is required"))
			return
		}
		defer file.Close()

		m, err := ctrl.Upload(r.Context(), file, header.Filename, header.Header.Get("Content-Type"), header.Size, r.FormValue("alt"))
		if err != nil {
			writeError(w, r, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusCreated, m)
	})

	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		limit, offset := paging(r)
		items, err := ctrl.List(r.Context(), limit, offset)
		if err != nil {
			return nil, 0, err
		}
		return items, http.StatusOK, nil
	}))

	r.Get("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
		m, err := ctrl.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			return nil, 0, err
		}
		return m, http.StatusOK, nil
	}))

	r.Get("/{id}/content", func(w http.ResponseWriter, r *http.Request) {
		m, body, err := ctrl.Content(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, statusFor(err), err)
			return
		}
		defer body.Close()
		w.Header().Set("Content-Type", m.ContentType)
		if m.Size > 0 {
			w.Header().Set("Content-Length", strconv.FormatInt(m.Size, 10))
		}
		if _, err := io.Copy(w, body); err != nil {
			logging.AppLogger.Warn("media stream interrupted", zap.String("id", m.ID), zap.Error(err))
		}
	})

	r.Delete("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
		if err := ctrl.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			return nil, 0, err
		}
		return nil, http.StatusNoContent, nil
	}))
	return r
}
