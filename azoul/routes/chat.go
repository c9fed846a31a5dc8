package routes

import (
	"errors"
	"net/http"

	"azoul/azoul/chat"
	"azoul/azoul/controllers"
	"azoul/azoul/utils/logging"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type chatRequest struct {
	Message *string `json:"message"`
}

type chatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// ChatRoutes is the stateless request/response endpoint, mounted at /api/chat.
func ChatRoutes(ctrl *controllers.ChatController) chi.Router {
	r := chi.NewRouter()
	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
		var req chatRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, 0, err
		}
		if req.Message == nil {
			return nil, http.StatusBadRequest, errors.New("message is required")
		}
		reply, err := ctrl.Respond(r.Context(), *req.Message)
		if err != nil {
			return nil, 0, err
		}
		return chatResponse{Response: reply.Text, Timestamp: timestamp()}, http.StatusOK, nil
	}))
	return r
}

// SessionRoutes serves the chat widget socket, mounted at /chat.
func SessionRoutes(ctrl *controllers.ChatController) chi.Router {
	r := chi.NewRouter()
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		language := chat.PreferredLanguage(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			logging.AppLogger.Warn("websocket accept failed", zap.Error(err))
			return
		}
		defer conn.CloseNow()

		logging.AppLogger.Info("chat session opened", zap.String("language", language))
		if err := ctrl.RunSession(r.Context(), conn, language); err != nil {
			logging.AppLogger.Info("chat session ended", zap.Error(err))
			conn.Close(websocket.StatusInternalError, "session error")
			return
		}
		conn.Close(websocket.StatusNormalClosure, "")
	})
	return r
}
