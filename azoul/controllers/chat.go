package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"azoul/azoul/chat"
	"azoul/azoul/utils/logging"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.uber.org/zap"
)

// ChatController answers single messages over HTTP and runs one chat
// session per websocket.
type ChatController struct {
	engine *chat.Engine
	delay  time.Duration
}

func NewChatController(engine *chat.Engine, replyDelay time.Duration) *ChatController {
	return &ChatController{engine: engine, delay: replyDelay}
}

// Respond is the stateless POST /api/chat path: English banks only.
func (c *ChatController) Respond(ctx context.Context, message string) (chat.Reply, error) {
	defer logging.LogDuration(ctx, "ChatController.Respond")()
	message = strings.TrimSpace(message)
	if message == "" {
		return chat.Reply{}, chat.ErrEmptyMessage
	}
	reply := c.engine.Reply(message, chat.DefaultLanguage)
	logging.AppLogger.Info("chat reply",
		zap.String("category", reply.Category.String()),
		zap.Bool("degraded", reply.Degraded),
	)
	return reply, nil
}

// ClientFrame is what the widget sends over the socket.
type ClientFrame struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
}

const (
	FrameMessage = "message"
	FrameError   = "error"
)

// ServerFrame carries either a conversation message or an error text.
type ServerFrame struct {
	Type    string        `json:"type"`
	Message *chat.Message `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// RunSession drives a chat session over conn until the peer goes away.
// Closing the socket closes the session, so a reply still pending is
// dropped.
func (c *ChatController) RunSession(ctx context.Context, conn *websocket.Conn, language string) error {
	send := func(frame ServerFrame) {
		if err := wsjson.Write(ctx, conn, frame); err != nil {
			logging.AppLogger.Debug("websocket write failed", zap.Error(err))
		}
	}

	session := chat.NewSession(c.engine,
		chat.WithDelay(c.delay),
		chat.WithLanguage(language),
		chat.WithReplyHandler(func(m chat.Message) {
			send(ServerFrame{Type: FrameMessage, Message: &m})
		}),
	)
	defer session.Close()

	if welcome, ok := session.Open(); ok {
		send(ServerFrame{Type: FrameMessage, Message: &welcome})
	}

	for {
		var in ClientFrame
		if err := wsjson.Read(ctx, conn, &in); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway ||
				errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		if in.Language != "" {
			session.SetLanguage(in.Language)
		}
		msg, err := session.Submit(in.Message)
		if err != nil {
			send(ServerFrame{Type: FrameError, Error: c.errorText(session.Language(), err)})
			continue
		}
		send(ServerFrame{Type: FrameMessage, Message: &msg})
	}
}

func (c *ChatController) errorText(language string, err error) string {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return c.engine.Text(language, chat.MsgEmptyMessage)
	case errors.Is(err, chat.ErrAwaitingReply):
		return c.engine.Text(language, chat.MsgReplyPending)
	case errors.Is(err, chat.ErrClosed):
		return c.engine.Text(language, chat.MsgSessionClosed)
	}
	return err.Error()
}
