package assistant

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"azoul/azoul/chat"
	httputils "azoul/azoul/utils/http"
	"azoul/azoul/utils/logging"

	"go.uber.org/zap"
)

// Answer is what the remote chat endpoint replied, or the local fallback.
type Answer struct {
	Text      string
	Timestamp time.Time
	// Fallback is set when the remote call failed and Text is the local
	// general reply.
	Fallback bool
}

// Client talks to a remote POST /api/chat endpoint with a hard timeout.
type Client struct {
	baseURL  string
	client   *http.Client
	fallback *chat.Engine

	requestCount  atomic.Int64
	fallbackCount atomic.Int64
}

func NewClient(baseURL string, timeout time.Duration, fallback *chat.Engine) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		fallback: fallback,
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error"`
}

var errEmptyResponse = errors.New("remote assistant returned an empty response")

// Ask never fails: transport errors, timeouts and bad payloads are logged
// and answered with the local English general reply.
func (c *Client) Ask(ctx context.Context, message string) Answer {
	c.requestCount.Add(1)
	defer logging.LogDuration(ctx, "assistant.Ask")()

	answer, err := c.ask(ctx, message)
	if err == nil {
		return answer
	}

	c.fallbackCount.Add(1)
	logging.AppLogger.Warn("remote assistant failed, using fallback",
		zap.String("url", c.baseURL),
		zap.Error(err),
	)
	return Answer{
		Text:      c.fallback.Fallback(chat.DefaultLanguage),
		Timestamp: time.Now().UTC(),
		Fallback:  true,
	}
}

func (c *Client) ask(ctx context.Context, message string) (Answer, error) {
	var resp chatResponse
	if err := httputils.PostJSON(ctx, c.client, c.baseURL+"/api/chat", chatRequest{Message: message}, &resp); err != nil {
		return Answer{}, err
	}
	if strings.TrimSpace(resp.Response) == "" {
		return Answer{}, errEmptyResponse
	}
	ts, err := time.Parse(time.RFC3339Nano, resp.Timestamp)
	if err != nil {
		ts = time.Now().UTC()
	}
	return Answer{Text: resp.Response, Timestamp: ts}, nil
}

// Stats returns the number of calls made and how many fell back.
func (c *Client) Stats() (requests, fallbacks int64) {
	return c.requestCount.Load(), c.fallbackCount.Load()
}
