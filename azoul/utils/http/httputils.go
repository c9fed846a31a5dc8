package httputils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bad status: %d", e.StatusCode)
}

// PostJSON posts body as JSON and decodes the response into resp (when
// non-nil). A nil client means http.DefaultClient.
func PostJSON(ctx context.Context, client *http.Client, url string, body any, resp any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if client == nil {
		client = http.DefaultClient
	}
	r, err := client.Do(req)
	if err != nil {
		return err
	}
	defer r.Body.Close()
	if r.StatusCode < 200 || r.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(r.Body, 512))
		return &StatusError{StatusCode: r.StatusCode, Body: string(snippet)}
	}
	if resp != nil {
		return json.NewDecoder(r.Body).Decode(resp)
	}
	return nil
}

// GetBody fetches url and returns the open body with its content type.
// Callers close the body.
func GetBody(ctx context.Context, client *http.Client, url string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	if client == nil {
		client = http.DefaultClient
	}
	r, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	if r.StatusCode != http.StatusOK {
		defer r.Body.Close()
		return nil, "", &StatusError{StatusCode: r.StatusCode}
	}
	return r.Body, r.Header.Get("Content-Type"), nil
}
