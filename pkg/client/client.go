// Package client talks to a whiteboard server.
//
// [Client] implements [store.Store], so code written against the store
// works unchanged against a remote server:
//
//	var st store.Store = client.New("https://boards.example.com", token)
//	metas, err := st.List(ctx)
//
// Idempotent requests are retried on network errors, 5xx and 429.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	wberrors "github.com/matzehuels/whiteboard/pkg/errors"
	"github.com/matzehuels/whiteboard/pkg/httputil"
	"github.com/matzehuels/whiteboard/pkg/store"
)

// DefaultTimeout bounds a single request.
const DefaultTimeout = 30 * time.Second

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

// WithRetry sets the attempt count and first backoff delay.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.attempts = attempts
		c.delay = delay
	}
}

// Client is a remote board store.
type Client struct {
	base     string
	token    string
	http     *http.Client
	attempts int
	delay    time.Duration
}

// New returns a client for the server at baseURL. An empty token sends no
// Authorization header.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		base:     strings.TrimRight(baseURL, "/"),
		token:    token,
		http:     &http.Client{Timeout: DefaultTimeout},
		attempts: 3,
		delay:    500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type boardEnvelope struct {
	Board store.Record `json:"board"`
}

func (c *Client) Create(ctx context.Context, name string) (store.Record, error) {
	var resp boardEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/boards", map[string]string{"name": name}, &resp); err != nil {
		return store.Record{}, err
	}
	resp.Board.Payload = store.DefaultPayload()
	return resp.Board, nil
}

func (c *Client) Get(ctx context.Context, id string) (store.Record, error) {
	var resp boardEnvelope
	err := c.do(ctx, http.MethodGet, boardPath(id), nil, &resp)
	return resp.Board, c.mapErr(err, id)
}

func (c *Client) List(ctx context.Context) ([]store.Meta, error) {
	var resp struct {
		Boards []store.Meta `json:"boards"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/boards", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Boards, nil
}

func (c *Client) Save(ctx context.Context, id string, payload json.RawMessage, name *string) (store.Meta, error) {
	body := struct {
		Payload json.RawMessage `json:"payload"`
		Name    *string         `json:"name,omitempty"`
	}{payload, name}
	var resp boardEnvelope
	err := c.do(ctx, http.MethodPut, boardPath(id), body, &resp)
	return resp.Board.Meta, c.mapErr(err, id)
}

func (c *Client) Rename(ctx context.Context, id, name string) (store.Meta, error) {
	var resp boardEnvelope
	err := c.do(ctx, http.MethodPatch, boardPath(id), map[string]string{"name": name}, &resp)
	return resp.Board.Meta, c.mapErr(err, id)
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.mapErr(c.do(ctx, http.MethodDelete, boardPath(id), nil, nil), id)
}

// Export downloads a rendered board.
func (c *Client) Export(ctx context.Context, id, format string) ([]byte, error) {
	var buf bytes.Buffer
	err := c.do(ctx, http.MethodGet, boardPath(id)+"/export."+url.PathEscape(format), nil, &buf)
	if err != nil {
		return nil, c.mapErr(err, id)
	}
	return buf.Bytes(), nil
}

func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func boardPath(id string) string { return "/api/boards/" + url.PathEscape(id) }

// do sends a request and decodes the response into out, which may be nil,
// a *bytes.Buffer for raw bodies, or a JSON target.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return err
		}
	}

	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, method, c.base+path, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		if in != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}
		defer resp.Body.Close()
		if err := httputil.CheckResponse(resp); err != nil {
			return err
		}
		switch v := out.(type) {
		case nil:
			return nil
		case *bytes.Buffer:
			_, err = io.Copy(v, resp.Body)
			return err
		default:
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("decode %s %s: %w", method, path, err)
			}
			return nil
		}
	}

	if method == http.MethodPost {
		err := attempt()
		var re *httputil.RetryableError
		if errors.As(err, &re) {
			return re.Err
		}
		return err
	}
	return httputil.Retry(ctx, c.attempts, c.delay, attempt)
}

// mapErr turns API statuses into the coded errors the store reports.
func (c *Client) mapErr(err error, id string) error {
	var se *httputil.StatusError
	if !errors.As(err, &se) {
		return err
	}
	switch se.Status {
	case http.StatusNotFound:
		return store.NotFound(id)
	case http.StatusBadRequest:
		return wberrors.New(wberrors.ErrCodeInvalidInput, "%s", se.Message)
	case http.StatusUnauthorized:
		return wberrors.New(wberrors.ErrCodeUnauthorized, "%s", se.Message)
	}
	return err
}

var _ store.Store = (*Client)(nil)
