// Package client is the single point through which every backend call
// flows. It owns bearer-token attachment, the one-shot refresh-on-401
// replay, JSON and multipart encoding, and typed error decoding. Resource
// services are thin facades over one shared Client instance.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/pkg/apperrors"
	"github.com/okul/schoolhub/internal/pkg/tokenstore"
)

const (
	headerRequestID = "X-Request-ID"

	defaultTimeout = 15 * time.Second
)

// APIError carries a non-2xx response back to the caller: the status code
// and the server-provided error body, untouched. The client never rewrites
// or suppresses the server's message.
type APIError struct {
	StatusCode int
	Body       dto.ErrorBody
	RawBody    []byte
}

func (e *APIError) Error() string {
	if msg := e.Body.Message(); msg != "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("api error (%d)", e.StatusCode)
}

// Unwrap maps the status code to a sentinel so callers can branch with
// errors.Is without matching on numeric codes.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return apperrors.ErrNotAuthenticated
	case http.StatusForbidden:
		return apperrors.ErrPermissionDenied
	case http.StatusNotFound:
		return apperrors.ErrResourceNotFound
	default:
		return apperrors.ErrRequestFailed
	}
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}

// File is one part of a multipart upload.
type File struct {
	Field   string // form field name, usually "file" or "attachment"
	Name    string // filename reported to the server
	Content []byte
}

// Options configures a Client.
type Options struct {
	// BaseURL is the API root, e.g. "http://localhost:8000/api".
	BaseURL string
	// Store holds the credential pair read by the auth transport.
	Store tokenstore.Store
	// Timeout bounds each request end to end. Defaults to 15s.
	Timeout time.Duration
	// Logger receives request outcome and refresh events.
	Logger zerolog.Logger
	// OnSessionExpired runs after an unrecoverable 401 has cleared the
	// store: the process-level equivalent of redirecting to /login.
	OnSessionExpired func()
	// Transport overrides the underlying RoundTripper, for tests.
	Transport http.RoundTripper
}

// Client sends requests to the School LMS backend.
type Client struct {
	baseURL string
	http    *http.Client
	store   tokenstore.Store
	log     zerolog.Logger
}

// New creates a Client with the auth transport installed.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("client: base URL is required")
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("client: token store is required")
	}
	base, err := url.Parse(opts.BaseURL)
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") {
		return nil, fmt.Errorf("client: invalid base URL %q", opts.BaseURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	inner := opts.Transport
	if inner == nil {
		inner = http.DefaultTransport
	}

	baseStr := strings.TrimRight(base.String(), "/")
	transport := &authTransport{
		base:       inner,
		store:      opts.Store,
		refreshURL: baseStr + refreshPath,
		onExpired:  opts.OnSessionExpired,
		log:        opts.Logger,
		refreshHTTP: &http.Client{
			Transport: inner,
			Timeout:   timeout,
		},
	}

	return &Client{
		baseURL: baseStr,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		store: opts.Store,
		log:   opts.Logger,
	}, nil
}

// Store exposes the client's token store for the session layer.
func (c *Client) Store() tokenstore.Store {
	return c.store
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body []byte, contentType string) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return nil, fmt.Errorf("client: create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, uuid.New().String())
	return req, nil
}

// do sends the request and decodes a JSON response into out (when non-nil).
func (c *Client) do(req *http.Request, out interface{}) error {
	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.Path).Msg("request failed")
		return fmt.Errorf("client: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client: read response: %w", err)
	}

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}

func decodeAPIError(status int, data []byte) error {
	apiErr := &APIError{StatusCode: status, RawBody: data}
	if len(data) > 0 {
		// Best effort; a non-JSON error body is kept raw.
		_ = json.Unmarshal(data, &apiErr.Body)
	}
	return apiErr
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// Post issues a JSON POST request.
func (c *Client) Post(ctx context.Context, path string, in, out interface{}) error {
	return c.send(ctx, http.MethodPost, path, in, out)
}

// Patch issues a JSON PATCH request.
func (c *Client) Patch(ctx context.Context, path string, in, out interface{}) error {
	return c.send(ctx, http.MethodPatch, path, in, out)
}

// Put issues a JSON PUT request.
func (c *Client) Put(ctx context.Context, path string, in, out interface{}) error {
	return c.send(ctx, http.MethodPut, path, in, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) send(ctx context.Context, method, path string, in, out interface{}) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
	}
	req, err := c.newRequest(ctx, method, path, nil, body, "application/json")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// PostMultipart issues a multipart/form-data POST for endpoints accepting
// file uploads. Nil file slices are allowed; fields with empty values are
// skipped, matching the web client's form building.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files []File, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, val := range fields {
		if val == "" {
			continue
		}
		if err := w.WriteField(key, val); err != nil {
			return fmt.Errorf("client: write field %s: %w", key, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return fmt.Errorf("client: create form file %s: %w", f.Name, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return fmt.Errorf("client: write form file %s: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("client: close multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, buf.Bytes(), w.FormDataContentType())
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// Download fetches a binary response body, returning the bytes and the
// server-reported content type.
func (c *Client) Download(ctx context.Context, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path, nil), nil)
	if err != nil {
		return nil, "", fmt.Errorf("client: create request: %w", err)
	}
	req.Header.Set(headerRequestID, uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("client: %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("client: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", decodeAPIError(resp.StatusCode, data)
	}
	return data, resp.Header.Get("Content-Type"), nil
}
