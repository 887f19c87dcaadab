package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/demostore/go-store-admin/app/sessions"
)

// ErrSessionExpired is returned on HTTP 401. The client has already cleared
// the stored token by the time callers see it; the only recovery is logging
// in again.
var ErrSessionExpired = errors.New("session expired, please log in again")

// APIError carries the status code and the human-readable message derived
// from the server response, following the store API error taxonomy:
// 5xx collapse to a generic message, 4xx surface the server-supplied
// message verbatim when one exists.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// APIClient is the shared REST transport for every repository. It attaches
// the bearer token from the session store to each request and applies the
// global response policy (401 clears the session, 5xx and message-bearing
// 4xx map to typed errors).
type APIClient struct {
	client  *http.Client
	baseURL string
	tokens  sessions.TokenSource
}

func NewAPIClient(baseURL string, timeout time.Duration, tokens sessions.TokenSource) *APIClient {
	return &APIClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
	}
}

// Get performs a GET and decodes the JSON response into out.
func (c *APIClient) Get(ctx context.Context, path string, query url.Values, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, query, "", nil, out, false)
	return err
}

// GetAllow404 performs a GET where 404 means "not found" rather than an
// error. It reports whether the resource exists; out is only populated when
// it does. Name and SKU lookups use this for their fail-open checks.
func (c *APIClient) GetAllow404(ctx context.Context, path string, out any) (bool, error) {
	return c.do(ctx, http.MethodGet, path, nil, "", nil, out, true)
}

func (c *APIClient) Post(ctx context.Context, path string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, out)
}

func (c *APIClient) Put(ctx context.Context, path string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, out)
}

func (c *APIClient) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, "", nil, nil, false)
	return err
}

func (c *APIClient) sendJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	_, err := c.do(ctx, method, path, nil, "application/json", reader, out, false)
	return err
}

// PostMultipart submits fields plus files as multipart form data. files maps
// a form field name to local file paths; entities with a single image (brand
// logo) pass one path, product galleries pass several under "images".
func (c *APIClient) PostMultipart(ctx context.Context, path string, fields map[string]string, files map[string][]string, out any) error {
	return c.sendMultipart(ctx, http.MethodPost, path, fields, files, out)
}

func (c *APIClient) PutMultipart(ctx context.Context, path string, fields map[string]string, files map[string][]string, out any) error {
	return c.sendMultipart(ctx, http.MethodPut, path, fields, files, out)
}

func (c *APIClient) sendMultipart(ctx context.Context, method, path string, fields map[string]string, files map[string][]string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("writing form field %s: %w", name, err)
		}
	}

	for field, paths := range files {
		for _, p := range paths {
			f, err := os.Open(p)
			if err != nil {
				return fmt.Errorf("opening upload file: %w", err)
			}
			part, err := writer.CreateFormFile(field, filepath.Base(p))
			if err != nil {
				f.Close()
				return fmt.Errorf("creating form file %s: %w", field, err)
			}
			if _, err := io.Copy(part, f); err != nil {
				f.Close()
				return fmt.Errorf("reading upload file %s: %w", p, err)
			}
			f.Close()
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalizing multipart body: %w", err)
	}

	_, err := c.do(ctx, method, path, nil, writer.FormDataContentType(), &buf, out, false)
	return err
}

func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any, allow404 bool) (bool, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	token, err := c.tokens.Token()
	if err != nil && !errors.Is(err, sessions.ErrNoSession) {
		return false, fmt.Errorf("loading session token: %w", err)
	}
	if token != "" {
		if sessions.Expired(token, time.Now()) {
			log.Printf("APIClient: stored token is expired, request %s %s will likely be rejected", method, path)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to perform request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if clearErr := c.tokens.Clear(); clearErr != nil {
			log.Printf("APIClient: failed to clear session after 401: %v", clearErr)
		}
		return false, ErrSessionExpired

	case resp.StatusCode == http.StatusNotFound && allow404:
		return false, nil

	case resp.StatusCode >= http.StatusInternalServerError:
		log.Printf("APIClient: %s %s returned %d, Body: %s", method, path, resp.StatusCode, truncate(respBody, 512))
		return false, &APIError{StatusCode: resp.StatusCode, Message: "Server error. Please try again later."}

	case resp.StatusCode >= http.StatusBadRequest:
		return false, &APIError{StatusCode: resp.StatusCode, Message: serverMessage(respBody, resp.StatusCode)}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return false, fmt.Errorf("failed to parse response from %s %s: %w", method, path, err)
		}
	}
	return true, nil
}

// serverMessage extracts the server-supplied message from a 4xx body,
// falling back to a generic line when the body carries none.
func serverMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fmt.Sprintf("Request failed with status %d", status)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
