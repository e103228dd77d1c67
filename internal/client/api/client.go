// Package api implements the HTTP client for the notes backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Note mirrors the wire representation served by the backend.
type Note struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// User is the authenticated account as returned by the backend. The
// password hash never appears on the wire.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// APIError carries a backend failure: the HTTP status and the message the
// server put in the response body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs the bearer token used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Token() string {
	return c.token
}

// authResponse covers both auth endpoints. Error is raw because the server
// sends either a plain message or a list of field errors.
type authResponse struct {
	Success bool            `json:"success"`
	Token   string          `json:"token"`
	Error   json.RawMessage `json:"error"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	var resp authResponse
	status, err := c.do(ctx, http.MethodPost, "/auth/createuser", body, &resp)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK || !resp.Success {
		return "", &APIError{Status: status, Message: formatErrorMessage(resp.Error)}
	}
	return resp.Token, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	var resp authResponse
	status, err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK || !resp.Success {
		return "", &APIError{Status: status, Message: formatErrorMessage(resp.Error)}
	}
	return resp.Token, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.doChecked(ctx, http.MethodPost, "/auth/getuser", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := c.doChecked(ctx, http.MethodGet, "/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) AddNote(ctx context.Context, title, description string) (*Note, error) {
	body := map[string]string{"title": title, "description": description}

	var note Note
	if err := c.doChecked(ctx, http.MethodPost, "/notes", body, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote sends both fields; empty ones are left unchanged server-side.
func (c *Client) UpdateNote(ctx context.Context, id, title, description string) (*Note, error) {
	body := map[string]string{"title": title, "description": description}

	var note Note
	if err := c.doChecked(ctx, http.MethodPut, "/notes/"+id, body, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.doChecked(ctx, http.MethodDelete, "/notes/"+id, nil, nil)
}

// do performs the request and decodes the body into out regardless of
// status. The caller inspects the returned status code.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decoding response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// doChecked performs the request and turns any non-200 response into an
// APIError built from the server's error body.
func (c *Client) doChecked(ctx context.Context, method, path string, body, out any) error {
	var raw json.RawMessage
	status, err := c.do(ctx, method, path, body, &raw)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &APIError{Status: status, Message: extractErrorMessage(raw)}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// extractErrorMessage pulls a human-readable message out of an error body,
// which may use an "error" or "errors" key.
func extractErrorMessage(raw json.RawMessage) string {
	var body struct {
		Error  json.RawMessage `json:"error"`
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if msg := formatErrorMessage(body.Error); msg != "" {
		return msg
	}
	return formatErrorMessage(body.Errors)
}

// formatErrorMessage renders the error payload, which is either a plain
// string or a list of {field, message} validation failures.
func formatErrorMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var msg string
	if err := json.Unmarshal(raw, &msg); err == nil {
		return msg
	}

	var fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &fields); err == nil {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, f.Field+": "+f.Message)
		}
		return strings.Join(parts, "; ")
	}

	return string(raw)
}
