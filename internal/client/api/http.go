package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dpetrovs/registro/internal/client/models"
	"github.com/dpetrovs/registro/internal/common"
)

// HTTPClient talks JSON over HTTP to the registry service. Every call is
// bounded by the configured timeout so a stuck request surfaces as
// ErrUnavailable instead of hanging the UI in its loading state.
type HTTPClient struct {
	baseURL string
	timeout time.Duration
	hc      *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		hc:      &http.Client{},
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// mapError classifies a non-2xx response into the shared sentinel errors.
// Recoverable 400-level messages keep their server-provided text.
func mapError(statusCode int, body []byte) error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)

	switch statusCode {
	case http.StatusBadRequest:
		switch eb.Error {
		case common.ErrDuplicateEmail.Error():
			return common.ErrDuplicateEmail
		case common.ErrValidation.Error():
			return common.ErrValidation
		default:
			if eb.Error != "" {
				return fmt.Errorf("%w: %s", common.ErrValidation, eb.Error)
			}
			return common.ErrValidation
		}
	case http.StatusNotFound:
		return common.ErrNotFound
	default:
		return common.ErrUnavailable
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, mapError(resp.StatusCode, data)
	}

	return data, nil
}

func (c *HTTPClient) List(ctx context.Context) ([]models.User, error) {
	data, err := c.do(ctx, http.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}

	var result []models.User
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	return result, nil
}

type createRequest struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
}

func (c *HTTPClient) Create(ctx context.Context, name string, age int, email string) (*models.User, error) {
	data, err := c.do(ctx, http.MethodPost, "/users", createRequest{Name: name, Age: age, Email: email})
	if err != nil {
		return nil, err
	}

	user := &models.User{}
	if err := json.Unmarshal(data, user); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	return user, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
	return err
}
