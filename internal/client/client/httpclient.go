package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/projectmanager/internal/client/models"
	"github.com/dmitrijs2005/projectmanager/internal/common"
	"github.com/google/uuid"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

// call performs one request and decodes the success envelope.
func call[T any](ctx context.Context, c *HTTPClient, method, path string, body any) (envelope[T], error) {
	var out envelope[T]

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return out, err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return out, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		var eb errorBody
		if json.Unmarshal(raw, &eb) != nil || eb.Detail == "" {
			eb.Detail = http.StatusText(resp.StatusCode)
		}
		return out, &APIError{StatusCode: resp.StatusCode, Detail: eb.Detail}
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := call[json.RawMessage](ctx, c, http.MethodGet, "/healthz", nil)
	return err
}

func (c *HTTPClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	res, err := call[[]models.Project](ctx, c, http.MethodGet, "/projects", nil)
	return res.Data, err
}

func (c *HTTPClient) CreateProject(ctx context.Context, p models.Project) (string, *models.Project, error) {
	res, err := call[*models.Project](ctx, c, http.MethodPost, "/projects", p)
	return res.Message, res.Data, err
}

func (c *HTTPClient) UpdateProject(ctx context.Context, id string, fields map[string]any) (string, *models.Project, error) {
	res, err := call[*models.Project](ctx, c, http.MethodPut, "/projects/"+url.PathEscape(id), fields)
	return res.Message, res.Data, err
}

func (c *HTTPClient) DeleteProject(ctx context.Context, id string) (string, error) {
	res, err := call[json.RawMessage](ctx, c, http.MethodDelete, "/projects/"+url.PathEscape(id), nil)
	return res.Message, err
}

func (c *HTTPClient) ListTasks(ctx context.Context, projectID string) ([]models.Task, error) {
	path := "/tasks"
	if projectID != "" {
		path = "/projects/" + url.PathEscape(projectID) + "/tasks"
	}
	res, err := call[[]models.Task](ctx, c, http.MethodGet, path, nil)
	return res.Data, err
}

func (c *HTTPClient) CreateTask(ctx context.Context, t models.Task) (string, *models.Task, error) {
	res, err := call[*models.Task](ctx, c, http.MethodPost, "/tasks", t)
	return res.Message, res.Data, err
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id string, fields map[string]any) (string, *models.Task, error) {
	res, err := call[*models.Task](ctx, c, http.MethodPut, "/tasks/"+url.PathEscape(id), fields)
	return res.Message, res.Data, err
}

func (c *HTTPClient) SetTaskCompleted(ctx context.Context, id string, completed bool) (string, *models.Task, error) {
	body := map[string]bool{"completed": completed}
	res, err := call[*models.Task](ctx, c, http.MethodPut, "/tasks/"+url.PathEscape(id)+"/status", body)
	return res.Message, res.Data, err
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id string) (string, error) {
	res, err := call[json.RawMessage](ctx, c, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil)
	return res.Message, err
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	res, err := call[[]models.User](ctx, c, http.MethodGet, "/users", nil)
	return res.Data, err
}

func (c *HTTPClient) CreateUser(ctx context.Context, u models.User) (string, *models.User, error) {
	res, err := call[*models.User](ctx, c, http.MethodPost, "/users", u)
	return res.Message, res.Data, err
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, fields map[string]any) (string, *models.User, error) {
	res, err := call[*models.User](ctx, c, http.MethodPut, "/users/"+url.PathEscape(id), fields)
	return res.Message, res.Data, err
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) (string, error) {
	res, err := call[json.RawMessage](ctx, c, http.MethodDelete, "/users/"+url.PathEscape(id), nil)
	return res.Message, err
}
