package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/projectmanager/internal/common"
	"github.com/dmitrijs2005/projectmanager/internal/logging"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/projectmanager/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func newTestServer(t *testing.T, store Pinger) *httptest.Server {
	t.Helper()
	l := logging.Discard()
	rm := repomanager.NewMemoryRepositoryManager()

	h := NewHandlers(
		services.NewProjectManager(nil, rm, l),
		services.NewTaskManager(nil, rm, l),
		services.NewUserManager(nil, rm, l),
		store, NewMetrics(), l,
	)
	s := NewServer(Options{RequestTimeout: time.Second}, l, h, h.metrics)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

type reply struct {
	Status  int             `json:"-"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Detail  string          `json:"detail"`
	Header  http.Header     `json:"-"`
}

func do(t *testing.T, ts *httptest.Server, method, path, body string) reply {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out reply
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	out.Status = resp.StatusCode
	out.Header = resp.Header
	return out
}

func dataID(t *testing.T, r reply) string {
	t.Helper()
	var v struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(r.Data, &v))
	require.NotEmpty(t, v.ID)
	return v.ID
}

// ---- tests ----

func TestHome(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := ts.Client().Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{
		"message": "Welcome to the Project Management API",
		"status":  "running",
		"docs":    "/docs",
	}, got)
}

func TestHealth(t *testing.T) {
	ok := newTestServer(t, fakePinger{})
	assert.Equal(t, http.StatusOK, do(t, ok, http.MethodGet, "/healthz", "").Status)

	noStore := newTestServer(t, nil)
	assert.Equal(t, http.StatusOK, do(t, noStore, http.MethodGet, "/healthz", "").Status)

	down := newTestServer(t, fakePinger{err: errors.New("connection refused")})
	r := do(t, down, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, r.Status)
	assert.Equal(t, "store unreachable", r.Detail)
}

func TestEmptyListingIsBadRequest(t *testing.T) {
	ts := newTestServer(t, nil)

	for path, msg := range map[string]string{
		"/projects": "error retrieving projects",
		"/tasks":    "error retrieving tasks",
		"/users":    "error retrieving users",
	} {
		r := do(t, ts, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, r.Status, path)
		assert.Equal(t, msg, r.Detail, path)
	}
}

func TestCreateValidation(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name, path, body, detail string
	}{
		{"project without owner", "/projects", `{"name":"Launch"}`, "Project name and owner_id are required"},
		{"task without title", "/tasks", `{"project_id":"p","assigned_to":"u"}`, "project_id, title and assigned_to are required"},
		{"user without password", "/users", `{"name":"a","email":"a@x"}`, "Name, email, and password are required"},
		{"malformed json", "/projects", `{"name":`, msgInvalidBody},
		{"empty body", "/tasks", ``, msgInvalidBody},
		{"trailing data", "/users", `{} {}`, msgInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := do(t, ts, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, r.Status)
			assert.Equal(t, tt.detail, r.Detail)
		})
	}

	assert.Equal(t, http.StatusBadRequest, do(t, ts, http.MethodGet, "/projects", "").Status, "nothing stored")
}

func TestUpdateAndDelete(t *testing.T) {
	ts := newTestServer(t, nil)

	created := do(t, ts, http.MethodPost, "/users",
		`{"name":"Alice","email":"a@x","password_hash":"secret","role":"admin"}`)
	require.Equal(t, http.StatusOK, created.Status)
	assert.True(t, created.Success)
	assert.Equal(t, "user added successfully", created.Message)
	assert.NotContains(t, string(created.Data), "secret")
	id := dataID(t, created)

	r := do(t, ts, http.MethodPut, "/users/"+id, `{}`)
	assert.Equal(t, http.StatusBadRequest, r.Status)
	assert.Equal(t, "No data provided for update", r.Detail)

	r = do(t, ts, http.MethodPut, "/users/"+id, `null`)
	assert.Equal(t, "No data provided for update", r.Detail)

	r = do(t, ts, http.MethodPut, "/users/"+id, `[1]`)
	assert.Equal(t, msgInvalidBody, r.Detail)

	r = do(t, ts, http.MethodPut, "/users/"+id, `{"role":"member"}`)
	require.Equal(t, http.StatusOK, r.Status)
	assert.Equal(t, "user updated successfully", r.Message)

	r = do(t, ts, http.MethodPut, "/users/"+id, `{"role":"owner"}`)
	assert.Equal(t, "error updating user", r.Detail)

	list := do(t, ts, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, list.Status)
	assert.Equal(t, "retrived all users", list.Message)
	assert.NotContains(t, string(list.Data), "password_hash")

	r = do(t, ts, http.MethodDelete, "/users/"+id, "")
	assert.Equal(t, http.StatusOK, r.Status)
	assert.Equal(t, "user removed successfully", r.Message)

	r = do(t, ts, http.MethodDelete, "/users/"+id, "")
	assert.Equal(t, http.StatusBadRequest, r.Status)
	assert.Equal(t, "error removing user", r.Detail)
}

func TestTaskStatus(t *testing.T) {
	ts := newTestServer(t, nil)

	id := dataID(t, do(t, ts, http.MethodPost, "/tasks", `{"project_id":"p","title":"Design","assigned_to":"u1"}`))

	r := do(t, ts, http.MethodPut, "/tasks/"+id+"/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, r.Status)
	assert.Equal(t, "completed is required", r.Detail)

	for i := 0; i < 2; i++ {
		r = do(t, ts, http.MethodPut, "/tasks/"+id+"/status", `{"completed":true}`)
		require.Equal(t, http.StatusOK, r.Status)
		assert.Equal(t, "task marked as completed", r.Message)
		assert.Contains(t, string(r.Data), `"status":"completed"`)
	}

	r = do(t, ts, http.MethodPut, "/tasks/"+id+"/status", `{"completed":false}`)
	require.Equal(t, http.StatusOK, r.Status)
	assert.Equal(t, "task marked as pending", r.Message)

	r = do(t, ts, http.MethodPut, "/tasks/missing/status", `{"completed":true}`)
	assert.Equal(t, "error marking task as completed", r.Detail)
}

func TestTasksByProject(t *testing.T) {
	ts := newTestServer(t, nil)

	do(t, ts, http.MethodPost, "/tasks", `{"project_id":"p1","title":"a","assigned_to":"u"}`)
	do(t, ts, http.MethodPost, "/tasks", `{"project_id":"p2","title":"b","assigned_to":"u"}`)

	for _, path := range []string{"/tasks?project_id=p2", "/projects/p2/tasks"} {
		r := do(t, ts, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, r.Status, path)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal(r.Data, &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "b", rows[0]["title"])
	}

	r := do(t, ts, http.MethodGet, "/tasks?project_id=", "")
	assert.Equal(t, "project_id required", r.Detail)
}

func TestEndToEnd(t *testing.T) {
	ts := newTestServer(t, nil)

	project := do(t, ts, http.MethodPost, "/projects",
		`{"name":"Launch","description":"x","owner_id":"u1","start_date":"2025-01-01","end_date":"2025-02-01","status":"pending"}`)
	require.Equal(t, http.StatusOK, project.Status)
	projectID := dataID(t, project)

	task := do(t, ts, http.MethodPost, "/tasks",
		`{"project_id":"`+projectID+`","title":"Design","description":"y","assigned_to":"u1","due_date":"2025-01-15","status":"pending"}`)
	require.Equal(t, http.StatusOK, task.Status)
	taskID := dataID(t, task)

	require.Equal(t, http.StatusOK, do(t, ts, http.MethodPut, "/tasks/"+taskID+"/status", `{"completed":true}`).Status)

	list := do(t, ts, http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusOK, list.Status)
	assert.Contains(t, string(list.Data), `"status":"completed"`)

	require.Equal(t, http.StatusOK, do(t, ts, http.MethodDelete, "/projects/"+projectID, "").Status)

	list = do(t, ts, http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusOK, list.Status)
	assert.Contains(t, string(list.Data), `"project_id":"`+projectID+`"`)

	assert.Equal(t, http.StatusBadRequest, do(t, ts, http.MethodGet, "/projects", "").Status)
}

func TestMiddleware(t *testing.T) {
	ts := newTestServer(t, nil)

	t.Run("request id is assigned", func(t *testing.T) {
		r := do(t, ts, http.MethodGet, "/", "")
		assert.NotEmpty(t, r.Header.Get(common.RequestIDHeaderName))
	})

	t.Run("request id is kept", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, ts.URL+"/", nil)
		req.Header.Set(common.RequestIDHeaderName, "abc")
		resp, err := ts.Client().Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, "abc", resp.Header.Get(common.RequestIDHeaderName))
	})

	t.Run("cors preflight", func(t *testing.T) {
		r := do(t, ts, http.MethodOptions, "/projects", "")
		assert.Equal(t, http.StatusOK, r.Status)
		assert.Equal(t, "*", r.Header.Get("Access-Control-Allow-Origin"))
		assert.Contains(t, r.Header.Get("Access-Control-Allow-Methods"), "DELETE")
	})

	t.Run("json content type", func(t *testing.T) {
		r := do(t, ts, http.MethodGet, "/projects", "")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
	})

	t.Run("unknown route", func(t *testing.T) {
		r := do(t, ts, http.MethodGet, "/nope", "")
		assert.Equal(t, http.StatusNotFound, r.Status)
		assert.Equal(t, "Not Found", r.Detail)
	})

	t.Run("wrong method", func(t *testing.T) {
		r := do(t, ts, http.MethodPatch, "/projects", "")
		assert.Equal(t, http.StatusMethodNotAllowed, r.Status)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)

	do(t, ts, http.MethodGet, "/projects", "")

	resp, err := ts.Client().Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `projectmanager_http_requests_total{code="400",method="GET",route="/projects"} 1`)
	assert.Contains(t, string(body), `projectmanager_manager_results_total{kind="empty",resource="projects"} 1`)
}

func TestRun_StopsOnCancel(t *testing.T) {
	l := logging.Discard()
	rm := repomanager.NewMemoryRepositoryManager()
	m := NewMetrics()
	h := NewHandlers(
		services.NewProjectManager(nil, rm, l),
		services.NewTaskManager(nil, rm, l),
		services.NewUserManager(nil, rm, l),
		nil, m, l,
	)
	s := NewServer(Options{Address: "127.0.0.1:0", ShutdownTimeout: time.Second}, l, h, m)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ListenError(t *testing.T) {
	l := logging.Discard()
	m := NewMetrics()
	h := NewHandlers(nil, nil, nil, nil, m, l)
	s := NewServer(Options{Address: "bad-address"}, l, h, m)

	assert.Error(t, s.Run(context.Background()))
}
