package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/projectmanager/internal/client/models"
	"github.com/dmitrijs2005/projectmanager/internal/common"
	"github.com/dmitrijs2005/projectmanager/internal/logging"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/projectmanager/internal/server/rest"
	"github.com/dmitrijs2005/projectmanager/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAPI starts the real REST stack on memory storage.
func newAPI(t *testing.T) *HTTPClient {
	t.Helper()
	l := logging.Discard()
	rm := repomanager.NewMemoryRepositoryManager()
	m := rest.NewMetrics()
	h := rest.NewHandlers(
		services.NewProjectManager(nil, rm, l),
		services.NewTaskManager(nil, rm, l),
		services.NewUserManager(nil, rm, l),
		nil, m, l,
	)
	ts := httptest.NewServer(rest.NewServer(rest.Options{}, l, h, m).Handler())
	t.Cleanup(ts.Close)

	return NewHTTPClient(ts.URL+"/", time.Second)
}

func TestHTTPClient_EndToEnd(t *testing.T) {
	ctx := context.Background()
	c := newAPI(t)

	require.NoError(t, c.Ping(ctx))

	_, err := c.ListProjects(ctx)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "error retrieving projects", Detail(err))

	msg, p, err := c.CreateProject(ctx, models.Project{
		Name: "Launch", Description: "x", OwnerID: "u1",
		StartDate: "2025-01-01", EndDate: "2025-02-01", Status: "pending",
	})
	require.NoError(t, err)
	assert.Equal(t, "project added successfully", msg)
	require.NotEmpty(t, p.ID)

	_, task, err := c.CreateTask(ctx, models.Task{
		ProjectID: p.ID, Title: "Design", AssignedTo: "u1", DueDate: "2025-01-15", Status: "pending",
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		msg, got, err := c.SetTaskCompleted(ctx, task.ID, true)
		require.NoError(t, err)
		assert.Equal(t, "task marked as completed", msg)
		assert.Equal(t, "completed", got.Status)
	}

	tasks, err := c.ListTasks(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "completed", tasks[0].Status)

	msg, err = c.DeleteProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "project removed successfully", msg)

	tasks, err = c.ListTasks(ctx, "")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, p.ID, tasks[0].ProjectID)

	msg, _, err = c.UpdateTask(ctx, task.ID, map[string]any{"title": "Design v2"})
	require.NoError(t, err)
	assert.Equal(t, "task updated successfully", msg)

	_, err = c.DeleteTask(ctx, task.ID)
	require.NoError(t, err)
	_, err = c.DeleteTask(ctx, task.ID)
	assert.Equal(t, "error removing task", Detail(err))
}

func TestHTTPClient_Users(t *testing.T) {
	ctx := context.Background()
	c := newAPI(t)

	_, _, err := c.CreateUser(ctx, models.User{Name: "Bob", Email: "b@x"})
	assert.Equal(t, "Name, email, and password are required", Detail(err))

	_, u, err := c.CreateUser(ctx, models.User{Name: "Bob", Email: "b@x", PasswordHash: "pw", Role: "member"})
	require.NoError(t, err)
	assert.Empty(t, u.PasswordHash)
	assert.False(t, u.CreatedAt.IsZero())

	_, _, err = c.UpdateUser(ctx, u.ID, map[string]any{})
	assert.Equal(t, "No data provided for update", Detail(err))

	_, got, err := c.UpdateUser(ctx, u.ID, map[string]any{"role": "admin"})
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Role)

	users, err := c.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	msg, err := c.DeleteUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "user removed successfully", msg)
}

func TestHTTPClient_ProjectUpdate(t *testing.T) {
	ctx := context.Background()
	c := newAPI(t)

	_, p, err := c.CreateProject(ctx, models.Project{Name: "A", OwnerID: "u"})
	require.NoError(t, err)
	assert.Equal(t, "pending", p.Status)

	_, got, err := c.UpdateProject(ctx, p.ID, map[string]any{"status": "ongoing"})
	require.NoError(t, err)
	assert.Equal(t, "ongoing", got.Status)
}

func TestHTTPClient_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("non-json error body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer ts.Close()

		_, err := NewHTTPClient(ts.URL, time.Second).ListUsers(ctx)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, "Bad Gateway", apiErr.Detail)
		assert.Equal(t, "502: Bad Gateway", apiErr.Error())
	})

	t.Run("malformed success body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data": 5`))
		}))
		defer ts.Close()

		_, err := NewHTTPClient(ts.URL, time.Second).ListTasks(ctx, "")
		assert.ErrorContains(t, err, "decode response")
	})

	t.Run("request id and content type are sent", func(t *testing.T) {
		var gotID, gotCT string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID = r.Header.Get(common.RequestIDHeaderName)
			gotCT = r.Header.Get("Content-Type")
			_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":{"id":"1"}}`))
		}))
		defer ts.Close()

		msg, _, err := NewHTTPClient(ts.URL, time.Second).CreateTask(ctx, models.Task{Title: "t"})
		require.NoError(t, err)
		assert.Equal(t, "ok", msg)
		assert.NotEmpty(t, gotID)
		assert.Equal(t, "application/json", gotCT)
	})

	t.Run("server down", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		addr := ts.URL
		ts.Close()

		err := NewHTTPClient(addr, time.Second).Ping(ctx)
		assert.True(t, errors.Is(err, ErrUnavailable))
		assert.Contains(t, Detail(err), "server unavailable")
	})
}
