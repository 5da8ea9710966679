package rest

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/projectmanager/internal/logging"
	"github.com/dmitrijs2005/projectmanager/internal/server/models"
	"github.com/dmitrijs2005/projectmanager/internal/server/services"
)

// ProjectService is implemented by services.ProjectManager.
type ProjectService interface {
	Add(ctx context.Context, p models.Project) services.Result[*models.Project]
	GetAll(ctx context.Context) services.Result[[]*models.Project]
	Update(ctx context.Context, id string, fields models.Fields) services.Result[*models.Project]
	Remove(ctx context.Context, id string) services.Result[*models.Project]
}

// TaskService is implemented by services.TaskManager.
type TaskService interface {
	Add(ctx context.Context, t models.Task) services.Result[*models.Task]
	GetAll(ctx context.Context) services.Result[[]*models.Task]
	GetByProject(ctx context.Context, projectID string) services.Result[[]*models.Task]
	Update(ctx context.Context, id string, fields models.Fields) services.Result[*models.Task]
	MarkComplete(ctx context.Context, id string) services.Result[*models.Task]
	MarkPending(ctx context.Context, id string) services.Result[*models.Task]
	Remove(ctx context.Context, id string) services.Result[*models.Task]
}

// UserService is implemented by services.UserManager.
type UserService interface {
	Add(ctx context.Context, u models.User) services.Result[*models.User]
	GetAll(ctx context.Context) services.Result[[]*models.User]
	Update(ctx context.Context, id string, fields models.Fields) services.Result[*models.User]
	Remove(ctx context.Context, id string) services.Result[*models.User]
}

// Pinger reports whether the store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handlers binds HTTP requests to the managers.
type Handlers struct {
	projects ProjectService
	tasks    TaskService
	users    UserService
	store    Pinger
	metrics  *Metrics
	logger   logging.Logger
}

// NewHandlers wires the managers. store may be nil when there is nothing to
// ping (memory storage).
func NewHandlers(p ProjectService, t TaskService, u UserService, store Pinger, m *Metrics, l logging.Logger) *Handlers {
	return &Handlers{
		projects: p,
		tasks:    t,
		users:    u,
		store:    store,
		metrics:  m,
		logger:   l.With("module", "rest_handlers"),
	}
}

type welcome struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Docs    string `json:"docs"`
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, welcome{
		Message: "Welcome to the Project Management API",
		Status:  "running",
		Docs:    "/docs",
	})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		if err := h.store.PingContext(r.Context()); err != nil {
			h.logger.Error(r.Context(), "store ping failed", "error", err)
			writeDetail(w, http.StatusServiceUnavailable, "store unreachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, http.StatusNotFound, "Not Found")
}

func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}

// decodeFields reads a partial update. A JSON null decodes to an empty set
// and is rejected by the manager like {}.
func (h *Handlers) decodeFields(w http.ResponseWriter, r *http.Request) (models.Fields, bool) {
	var fields models.Fields
	if err := decodeBody(r, &fields); err != nil {
		h.logger.Warn(r.Context(), "bad update body", "error", err)
		writeDetail(w, http.StatusBadRequest, msgInvalidBody)
		return nil, false
	}
	return fields, true
}
