package rest

import (
	"net/http"

	"github.com/dmitrijs2005/projectmanager/internal/server/models"
	"github.com/gorilla/mux"
)

const resourceTasks = "tasks"

// statusUpdate is the body of PUT /tasks/{id}/status.
type statusUpdate struct {
	Completed *bool `json:"completed"`
}

// ListTasks lists every task, or only those of one project when the
// project_id query parameter is present.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Has("project_id") {
		respond(h, w, resourceTasks, h.tasks.GetByProject(r.Context(), q.Get("project_id")))
		return
	}
	respond(h, w, resourceTasks, h.tasks.GetAll(r.Context()))
}

func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var t models.Task
	if err := decodeBody(r, &t); err != nil {
		writeDetail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	respond(h, w, resourceTasks, h.tasks.Add(r.Context(), t))
}

func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	fields, ok := h.decodeFields(w, r)
	if !ok {
		return
	}
	respond(h, w, resourceTasks, h.tasks.Update(r.Context(), mux.Vars(r)["id"], fields))
}

func (h *Handlers) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	var body statusUpdate
	if err := decodeBody(r, &body); err != nil {
		writeDetail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if body.Completed == nil {
		writeDetail(w, http.StatusBadRequest, "completed is required")
		return
	}

	id := mux.Vars(r)["id"]
	if *body.Completed {
		respond(h, w, resourceTasks, h.tasks.MarkComplete(r.Context(), id))
		return
	}
	respond(h, w, resourceTasks, h.tasks.MarkPending(r.Context(), id))
}

func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	respond(h, w, resourceTasks, h.tasks.Remove(r.Context(), mux.Vars(r)["id"]))
}
