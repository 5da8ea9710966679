package rest

import (
	"net/http"

	"github.com/dmitrijs2005/projectmanager/internal/server/models"
	"github.com/gorilla/mux"
)

const resourceProjects = "projects"

func (h *Handlers) ListProjects(w http.ResponseWriter, r *http.Request) {
	respond(h, w, resourceProjects, h.projects.GetAll(r.Context()))
}

func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := decodeBody(r, &p); err != nil {
		writeDetail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	respond(h, w, resourceProjects, h.projects.Add(r.Context(), p))
}

func (h *Handlers) UpdateProject(w http.ResponseWriter, r *http.Request) {
	fields, ok := h.decodeFields(w, r)
	if !ok {
		return
	}
	respond(h, w, resourceProjects, h.projects.Update(r.Context(), mux.Vars(r)["id"], fields))
}

func (h *Handlers) DeleteProject(w http.ResponseWriter, r *http.Request) {
	respond(h, w, resourceProjects, h.projects.Remove(r.Context(), mux.Vars(r)["id"]))
}

// ListProjectTasks is GET /projects/{id}/tasks.
func (h *Handlers) ListProjectTasks(w http.ResponseWriter, r *http.Request) {
	respond(h, w, resourceTasks, h.tasks.GetByProject(r.Context(), mux.Vars(r)["id"]))
}
