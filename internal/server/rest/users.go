package rest

import (
	"net/http"

	"github.com/dmitrijs2005/projectmanager/internal/server/models"
	"github.com/gorilla/mux"
)

const resourceUsers = "users"

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	respond(h, w, resourceUsers, h.users.GetAll(r.Context()))
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := decodeBody(r, &u); err != nil {
		writeDetail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	respond(h, w, resourceUsers, h.users.Add(r.Context(), u))
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	fields, ok := h.decodeFields(w, r)
	if !ok {
		return
	}
	respond(h, w, resourceUsers, h.users.Update(r.Context(), mux.Vars(r)["id"], fields))
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	respond(h, w, resourceUsers, h.users.Remove(r.Context(), mux.Vars(r)["id"]))
}
