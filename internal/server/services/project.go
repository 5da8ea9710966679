package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/projectmanager/internal/logging"
	"github.com/dmitrijs2005/projectmanager/internal/server/models"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/projects"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/repomanager"
)

// ProjectManager handles project operations.
type ProjectManager struct {
	base
}

func NewProjectManager(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *ProjectManager {
	return &ProjectManager{base{db: db, repos: m, logger: l.With("manager", "projects")}}
}

func (m *ProjectManager) repo() projects.Repository { return m.repos.Projects(m.db) }

// Add creates a project. Name and owner_id are required; owner_id is not
// checked against users.
func (m *ProjectManager) Add(ctx context.Context, p models.Project) Result[*models.Project] {
	if p.Name == "" || p.OwnerID == "" {
		return Fail[*models.Project](KindValidation, "Project name and owner_id are required")
	}

	created, err := m.repo().Create(ctx, &p)
	if err != nil {
		return storageFailure[*models.Project](ctx, m.logger, "add project", "error adding project", err)
	}

	m.logger.Info(ctx, "project added", "id", created.ID)
	return Ok("project added successfully", created)
}

func (m *ProjectManager) GetAll(ctx context.Context) Result[[]*models.Project] {
	rows, err := m.repo().List(ctx)
	return listResult(ctx, m.logger, "list projects", rows, err, "retrived all projects", "error retrieving projects")
}

func (m *ProjectManager) Update(ctx context.Context, id string, fields models.Fields) Result[*models.Project] {
	if len(fields) == 0 {
		return Fail[*models.Project](KindValidation, msgNoUpdateData)
	}

	updated, err := m.repo().Update(ctx, id, fields)
	if err != nil {
		return storageFailure[*models.Project](ctx, m.logger, "update project", "error updating project", err)
	}
	return Ok("project updated successfully", updated)
}

// Remove deletes a project. Its tasks are left in place.
func (m *ProjectManager) Remove(ctx context.Context, id string) Result[*models.Project] {
	deleted, err := m.repo().Delete(ctx, id)
	if err != nil {
		return storageFailure[*models.Project](ctx, m.logger, "remove project", "error removing project", err)
	}

	m.logger.Info(ctx, "project removed", "id", id)
	return Ok("project removed successfully", deleted)
}
