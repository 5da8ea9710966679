package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/projectmanager/internal/logging"
	"github.com/dmitrijs2005/projectmanager/internal/server/models"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/tasks"
)

// TaskManager handles task operations, including the status toggles.
type TaskManager struct {
	base
}

func NewTaskManager(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *TaskManager {
	return &TaskManager{base{db: db, repos: m, logger: l.With("manager", "tasks")}}
}

func (m *TaskManager) repo() tasks.Repository { return m.repos.Tasks(m.db) }

// Add creates a task. project_id, title and assigned_to are required and
// neither reference is checked for existence.
func (m *TaskManager) Add(ctx context.Context, t models.Task) Result[*models.Task] {
	if t.ProjectID == "" || t.Title == "" || t.AssignedTo == "" {
		return Fail[*models.Task](KindValidation, "project_id, title and assigned_to are required")
	}

	created, err := m.repo().Create(ctx, &t)
	if err != nil {
		return storageFailure[*models.Task](ctx, m.logger, "add task", "error adding task", err)
	}

	m.logger.Info(ctx, "task added", "id", created.ID, "project_id", created.ProjectID)
	return Ok("task added successfully", created)
}

func (m *TaskManager) GetAll(ctx context.Context) Result[[]*models.Task] {
	rows, err := m.repo().List(ctx)
	return listResult(ctx, m.logger, "list tasks", rows, err, "retrived all tasks", "error retrieving tasks")
}

// GetByProject lists the tasks whose project_id equals projectID.
func (m *TaskManager) GetByProject(ctx context.Context, projectID string) Result[[]*models.Task] {
	if projectID == "" {
		return Fail[[]*models.Task](KindValidation, "project_id required")
	}
	rows, err := m.repo().ListByProject(ctx, projectID)
	return listResult(ctx, m.logger, "list project tasks", rows, err, "retrived all tasks", "error retrieving tasks")
}

func (m *TaskManager) Update(ctx context.Context, id string, fields models.Fields) Result[*models.Task] {
	if len(fields) == 0 {
		return Fail[*models.Task](KindValidation, msgNoUpdateData)
	}
	return m.update(ctx, id, fields, "task updated successfully", "error updating task")
}

func (m *TaskManager) MarkComplete(ctx context.Context, id string) Result[*models.Task] {
	return m.update(ctx, id, models.Fields{"status": string(models.TaskCompleted)},
		"task marked as completed", "error marking task as completed")
}

func (m *TaskManager) MarkPending(ctx context.Context, id string) Result[*models.Task] {
	return m.update(ctx, id, models.Fields{"status": string(models.TaskPending)},
		"task marked as pending", "error marking task as pending")
}

func (m *TaskManager) update(ctx context.Context, id string, fields models.Fields, okMsg, failMsg string) Result[*models.Task] {
	updated, err := m.repo().Update(ctx, id, fields)
	if err != nil {
		return storageFailure[*models.Task](ctx, m.logger, "update task", failMsg, err)
	}
	return Ok(okMsg, updated)
}

func (m *TaskManager) Remove(ctx context.Context, id string) Result[*models.Task] {
	deleted, err := m.repo().Delete(ctx, id)
	if err != nil {
		return storageFailure[*models.Task](ctx, m.logger, "remove task", "error removing task", err)
	}

	m.logger.Info(ctx, "task removed", "id", id)
	return Ok("task removed successfully", deleted)
}
