package tasks

import (
	"context"

	"github.com/dmitrijs2005/projectmanager/internal/server/models"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/memstore"
	"github.com/google/uuid"
)

// MemoryRepository keeps tasks in process memory with the same defaults and
// status constraint as the tasks table.
type MemoryRepository struct {
	table *memstore.Table[models.Task]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{table: memstore.NewTable[models.Task]()}
}

func (r *MemoryRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	row := *task
	row.ApplyDefaults()
	if err := row.Check(); err != nil {
		return nil, err
	}
	row.ID = uuid.NewString()
	r.table.Insert(row.ID, row)
	return &row, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Task, error) {
	return pointers(r.table.Select(nil)), nil
}

func (r *MemoryRepository) ListByProject(ctx context.Context, projectID string) ([]*models.Task, error) {
	return pointers(r.table.Select(func(t models.Task) bool { return t.ProjectID == projectID })), nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, fields models.Fields) (*models.Task, error) {
	set, err := models.Assignments(fields, models.TaskColumns)
	if err != nil {
		return nil, err
	}
	row, err := r.table.Update(id, func(t *models.Task) error {
		for _, a := range set {
			if err := t.Set(a.Column, a.Value); err != nil {
				return err
			}
		}
		return t.Check()
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (*models.Task, error) {
	row, err := r.table.Delete(id)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func pointers(rows []models.Task) []*models.Task {
	out := make([]*models.Task, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}
