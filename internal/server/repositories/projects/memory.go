package projects

import (
	"context"

	"github.com/dmitrijs2005/projectmanager/internal/server/models"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/memstore"
	"github.com/google/uuid"
)

// MemoryRepository keeps projects in process memory with the same defaults
// and status constraint as the projects table.
type MemoryRepository struct {
	table *memstore.Table[models.Project]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{table: memstore.NewTable[models.Project]()}
}

func (r *MemoryRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	row := *project
	row.ApplyDefaults()
	if err := row.Check(); err != nil {
		return nil, err
	}
	row.ID = uuid.NewString()
	r.table.Insert(row.ID, row)
	return &row, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Project, error) {
	rows := r.table.Select(nil)
	out := make([]*models.Project, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, fields models.Fields) (*models.Project, error) {
	set, err := models.Assignments(fields, models.ProjectColumns)
	if err != nil {
		return nil, err
	}
	row, err := r.table.Update(id, func(p *models.Project) error {
		for _, a := range set {
			if err := p.Set(a.Column, a.Value); err != nil {
				return err
			}
		}
		return p.Check()
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (*models.Project, error) {
	row, err := r.table.Delete(id)
	if err != nil {
		return nil, err
	}
	return &row, nil
}
