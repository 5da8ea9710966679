package tasks

import (
	"context"

	"github.com/dmitrijs2005/projectmanager/internal/server/models"
)

// Repository is the persistence adapter for the tasks table. ListByProject
// is the equality-filtered select. Update and Delete return
// common.ErrorNotFound when no row matches id.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*models.Task, error)
	Update(ctx context.Context, id string, fields models.Fields) (*models.Task, error)
	Delete(ctx context.Context, id string) (*models.Task, error)
}
