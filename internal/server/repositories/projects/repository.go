package projects

import (
	"context"

	"github.com/dmitrijs2005/projectmanager/internal/server/models"
)

// Repository is the persistence adapter for the projects table. Update and
// Delete return common.ErrorNotFound when no row matches id.
type Repository interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, id string, fields models.Fields) (*models.Project, error)
	Delete(ctx context.Context, id string) (*models.Project, error)
}
