package users

import (
	"context"

	"github.com/dmitrijs2005/projectmanager/internal/server/models"
)

// Repository is the persistence adapter for the users table. Update and
// Delete return common.ErrorNotFound when no row matches id.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id string, fields models.Fields) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
}
