package client

import (
	"context"

	"github.com/dmitrijs2005/projectmanager/internal/client/models"
)

// Client is the API contract used by the CLI. Mutating calls return the
// server's success message together with the affected record.
type Client interface {
	Ping(ctx context.Context) error

	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, p models.Project) (string, *models.Project, error)
	UpdateProject(ctx context.Context, id string, fields map[string]any) (string, *models.Project, error)
	DeleteProject(ctx context.Context, id string) (string, error)

	// ListTasks lists every task, or those of one project when projectID
	// is not empty.
	ListTasks(ctx context.Context, projectID string) ([]models.Task, error)
	CreateTask(ctx context.Context, t models.Task) (string, *models.Task, error)
	UpdateTask(ctx context.Context, id string, fields map[string]any) (string, *models.Task, error)
	SetTaskCompleted(ctx context.Context, id string, completed bool) (string, *models.Task, error)
	DeleteTask(ctx context.Context, id string) (string, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, u models.User) (string, *models.User, error)
	UpdateUser(ctx context.Context, id string, fields map[string]any) (string, *models.User, error)
	DeleteUser(ctx context.Context, id string) (string, error)
}
