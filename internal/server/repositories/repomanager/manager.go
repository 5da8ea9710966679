package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/projectmanager/internal/dbx"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/projects"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/users"
)

// RepositoryManager vends the per-table persistence adapters. The db handle
// is the single process-wide store client; memory implementations ignore it.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Projects(db dbx.DBTX) projects.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
