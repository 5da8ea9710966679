package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/projectmanager/internal/dbx"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/projects"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/users"
)

// MemoryRepositoryManager hands out the same in-memory repositories for every
// call, so data lives for the lifetime of the process.
type MemoryRepositoryManager struct {
	users    *users.MemoryRepository
	projects *projects.MemoryRepository
	tasks    *tasks.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		projects: projects.NewMemoryRepository(),
		tasks:    tasks.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *MemoryRepositoryManager) Users(dbx.DBTX) users.Repository       { return m.users }
func (m *MemoryRepositoryManager) Projects(dbx.DBTX) projects.Repository { return m.projects }
func (m *MemoryRepositoryManager) Tasks(dbx.DBTX) tasks.Repository       { return m.tasks }
