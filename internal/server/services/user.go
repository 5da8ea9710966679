package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/projectmanager/internal/logging"
	"github.com/dmitrijs2005/projectmanager/internal/server/models"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/users"
)

// UserManager handles user operations. Passwords are plain data: stored as
// given and never verified.
type UserManager struct {
	base
}

func NewUserManager(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *UserManager {
	return &UserManager{base{db: db, repos: m, logger: l.With("manager", "users")}}
}

func (m *UserManager) repo() users.Repository { return m.repos.Users(m.db) }

func (m *UserManager) Add(ctx context.Context, u models.User) Result[*models.User] {
	if u.Name == "" || u.Email == "" || u.PasswordHash == "" {
		return Fail[*models.User](KindValidation, "Name, email, and password are required")
	}

	created, err := m.repo().Create(ctx, &u)
	if err != nil {
		return storageFailure[*models.User](ctx, m.logger, "add user", "error adding user", err)
	}

	m.logger.Info(ctx, "user added", "id", created.ID)
	return Ok("user added successfully", created)
}

func (m *UserManager) GetAll(ctx context.Context) Result[[]*models.User] {
	rows, err := m.repo().List(ctx)
	return listResult(ctx, m.logger, "list users", rows, err, "retrived all users", "error retrieving users")
}

func (m *UserManager) Update(ctx context.Context, id string, fields models.Fields) Result[*models.User] {
	if len(fields) == 0 {
		return Fail[*models.User](KindValidation, msgNoUpdateData)
	}

	updated, err := m.repo().Update(ctx, id, fields)
	if err != nil {
		return storageFailure[*models.User](ctx, m.logger, "update user", "error updating user", err)
	}
	return Ok("user updated successfully", updated)
}

func (m *UserManager) Remove(ctx context.Context, id string) Result[*models.User] {
	deleted, err := m.repo().Delete(ctx, id)
	if err != nil {
		return storageFailure[*models.User](ctx, m.logger, "remove user", "error removing user", err)
	}

	m.logger.Info(ctx, "user removed", "id", id)
	return Ok("user removed successfully", deleted)
}
