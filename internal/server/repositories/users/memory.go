package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/projectmanager/internal/server/models"
	"github.com/dmitrijs2005/projectmanager/internal/server/repositories/memstore"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in process memory. It applies the same
// defaults and constraints as the users table.
type MemoryRepository struct {
	table *memstore.Table[models.User]
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{table: memstore.NewTable[models.User](), now: time.Now}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	row := *user
	row.ApplyDefaults()
	if err := row.Check(); err != nil {
		return nil, err
	}
	row.ID = uuid.NewString()
	row.CreatedAt = r.now().UTC()
	r.table.Insert(row.ID, row)

	return public(row), nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.User, error) {
	rows := r.table.Select(nil)
	out := make([]*models.User, len(rows))
	for i := range rows {
		out[i] = public(rows[i])
	}
	return out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, fields models.Fields) (*models.User, error) {
	set, err := models.Assignments(fields, models.UserColumns)
	if err != nil {
		return nil, err
	}
	row, err := r.table.Update(id, func(u *models.User) error {
		for _, a := range set {
			if err := u.Set(a.Column, a.Value); err != nil {
				return err
			}
		}
		return u.Check()
	})
	if err != nil {
		return nil, err
	}
	return public(row), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (*models.User, error) {
	row, err := r.table.Delete(id)
	if err != nil {
		return nil, err
	}
	return public(row), nil
}

func public(u models.User) *models.User {
	u.PasswordHash = ""
	return &u
}
