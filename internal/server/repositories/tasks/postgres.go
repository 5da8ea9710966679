package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/projectmanager/internal/common"
	"github.com/dmitrijs2005/projectmanager/internal/dbx"
	"github.com/dmitrijs2005/projectmanager/internal/server/models"
)

const columns = "id, project_id, title, description, assigned_to, due_date, status"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (*models.Task, error) {
	t := &models.Task{}
	err := s.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.AssignedTo, &t.DueDate, &t.Status)
	return t, err
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	in := *task
	in.ApplyDefaults()

	query :=
		`INSERT INTO tasks (project_id, title, description, assigned_to, due_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING ` + columns

	t, err := scan(r.db.QueryRowContext(ctx, query,
		in.ProjectID, in.Title, in.Description, in.AssignedTo, in.DueDate, string(in.Status)))

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Task, error) {
	return r.query(ctx, `SELECT `+columns+` FROM tasks`)
}

func (r *PostgresRepository) ListByProject(ctx context.Context, projectID string) ([]*models.Task, error) {
	return r.query(ctx, `SELECT `+columns+` FROM tasks WHERE project_id = $1`, projectID)
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.Task
	for rows.Next() {
		t, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, fields models.Fields) (*models.Task, error) {
	set, err := models.Assignments(fields, models.TaskColumns)
	if err != nil {
		return nil, err
	}
	cols, vals := models.Split(set)
	query, args := dbx.UpdateByID("tasks", cols, vals, id, columns)

	return one(scan(r.db.QueryRowContext(ctx, query, args...)))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (*models.Task, error) {
	query := `DELETE FROM tasks WHERE id = $1 RETURNING ` + columns
	return one(scan(r.db.QueryRowContext(ctx, query, id)))
}

func one(t *models.Task, err error) (*models.Task, error) {
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}
