package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/projectmanager/internal/common"
	"github.com/dmitrijs2005/projectmanager/internal/dbx"
	"github.com/dmitrijs2005/projectmanager/internal/server/models"
)

const columns = "id, name, description, owner_id, start_date, end_date, status"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (*models.Project, error) {
	p := &models.Project{}
	err := s.Scan(&p.ID, &p.Name, &p.Description, &p.OwnerID, &p.StartDate, &p.EndDate, &p.Status)
	return p, err
}

func (r *PostgresRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	in := *project
	in.ApplyDefaults()

	query :=
		`INSERT INTO projects (name, description, owner_id, start_date, end_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING ` + columns

	p, err := scan(r.db.QueryRowContext(ctx, query,
		in.Name, in.Description, in.OwnerID, in.StartDate, in.EndDate, string(in.Status)))

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM projects`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.Project
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, fields models.Fields) (*models.Project, error) {
	set, err := models.Assignments(fields, models.ProjectColumns)
	if err != nil {
		return nil, err
	}
	cols, vals := models.Split(set)
	query, args := dbx.UpdateByID("projects", cols, vals, id, columns)

	return one(scan(r.db.QueryRowContext(ctx, query, args...)))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (*models.Project, error) {
	query := `DELETE FROM projects WHERE id = $1 RETURNING ` + columns
	return one(scan(r.db.QueryRowContext(ctx, query, id)))
}

func one(p *models.Project, err error) (*models.Project, error) {
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}
