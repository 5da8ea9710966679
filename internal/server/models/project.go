package models

import (
	"fmt"

	"github.com/dmitrijs2005/projectmanager/internal/common"
)

type ProjectStatus string

const (
	ProjectPending   ProjectStatus = "pending"
	ProjectOngoing   ProjectStatus = "ongoing"
	ProjectCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	return oneOf(s, ProjectPending, ProjectOngoing, ProjectCompleted)
}

// ProjectColumns lists the project columns a partial update may touch.
var ProjectColumns = []string{"description", "end_date", "name", "owner_id", "start_date", "status"}

// Project is a row of the projects table. OwnerID is not checked against users.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	OwnerID     string        `json:"owner_id"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	Status      ProjectStatus `json:"status"`
}

func (p *Project) ApplyDefaults() {
	if p.Status == "" {
		p.Status = ProjectPending
	}
}

func (p *Project) Set(column, value string) error {
	switch column {
	case "name":
		p.Name = value
	case "description":
		p.Description = value
	case "owner_id":
		p.OwnerID = value
	case "start_date":
		p.StartDate = value
	case "end_date":
		p.EndDate = value
	case "status":
		p.Status = ProjectStatus(value)
	default:
		return fmt.Errorf("%w: %q", common.ErrorUnknownField, column)
	}
	return nil
}

func (p *Project) Check() error {
	if !p.Status.Valid() {
		return fmt.Errorf("%w: status %q", common.ErrorInvalidValue, p.Status)
	}
	return nil
}
