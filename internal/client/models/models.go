// Package models defines the records exchanged with the project manager API
// as seen by the CLI.
package models

import "time"

type Project struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     string `json:"owner_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
}

type Task struct {
	ID          string `json:"id,omitempty"`
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}

// User carries PasswordHash only on the way in; the API never returns it.
type User struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
}

// Status values offered by the CLI prompts.
var (
	ProjectStatuses = []string{"pending", "ongoing", "completed"}
	TaskStatuses    = []string{"pending", "in-progress", "completed"}
	Roles           = []string{"admin", "member"}
)
