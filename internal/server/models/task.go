package models

import (
	"fmt"

	"github.com/dmitrijs2005/projectmanager/internal/common"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	return oneOf(s, TaskPending, TaskInProgress, TaskCompleted)
}

// TaskColumns lists the task columns a partial update may touch.
var TaskColumns = []string{"assigned_to", "description", "due_date", "project_id", "status", "title"}

// Task is a row of the tasks table. ProjectID and AssignedTo are plain
// references; deleting the project or user leaves them dangling.
type Task struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssignedTo  string     `json:"assigned_to"`
	DueDate     string     `json:"due_date"`
	Status      TaskStatus `json:"status"`
}

func (t *Task) ApplyDefaults() {
	if t.Status == "" {
		t.Status = TaskPending
	}
}

func (t *Task) Set(column, value string) error {
	switch column {
	case "project_id":
		t.ProjectID = value
	case "title":
		t.Title = value
	case "description":
		t.Description = value
	case "assigned_to":
		t.AssignedTo = value
	case "due_date":
		t.DueDate = value
	case "status":
		t.Status = TaskStatus(value)
	default:
		return fmt.Errorf("%w: %q", common.ErrorUnknownField, column)
	}
	return nil
}

func (t *Task) Check() error {
	if !t.Status.Valid() {
		return fmt.Errorf("%w: status %q", common.ErrorInvalidValue, t.Status)
	}
	return nil
}
