package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/projectmanager/internal/client/client"
	"github.com/dmitrijs2005/projectmanager/internal/client/models"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) record(format string, args ...any) error {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return f.err
}

func (f *fakeExec) ListProjects(context.Context) error { return f.record("projects") }
func (f *fakeExec) ListTasks(_ context.Context, projectID string) error {
	return f.record("tasks %s", projectID)
}
func (f *fakeExec) ListUsers(context.Context) error { return f.record("users") }
func (f *fakeExec) Summary(context.Context) error   { return f.record("summary") }

func (f *fakeExec) PromptProject() (models.Project, error) { return models.Project{Name: "P"}, nil }
func (f *fakeExec) PromptTask() (models.Task, error)       { return models.Task{Title: "T"}, nil }
func (f *fakeExec) PromptUser() (models.User, error)       { return models.User{Name: "U"}, nil }
func (f *fakeExec) PromptFields() (map[string]any, error) {
	return map[string]any{"status": "completed"}, nil
}

func (f *fakeExec) AddProject(_ context.Context, p models.Project) error {
	return f.record("addproject %s", p.Name)
}
func (f *fakeExec) AddTask(_ context.Context, t models.Task) error {
	return f.record("addtask %s", t.Title)
}
func (f *fakeExec) AddUser(_ context.Context, u models.User) error {
	return f.record("adduser %s", u.Name)
}

func (f *fakeExec) UpdateProject(_ context.Context, id string, fields map[string]any) error {
	return f.record("updateproject %s %v", id, fields["status"])
}
func (f *fakeExec) UpdateTask(_ context.Context, id string, fields map[string]any) error {
	return f.record("updatetask %s %v", id, fields["status"])
}
func (f *fakeExec) UpdateUser(_ context.Context, id string, fields map[string]any) error {
	return f.record("updateuser %s", id)
}

func (f *fakeExec) DeleteProject(_ context.Context, id string) error {
	return f.record("deleteproject %s", id)
}
func (f *fakeExec) DeleteTask(_ context.Context, id string) error {
	return f.record("deletetask %s", id)
}
func (f *fakeExec) DeleteUser(_ context.Context, id string) error {
	return f.record("deleteuser %s", id)
}

func (f *fakeExec) SetTaskCompleted(_ context.Context, id string, completed bool) error {
	return f.record("status %s %v", id, completed)
}

func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	capturePrint(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"projects",
		"tasks",
		"tasks p1",
		"users",
		"summary",
		"addproject",
		"addtask",
		"adduser",
		"update projects p1",
		"update task t1",
		"update users u1",
		"delete projects p1",
		"delete task t1",
		"delete user u1",
		"complete t1",
		"pending t1",
		"",
		"exit",
		"projects",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, bufio.NewReader(input))

	assert.Equal(t, []string{
		"projects",
		"tasks ",
		"tasks p1",
		"users",
		"summary",
		"addproject P",
		"addtask T",
		"adduser U",
		"updateproject p1 completed",
		"updatetask t1 completed",
		"updateuser u1",
		"deleteproject p1",
		"deletetask t1",
		"deleteuser u1",
		"status t1 true",
		"status t1 false",
	}, exec.calls)
}

func TestRunREPL_UsageErrorsAndQuit(t *testing.T) {
	lines := capturePrint(t)

	input := strings.NewReader("update projects\ndelete\ncomplete\nupdate widgets 1\nfoobar\nquit\n")
	exec := &fakeExec{}

	runREPL(context.Background(), exec, bufio.NewReader(input))

	assert.Empty(t, exec.calls)
	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "Usage: update <projects|tasks|users> <id>")
	assert.Contains(t, out, "Usage: delete <projects|tasks|users> <id>")
	assert.Contains(t, out, "Usage: complete <task_id>")
	assert.Contains(t, out, `Error: unknown resource "widgets"`)
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_ShowsServerDetail(t *testing.T) {
	lines := capturePrint(t)

	exec := &fakeExec{err: &client.APIError{StatusCode: 400, Detail: "error retrieving projects"}}
	runREPL(context.Background(), exec, bufio.NewReader(strings.NewReader("projects\n")))

	assert.Contains(t, *lines, "Error: error retrieving projects")
}
