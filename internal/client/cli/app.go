package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/projectmanager/internal/client/client"
	"github.com/dmitrijs2005/projectmanager/internal/client/models"
)

// App executes CLI operations against the API and renders the results.
type App struct {
	client client.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c client.Client, in io.Reader, out io.Writer) *App {
	return &App{client: c, reader: bufio.NewReader(in), out: out}
}

func (a *App) done(msg, id string) {
	if id != "" {
		fmt.Fprintf(a.out, "%s (id %s)\n", msg, id)
		return
	}
	fmt.Fprintln(a.out, msg)
}

// ---- projects ----

func (a *App) ListProjects(ctx context.Context) error {
	rows, err := a.client.ListProjects(ctx)
	if err != nil {
		return err
	}
	printProjects(a.out, rows)
	return nil
}

func (a *App) AddProject(ctx context.Context, p models.Project) error {
	msg, created, err := a.client.CreateProject(ctx, p)
	if err != nil {
		return err
	}
	a.done(msg, created.ID)
	return nil
}

func (a *App) UpdateProject(ctx context.Context, id string, fields map[string]any) error {
	msg, _, err := a.client.UpdateProject(ctx, id, fields)
	if err != nil {
		return err
	}
	a.done(msg, id)
	return nil
}

func (a *App) DeleteProject(ctx context.Context, id string) error {
	msg, err := a.client.DeleteProject(ctx, id)
	if err != nil {
		return err
	}
	a.done(msg, id)
	return nil
}

// ---- tasks ----

func (a *App) ListTasks(ctx context.Context, projectID string) error {
	rows, err := a.client.ListTasks(ctx, projectID)
	if err != nil {
		return err
	}
	printTasks(a.out, rows)
	return nil
}

func (a *App) AddTask(ctx context.Context, t models.Task) error {
	msg, created, err := a.client.CreateTask(ctx, t)
	if err != nil {
		return err
	}
	a.done(msg, created.ID)
	return nil
}

func (a *App) UpdateTask(ctx context.Context, id string, fields map[string]any) error {
	msg, _, err := a.client.UpdateTask(ctx, id, fields)
	if err != nil {
		return err
	}
	a.done(msg, id)
	return nil
}

func (a *App) SetTaskCompleted(ctx context.Context, id string, completed bool) error {
	msg, _, err := a.client.SetTaskCompleted(ctx, id, completed)
	if err != nil {
		return err
	}
	a.done(msg, id)
	return nil
}

func (a *App) DeleteTask(ctx context.Context, id string) error {
	msg, err := a.client.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	a.done(msg, id)
	return nil
}

// ---- users ----

func (a *App) ListUsers(ctx context.Context) error {
	rows, err := a.client.ListUsers(ctx)
	if err != nil {
		return err
	}
	printUsers(a.out, rows)
	return nil
}

func (a *App) AddUser(ctx context.Context, u models.User) error {
	msg, created, err := a.client.CreateUser(ctx, u)
	if err != nil {
		return err
	}
	a.done(msg, created.ID)
	return nil
}

func (a *App) UpdateUser(ctx context.Context, id string, fields map[string]any) error {
	msg, _, err := a.client.UpdateUser(ctx, id, fields)
	if err != nil {
		return err
	}
	a.done(msg, id)
	return nil
}

func (a *App) DeleteUser(ctx context.Context, id string) error {
	msg, err := a.client.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	a.done(msg, id)
	return nil
}

// ---- interactive forms ----

func (a *App) ask(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.out)
}

func (a *App) askChoice(prompt string, choices []string) (string, error) {
	return a.ask(fmt.Sprintf("%s [%s]", prompt, strings.Join(choices, "|")))
}

// PromptProject collects a new project field by field.
func (a *App) PromptProject() (models.Project, error) {
	var (
		p   models.Project
		err error
	)
	steps := []struct {
		dst    *string
		prompt string
	}{
		{&p.Name, "Project name"},
		{&p.Description, "Description"},
		{&p.OwnerID, "Owner ID"},
		{&p.StartDate, "Start date (YYYY-MM-DD)"},
		{&p.EndDate, "End date (YYYY-MM-DD)"},
	}
	for _, s := range steps {
		if *s.dst, err = a.ask(s.prompt); err != nil {
			return p, err
		}
	}
	p.Status, err = a.askChoice("Status", models.ProjectStatuses)
	return p, err
}

// PromptTask collects a new task field by field.
func (a *App) PromptTask() (models.Task, error) {
	var (
		t   models.Task
		err error
	)
	steps := []struct {
		dst    *string
		prompt string
	}{
		{&t.ProjectID, "Project ID"},
		{&t.Title, "Task title"},
		{&t.AssignedTo, "Assigned to (user ID)"},
		{&t.DueDate, "Due date (YYYY-MM-DD)"},
	}
	for _, s := range steps {
		if *s.dst, err = a.ask(s.prompt); err != nil {
			return t, err
		}
	}
	if t.Description, err = GetMultiline(a.reader, "Description", a.out); err != nil {
		return t, err
	}
	t.Status, err = a.askChoice("Status", models.TaskStatuses)
	return t, err
}

// PromptUser collects a new user; the password is read without echo.
func (a *App) PromptUser() (models.User, error) {
	var (
		u   models.User
		err error
	)
	if u.Name, err = a.ask("Name"); err != nil {
		return u, err
	}
	if u.Email, err = a.ask("Email"); err != nil {
		return u, err
	}
	pw, err := GetPassword(a.out)
	if err != nil {
		return u, err
	}
	u.PasswordHash = string(pw)
	u.Role, err = a.askChoice("Role", models.Roles)
	return u, err
}

// PromptFields reads "column=value" lines for a partial update.
func (a *App) PromptFields() (map[string]any, error) {
	fmt.Fprintln(a.out, "Enter changes as column=value (empty line to finish)")
	lines, err := GetAssignments(a.reader)
	if err != nil {
		return nil, err
	}
	return ParseAssignments(lines)
}
