package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/projectmanager/internal/client/client"
	"github.com/dmitrijs2005/projectmanager/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the shell needs. *App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	ListProjects(ctx context.Context) error
	ListTasks(ctx context.Context, projectID string) error
	ListUsers(ctx context.Context) error
	Summary(ctx context.Context) error

	PromptProject() (models.Project, error)
	PromptTask() (models.Task, error)
	PromptUser() (models.User, error)
	PromptFields() (map[string]any, error)

	AddProject(ctx context.Context, p models.Project) error
	AddTask(ctx context.Context, t models.Task) error
	AddUser(ctx context.Context, u models.User) error

	UpdateProject(ctx context.Context, id string, fields map[string]any) error
	UpdateTask(ctx context.Context, id string, fields map[string]any) error
	UpdateUser(ctx context.Context, id string, fields map[string]any) error

	DeleteProject(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error

	SetTaskCompleted(ctx context.Context, id string, completed bool) error
}

const shellHelp = `Available commands:
  projects | tasks [project_id] | users | summary
  addproject | addtask | adduser
  update <projects|tasks|users> <id>
  delete <projects|tasks|users> <id>
  complete <task_id> | pending <task_id>
  exit`

// runREPL reads one command per line from reader and dispatches it to a.
// Interactive forms read their answers from the same reader. Failures are
// printed and the loop continues. It returns on EOF or on "exit" / "quit".
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		printlnFn("pm> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		err = nil

		switch cmd {
		case "help":
			printlnFn(shellHelp)

		case "projects":
			err = a.ListProjects(ctx)

		case "tasks":
			projectID := ""
			if len(args) > 0 {
				projectID = args[0]
			}
			err = a.ListTasks(ctx, projectID)

		case "users":
			err = a.ListUsers(ctx)

		case "summary":
			err = a.Summary(ctx)

		case "addproject":
			var p models.Project
			if p, err = a.PromptProject(); err == nil {
				err = a.AddProject(ctx, p)
			}

		case "addtask":
			var t models.Task
			if t, err = a.PromptTask(); err == nil {
				err = a.AddTask(ctx, t)
			}

		case "adduser":
			var u models.User
			if u, err = a.PromptUser(); err == nil {
				err = a.AddUser(ctx, u)
			}

		case "update":
			if len(args) != 2 {
				printlnFn("Usage: update <projects|tasks|users> <id>")
				continue
			}
			err = shellUpdate(ctx, a, args[0], args[1])

		case "delete":
			if len(args) != 2 {
				printlnFn("Usage: delete <projects|tasks|users> <id>")
				continue
			}
			err = shellDelete(ctx, a, args[0], args[1])

		case "complete", "pending":
			if len(args) != 1 {
				printlnFn("Usage:", cmd, "<task_id>")
				continue
			}
			err = a.SetTaskCompleted(ctx, args[0], cmd == "complete")

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", client.Detail(err))
		}
	}
}

func shellUpdate(ctx context.Context, a execIface, resource, id string) error {
	var update func(context.Context, string, map[string]any) error
	switch resource {
	case "projects", "project":
		update = a.UpdateProject
	case "tasks", "task":
		update = a.UpdateTask
	case "users", "user":
		update = a.UpdateUser
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}

	fields, err := a.PromptFields()
	if err != nil {
		return err
	}
	return update(ctx, id, fields)
}

func shellDelete(ctx context.Context, a execIface, resource, id string) error {
	switch resource {
	case "projects", "project":
		return a.DeleteProject(ctx, id)
	case "tasks", "task":
		return a.DeleteTask(ctx, id)
	case "users", "user":
		return a.DeleteUser(ctx, id)
	}
	return fmt.Errorf("unknown resource %q", resource)
}
