package cli

import (
	"github.com/dmitrijs2005/projectmanager/internal/client/models"
	"github.com/spf13/cobra"
)

// anyChanged reports whether any of the named flags was given.
func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}

// fieldsFromFlags turns --set column=value flags into an update map, or
// prompts for changes when none were given.
func fieldsFromFlags(a *App, set []string) (map[string]any, error) {
	if len(set) == 0 {
		return a.PromptFields()
	}
	return ParseAssignments(set)
}

func projectsCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "p"},
		Short:   "Manage projects",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().ListProjects(cmd.Context())
		},
	}

	var p models.Project
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a project (prompts when no flags are given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if !anyChanged(cmd, "name", "description", "owner", "start", "end", "status") {
				var err error
				if p, err = a.PromptProject(); err != nil {
					return err
				}
			}
			return a.AddProject(cmd.Context(), p)
		},
	}
	add.Flags().StringVar(&p.Name, "name", "", "project name (required)")
	add.Flags().StringVar(&p.Description, "description", "", "description")
	add.Flags().StringVar(&p.OwnerID, "owner", "", "owner user ID (required)")
	add.Flags().StringVar(&p.StartDate, "start", "", "start date")
	add.Flags().StringVar(&p.EndDate, "end", "", "end date")
	add.Flags().StringVar(&p.Status, "status", "", "pending|ongoing|completed")

	var set []string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change project columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			fields, err := fieldsFromFlags(a, set)
			if err != nil {
				return err
			}
			return a.UpdateProject(cmd.Context(), args[0], fields)
		},
	}
	update.Flags().StringArrayVar(&set, "set", nil, "column=value, repeatable")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project; its tasks are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().DeleteProject(cmd.Context(), args[0])
		},
	}

	tasks := &cobra.Command{
		Use:   "tasks <id>",
		Short: "List the tasks of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().ListTasks(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, add, update, del, tasks)
	return cmd
}

func tasksCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task", "t"},
		Short:   "Manage tasks",
	}

	var projectID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().ListTasks(cmd.Context(), projectID)
		},
	}
	list.Flags().StringVar(&projectID, "project", "", "only tasks of this project")

	var t models.Task
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a task (prompts when no flags are given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if !anyChanged(cmd, "project", "title", "description", "assignee", "due", "status") {
				var err error
				if t, err = a.PromptTask(); err != nil {
					return err
				}
			}
			return a.AddTask(cmd.Context(), t)
		},
	}
	add.Flags().StringVar(&t.ProjectID, "project", "", "project ID (required)")
	add.Flags().StringVar(&t.Title, "title", "", "title (required)")
	add.Flags().StringVar(&t.Description, "description", "", "description")
	add.Flags().StringVar(&t.AssignedTo, "assignee", "", "assigned user ID (required)")
	add.Flags().StringVar(&t.DueDate, "due", "", "due date")
	add.Flags().StringVar(&t.Status, "status", "", "pending|in-progress|completed")

	var set []string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change task columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			fields, err := fieldsFromFlags(a, set)
			if err != nil {
				return err
			}
			return a.UpdateTask(cmd.Context(), args[0], fields)
		},
	}
	update.Flags().StringArrayVar(&set, "set", nil, "column=value, repeatable")

	complete := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().SetTaskCompleted(cmd.Context(), args[0], true)
		},
	}

	pending := &cobra.Command{
		Use:   "pending <id>",
		Short: "Mark a task as pending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().SetTaskCompleted(cmd.Context(), args[0], false)
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().DeleteTask(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, add, update, complete, pending, del)
	return cmd
}

func usersCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user", "u"},
		Short:   "Manage users",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().ListUsers(cmd.Context())
		},
	}

	var u models.User
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a user (prompts when no flags are given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if !anyChanged(cmd, "name", "email", "password", "role") {
				var err error
				if u, err = a.PromptUser(); err != nil {
					return err
				}
			} else if u.PasswordHash == "" {
				pw, err := GetPassword(a.out)
				if err != nil {
					return err
				}
				u.PasswordHash = string(pw)
			}
			return a.AddUser(cmd.Context(), u)
		},
	}
	add.Flags().StringVar(&u.Name, "name", "", "name (required)")
	add.Flags().StringVar(&u.Email, "email", "", "email (required)")
	add.Flags().StringVar(&u.PasswordHash, "password", "", "password (prompted when omitted)")
	add.Flags().StringVar(&u.Role, "role", "", "admin|member")

	var set []string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change user columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			fields, err := fieldsFromFlags(a, set)
			if err != nil {
				return err
			}
			return a.UpdateUser(cmd.Context(), args[0], fields)
		},
	}
	update.Flags().StringArrayVar(&set, "set", nil, "column=value, repeatable")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().DeleteUser(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, add, update, del)
	return cmd
}
