package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/projectmanager/internal/client/client"
	"github.com/dmitrijs2005/projectmanager/internal/client/models"
)

// countBy counts values in the order of keys; unknown values are appended.
func countBy(values []string, keys []string) string {
	counts := make(map[string]int, len(keys))
	order := append([]string(nil), keys...)
	for _, v := range values {
		if !contains(order, v) {
			order = append(order, v)
		}
		counts[v]++
	}

	parts := make([]string, 0, len(order))
	for _, k := range order {
		parts = append(parts, fmt.Sprintf("%s %d", k, counts[k]))
	}
	return fmt.Sprintf("%d (%s)", len(values), strings.Join(parts, ", "))
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// Summary prints project and task counts per status and users per role.
// A failed listing shows the server's detail in place of its counts; an
// unreachable server aborts.
func (a *App) Summary(ctx context.Context) error {
	line := func(label string, values []string, keys []string, err error) error {
		if err != nil {
			if errors.Is(err, client.ErrUnavailable) {
				return err
			}
			fmt.Fprintf(a.out, "%-9s %s\n", label+":", client.Detail(err))
			return nil
		}
		fmt.Fprintf(a.out, "%-9s %s\n", label+":", countBy(values, keys))
		return nil
	}

	projects, err := a.client.ListProjects(ctx)
	statuses := make([]string, len(projects))
	for i, p := range projects {
		statuses[i] = p.Status
	}
	if err := line("Projects", statuses, models.ProjectStatuses, err); err != nil {
		return err
	}

	tasks, err := a.client.ListTasks(ctx, "")
	statuses = make([]string, len(tasks))
	for i, t := range tasks {
		statuses[i] = t.Status
	}
	if err := line("Tasks", statuses, models.TaskStatuses, err); err != nil {
		return err
	}

	users, err := a.client.ListUsers(ctx)
	roles := make([]string, len(users))
	for i, u := range users {
		roles[i] = u.Role
	}
	return line("Users", roles, models.Roles, err)
}
