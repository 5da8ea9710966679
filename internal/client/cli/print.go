package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/projectmanager/internal/client/models"
)

func table(w io.Writer, header string, rows func(tw *tabwriter.Writer)) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	tw.Flush()
}

func printProjects(w io.Writer, rows []models.Project) {
	table(w, "ID\tNAME\tOWNER\tSTART\tEND\tSTATUS", func(tw *tabwriter.Writer) {
		for _, p := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.OwnerID, p.StartDate, p.EndDate, p.Status)
		}
	})
}

func printTasks(w io.Writer, rows []models.Task) {
	table(w, "ID\tPROJECT\tTITLE\tASSIGNED\tDUE\tSTATUS", func(tw *tabwriter.Writer) {
		for _, t := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.ProjectID, t.Title, t.AssignedTo, t.DueDate, t.Status)
		}
	})
}

func printUsers(w io.Writer, rows []models.User) {
	table(w, "ID\tNAME\tEMAIL\tROLE\tCREATED", func(tw *tabwriter.Writer) {
		for _, u := range rows {
			created := ""
			if !u.CreatedAt.IsZero() {
				created = u.CreatedAt.Format("2006-01-02 15:04")
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, created)
		}
	})
}
