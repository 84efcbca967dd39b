package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
)

// renderOpportunities prints an opportunity table.
func renderOpportunities(w io.Writer, opps []models.Opportunity) {
	if len(opps) == 0 {
		fmt.Fprintln(w, "No opportunities found matching your criteria.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tTITLE\tCOMPANY\tLOCATION\tPOSTED BY\tDEADLINE")
	for _, opp := range opps {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			opp.ID, opp.Type, opp.Title, opp.Company, opp.Location, opp.UserName, opp.ApplicationDeadline)
	}
	tw.Flush()
}

// renderEvents prints an event table.
func renderEvents(w io.Writer, events []models.Event) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No upcoming events.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDATE\tTIME\tLOCATION\tREGISTERED")
	for _, evt := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			evt.ID, evt.Title, evt.Date, evt.Time, evt.Location, evt.RegistrationsCount)
	}
	tw.Flush()
}

// renderApplications prints an application table.
func renderApplications(w io.Writer, apps []models.Application) {
	if len(apps) == 0 {
		fmt.Fprintln(w, "No applications.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTUDENT\tOPPORTUNITY\tSTATUS\tAPPLIED")
	for _, app := range apps {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			app.ID, app.StudentName, app.OpportunityTitle, app.Status, app.ApplicationDate)
	}
	tw.Flush()
}

// renderPoints prints a name/value series.
func renderPoints(w io.Writer, title string, points []models.AnalyticsPoint) {
	fmt.Fprintln(w, title)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range points {
		fmt.Fprintf(tw, "  %s\t%d\n", p.Name, p.Value)
	}
	tw.Flush()
}
