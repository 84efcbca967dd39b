package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/bootstrap"
)

// NewDashboardCommand creates the dashboard command.
func NewDashboardCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the role-specific overview for the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, user, err := establishSession(rootOpts)
			if err != nil {
				return err
			}
			return runDashboard(cmd, deps, user)
		},
	}
}

func runDashboard(cmd *cobra.Command, deps *bootstrap.Dependencies, user *models.User) error {
	out := cmd.OutOrStdout()
	overview := deps.Services.Analytics.Overview()

	fmt.Fprintf(out, "Welcome back, %s! (%s)\n\n", user.Name, user.Role)

	switch user.Role {
	case models.RoleAdmin:
		fmt.Fprintf(out, "Total Users:    %d\n", overview.TotalUsers)
		fmt.Fprintf(out, "Active Events:  %d\n", overview.ActiveEvents)
		fmt.Fprintf(out, "Job Postings:   %d\n", overview.Opportunities)
		fmt.Fprintf(out, "Registrations:  %d\n", overview.TotalRegistrations)
	case models.RoleAlumni:
		fmt.Fprintf(out, "My Posts:       %d\n", deps.Services.Analytics.PostCountByUser(user.ID))
		fmt.Fprintf(out, "Active Events:  %d\n", overview.ActiveEvents)
		fmt.Fprintf(out, "Applications:   %d\n", overview.Applications)
	case models.RoleStudent:
		fmt.Fprintf(out, "My Applications: %d\n", deps.Services.Analytics.ApplicationCountByStudent(user.ID))
		fmt.Fprintf(out, "Upcoming Events: %d\n", overview.ActiveEvents)
	}

	fmt.Fprintln(out, "\nRecent opportunities:")
	opps := deps.Services.Opportunity.List("")
	if len(opps) > 3 {
		opps = opps[:3]
	}
	renderOpportunities(out, opps)

	fmt.Fprintln(out, "\nUpcoming events:")
	events := deps.Services.Event.List()
	if len(events) > 3 {
		events = events[:3]
	}
	renderEvents(out, events)
	return nil
}
