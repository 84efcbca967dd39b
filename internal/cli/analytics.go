package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/auth"
)

// NewAnalyticsCommand creates the analytics command.
func NewAnalyticsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show aggregate engagement and placement figures (admins only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, user, err := establishSession(rootOpts)
			if err != nil {
				return err
			}
			authz := auth.NewAuthorizationService()
			if err := authz.ValidateAdmin(user); err != nil {
				return fmt.Errorf("access denied: %w", err)
			}

			out := cmd.OutOrStdout()
			overview := deps.Services.Analytics.Overview()
			fmt.Fprintln(out, "Analytics Dashboard")
			fmt.Fprintf(out, "  Total Users:         %d\n", overview.TotalUsers)
			fmt.Fprintf(out, "  Active Events:       %d\n", overview.ActiveEvents)
			fmt.Fprintf(out, "  Opportunities:       %d\n", overview.Opportunities)
			fmt.Fprintf(out, "  Applications:        %d\n", overview.Applications)
			fmt.Fprintf(out, "  Event Registrations: %d\n", overview.TotalRegistrations)
			fmt.Fprintln(out)

			renderPoints(out, "Opportunities by type:", deps.Services.Analytics.OpportunitiesByType())
			fmt.Fprintln(out)
			renderPoints(out, "Placements by industry:", deps.Services.Analytics.PlacementsByIndustry())
			return nil
		},
	}
}
