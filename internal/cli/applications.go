package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
)

// ApplicationsOptions holds flags for the applications subcommands.
type ApplicationsOptions struct {
	*RootOptions
	Decision string
}

// NewApplicationsCommand creates the applications command group.
func NewApplicationsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ApplicationsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "applications",
		Short: "Review student applications",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List applications, newest first (students see only their own)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, user, err := establishSession(opts.RootOptions)
			if err != nil {
				return err
			}
			if user.Role == models.RoleStudent {
				renderApplications(cmd.OutOrStdout(), deps.Services.Application.ListByStudent(user.ID))
				return nil
			}
			renderApplications(cmd.OutOrStdout(), deps.Services.Application.List())
			return nil
		},
	}

	decideCmd := &cobra.Command{
		Use:   "decide <application-id>",
		Short: "Accept or reject a pending application (poster or admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, user, err := establishSession(opts.RootOptions)
			if err != nil {
				return err
			}
			decision := models.ApplicationStatus(strings.ToUpper(opts.Decision))
			if err := deps.Services.Application.Decide(user, args[0], decision); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Application %s marked %s\n", args[0], decision)
			return nil
		},
	}
	decideCmd.Flags().StringVarP(&opts.Decision, "decision", "d", "", "ACCEPTED or REJECTED")

	cmd.AddCommand(listCmd, decideCmd)
	return cmd
}
