package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models/dto"
)

// OpportunitiesOptions holds flags for the opportunities subcommands.
type OpportunitiesOptions struct {
	*RootOptions
	TypeFilter string

	// post form
	Type        string
	Title       string
	Company     string
	Location    string
	Description string
	Deadline    string
}

// NewOpportunitiesCommand creates the opportunities command group.
func NewOpportunitiesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OpportunitiesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "opportunities",
		Short: "Browse, post, and apply to job and mentorship opportunities",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List opportunities, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, _, err := establishSession(opts.RootOptions)
			if err != nil {
				return err
			}
			filter := models.OpportunityType(strings.ToUpper(opts.TypeFilter))
			if opts.TypeFilter != "" && !filter.Valid() {
				return fmt.Errorf("invalid type %q: must be JOB or MENTORSHIP", opts.TypeFilter)
			}
			renderOpportunities(cmd.OutOrStdout(), deps.Services.Opportunity.List(filter))
			return nil
		},
	}
	listCmd.Flags().StringVarP(&opts.TypeFilter, "type", "t", "", "filter by type (JOB|MENTORSHIP)")

	postCmd := &cobra.Command{
		Use:   "post",
		Short: "Post a new opportunity (alumni and admins only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, user, err := establishSession(opts.RootOptions)
			if err != nil {
				return err
			}
			form := dto.OpportunityForm{
				Type:                models.OpportunityType(strings.ToUpper(opts.Type)),
				Title:               opts.Title,
				Description:         opts.Description,
				Company:             opts.Company,
				Location:            opts.Location,
				ApplicationDeadline: opts.Deadline,
			}
			opp, err := deps.Services.Opportunity.Post(user, form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Posted %s %q as %s (id %s)\n", opp.Type, opp.Title, opp.UserName, opp.ID)
			return nil
		},
	}
	postCmd.Flags().StringVar(&opts.Type, "type", "JOB", "opportunity type (JOB|MENTORSHIP)")
	postCmd.Flags().StringVar(&opts.Title, "title", "", "title")
	postCmd.Flags().StringVar(&opts.Company, "company", "", "company")
	postCmd.Flags().StringVar(&opts.Location, "location", "", "location")
	postCmd.Flags().StringVar(&opts.Description, "description", "", "description")
	postCmd.Flags().StringVar(&opts.Deadline, "deadline", "", "application deadline (YYYY-MM-DD)")

	applyCmd := &cobra.Command{
		Use:   "apply <opportunity-id>",
		Short: "Apply to an opportunity (students only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, user, err := establishSession(opts.RootOptions)
			if err != nil {
				return err
			}
			app, err := deps.Services.Opportunity.Apply(user, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Application submitted for %q (id %s, status %s)\n",
				app.OpportunityTitle, app.ID, app.Status)
			return nil
		},
	}

	cmd.AddCommand(listCmd, postCmd, applyCmd)
	return cmd
}
