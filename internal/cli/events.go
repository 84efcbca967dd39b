package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models/dto"
)

// EventsOptions holds flags for the events subcommands.
type EventsOptions struct {
	*RootOptions

	// create form
	Title       string
	Date        string
	Time        string
	Location    string
	Description string
}

// NewEventsCommand creates the events command group.
func NewEventsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EventsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Browse, create, and register for events",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List events, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, _, err := establishSession(opts.RootOptions)
			if err != nil {
				return err
			}
			renderEvents(cmd.OutOrStdout(), deps.Services.Event.List())
			return nil
		},
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new event (alumni and admins only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, user, err := establishSession(opts.RootOptions)
			if err != nil {
				return err
			}
			form := dto.EventForm{
				Title:       opts.Title,
				Date:        opts.Date,
				Time:        opts.Time,
				Location:    opts.Location,
				Description: opts.Description,
			}
			evt, err := deps.Services.Event.Create(user, form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created event %q on %s (id %s)\n", evt.Title, evt.Date, evt.ID)
			return nil
		},
	}
	createCmd.Flags().StringVar(&opts.Title, "title", "", "event title")
	createCmd.Flags().StringVar(&opts.Date, "date", "", "event date (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&opts.Time, "time", "", "event time")
	createCmd.Flags().StringVar(&opts.Location, "location", "", "event location")
	createCmd.Flags().StringVar(&opts.Description, "description", "", "event description")

	registerCmd := &cobra.Command{
		Use:   "register <event-id>",
		Short: "Register the signed-in user for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, user, err := establishSession(opts.RootOptions)
			if err != nil {
				return err
			}
			if err := deps.Services.Event.Register(args[0], user.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s for event %s\n", user.Name, args[0])
			return nil
		},
	}

	cmd.AddCommand(listCmd, createCmd, registerCmd)
	return cmd
}
