// Package cli is the presentation layer: it signs a user in against the
// session store, invokes the domain services, and renders their results.
// Every process starts from the same seed roster; nothing persists.
package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/bootstrap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Email      string
	Role       string
}

// NewRootCommand creates the root command for the AAS CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "aas",
		Short:         "AAS - Alumni Advantage System",
		Long:          "Role-aware alumni network: browse opportunities, manage events, maintain profiles, and view analytics.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", filepath.Join("configs", "config.yaml"), "path to config file")
	cmd.PersistentFlags().StringVarP(&opts.Email, "email", "e", "", "sign-in email ('demo' picks any user with the role)")
	cmd.PersistentFlags().StringVarP(&opts.Role, "role", "r", "", "sign-in role (ADMIN|ALUMNI|STUDENT)")

	// Add subcommands
	cmd.AddCommand(NewDashboardCommand(opts))
	cmd.AddCommand(NewOpportunitiesCommand(opts))
	cmd.AddCommand(NewEventsCommand(opts))
	cmd.AddCommand(NewApplicationsCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))
	cmd.AddCommand(NewAnalyticsCommand(opts))

	return cmd
}

// establishSession boots the stores from the seed roster and signs in with
// the global --email/--role flags.
func establishSession(opts *RootOptions) (*bootstrap.Dependencies, *models.User, error) {
	role := models.RoleType(strings.ToUpper(opts.Role))
	if !role.Valid() {
		return nil, nil, fmt.Errorf("invalid role %q: must be one of ADMIN, ALUMNI, STUDENT", opts.Role)
	}
	if opts.Email == "" {
		return nil, nil, fmt.Errorf("--email is required")
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	deps, err := bootstrap.BuildDependencies(cfg, lgr)
	if err != nil {
		return nil, nil, err
	}

	user, err := deps.Session.SignIn(opts.Email, role)
	if err != nil {
		return nil, nil, fmt.Errorf("sign-in failed for %s (%s): %w", opts.Email, role, err)
	}
	return deps, user, nil
}
