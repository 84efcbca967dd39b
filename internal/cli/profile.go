package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models/dto"
)

// ProfileOptions holds flags for the profile subcommands.
type ProfileOptions struct {
	*RootOptions

	Industry string
	Company  string
	JobTitle string
	Bio      string
	Skills   []string
	Location string
}

// NewProfileCommand creates the profile command group.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProfileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit the signed-in user's professional profile",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the signed-in user's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, user, err := establishSession(opts.RootOptions)
			if err != nil {
				return err
			}
			profile := deps.Services.Profile.GetOrInit(user)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Profile for %s (%s)\n", user.Name, user.Email)
			fmt.Fprintf(out, "  Industry:  %s\n", profile.Industry)
			fmt.Fprintf(out, "  Company:   %s\n", profile.Company)
			fmt.Fprintf(out, "  Job title: %s\n", profile.JobTitle)
			fmt.Fprintf(out, "  Location:  %s\n", profile.Location)
			fmt.Fprintf(out, "  Skills:    %s\n", strings.Join(profile.Skills, ", "))
			fmt.Fprintf(out, "  Bio:       %s\n", profile.Bio)
			return nil
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Save the signed-in user's profile (last write wins)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, user, err := establishSession(opts.RootOptions)
			if err != nil {
				return err
			}
			form := dto.ProfileForm{
				Industry: opts.Industry,
				Company:  opts.Company,
				JobTitle: opts.JobTitle,
				Bio:      opts.Bio,
				Skills:   opts.Skills,
				Location: opts.Location,
			}
			profile, err := deps.Services.Profile.Save(user, form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile saved (id %s)\n", profile.ID)
			return nil
		},
	}
	editCmd.Flags().StringVar(&opts.Industry, "industry", "", "industry")
	editCmd.Flags().StringVar(&opts.Company, "company", "", "company")
	editCmd.Flags().StringVar(&opts.JobTitle, "job-title", "", "job title")
	editCmd.Flags().StringVar(&opts.Bio, "bio", "", "short biography")
	editCmd.Flags().StringSliceVar(&opts.Skills, "skills", nil, "comma-separated skills")
	editCmd.Flags().StringVar(&opts.Location, "location", "", "location")

	cmd.AddCommand(showCmd, editCmd)
	return cmd
}
