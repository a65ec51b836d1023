package cmd

import (
	"fmt"

	"github.com/bnema/locations-cli/internal/application"
	"github.com/bnema/locations-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLocationCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "location",
		Aliases: []string{"loc"},
		Short:   "Manage locations",
	}

	cmd.AddCommand(
		newLocationListCmd(app),
		newLocationShowCmd(app),
		newLocationAddCmd(app),
		newLocationEditCmd(app),
		newLocationDeleteCmd(app),
		newLocationApplyCmd(app),
	)

	return cmd
}

func newLocationListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List locations and their account states",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.withLocations(cmd.Context(), cmd.ErrOrStderr(), false, func(svc *application.LocationService) error {
				views, err := svc.Locations(cmd.Context())
				if err != nil {
					return err
				}
				return writeLocationsOutput(cmd, app, views, asJSON)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print output as JSON")

	return cmd
}

func newLocationShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show one location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withLocations(cmd.Context(), cmd.ErrOrStderr(), false, func(svc *application.LocationService) error {
				view, err := svc.Location(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeLocationOutput(cmd, app, view, asJSON)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print output as JSON")

	return cmd
}

func newLocationAddCmd(app *app) *cobra.Command {
	var enable []string
	var disable []string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Record the current account states as a location",
		Long:  "Record one state per registry account under <name>. States default to each account's current enabled flag; --enable and --disable pin individual accounts. An existing location of the same name is replaced.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := domain.ValidateLocationName(name); err != nil {
				return err
			}

			overrides, err := parseOverrides(enable, disable)
			if err != nil {
				return err
			}

			return app.withLocations(cmd.Context(), cmd.ErrOrStderr(), true, func(svc *application.LocationService) error {
				view, err := svc.CreateLocation(cmd.Context(), name, overrides)
				if err != nil {
					return err
				}
				return writeLocationSummary(cmd, "saved", view)
			})
		},
	}

	addOverrideFlags(cmd, &enable, &disable)

	return cmd
}

func newLocationEditCmd(app *app) *cobra.Command {
	var enable []string
	var disable []string

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Update a location from the registry",
		Long:  "Merge the registry's accounts into <name>. Recorded states are kept unless pinned with --enable or --disable; accounts new to the registry are appended with their current flag.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			overrides, err := parseOverrides(enable, disable)
			if err != nil {
				return err
			}

			return app.withLocations(cmd.Context(), cmd.ErrOrStderr(), true, func(svc *application.LocationService) error {
				view, err := svc.UpdateLocation(cmd.Context(), name, overrides)
				if err != nil {
					return err
				}
				return writeLocationSummary(cmd, "updated", view)
			})
		},
	}

	addOverrideFlags(cmd, &enable, &disable)

	return cmd
}

func newLocationDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			return app.withLocations(cmd.Context(), cmd.ErrOrStderr(), true, func(svc *application.LocationService) error {
				deleted, err := svc.DeleteLocation(cmd.Context(), name)
				if err != nil {
					return err
				}
				if !deleted {
					return fmt.Errorf("%w: %q", domain.ErrLocationNotFound, name)
				}

				_, err = fmt.Fprintf(cmd.OutOrStdout(), "location %q deleted\n", name)
				return err
			})
		},
	}
}

func newLocationApplyCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <name>",
		Short: "Write a location's account states to the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withLocations(cmd.Context(), cmd.ErrOrStderr(), false, func(svc *application.LocationService) error {
				result, err := svc.ApplyLocation(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "location %q applied: %d accounts updated\n", result.Location, len(result.Applied))
				for _, id := range result.Skipped {
					_, _ = fmt.Fprintf(out, "skipped %s: not in the account registry\n", id)
				}
				return nil
			})
		},
	}
}

func addOverrideFlags(cmd *cobra.Command, enable, disable *[]string) {
	cmd.Flags().StringArrayVar(enable, "enable", nil, "Account to record as enabled (username:protocol-id, repeatable)")
	cmd.Flags().StringArrayVar(disable, "disable", nil, "Account to record as disabled (username:protocol-id, repeatable)")
}

func parseOverrides(enable, disable []string) ([]application.AccountOverride, error) {
	overrides := make([]application.AccountOverride, 0, len(enable)+len(disable))
	seen := make(map[domain.AccountIdentity]bool, cap(overrides))

	add := func(raw string, enabled bool) error {
		id, err := domain.ParseAccountIdentity(raw)
		if err != nil {
			return err
		}
		if prev, ok := seen[id]; ok && prev != enabled {
			return fmt.Errorf("account %s is both enabled and disabled", id)
		}
		seen[id] = enabled
		overrides = append(overrides, application.AccountOverride{Identity: id, Enabled: enabled})
		return nil
	}

	for _, raw := range enable {
		if err := add(raw, true); err != nil {
			return nil, err
		}
	}
	for _, raw := range disable {
		if err := add(raw, false); err != nil {
			return nil, err
		}
	}

	return overrides, nil
}

func writeLocationSummary(cmd *cobra.Command, verb string, view application.LocationView) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "location %q %s: %d accounts, %d enabled\n",
		view.Name, verb, len(view.Accounts), view.EnabledCount())
	return err
}
