package cmd

import (
	"fmt"

	"github.com/bnema/locations-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage registry accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
		newAccountAddCmd(app),
		newAccountRemoveCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registry accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := app.registry.List(cmd.Context())
			if err != nil {
				return err
			}

			for _, account := range accounts {
				enabled, err := app.registry.Enabled(cmd.Context(), account.Identity, app.ui)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", account.Identity, account.Alias, stateLabel(enabled))
			}

			return nil
		},
	}
}

func newAccountAddCmd(app *app) *cobra.Command {
	var alias string
	var enabled bool

	cmd := &cobra.Command{
		Use:   "add <username:protocol-id>",
		Short: "Add an account or update its alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseAccountIdentity(args[0])
			if err != nil {
				return err
			}

			if err := app.registry.Save(cmd.Context(), domain.Account{Identity: id, Alias: alias}); err != nil {
				return fmt.Errorf("save account: %w", err)
			}

			if cmd.Flags().Changed("enabled") {
				if err := app.registry.SetEnabled(cmd.Context(), id, app.ui, enabled); err != nil {
					return fmt.Errorf("set account state: %w", err)
				}
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "account %s saved\n", id)
			return err
		},
	}

	cmd.Flags().StringVar(&alias, "alias", "", "Display name for the account")
	cmd.Flags().BoolVar(&enabled, "enabled", false, "Set the account's current enabled state")

	return cmd
}

func newAccountRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <username:protocol-id>",
		Short: "Remove an account from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseAccountIdentity(args[0])
			if err != nil {
				return err
			}

			if err := app.registry.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("remove account: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "account %s removed\n", id)
			return err
		},
	}
}

func stateLabel(enabled bool) string {
	if enabled {
		return domain.StateEnabled
	}
	return domain.StateDisabled
}
