package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "loc",
		Short:         "Locations CLI (loc): switch account sets per location",
		Long:          "loc groups your messaging accounts under named locations such as home or work, records which accounts are enabled in each, and applies a location to the account registry in one step.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(app),
		newLocationCmd(app),
	)

	return rootCmd
}
