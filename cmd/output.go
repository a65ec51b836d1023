package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/locations-cli/internal/application"
	"github.com/spf13/cobra"
)

func writeLocationsOutput(cmd *cobra.Command, app *app, views []application.LocationView, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	rendered, err := app.renderer(views)
	if err != nil {
		return fmt.Errorf("render locations: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeLocationOutput(cmd *cobra.Command, app *app, view application.LocationView, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	return writeLocationsOutput(cmd, app, []application.LocationView{view}, false)
}
