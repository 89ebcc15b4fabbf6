package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sliceql/internal/declarative"
)

func newValidateCmd() *cobra.Command {
	var schemaDir string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate slicer definition files offline",
		Long:  "Reads slicer YAML documents and checks them for errors without contacting a server.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registries, err := declarative.LoadDirectory(schemaDir)
			if err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				names := make([]string, 0, len(registries))
				for _, reg := range registries {
					names = append(names, reg.Name())
				}
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"valid":   true,
					"slicers": names,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid: %d slicer(s).\n", len(registries))
			for _, reg := range registries {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s (table %s, %d metrics, %d dimensions)\n",
					reg.Name(), reg.Table().Name, len(reg.Metrics()), len(reg.Dimensions()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaDir, "schema-dir", "./slicer-config", "Path to slicer definition directory")

	return cmd
}
