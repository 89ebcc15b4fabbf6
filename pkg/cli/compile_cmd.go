package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sliceql/internal/api"
	"sliceql/internal/declarative"
	"sliceql/internal/service/slicer"
)

func newCompileCmd() *cobra.Command {
	var (
		schemaDir   string
		slicerName  string
		requestPath string
		display     bool
	)

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a slice request offline",
		Long:  "Compiles a JSON slice request against a slicer definition and prints the resulting schema.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registries, err := declarative.LoadDirectory(schemaDir)
			if err != nil {
				return err
			}

			var svc *slicer.Service
			for _, reg := range registries {
				if reg.Name() == slicerName {
					svc = slicer.NewService(reg)
					break
				}
			}
			if svc == nil {
				return fmt.Errorf("slicer %q not found in %s", slicerName, schemaDir)
			}

			body, err := readRequest(cmd.InOrStdin(), requestPath)
			if err != nil {
				return err
			}
			var compileReq api.CompileRequest
			if err := json.Unmarshal(body, &compileReq); err != nil {
				return fmt.Errorf("parse request: %w", err)
			}
			req, err := compileReq.ToDomain()
			if err != nil {
				return err
			}

			if display {
				ds, err := svc.DisplaySchema(req)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), ds)
			}

			qs, err := svc.QuerySchema(req)
			if err != nil {
				return err
			}
			resp, err := api.NewQuerySchemaResponse(qs)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&schemaDir, "schema-dir", "./slicer-config", "Path to slicer definition directory")
	cmd.Flags().StringVar(&slicerName, "slicer", "", "Slicer name to compile against")
	cmd.Flags().StringVar(&requestPath, "request", "-", "Path to the JSON slice request ('-' for stdin)")
	cmd.Flags().BoolVar(&display, "display", false, "Compile the display schema instead of the query schema")
	_ = cmd.MarkFlagRequired("slicer")

	return cmd
}

func readRequest(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read request from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	return data, nil
}
