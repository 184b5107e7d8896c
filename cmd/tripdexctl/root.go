package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	tripdex "github.com/kailas-cloud/tripdex/pkg/sdk"
)

// catalogDirEnv names the catalog directory when --catalog is not given.
const catalogDirEnv = "CATALOG_DIR"

type rootOptions struct {
	catalogDir string
	compact    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tripdexctl",
		Short: "Search the tripdex flight and hotel catalogs from the command line",
		Long: `tripdexctl runs the same search pipelines as the tripdex API in-process.

The bundled demo catalog is used unless --catalog (or CATALOG_DIR) points to a
directory holding flights.yaml and hotels.yaml. A .env file in the working
directory is loaded first.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			_ = godotenv.Load()
			if !cmd.Flags().Changed("catalog") {
				opts.catalogDir = os.Getenv(catalogDirEnv)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.catalogDir, "catalog", "", "directory with flights.yaml and hotels.yaml")
	cmd.PersistentFlags().BoolVar(&opts.compact, "compact", false, "print JSON on a single line")

	cmd.AddCommand(newFlightsCmd(opts))
	cmd.AddCommand(newHotelsCmd(opts))
	cmd.AddCommand(newFacetsCmd(opts))
	return cmd
}

func (o *rootOptions) client() (*tripdex.Client, error) {
	c, err := tripdex.New(tripdex.WithCatalogDir(o.catalogDir))
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return c, nil
}

func (o *rootOptions) print(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if !o.compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// parseBody decodes a --body JSON object. An empty string reads as no body.
func parseBody(raw string) (map[string]any, bool, error) {
	if raw == "" {
		return nil, false, nil
	}
	var body map[string]any
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return nil, false, fmt.Errorf("parse --body: %w", err)
	}
	return body, true, nil
}
