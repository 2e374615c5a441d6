// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/json2md/internal/catalog"
	"github.com/pdiddy/json2md/internal/output"
)

func newCatalogCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the catalog of generated files",
		Long: `Query the SQLite catalog written by convert --catalog.

Every converted record is stored with its output path, collection, source
file, position, and frontmatter fields.`,
	}

	list := &cobra.Command{
		Use:   "list [collection]",
		Short: "List cataloged files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList(cmd, v, args)
		},
	}
	list.Flags().Bool("json", false, "output as JSON")

	export := &cobra.Command{
		Use:   "export [collection]",
		Short: "Export cataloged records as YAML or JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogExport(cmd, v, args)
		},
	}
	export.Flags().String("format", "yaml", "export format: yaml or json")
	export.Flags().StringP("output", "o", "", "write to this file instead of stdout")

	cmd.AddCommand(list, export)
	return cmd
}

// catalogPath resolves a relative catalog path against the working directory.
func catalogPath(path, dir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// openCatalog opens an existing catalog for reading.
func openCatalog(cmd *cobra.Command, v *viper.Viper) (*catalog.Store, error) {
	if v.GetString("catalog") == "" {
		return nil, fmt.Errorf("no catalog configured: pass --catalog or set catalog in json2md.yaml")
	}
	dir, err := workDir(cmd)
	if err != nil {
		return nil, err
	}
	path := catalogPath(v.GetString("catalog"), dir)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return catalog.Open(path)
}

func runCatalogList(cmd *cobra.Command, v *viper.Viper, args []string) error {
	store, err := openCatalog(cmd, v)
	if err != nil {
		return err
	}
	defer store.Close()

	var collection string
	if len(args) == 1 {
		collection = args[0]
	}
	entries, err := store.List(cmd.Context(), collection)
	if err != nil {
		return err
	}

	color := output.ResolveColorMode(v.GetString("color"), output.IsTTY(cmd.OutOrStdout()))
	p := output.NewPrinter(cmd.OutOrStdout(), color).WithStderr(cmd.ErrOrStderr())

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if entries == nil {
			entries = []catalog.Entry{}
		}
		return p.WriteJSON(entries)
	}

	if len(entries) == 0 {
		p.Info("no cataloged files")
		return nil
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Path, e.Collection, strconv.Itoa(e.Position), e.Source})
	}
	p.Table([]string{"PATH", "COLLECTION", "POSITION", "SOURCE"}, rows)
	return nil
}

func runCatalogExport(cmd *cobra.Command, v *viper.Viper, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "yaml" && format != "json" {
		return fmt.Errorf("unknown export format %q (want yaml or json)", format)
	}

	store, err := openCatalog(cmd, v)
	if err != nil {
		return err
	}
	defer store.Close()

	var collection string
	if len(args) == 1 {
		collection = args[0]
	}

	export := store.ExportYAML
	if format == "json" {
		export = store.ExportJSON
	}
	write := func(w io.Writer) error {
		return export(cmd.Context(), collection, w)
	}

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		return exportTo(path, write)
	}
	return write(cmd.OutOrStdout())
}

// exportTo writes an export to the file at path. A failed close is reported
// like a failed write.
func exportTo(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return write(f)
}
