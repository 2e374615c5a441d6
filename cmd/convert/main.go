// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the convert CLI, which splits JSON
// arrays of objects into one frontmatter Markdown file per object.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/json2md/internal/catalog"
	"github.com/pdiddy/json2md/internal/convert"
	"github.com/pdiddy/json2md/internal/output"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version))
	return output.GetExitCode(err)
}

// newRootCmd builds the command tree with its own viper instance so that
// each invocation resolves configuration from scratch.
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "convert [file.json]",
		Short: "Split JSON arrays of objects into Markdown files with frontmatter",
		Long: `convert turns a JSON file holding an array of objects into one Markdown
file per object. Each object's fields become the file's YAML frontmatter.

Given data.json, files are written to ./data/1.md, ./data/2.md, and so on. When
run from inside a directory already named data, files land in the current
directory instead.

With no argument, every .json file in the working directory is converted. A
file that cannot be converted is reported and the others still run.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, v, args)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default: ./json2md.yaml or ~/.config/json2md/config.yaml)")
	cmd.PersistentFlags().StringP("work-dir", "C", "", "run as if started in this directory")
	cmd.PersistentFlags().String("catalog", "", "SQLite catalog recording every written file")
	cmd.PersistentFlags().String("color", "auto", "styled output: auto, always, or never")

	cmd.Flags().String("name-field", "", "name files after this string field instead of the record position")
	cmd.Flags().String("body-field", "", "write this field as the document body instead of frontmatter")
	cmd.Flags().Bool("unwrap", false, "accept a top-level object and convert its first array of objects")
	cmd.Flags().String("ext", convert.DefaultExt, "extension for generated files")
	cmd.Flags().Bool("strict", false, "exit non-zero if any file fails when scanning a directory")
	cmd.Flags().BoolP("verbose", "v", false, "print every file written")

	bindFlags(v, cmd)

	cmd.AddCommand(newCatalogCmd(v))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runConvert(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	dir, err := workDir(cmd)
	if err != nil {
		return err
	}

	opts := convert.OptionsFromConfig(cfg, dir)

	if cfg.Catalog != "" {
		store, err := catalog.Open(catalogPath(cfg.Catalog, dir))
		if err != nil {
			return err
		}
		defer store.Close()
		opts.Recorder = store
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	color := output.ResolveColorMode(string(cfg.Color), output.IsTTY(cmd.OutOrStdout()))
	p := output.NewPrinter(cmd.OutOrStdout(), color).
		WithStderr(cmd.ErrOrStderr()).
		WithVerbose(verbose)

	var source string
	if len(args) == 1 {
		source = args[0]
	}
	return convert.Run(cmd.Context(), source, opts, p)
}

// workDir returns the absolute --work-dir flag value or the process working
// directory.
func workDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("work-dir")
	if dir == "" {
		return os.Getwd()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving work directory %s: %w", dir, err)
	}
	return abs, nil
}
