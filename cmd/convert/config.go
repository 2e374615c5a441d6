// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/json2md/internal/convert"
	"github.com/pdiddy/json2md/pkg/types"
)

const envPrefix = "JSON2MD"

// flagKeys maps config keys to the flags that set them.
var flagKeys = map[string]string{
	"name_field": "name-field",
	"body_field": "body-field",
	"unwrap":     "unwrap",
	"ext":        "ext",
	"strict":     "strict",
	"catalog":    "catalog",
	"color":      "color",
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for key, name := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			flag = cmd.PersistentFlags().Lookup(name)
		}
		if flag != nil {
			_ = v.BindPFlag(key, flag)
		}
	}
}

// initConfig loads .env, then the config file and JSON2MD_* environment
// variables. Flags set on the command line take precedence over both.
func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	dir, err := workDir(cmd)
	if err != nil {
		return err
	}
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("json2md")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "json2md"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("ext", convert.DefaultExt)
	v.SetDefault("color", string(types.ColorAuto))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	return nil
}

// loadConfig decodes and validates the resolved settings.
func loadConfig(v *viper.Viper) (types.ConvertConfig, error) {
	var cfg types.ConvertConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
