package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shortcutctl/internal/cli/styles"
	"github.com/bnema/shortcutctl/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file and the active store",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long:  `Print a JSON schema describing config.toml, usable by editors for completion and validation.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	path := a.ConfigFile
	if path == "" {
		dir, err := a.Paths.ConfigDir()
		if err != nil {
			return err
		}
		path = dir
	}

	renderer := styles.NewConfigRenderer(a.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderConfigInfo(path, string(a.Config.Store.Backend), a.StoreLocation()))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return nil
}
