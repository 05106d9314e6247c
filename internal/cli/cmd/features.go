package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shortcutctl/internal/cli/styles"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List configured features",
	Args:  cobra.NoArgs,
	RunE:  runFeatures,
}

func init() {
	rootCmd.AddCommand(featuresCmd)
}

func runFeatures(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	features, err := a.Config.FeatureList()
	if err != nil {
		return err
	}
	renderer := styles.NewShortcutRenderer(a.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderFeatures(features))
	return nil
}
