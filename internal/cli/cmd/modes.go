package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shortcutctl/internal/cli/styles"
	"github.com/bnema/shortcutctl/internal/domain/entity"
)

var enableCmd = &cobra.Command{
	Use:   "enable <feature> <mode>",
	Short: "Bind one shortcut mode to a feature",
	Long: `Bind one shortcut mode (software, hardware or triple_tap) to a feature.
Enabling a mode that is already bound changes nothing.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetMode(cmd, args, true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable <feature> <mode>",
	Short: "Unbind one shortcut mode from a feature",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetMode(cmd, args, false)
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply <feature> <modes>",
	Short: "Make a feature's bindings exactly match a set of modes",
	Long: `Enable every listed mode and disable every other mode of the feature.
Modes are comma separated, e.g. "software,hardware"; "none" removes all bindings.`,
	Args: cobra.ExactArgs(2),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(applyCmd)
}

func runSetMode(cmd *cobra.Command, args []string, enable bool) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	feature, err := a.ResolveFeature(args[0])
	if err != nil {
		return err
	}
	mode, err := entity.ParseShortcutType(args[1])
	if err != nil {
		return err
	}

	verb := "enabled"
	if enable {
		err = a.Targets.EnableMode(ctx, feature, mode)
	} else {
		verb = "disabled"
		err = a.Targets.DisableMode(ctx, feature, mode)
	}
	if err != nil {
		return err
	}

	renderer := styles.NewShortcutRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(
		fmt.Sprintf("%s %s for %s", mode, verb, feature.DisplayName()),
	))
	return nil
}

func runApply(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	feature, err := a.ResolveFeature(args[0])
	if err != nil {
		return err
	}
	desired, err := entity.ParseShortcutType(args[1])
	if err != nil {
		return err
	}

	if err := a.Targets.ApplyModeSet(ctx, feature, desired); err != nil {
		return err
	}

	renderer := styles.NewShortcutRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(
		fmt.Sprintf("%s now uses %s", feature.DisplayName(), desired),
	))
	return nil
}
