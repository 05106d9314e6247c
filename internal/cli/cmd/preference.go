package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shortcutctl/internal/cli/styles"
	"github.com/bnema/shortcutctl/internal/domain/entity"
)

var editShortcutOn bool

var toggleCmd = &cobra.Command{
	Use:       "toggle <feature> on|off",
	Short:     "Turn a feature's shortcut on or off",
	Long:      `Turn the shortcut on or off using the shortcut types last chosen for the feature.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"on", "off"},
	RunE:      runToggle,
}

var editCmd = &cobra.Command{
	Use:   "edit <feature> <modes>",
	Short: "Choose the shortcut types of a feature",
	Long: `Save the shortcut types the feature should use, e.g. "software,triple_tap".
At least one mode must be selected.

With --shortcut-on the selection is also applied: the chosen modes are
bound and every other mode is removed.`,
	Args: cobra.ExactArgs(2),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().BoolVar(&editShortcutOn, "shortcut-on", false, "apply the selection to settings")
}

func runToggle(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	feature, err := a.ResolveFeature(args[0])
	if err != nil {
		return err
	}

	var on bool
	switch args[1] {
	case "on":
		on = true
	case "off":
		on = false
	default:
		return fmt.Errorf("expected on or off, got %q", args[1])
	}

	if err := a.Preference.ToggleShortcut(ctx, feature, on); err != nil {
		return err
	}

	renderer := styles.NewShortcutRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(
		fmt.Sprintf("shortcut for %s turned %s", feature.DisplayName(), args[1]),
	))
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	feature, err := a.ResolveFeature(args[0])
	if err != nil {
		return err
	}
	selected, err := entity.ParseShortcutType(args[1])
	if err != nil {
		return err
	}

	session, err := a.Preference.BeginShortcutEdit(ctx, feature)
	if err != nil {
		return err
	}
	if err := session.Select(selected); err != nil {
		return err
	}
	if err := a.Preference.ConfirmShortcutEdit(ctx, feature, session, editShortcutOn); err != nil {
		return err
	}

	summary, err := a.Preference.ShortcutSummary(ctx, feature)
	if err != nil {
		return err
	}

	renderer := styles.NewShortcutRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(
		fmt.Sprintf("%s: %s", feature.DisplayName(), summary),
	))
	return nil
}
