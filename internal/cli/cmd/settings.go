package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shortcutctl/internal/cli/styles"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Read and write raw settings",
	Long:  `Direct access to the settings store the shortcut bindings live in.`,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a setting value",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsPutCmd = &cobra.Command{
	Use:   "put <key> <value>",
	Short: "Overwrite a setting value",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsPut,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every stored setting",
	Args:  cobra.NoArgs,
	RunE:  runSettingsList,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsPutCmd)
	settingsCmd.AddCommand(settingsListCmd)
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	value, ok, err := a.Settings.Get(a.Ctx(), args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("setting %q not found", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runSettingsPut(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if err := a.Settings.Put(a.Ctx(), args[0], args[1]); err != nil {
		return err
	}
	renderer := styles.NewShortcutRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(args[0]+" updated"))
	return nil
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	settings, err := a.Settings.GetAll(a.Ctx())
	if err != nil {
		return err
	}
	renderer := styles.NewShortcutRenderer(a.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderSettings(settings))
	return nil
}
