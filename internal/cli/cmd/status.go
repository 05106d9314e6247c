package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shortcutctl/internal/cli/styles"
	"github.com/bnema/shortcutctl/internal/domain/entity"
)

var statusCmd = &cobra.Command{
	Use:   "status <feature>",
	Short: "Show the shortcut bindings of a feature",
	Long: `Show which shortcut modes are bound to a feature, the shortcut types the
resolver picks (and where they came from), whether the shortcut is on, and
the summary line a settings screen would display.

Reading the status also copies a non-empty binding from settings into the
preference cache.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	feature, err := a.ResolveFeature(args[0])
	if err != nil {
		return err
	}

	state, err := a.Preference.ShortcutState(ctx, feature)
	if err != nil {
		return err
	}
	resolved, source, err := a.Resolver.ResolveModeSet(ctx, feature, feature.DefaultType)
	if err != nil {
		return err
	}

	labels := a.Config.ShortcutLabels()
	labels = labels.WithSoftware(labels.SoftwareFor(
		a.Navigation.IsGestureNavigation(ctx),
		a.Navigation.IsTouchExploration(ctx),
	))

	modes := make([]styles.ModeStatus, 0, len(entity.ShortcutModes))
	for _, mode := range entity.ShortcutModes {
		enabled, err := a.Targets.HasMode(ctx, feature, mode)
		if err != nil {
			return err
		}
		modes = append(modes, styles.ModeStatus{
			Mode:      mode,
			Label:     modeLabel(labels, mode),
			Supported: feature.SupportedTypes().Has(mode),
			Enabled:   enabled,
		})
	}

	renderer := styles.NewShortcutRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderStatus(styles.ShortcutStatus{
		Feature:  feature,
		Modes:    modes,
		Resolved: resolved,
		Source:   source,
		Selected: state.Types,
		On:       state.Enabled,
		Summary:  state.Summary,
	}))
	return nil
}

func modeLabel(labels entity.ShortcutLabels, mode entity.ShortcutType) string {
	switch mode {
	case entity.ShortcutTypeSoftware:
		return labels.Software
	case entity.ShortcutTypeHardware:
		return labels.Hardware
	case entity.ShortcutTypeTripleTap:
		return labels.TripleTap
	default:
		return ""
	}
}
