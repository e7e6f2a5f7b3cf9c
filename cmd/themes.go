package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/glint/internal/config"
	"github.com/zjrosen/glint/internal/ui/markdown"
	"github.com/zjrosen/glint/internal/ui/styles"
)

const themesOutputWidth = 80

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available theme presets",
	Long: `Lists built-in theme presets and user presets from ~/.config/glint/themes.
Use --set to make a preset the default in your config file.`,
	RunE: runThemes,
}

func init() {
	themesCmd.Flags().String("set", "", "save the given preset to the config file")
	themesCmd.Flags().Bool("tokens", false, "list the color tokens themes can override")
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	// User presets join the built-in table before listing or validation
	if err := styles.LoadUserPresets(config.ThemesDir()); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	if showTokens, _ := cmd.Flags().GetBool("tokens"); showTokens {
		return printTokens(cmd)
	}

	if preset, _ := cmd.Flags().GetString("set"); preset != "" {
		return setPreset(cmd, preset)
	}

	renderer, err := markdown.New(themesOutputWidth)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	out, err := renderer.Render(themesMarkdown())
	if err != nil {
		return fmt.Errorf("rendering theme list: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// themesMarkdown builds the preset listing as a markdown document.
func themesMarkdown() string {
	names := make([]string, 0, len(styles.Presets))
	for name := range styles.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("# Themes\n\n")
	for _, name := range names {
		preset := styles.Presets[name]
		b.WriteString(fmt.Sprintf("- **%s** — %s\n", preset.Name, preset.Description))
	}
	b.WriteString("\nSet a theme with `glint themes --set NAME`, ")
	b.WriteString("or per run with `glint --theme NAME FILE`.\n")
	b.WriteString("\nUser presets are loaded from `~/.config/glint/themes/*.yaml`.\n")
	return b.String()
}

// printTokens lists the color tokens a theme file can override.
func printTokens(cmd *cobra.Command) error {
	for _, token := range styles.AllTokens() {
		fmt.Fprintln(cmd.OutOrStdout(), string(token))
	}
	return nil
}

// setPreset persists the preset choice to the config file.
func setPreset(cmd *cobra.Command, preset string) error {
	if _, ok := styles.Presets[preset]; !ok {
		return fmt.Errorf("unknown preset %q (run 'glint themes' to list)", preset)
	}

	path := cfgFile
	if path == "" {
		path = config.FindConfigFile()
	}
	if path == "" {
		dir := config.UserConfigDir()
		if dir == "" {
			return fmt.Errorf("cannot determine config directory")
		}
		path = filepath.Join(dir, "config.yaml")
		if err := config.WriteDefaultConfig(path); err != nil {
			return fmt.Errorf("creating config file: %w", err)
		}
	}

	if err := config.SaveThemePreset(path, preset); err != nil {
		return fmt.Errorf("saving theme preset: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %q in %s\n", preset, path)
	return nil
}
