package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zjrosen/glint/internal/infrastructure/sqlite"
	"github.com/zjrosen/glint/internal/ui/styles"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently viewed files",
	RunE:  runRecent,
}

func init() {
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return cfgErr
	}
	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled in the config (history.enabled: false)")
	}
	if cfg.History.Path == "" {
		return fmt.Errorf("no history database path configured")
	}

	db, err := sqlite.NewDB(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer func() { _ = db.Close() }()

	entries, err := db.HistoryStore().Recent(cfg.History.MaxEntries)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recently viewed files.")
		return nil
	}

	mutedStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	for _, entry := range entries {
		meta := fmt.Sprintf("%s, %s", openCountLabel(entry.OpenCount), relativeTime(entry.LastOpenedAt, time.Now()))
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", entry.Path, mutedStyle.Render("("+meta+")"))
	}
	return nil
}

func openCountLabel(count int) string {
	if count == 1 {
		return "1 open"
	}
	return fmt.Sprintf("%d opens", count)
}

// relativeTime renders a short human delta like "5m ago" or "3d ago".
func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
