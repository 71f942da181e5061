package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"plannerview/internal/config"
	"plannerview/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage application theme",
	Long: `Manage application theme settings.

Examples:
  plannerview theme list         # List available themes
  plannerview theme set nord     # Set theme
  plannerview theme show         # Show current theme`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var themeSetCmd = &cobra.Command{
	Use:   "set [theme-name]",
	Short: "Set application theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeSet,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	RunE:  runThemeList,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current theme",
	Long:  `Display the currently selected theme and its color palette.`,
	RunE:  runThemeShow,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
}

// sets the theme directly
func runThemeSet(cmd *cobra.Command, args []string) error {
	themeName := args[0]

	if !theme.ThemeExists(themeName) {
		return fmt.Errorf("theme '%s' not found. Run 'plannerview theme list' to see available themes", themeName)
	}

	if err := config.UpdateTheme(themeName); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	fmt.Printf("✓ Theme set to '%s'\n", themeName)
	return nil
}

// lists all available themes
func runThemeList(cmd *cobra.Command, args []string) error {
	current := theme.Resolve(settings.ThemeName)
	styles := theme.NewStyles(current)

	fmt.Println()
	fmt.Println(styles.Header.Render(" Available Themes "))
	fmt.Println()

	for _, name := range theme.ListThemes() {
		prefix := "  "
		if name == current.Name {
			prefix = "▶ "
			name = styles.Success.Render(name + " (current)")
		}
		fmt.Printf("%s%s\n", prefix, name)
	}

	fmt.Println()
	return nil
}

// displays current theme details
func runThemeShow(cmd *cobra.Command, args []string) error {
	themeObj := theme.Resolve(settings.ThemeName)
	styles := theme.NewStyles(themeObj)

	fmt.Println()
	fmt.Println(styles.Header.Render(fmt.Sprintf(" Current Theme: %s ", themeObj.Name)))
	fmt.Println()

	palette := []struct {
		name  string
		color string
	}{
		{"Primary", themeObj.Primary},
		{"Urgent", themeObj.PriorityUrgent},
		{"Important", themeObj.PriorityImportant},
		{"Done", themeObj.ProgressDone},
		{"Ongoing", themeObj.ProgressOngoing},
		{"Pinned", themeObj.Pinned},
		{"Late", themeObj.Late},
		{"Border", themeObj.BorderColor},
	}

	for _, p := range palette {
		sample := lipgloss.NewStyle().
			Background(lipgloss.Color(p.color)).
			Foreground(lipgloss.Color(p.color)).
			Render("  ████  ")
		fmt.Printf("  %-12s %s %s\n", p.name+":", sample, p.color)
	}

	fmt.Println()
	return nil
}
