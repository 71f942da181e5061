package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"plannerview/internal/config"
	"plannerview/internal/domain"
	"plannerview/internal/repository"
	"plannerview/internal/theme"
)

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "Manage saved views",
	Long: `Manage saved views: named filter and sort presets stored next to the
settings. Views are saved and applied from the viewer with w and v.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var viewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved views",
	Long:  `List saved views, most recently used first.`,
	RunE:  runViewsList,
}

var viewsShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a saved view as a view config",
	Long: `Print a saved view in the view config format, so it can be copied into
a view config file.`,
	Args: cobra.ExactArgs(1),
	RunE: runViewsShow,
}

var viewsSaveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Save the current view config under a name",
	Long: `Save the current view config as a named view. An existing view with
the same name is replaced.

Examples:
  plannerview views save "my urgent"
  plannerview views save review --view-config review.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runViewsSave,
}

var viewsDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a saved view",
	Args:  cobra.ExactArgs(1),
	RunE:  runViewsDelete,
}

func init() {
	rootCmd.AddCommand(viewsCmd)
	viewsCmd.AddCommand(viewsListCmd)
	viewsCmd.AddCommand(viewsShowCmd)
	viewsCmd.AddCommand(viewsSaveCmd)
	viewsCmd.AddCommand(viewsDeleteCmd)
}

func runViewsList(cmd *cobra.Command, args []string) error {
	db, repo, err := openViews()
	if err != nil {
		return err
	}
	defer db.Close()

	styles := theme.NewStyles(theme.Resolve(settings.ThemeName))
	return listViews(context.Background(), os.Stdout, styles, repo)
}

func listViews(ctx context.Context, w io.Writer, styles *theme.Styles, repo repository.ViewRepository) error {
	views, err := repo.List(ctx, repository.ViewFilter{})
	if err != nil {
		return fmt.Errorf("failed to list views: %w", err)
	}

	if len(views) == 0 {
		fmt.Fprintln(w, styles.Info.Render("No saved views."))
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf("%-24s %-50s %s", "Name", "Filters", "Last used")))
	for _, v := range views {
		lastUsed := "never"
		if v.LastAccessed != nil {
			lastUsed = v.LastAccessed.Format(domain.DateLayout)
		}
		fmt.Fprintf(w, " %-24s %-50s %s\n", v.Name, v.GetFilterSummary(), lastUsed)
	}
	fmt.Fprintln(w)
	return nil
}

func runViewsShow(cmd *cobra.Command, args []string) error {
	db, repo, err := openViews()
	if err != nil {
		return err
	}
	defer db.Close()

	view, err := repo.GetByName(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load view '%s': %w", args[0], err)
	}

	data, err := config.EncodeViewConfig(view.Config)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runViewsSave(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadViewConfig(settings.ViewConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load view config: %w", err)
	}

	db, repo, err := openViews()
	if err != nil {
		return err
	}
	defer db.Close()

	view := domain.NewSavedView(args[0], cfg)
	if err := repo.Save(context.Background(), view); err != nil {
		return fmt.Errorf("failed to save view: %w", err)
	}

	styles := theme.NewStyles(theme.Resolve(settings.ThemeName))
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Saved view '%s' (%s)", view.Name, view.GetFilterSummary())))
	return nil
}

func runViewsDelete(cmd *cobra.Command, args []string) error {
	db, repo, err := openViews()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repo.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete view '%s': %w", args[0], err)
	}

	styles := theme.NewStyles(theme.Resolve(settings.ThemeName))
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Deleted view '%s'", args[0])))
	return nil
}
