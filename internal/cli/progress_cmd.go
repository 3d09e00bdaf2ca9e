package cli

import (
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/cli/formatter"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/progress"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	var tab string

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show your learning progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := progress.ParseTab(tab)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			overview, err := app.Progress.Overview(ctx, app.UserID)
			if err != nil {
				return err
			}
			courses, err := app.Progress.CoursesByTab(ctx, app.UserID, t)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatOverview(overview, courses)+"\n")
			return nil
		},
	}

	cmd.Flags().StringVar(&tab, "tab", string(progress.TabAll), "all, in-progress, completed or not-started")

	return cmd
}

func newSkillsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "Show your skill level per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			levels, err := app.Progress.SkillLevels(cmd.Context(), app.UserID)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatSkillLevels(levels))
			return nil
		},
	}
}

func newStreakCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show your learning streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Progress.Streaks(cmd.Context(), app.UserID)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatStreaks(s, app.Now()))
			return nil
		},
	}
}

func newCertificatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "certificates",
		Aliases: []string{"certs"},
		Short:   "List the certificates you have earned",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			certs, err := app.Users.Certificates(cmd.Context(), app.UserID)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatCertificates(certs))
			return nil
		},
	}
}
