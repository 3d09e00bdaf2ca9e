package cli

import (
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show and edit your profile",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show your profile",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				u, err := app.Users.Get(cmd.Context(), app.UserID)
				if err != nil {
					return err
				}
				printOut(cmd, formatter.FormatUser(u))
				return nil
			},
		},
		&cobra.Command{
			Use:   "categories <category>...",
			Short: "Set the skill categories you are interested in",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				u, err := app.Users.UpdateSkillCategories(cmd.Context(), app.UserID, args)
				if err != nil {
					return err
				}
				printOut(cmd, formatter.StyleGreen.Render("✔ Interests updated")+"\n\n")
				printOut(cmd, formatter.FormatUser(u))
				return nil
			},
		},
	)

	return cmd
}
