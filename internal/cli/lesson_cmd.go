package cli

import (
	"fmt"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/cli/formatter"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/spf13/cobra"
)

func newLessonCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lesson",
		Aliases: []string{"lessons"},
		Short:   "Take lessons",
	}

	cmd.AddCommand(
		newLessonShowCmd(app),
		newLessonCompleteCmd(app),
		newLessonPlayCmd(app),
	)

	return cmd
}

func newLessonShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <lesson-id>",
		Short: "Show a lesson with its steps and assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("lesson", args[0])
			if err != nil {
				return err
			}
			view, err := app.Lessons.GetLesson(cmd.Context(), app.UserID, id)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatLesson(view))
			return nil
		},
	}
}

func newLessonCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "complete <lesson-id>",
		Aliases: []string{"done"},
		Short:   "Mark a lesson completed and record your progress",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("lesson", args[0])
			if err != nil {
				return err
			}
			result, err := app.Progress.CompleteLesson(cmd.Context(), app.UserID, id)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatCompletion(result))
			return nil
		},
	}
}

func newLessonPlayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "play <lesson-id>",
		Short: "Walk through a lesson step by step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("lesson", args[0])
			if err != nil {
				return err
			}
			if !app.IsInteractive() {
				return fmt.Errorf("lesson play needs a terminal; use 'skillhatch lesson show %d' instead", id)
			}

			ctx := cmd.Context()
			view, err := app.Lessons.GetLesson(ctx, app.UserID, id)
			if err != nil {
				return err
			}
			if view.Locked {
				return fmt.Errorf("lesson %d: %w", id, domain.ErrLocked)
			}

			final, err := app.RunPlayer(cmd, newPlayerModel(ctx, app, view))
			if err != nil {
				return err
			}
			switch {
			case final.err != nil:
				return final.err
			case final.result != nil:
				printOut(cmd, formatter.FormatCompletion(final.result))
			default:
				printOut(cmd, formatter.Dim(fmt.Sprintf("Stopped at step %d of %d.", final.step+1, final.stepCount()))+"\n")
			}
			return nil
		},
	}
}
