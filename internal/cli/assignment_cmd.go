package cli

import (
	"errors"
	"strings"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/cli/formatter"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newAssignmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assignment",
		Aliases: []string{"assignments"},
		Short:   "List and submit assignments",
	}

	cmd.AddCommand(
		newAssignmentListCmd(app),
		newAssignmentSubmitCmd(app),
	)

	return cmd
}

func newAssignmentListCmd(app *App) *cobra.Command {
	var lesson string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the assignments of a lesson",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lessonID, err := parseID("lesson", lesson)
			if err != nil {
				return err
			}
			list, err := app.Assignments.ListByLesson(cmd.Context(), lessonID)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatAssignments(list, app.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&lesson, "lesson", "", "lesson id")
	_ = cmd.MarkFlagRequired("lesson")

	return cmd
}

func newAssignmentSubmitCmd(app *App) *cobra.Command {
	var in service.SubmissionInput

	cmd := &cobra.Command{
		Use:   "submit <assignment-id>",
		Short: "Hand in work for an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("assignment", args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if !cmd.Flags().Changed("content") && app.IsInteractive() {
				a, err := app.Assignments.GetByID(ctx, id)
				if err != nil {
					return err
				}
				prompted, err := app.PromptSubmission(a)
				if err != nil {
					return err
				}
				in.Content = prompted.Content
				in.Files = append(in.Files, prompted.Files...)
			}

			updated, err := app.Assignments.Submit(ctx, id, in)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatSubmission(updated))
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Content, "content", "c", "", "submission text")
	cmd.Flags().StringArrayVarP(&in.Files, "file", "f", nil, "attached file name (repeatable)")

	return cmd
}

// errSubmissionAborted is returned when the learner leaves the form.
var errSubmissionAborted = errors.New("submission cancelled")

// promptSubmission asks for the submission text and attachments.
func promptSubmission(a *domain.Assignment) (service.SubmissionInput, error) {
	var content, files string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(a.Title).
				Description(a.Description),
			huh.NewText().
				Title("Your work").
				Placeholder("What did you do? What did you learn?").
				CharLimit(10000).
				Value(&content).
				Validate(validateRequired("your work")),
			huh.NewInput().
				Title("Files (optional, comma separated)").
				Placeholder("notes.pdf, photo.jpg").
				Value(&files),
		),
	).WithTheme(skillhatchHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return service.SubmissionInput{}, errSubmissionAborted
		}
		return service.SubmissionInput{}, err
	}
	return service.SubmissionInput{Content: content, Files: splitList(files)}, nil
}

func validateRequired(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(what + " is required")
		}
		return nil
	}
}

// splitList splits a comma separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// skillhatchHuhTheme styles forms with the formatter palette.
func skillhatchHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
