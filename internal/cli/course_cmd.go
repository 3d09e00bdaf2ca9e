package cli

import (
	"fmt"
	"strings"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/cli/formatter"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/progress"
	"github.com/spf13/cobra"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "course",
		Aliases: []string{"courses"},
		Short:   "Browse the course catalog",
	}

	cmd.AddCommand(
		newCourseListCmd(app),
		newCourseShowCmd(app),
		newCourseContinueCmd(app),
		newCourseCategoriesCmd(app),
	)

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	var filter progress.CourseFilter
	var difficulty string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter.Difficulty = domain.Difficulty(strings.ToLower(difficulty))
			courses, err := app.Catalog.ListCourses(cmd.Context(), filter)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatCourseList(courses))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Category, "category", "", "only courses in this category")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "beginner, intermediate or advanced")
	cmd.Flags().StringVarP(&filter.Query, "search", "s", "", "match title, description, category or instructor")
	cmd.Flags().BoolVar(&filter.Featured, "featured", false, "only featured courses")

	return cmd
}

func newCourseShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <course-id>",
		Short: "Show a course with its lessons and your progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("course", args[0])
			if err != nil {
				return err
			}
			outline, err := app.Lessons.CourseOutline(cmd.Context(), app.UserID, id)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatCourseOutline(outline))
			return nil
		},
	}
}

func newCourseContinueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "continue <course-id>",
		Short: "Show the next lesson to take in a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("course", args[0])
			if err != nil {
				return err
			}
			view, err := app.Lessons.ContinueCourse(cmd.Context(), app.UserID, id)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.Dim(fmt.Sprintf("Continue with lesson %d:", view.Lesson.ID))+"\n\n")
			printOut(cmd, formatter.FormatLesson(view))
			return nil
		},
	}
}

func newCourseCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List course categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := app.Catalog.Categories(cmd.Context())
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatCategories(cats))
			return nil
		},
	}
}
