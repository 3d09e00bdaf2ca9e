package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/app"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/cli/formatter"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the services and terminal hooks used by CLI commands.
type App struct {
	app.Services

	// UserID is the learner the commands act for.
	UserID int
	Now    func() time.Time

	// IsInteractive reports whether stdin is a terminal. Prompts and the
	// lesson player are only offered when it returns true.
	IsInteractive func() bool

	// PromptSubmission collects a submission when --content is not given.
	PromptSubmission func(a *domain.Assignment) (service.SubmissionInput, error)

	// RunPlayer runs the interactive lesson player to completion.
	RunPlayer func(cmd *cobra.Command, m playerModel) (playerModel, error)
}

// GlobalOptions are the persistent flags shared by every command.
type GlobalOptions struct {
	ConfigFile string
	UserID     int
	LogLevel   string
	NoColor    bool
}

func (o *GlobalOptions) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", "", "config file (default ./skillhatch.yaml or $HOME/.skillhatch/skillhatch.yaml)")
	fs.IntVar(&o.UserID, "user", 0, "act as this user id instead of the configured one")
	fs.StringVar(&o.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&o.NoColor, "no-color", false, "disable colored output")
}

// Bootstrap builds the App once the global flags are parsed.
type Bootstrap func(opts GlobalOptions) (*App, error)

// NewRootCmd creates the top-level "skillhatch" command. The App handed to
// subcommands is filled in by boot before any of them runs.
func NewRootCmd(boot Bootstrap) *cobra.Command {
	var opts GlobalOptions
	a := &App{}

	root := &cobra.Command{
		Use:           "skillhatch",
		Short:         "Learn practical skills one lesson at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.NoColor {
				formatter.DisableColor()
			}
			if opts.UserID < 0 {
				return fmt.Errorf("--user must be a positive id, got %d", opts.UserID)
			}
			built, err := boot(opts)
			if err != nil {
				return err
			}
			*a = *built
			if opts.UserID > 0 {
				a.UserID = opts.UserID
			}
			a.fillDefaults()
			return nil
		},
	}

	opts.register(root.PersistentFlags())

	root.AddCommand(
		newCourseCmd(a),
		newLessonCmd(a),
		newAssignmentCmd(a),
		newProgressCmd(a),
		newSkillsCmd(a),
		newStreakCmd(a),
		newCertificatesCmd(a),
		newUserCmd(a),
	)

	return root
}

func (a *App) fillDefaults() {
	if a.Now == nil {
		a.Now = time.Now
	}
	if a.IsInteractive == nil {
		a.IsInteractive = func() bool { return false }
	}
	if a.PromptSubmission == nil {
		a.PromptSubmission = promptSubmission
	}
	if a.RunPlayer == nil {
		a.RunPlayer = runPlayer
	}
}

// parseID parses a positive numeric id argument.
func parseID(kind, s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, s)
	}
	return id, nil
}

func printOut(cmd *cobra.Command, s string) {
	fmt.Fprint(cmd.OutOrStdout(), s)
}
