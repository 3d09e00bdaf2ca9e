package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/cli/formatter"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/domain"
	"github.com/apper-canvas/skillhatch-orbit-dash/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const playerBarWidth = 24

type playerKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Complete key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newPlayerKeyMap() playerKeyMap {
	return playerKeyMap{
		Next:     key.NewBinding(key.WithKeys("right", "l", "n", " "), key.WithHelp("→/n", "next step")),
		Prev:     key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/p", "previous step")),
		Complete: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next / finish lesson")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k playerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.Quit, k.Help}
}

func (k playerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Complete, k.Quit, k.Help}}
}

// completionMsg carries the outcome of completing the lesson.
type completionMsg struct {
	result *service.CompletionResult
	err    error
}

// playerModel walks a learner through the steps of one lesson and records
// the completion when they finish the last step.
type playerModel struct {
	ctx      context.Context
	progress service.ProgressService
	userID   int

	view  *service.LessonView
	steps []domain.Step
	step  int

	keys  playerKeyMap
	help  help.Model
	width int

	completing bool
	result     *service.CompletionResult
	err        error
	quitting   bool
}

func newPlayerModel(ctx context.Context, app *App, view *service.LessonView) playerModel {
	steps := view.Lesson.Steps
	if len(steps) == 0 {
		// A lesson without steps plays as a single step of its description.
		steps = []domain.Step{{Title: view.Lesson.Title, Content: view.Lesson.Description, DurationMin: view.Lesson.DurationMin}}
	}
	return playerModel{
		ctx:      ctx,
		progress: app.Progress,
		userID:   app.UserID,
		view:     view,
		steps:    steps,
		keys:     newPlayerKeyMap(),
		help:     help.New(),
		width:    80,
	}
}

func (m playerModel) stepCount() int { return len(m.steps) }

func (m playerModel) onLastStep() bool { return m.step == len(m.steps)-1 }

func (m playerModel) Init() tea.Cmd { return nil }

func (m playerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case completionMsg:
		m.completing = false
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		if m.completing {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Next):
			if !m.onLastStep() {
				m.step++
			}
		case key.Matches(msg, m.keys.Prev):
			if m.step > 0 {
				m.step--
			}
		case key.Matches(msg, m.keys.Complete):
			if !m.onLastStep() {
				m.step++
				return m, nil
			}
			m.completing = true
			return m, m.completeCmd()
		}
	}
	return m, nil
}

func (m playerModel) completeCmd() tea.Cmd {
	ctx, progress, userID, lessonID := m.ctx, m.progress, m.userID, m.view.Lesson.ID
	return func() tea.Msg {
		result, err := progress.CompleteLesson(ctx, userID, lessonID)
		return completionMsg{result: result, err: err}
	}
}

func (m playerModel) View() string {
	if m.quitting {
		return ""
	}

	l := m.view.Lesson
	var b strings.Builder

	b.WriteString(formatter.Dim(fmt.Sprintf("%s · Lesson %d", m.view.Course.Title, l.Order)) + "\n")
	b.WriteString(formatter.Bold(l.Title) + "\n\n")

	pct := (m.step + 1) * 100 / m.stepCount()
	b.WriteString(formatter.RenderCompactBar(pct, playerBarWidth, false) + " " +
		formatter.Dim(fmt.Sprintf("step %d of %d", m.step+1, m.stepCount())) + "\n\n")

	s := m.steps[m.step]
	title := formatter.StyleHeader.Render(s.Title)
	if s.DurationMin > 0 {
		title += " " + formatter.Dim("("+formatter.FormatMinutes(s.DurationMin)+")")
	}
	b.WriteString(title + "\n")
	if s.Content != "" {
		body := lipgloss.NewStyle().Width(max(20, m.width-4)).Render(s.Content)
		b.WriteString(body + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.completing:
		b.WriteString(formatter.StyleYellow.Render("Saving progress...") + "\n")
	case m.result != nil:
		b.WriteString(formatter.StyleGreen.Render("✔ Lesson completed") + "\n")
	case m.onLastStep():
		b.WriteString(formatter.StyleGreen.Render("Last step. Press enter to finish the lesson.") + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func runPlayer(cmd *cobra.Command, m playerModel) (playerModel, error) {
	p := tea.NewProgram(m, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	final, err := p.Run()
	if err != nil {
		return m, fmt.Errorf("running lesson player: %w", err)
	}
	return final.(playerModel), nil
}
