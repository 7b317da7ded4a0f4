package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kawatsu/compass/internal/cli/formatter"
	"github.com/kawatsu/compass/internal/contract"
	"github.com/kawatsu/compass/internal/domain"
)

// planLoadedMsg signals that the daily plan has been (re)computed.
type planLoadedMsg struct {
	resp *contract.PlanResponse
	err  error
}

// taskDoneMsg signals the outcome of marking a task done.
type taskDoneMsg struct {
	taskID string
	err    error
}

type todayKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Done    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var todayKeys = todayKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Done:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "mark done")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "replan")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// todayModel is a small interactive view over the daily plan: navigate the
// shortlist, mark tasks done, replan as the list shrinks.
type todayModel struct {
	app     *App
	minutes int

	resp    *contract.PlanResponse
	done    map[string]bool
	cursor  int
	loading bool
	err     error
}

func newTodayModel(app *App, minutes int) *todayModel {
	return &todayModel{
		app:     app,
		minutes: minutes,
		done:    make(map[string]bool),
		loading: true,
	}
}

func (m *todayModel) Init() tea.Cmd {
	return m.loadPlan()
}

func (m *todayModel) loadPlan() tea.Cmd {
	app, minutes := m.app, m.minutes
	return func() tea.Msg {
		resp, err := app.Plan.PlanToday(context.Background(), minutes)
		return planLoadedMsg{resp: resp, err: err}
	}
}

func (m *todayModel) markDone(taskID string) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		err := app.Tasks.SetStatus(context.Background(), taskID, domain.TaskDone)
		return taskDoneMsg{taskID: taskID, err: err}
	}
}

func (m *todayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.resp = msg.resp
		if m.cursor >= len(m.resp.Items) {
			m.cursor = 0
		}
		return m, nil

	case taskDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.done[msg.taskID] = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, todayKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, todayKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, todayKeys.Down):
			if m.resp != nil && m.cursor < len(m.resp.Items)-1 {
				m.cursor++
			}
		case key.Matches(msg, todayKeys.Done):
			if m.resp != nil && m.cursor < len(m.resp.Items) {
				item := m.resp.Items[m.cursor]
				if !m.done[item.TaskID] {
					return m, m.markDone(item.TaskID)
				}
			}
		case key.Matches(msg, todayKeys.Refresh):
			m.loading = true
			return m, m.loadPlan()
		}
	}

	return m, nil
}

func (m *todayModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(formatter.Dim("  Picking today's tasks..."))
		b.WriteString("\n")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render(fmt.Sprintf("  %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(m.helpLine())
		return b.String()
	}

	b.WriteString(formatter.Header(fmt.Sprintf("Today — %s", m.resp.Date)))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("Budget: %s", formatter.FormatMinutes(m.resp.MinutesAvailable))))
	b.WriteString("\n\n")

	if len(m.resp.Items) == 0 {
		b.WriteString(formatter.Dim("Nothing to do."))
		b.WriteString("\n\n")
		b.WriteString(m.helpLine())
		return b.String()
	}

	for i, item := range m.resp.Items {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("❯ ")
		}
		mark := formatter.StyleBlue.Render("○")
		title := formatter.Bold(item.Title)
		if m.done[item.TaskID] {
			mark = formatter.StyleGreen.Render("✔")
			title = formatter.Dim(item.Title)
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s %s\n", cursor, mark, title,
			formatter.ImpactStars(item.Impact),
			formatter.StyleBlue.Render(formatter.FormatMinutes(item.EffortMin))))
		if i == m.cursor && item.CoachLine != "" {
			b.WriteString(fmt.Sprintf("     %s %s\n", formatter.StyleGreen.Render("▸"), formatter.StyleFg.Render(item.CoachLine)))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m *todayModel) helpLine() string {
	bindings := []key.Binding{todayKeys.Up, todayKeys.Down, todayKeys.Done, todayKeys.Refresh, todayKeys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return formatter.Dim("  " + strings.Join(parts, " · "))
}
