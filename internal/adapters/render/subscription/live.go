package subscription

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/vpnadm/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type updateMsg struct {
	update application.WatchUpdate
}

type updatesClosedMsg struct{}

type liveModel struct {
	updates <-chan application.WatchUpdate
	refresh func()
	opts    Options
	spinner spinner.Model

	latest application.WatchUpdate
	got    bool
	quit   bool
}

func newLiveModel(updates <-chan application.WatchUpdate, refresh func(), opts Options) liveModel {
	return liveModel{
		updates: updates,
		refresh: refresh,
		opts:    opts.withDefaults(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
	}
}

func (m liveModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForUpdate(m.updates))
}

func waitForUpdate(updates <-chan application.WatchUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return updatesClosedMsg{}
		}
		return updateMsg{update: update}
	}
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "r":
			if m.refresh != nil {
				refresh := m.refresh
				return m, func() tea.Msg {
					refresh()
					return nil
				}
			}
		}
		return m, nil
	case updateMsg:
		m.latest = msg.update
		m.got = true
		return m, waitForUpdate(m.updates)
	case updatesClosedMsg:
		m.quit = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.got {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m liveModel) View() string {
	labels := m.opts.Labels
	hint := lipgloss.NewStyle().Faint(true).Render(labels.T("sub.quit_hint"))

	if !m.got {
		return fmt.Sprintf("%s %s\n", m.spinner.View(), labels.T("common.loading"))
	}

	warning := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	if !m.latest.OK {
		return lipgloss.JoinVertical(lipgloss.Left,
			warning.Render(labels.T("sub.fetch_failed")),
			errorText(m.latest.Err),
			"",
			hint,
		) + "\n"
	}

	parts := []string{RenderPage(m.latest.View, m.opts)}
	if m.latest.Err != nil {
		parts = append(parts, "", warning.Render(labels.T("sub.fetch_failed")+" ("+labels.T("sub.stale")+")"), errorText(m.latest.Err))
	}
	parts = append(parts, "", hint)

	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// RunLive redraws the page on every watcher update until the user quits or the
// update channel closes. refresh, when set, is called on "r".
func RunLive(ctx context.Context, updates <-chan application.WatchUpdate, refresh func(), opts Options, input io.Reader, output io.Writer) error {
	p := tea.NewProgram(
		newLiveModel(updates, refresh, opts),
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(output),
	)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run live view: %w", err)
	}
	return nil
}
