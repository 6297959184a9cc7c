package clients

import (
	"errors"
	"io"

	"github.com/bnema/vpnadm/internal/adapters/render"
	"github.com/bnema/vpnadm/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	views  []application.ClientView
	detail bool
	opts   Options
	output string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		if m.detail && len(m.views) == 1 {
			m.output = renderDetail(m.views[0], m.opts)
		} else {
			m.output = renderList(m.views, m.opts)
		}
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

type Options struct {
	Labels   render.Labels
	BarWidth int
}

func (o Options) withDefaults() Options {
	if o.BarWidth <= 0 {
		o.BarWidth = 16
	}
	return o
}

// RenderList renders the client table.
func RenderList(views []application.ClientView, opts Options) (string, error) {
	return run(model{views: views, opts: opts.withDefaults()})
}

// RenderDetail renders every field of one client.
func RenderDetail(view application.ClientView, opts Options) (string, error) {
	return run(model{views: []application.ClientView{view}, detail: true, opts: opts.withDefaults()})
}

func run(m model) (string, error) {
	p := tea.NewProgram(
		m,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
