package subscription

import (
	"github.com/bnema/vpnadm/internal/adapters/render"
	"github.com/bnema/vpnadm/internal/application"
	"github.com/bnema/vpnadm/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type Options struct {
	Labels   render.Labels
	BarWidth int
}

func (o Options) withDefaults() Options {
	if o.BarWidth <= 0 {
		o.BarWidth = 30
	}
	return o
}

// RenderPage renders the public subscription page for one snapshot.
func RenderPage(view application.ClientView, opts Options) string {
	opts = opts.withDefaults()
	p := render.NewPalette()

	sections := []string{
		header(view, opts, p),
		statusSection(view, opts, p),
		usageSection(view, opts, p),
		timeSection(view, opts, p),
	}
	if view.Client.AutoRenew {
		sections = append(sections, autoRenewSection(view, opts, p))
	}
	if at, ok := view.Client.CreatedAt.Get(); ok {
		sections = append(sections, p.Section.Render(pair(opts.Labels.T("sub.created"), opts.Labels.Date(at), p)))
	}
	sections = append(sections, p.Section.Render(p.Faint.Render(opts.Labels.T("sub.updated", "Time=="+opts.Labels.Clock(view.ObservedAt)))))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func header(view application.ClientView, opts Options, p render.Palette) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		p.Highlight.Render(view.Client.Name),
		p.Header.Render(opts.Labels.T("sub.title")),
	)
}

func statusSection(view application.ClientView, opts Options, p render.Palette) string {
	labels := opts.Labels
	status := lipgloss.NewStyle().Bold(true).Foreground(render.StatusColor(view.Resolution.Primary)).
		Render(labels.StatusLabel(view.Resolution.Primary))

	presence := p.Faint.Render(labels.T("tag.offline"))
	if view.Resolution.Has(domain.TagOnline) {
		presence = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(labels.TagLabel(domain.TagOnline))
	}

	return p.Section.Render(pair(labels.T("sub.status"), status+"  "+presence, p))
}

func usageSection(view application.ClientView, opts Options, p render.Palette) string {
	labels := opts.Labels
	client := view.Client
	lines := []string{p.Title.Render(labels.T("sub.usage"))}

	limit, limited := client.DataLimit.Get()
	if !limited {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(labels.T("sub.unlimited_data")+" ∞"))
	} else {
		remaining, _ := view.Remaining.Get()
		remainingText := labels.T("sub.exhausted")
		remainingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		if remaining > 0 {
			remainingText = labels.Bytes(remaining)
			remainingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
		}

		lines = append(lines,
			pair(labels.T("sub.used"), labels.Bytes(client.DataUsed), p),
			render.UsageBar(view.UsageFraction, view.Tier, opts.BarWidth, p)+" "+render.Percent(view.UsageFraction),
			pair(labels.T("sub.remaining"), remainingStyle.Render(remainingText), p),
			pair(labels.T("sub.total"), labels.Bytes(limit), p),
		)
	}

	lines = append(lines,
		pair(labels.T("sub.download"), labels.Bytes(client.Download), p),
		pair(labels.T("sub.upload"), labels.Bytes(client.Upload), p),
	)

	return p.Section.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func timeSection(view application.ClientView, opts Options, p render.Palette) string {
	labels := opts.Labels
	lines := []string{p.Title.Render(labels.T("sub.time"))}

	switch view.Expiry.Kind {
	case domain.ExpiryPending:
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render(labels.T("sub.waiting")))
		if days, ok := view.Expiry.PendingDays.Get(); ok {
			lines = append(lines, p.Faint.Render(labels.T("sub.waiting_hint", "Days=="+labels.Number(int64(days)))))
		}
	case domain.ExpiryFixed:
		days, _ := view.RemainingDays.Get()
		at, _ := view.Expiry.At.Get()
		daysText := lipgloss.NewStyle().Bold(true).Foreground(render.DaysColor(days, 30)).Render(labels.T("sub.expired"))
		if days > 0 {
			daysText = lipgloss.NewStyle().Bold(true).Foreground(render.DaysColor(days, 30)).Render(render.DaysText(days, labels))
		}
		lines = append(lines,
			pair(labels.T("sub.expiry_date"), labels.Date(at), p),
			pair(labels.T("sub.days_left"), daysText, p),
		)
	default:
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(labels.T("sub.no_time_limit")+" ∞"))
	}

	if view.Expiry.Kind != domain.ExpiryPending {
		if at, ok := view.Client.FirstConnectionAt.Get(); ok {
			lines = append(lines, pair(labels.T("sub.first_connection"), labels.Date(at), p))
		}
	}

	return p.Section.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func autoRenewSection(view application.ClientView, opts Options, p render.Palette) string {
	labels := opts.Labels
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")).Render(labels.T("sub.auto_renew")),
		p.Faint.Render(labels.T("sub.auto_renew_hint")),
	}
	if view.Client.RenewCount > 0 {
		lines = append(lines, labels.T("sub.renew_count", "Count=="+labels.Number(int64(view.Client.RenewCount))))
	}
	return p.Section.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func pair(key, value string, p render.Palette) string {
	return p.Key.Render(key+":") + " " + p.Value.Render(value)
}
