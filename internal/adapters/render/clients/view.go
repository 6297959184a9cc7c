package clients

import (
	"fmt"
	"strings"

	"github.com/bnema/vpnadm/internal/adapters/render"
	"github.com/bnema/vpnadm/internal/application"
	"github.com/bnema/vpnadm/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const statusColumn = 1

func renderList(views []application.ClientView, opts Options) string {
	p := render.NewPalette()
	labels := opts.Labels

	lines := []string{
		p.Title.Render(labels.T("clients.title")),
		p.Header.Render(labels.T("clients.count", "Count=="+labels.Number(int64(len(views))))),
	}
	if len(views) == 0 {
		lines = append(lines, p.Faint.Render(labels.T("clients.empty")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([][]string, 0, len(views))
	for _, view := range views {
		rows = append(rows, []string{
			view.Client.Name,
			render.StatusText(view, labels),
			usageCell(view, opts, p),
			render.ExpiryText(view, labels),
			view.Client.Address,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.Border).
		Headers(
			labels.T("clients.col.name"),
			labels.T("clients.col.status"),
			labels.T("clients.col.usage"),
			labels.T("clients.col.expiry"),
			labels.T("clients.col.address"),
		).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Inherit(p.Header)
			}
			if col == statusColumn && row >= 0 && row < len(views) {
				return base.Foreground(render.StatusColor(views[row].Resolution.Primary))
			}
			return base
		})

	lines = append(lines, t.String())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func usageCell(view application.ClientView, opts Options, p render.Palette) string {
	text := render.UsageText(view, opts.Labels)
	if view.Client.Unlimited() {
		return text
	}
	bar := render.UsageBar(view.UsageFraction, view.Tier, opts.BarWidth, p)
	return fmt.Sprintf("%s %s %s", bar, render.Percent(view.UsageFraction), text)
}

func renderDetail(view application.ClientView, opts Options) string {
	p := render.NewPalette()
	labels := opts.Labels
	client := view.Client
	statusStyle := lipgloss.NewStyle().Bold(true).Foreground(render.StatusColor(view.Resolution.Primary))

	rows := [][2]string{
		{labels.T("clients.field.id"), string(client.ID)},
		{labels.T("clients.col.status"), statusStyle.Render(render.StatusText(view, labels))},
		{labels.T("clients.field.email"), orNone(client.Email, labels)},
		{labels.T("clients.field.address"), orNone(client.Address, labels)},
		{labels.T("clients.field.note"), orNone(client.Note, labels)},
		{labels.T("clients.col.usage"), usageCell(view, opts, p)},
		{labels.T("sub.download"), labels.Bytes(client.Download)},
		{labels.T("sub.upload"), labels.Bytes(client.Upload)},
	}
	if remaining, ok := view.Remaining.Get(); ok {
		rows = append(rows, [2]string{labels.T("sub.remaining"), remainingText(remaining, labels)})
	}

	rows = append(rows,
		[2]string{labels.T("clients.col.expiry"), render.ExpiryText(view, labels)},
		[2]string{labels.T("clients.field.start_on_first_connect"), yesNo(client.StartOnFirstConnect, labels)},
	)
	if at, ok := client.FirstConnectionAt.Get(); ok {
		rows = append(rows, [2]string{labels.T("sub.first_connection"), labels.Date(at)})
	}

	rows = append(rows, [2]string{labels.T("clients.field.auto_renew"), autoRenewText(client, labels)})
	if client.RenewCount > 0 {
		rows = append(rows, [2]string{labels.T("clients.field.renew_count"), labels.Number(int64(client.RenewCount))})
	}
	if at, ok := client.CreatedAt.Get(); ok {
		rows = append(rows, [2]string{labels.T("clients.field.created"), labels.Date(at)})
	}

	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row[0]))
	}

	lines := []string{p.Highlight.Render(client.Name)}
	for _, row := range rows {
		key := p.Key.Width(width).Render(row[0])
		lines = append(lines, key+"  "+p.Value.Render(row[1]))
	}
	if view.Tier != domain.UsageTierNormal && !client.Unlimited() {
		warning := lipgloss.NewStyle().Bold(true).Foreground(render.TierColor(view.Tier))
		lines = append(lines, p.Section.Render(warning.Render(strings.ToUpper(string(view.Tier))+" "+render.Percent(view.UsageFraction))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func remainingText(remaining int64, labels render.Labels) string {
	if remaining <= 0 {
		return labels.T("sub.exhausted")
	}
	return labels.Bytes(remaining)
}

func autoRenewText(client domain.ClientSubscription, labels render.Labels) string {
	if !client.AutoRenew {
		return labels.T("common.no")
	}

	text := labels.T("common.yes")
	if days, ok := client.AutoRenewDays.Get(); ok {
		text += ", " + labels.T("clients.field.auto_renew_every", "Days=="+labels.Number(int64(days)))
	}
	if limit, ok := client.AutoRenewDataLimit.Get(); ok {
		text += ", " + labels.Bytes(limit)
	}
	return text
}

func yesNo(v bool, labels render.Labels) string {
	if v {
		return labels.T("common.yes")
	}
	return labels.T("common.no")
}

func orNone(v string, labels render.Labels) string {
	if strings.TrimSpace(v) == "" {
		return labels.T("common.none")
	}
	return v
}
