package locations

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bnema/locations-cli/internal/application"
	"github.com/charmbracelet/lipgloss"
)

func renderView(views []application.LocationView, s styles) string {
	lines := []string{
		s.title.Render("Locations"),
		s.header.Render(fmt.Sprintf("locations: %d", len(views))),
	}

	if len(views) == 0 {
		lines = append(lines, s.empty.Render("No locations configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, view := range views {
		lines = append(lines, s.section.Render(renderLocation(view, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderLocation(view application.LocationView, s styles) string {
	title := s.location.Render(sanitize(view.Name))
	if view.Active {
		title += " " + s.active.Render("(active)")
	}

	parts := []string{
		title,
		s.header.Render(fmt.Sprintf("accounts: %d, enabled: %d", len(view.Accounts), view.EnabledCount())),
	}

	if len(view.Accounts) == 0 {
		parts = append(parts, s.empty.Render("  no accounts"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for _, account := range view.Accounts {
		parts = append(parts, accountLine(account, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func accountLine(account application.AccountStateView, s styles) string {
	state := s.disabled.Render("[ ] disabled")
	if account.Enabled {
		state = s.enabled.Render("[x] enabled ")
	}

	label := s.detail.Render(sanitize(fmt.Sprintf("%s (%s)", account.Username, account.ProtocolID)))
	if account.Alias != "" {
		label += " " + s.header.Render(sanitize(account.Alias))
	}
	if !account.Resolved {
		label += " " + s.unresolved.Render("unknown account, skipped on apply")
	}

	return "  " + state + " " + label
}

func sanitize(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
}
