package ui

import (
	"net/url"

	"member-portal/internal/domain"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

func adminPage(p domain.ContextPrincipal, accounts []domain.Account) gomponents.Node {
	rows := make([]gomponents.Node, 0, len(accounts))
	for _, a := range accounts {
		var action gomponents.Node
		if a.IsAdmin() {
			action = html.A(html.Href("/demote/"+url.PathEscape(a.Email)), html.Class("btn btn-sm btn-danger"), gomponents.Text("Demote"))
		} else {
			action = html.A(html.Href("/promote/"+url.PathEscape(a.Email)), html.Class("btn btn-sm"), gomponents.Text("Promote"))
		}
		rows = append(rows, html.Tr(
			html.Td(gomponents.Text(a.Email)),
			html.Td(gomponents.Text(a.Name)),
			html.Td(html.Span(html.Class(roleLabelClass(a.Role)), gomponents.Text(a.Role))),
			html.Td(action),
		))
	}

	return appPage("Admin", p,
		html.P(html.Class("color-fg-muted mb-3"), gomponents.Text("All registered accounts. Role changes apply to new sessions; an admin changing their own role takes effect immediately.")),
		html.Table(
			html.Class("width-full"),
			html.THead(html.Tr(
				html.Th(gomponents.Text("Email")),
				html.Th(gomponents.Text("Name")),
				html.Th(gomponents.Text("Role")),
				html.Th(gomponents.Text("Actions")),
			)),
			html.TBody(gomponents.Group(rows)),
		),
	)
}

func roleLabelClass(role string) string {
	if role == domain.RoleAdmin {
		return "Label Label--success"
	}
	return "Label"
}
