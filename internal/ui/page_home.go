package ui

import (
	"member-portal/internal/domain"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

func landingPageAnonymous() gomponents.Node {
	return authPage("Welcome",
		html.H1(html.Class("h2 mb-2"), gomponents.Text("Member Portal")),
		html.P(html.Class("color-fg-muted mb-3"), gomponents.Text("Sign in to reach the members area.")),
		html.P(
			html.A(html.Href("/login"), html.Class("btn btn-primary mr-2"), gomponents.Text("Sign in")),
			html.A(html.Href("/signup"), html.Class("btn"), gomponents.Text("Sign up")),
		),
	)
}

func landingPageSignedIn(p domain.ContextPrincipal) gomponents.Node {
	return appPage("Welcome back, "+p.Name, p,
		html.P(html.Class("color-fg-muted"), gomponents.Text("You are signed in as "+p.Email+".")),
		html.P(html.A(html.Href("/members"), gomponents.Text("Go to the members area"))),
	)
}

func membersPage(p domain.ContextPrincipal) gomponents.Node {
	return appPage("Members", p,
		html.P(gomponents.Text("Hello "+p.Name+", this page is only visible to signed-in members.")),
	)
}
