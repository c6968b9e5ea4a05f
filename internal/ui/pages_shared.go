package ui

import (
	"member-portal/internal/domain"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

func pageHead(title string) gomponents.Node {
	return html.Head(
		html.Meta(html.Charset("utf-8")),
		html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
		html.TitleEl(gomponents.Text(title+" | Member Portal")),
		html.Link(html.Rel("icon"), html.Href("data:,")),
		html.Link(html.Rel("preconnect"), html.Href("https://fonts.googleapis.com")),
		html.Link(html.Rel("preconnect"), html.Href("https://fonts.gstatic.com"), gomponents.Attr("crossorigin", "")),
		html.Link(html.Rel("stylesheet"), html.Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
		html.Link(html.Rel("stylesheet"), html.Href("https://cdn.jsdelivr.net/npm/@primer/css@22.1.0/dist/primer.min.css")),
	)
}

// appPage is the shared shell for signed-in pages: topbar with navigation,
// the signed-in identity, and a sign-out link.
func appPage(title string, p domain.ContextPrincipal, body ...gomponents.Node) gomponents.Node {
	nav := []gomponents.Node{
		html.A(html.Href("/"), html.Class("Header-link mr-3"), gomponents.Text("Home")),
		html.A(html.Href("/members"), html.Class("Header-link mr-3"), gomponents.Text("Members")),
	}
	if p.IsAdmin() {
		nav = append(nav, html.A(html.Href("/admin"), html.Class("Header-link mr-3"), gomponents.Text("Admin")))
	}

	return html.HTML(
		html.Lang("en"),
		pageHead(title),
		html.Body(
			html.Header(
				html.Class("Header"),
				html.Div(html.Class("Header-item"), html.Strong(gomponents.Text("Member Portal"))),
				html.Div(html.Class("Header-item Header-item--full"), gomponents.Group(nav)),
				html.Div(
					html.Class("Header-item"),
					html.Span(html.Class("mr-3"), gomponents.Text("Signed in as "+p.Name)),
					html.A(html.Href("/logout"), html.Class("Header-link"), gomponents.Text("Sign out")),
				),
			),
			html.Main(
				html.Class("container-md p-4"),
				html.H1(html.Class("h2 mb-3"), gomponents.Text(title)),
				gomponents.Group(body),
			),
		),
	)
}

// authPage is the minimal shell for anonymous pages (landing, signup, login).
func authPage(title string, body ...gomponents.Node) gomponents.Node {
	return html.HTML(
		html.Lang("en"),
		pageHead(title),
		html.Body(
			html.Main(
				html.Class("container-sm p-4"),
				gomponents.Group(body),
			),
		),
	)
}

func errorPage(title, message string) gomponents.Node {
	return authPage(title,
		html.H1(html.Class("h2 mb-2"), gomponents.Text(title)),
		html.P(html.Class("color-fg-muted"), gomponents.Text(message)),
		html.P(html.A(html.Href("/"), gomponents.Text("Back to home"))),
	)
}

func flashError(msg string) gomponents.Node {
	if msg == "" {
		return nil
	}
	return html.Div(html.Class("flash flash-error mb-3"), gomponents.Text(msg))
}
