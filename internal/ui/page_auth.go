package ui

import (
	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

type signupForm struct {
	Name       string
	Email      string
	ErrorMsg   string
	EmailTaken bool
}

type loginForm struct {
	Email    string
	ErrorMsg string
}

func signupPage(form signupForm) gomponents.Node {
	var notice gomponents.Node
	if form.EmailTaken {
		notice = html.Div(
			html.Class("flash flash-warn mb-3"),
			gomponents.Text("This email is already registered. "),
			html.A(html.Href("/login"), gomponents.Text("Sign in instead?")),
		)
	} else {
		notice = flashError(form.ErrorMsg)
	}

	return authPage("Sign up",
		html.H1(html.Class("h2 mb-3"), gomponents.Text("Create your account")),
		notice,
		html.Form(
			html.Method("post"),
			html.Action("/signup"),
			html.Div(
				html.Class("form-group"),
				html.Label(html.For("name"), gomponents.Text("Name")),
				html.Input(html.Type("text"), html.ID("name"), html.Name("name"), html.Class("form-control"), html.Value(form.Name), html.MaxLength("30"), html.Required()),
			),
			html.Div(
				html.Class("form-group"),
				html.Label(html.For("email"), gomponents.Text("Email")),
				html.Input(html.Type("email"), html.ID("email"), html.Name("email"), html.Class("form-control"), html.Value(form.Email), html.Required()),
			),
			html.Div(
				html.Class("form-group"),
				html.Label(html.For("password"), gomponents.Text("Password")),
				html.Input(html.Type("password"), html.ID("password"), html.Name("password"), html.Class("form-control"), html.MinLength("6"), html.Required()),
			),
			html.Button(html.Type("submit"), html.Class("btn btn-primary"), gomponents.Text("Sign up")),
		),
		html.P(html.Class("mt-3"),
			gomponents.Text("Already have an account? "),
			html.A(html.Href("/login"), gomponents.Text("Sign in")),
		),
	)
}

func loginPage(form loginForm) gomponents.Node {
	return authPage("Sign in",
		html.H1(html.Class("h2 mb-3"), gomponents.Text("Sign in")),
		flashError(form.ErrorMsg),
		html.Form(
			html.Method("post"),
			html.Action("/login"),
			html.Div(
				html.Class("form-group"),
				html.Label(html.For("email"), gomponents.Text("Email")),
				html.Input(html.Type("email"), html.ID("email"), html.Name("email"), html.Class("form-control"), html.Value(form.Email), html.Required()),
			),
			html.Div(
				html.Class("form-group"),
				html.Label(html.For("password"), gomponents.Text("Password")),
				html.Input(html.Type("password"), html.ID("password"), html.Name("password"), html.Class("form-control"), html.Required()),
			),
			html.Button(html.Type("submit"), html.Class("btn btn-primary"), gomponents.Text("Sign in")),
		),
		html.P(html.Class("mt-3"),
			gomponents.Text("New here? "),
			html.A(html.Href("/signup"), gomponents.Text("Create an account")),
		),
	)
}

func logoutPage() gomponents.Node {
	return authPage("Signed out",
		html.H1(html.Class("h2 mb-2"), gomponents.Text("You are signed out")),
		html.P(html.Class("color-fg-muted"), gomponents.Text("Your session has been destroyed.")),
		html.P(html.A(html.Href("/"), gomponents.Text("Back to home"))),
	)
}
