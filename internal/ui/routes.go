package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountRoutes registers all portal routes. The session-loading middleware is
// expected to run before these; the gates here only decide what an anonymous
// or under-privileged principal may see.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.Home)
	r.Get("/signup", h.SignupPage)
	r.Post("/signup", h.SignupSubmit)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.LoginSubmit)
	r.Get("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(h.RequireMember)
		r.Get("/members", h.Members)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.RequireAdmin)
		r.Get("/admin", h.Admin)
		r.Get("/promote/{email}", h.Promote)
		r.Get("/demote/{email}", h.Demote)
	})
}

// RequireMember redirects anonymous requests to the landing page.
func (h *Handler) RequireMember(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := principalFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin sends anonymous requests to the login form and renders a 403
// page for authenticated principals without the admin role. The two cases
// are deliberately distinct: a signed-in member should see that the area
// exists and is off-limits, not be bounced to login.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if !p.IsAdmin() {
			renderHTML(w, http.StatusForbidden, errorPage("Access Denied", "The admin area requires the admin role."))
			return
		}
		next.ServeHTTP(w, r)
	})
}
