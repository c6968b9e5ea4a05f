package ui

import "net/http"

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFromContext(r.Context())
	if !ok {
		renderHTML(w, http.StatusOK, landingPageAnonymous())
		return
	}
	renderHTML(w, http.StatusOK, landingPageSignedIn(p))
}

func (h *Handler) Members(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())
	renderHTML(w, http.StatusOK, membersPage(p))
}
