package ui

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFromContext(r.Context())

	accounts, err := h.Auth.ListAccounts(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, adminPage(p, accounts))
}

func (h *Handler) Promote(w http.ResponseWriter, r *http.Request) {
	email, err := targetEmail(r)
	if err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Malformed email in URL."))
		return
	}
	if err := h.Auth.Promote(r.Context(), email); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Handler) Demote(w http.ResponseWriter, r *http.Request) {
	email, err := targetEmail(r)
	if err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Malformed email in URL."))
		return
	}
	if err := h.Auth.Demote(r.Context(), email); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func targetEmail(r *http.Request) (string, error) {
	return url.PathUnescape(chi.URLParam(r, "email"))
}
