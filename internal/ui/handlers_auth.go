package ui

import (
	"errors"
	"net/http"

	"member-portal/internal/domain"
)

func (h *Handler) SignupPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := principalFromContext(r.Context()); ok {
		http.Redirect(w, r, "/members", http.StatusSeeOther)
		return
	}
	renderHTML(w, http.StatusOK, signupPage(signupForm{}))
}

func (h *Handler) SignupSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, signupPage(signupForm{ErrorMsg: "invalid form submission"}))
		return
	}

	req := domain.SignupRequest{
		Name:     formString(r.Form, "name"),
		Email:    formString(r.Form, "email"),
		Password: formPassword(r.Form, "password"),
	}

	_, session, err := h.Auth.Signup(r.Context(), req)
	if err != nil {
		form := signupForm{Name: req.Name, Email: req.Email}
		var validation *domain.ValidationError
		var conflict *domain.ConflictError
		switch {
		case errors.As(err, &validation):
			form.ErrorMsg = validation.Error()
			renderHTML(w, http.StatusBadRequest, signupPage(form))
		case errors.As(err, &conflict):
			// Distinct state: the address is fine, it is just taken.
			form.EmailTaken = true
			renderHTML(w, http.StatusConflict, signupPage(form))
		default:
			h.renderServiceError(w, r, err)
		}
		return
	}

	h.setSessionCookie(w, session.ID, h.Auth.SessionTTL())
	http.Redirect(w, r, "/members", http.StatusSeeOther)
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := principalFromContext(r.Context()); ok {
		http.Redirect(w, r, "/members", http.StatusSeeOther)
		return
	}
	renderHTML(w, http.StatusOK, loginPage(loginForm{}))
}

func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, loginPage(loginForm{ErrorMsg: "invalid form submission"}))
		return
	}

	req := domain.LoginRequest{
		Email:    formString(r.Form, "email"),
		Password: formPassword(r.Form, "password"),
	}

	_, session, err := h.Auth.Login(r.Context(), req)
	if err != nil {
		form := loginForm{Email: req.Email}
		var validation *domain.ValidationError
		var authErr *domain.AuthenticationError
		switch {
		case errors.As(err, &validation):
			form.ErrorMsg = validation.Error()
			renderHTML(w, http.StatusBadRequest, loginPage(form))
		case errors.As(err, &authErr):
			form.ErrorMsg = authErr.Error()
			renderHTML(w, http.StatusUnauthorized, loginPage(form))
		default:
			h.renderServiceError(w, r, err)
		}
		return
	}

	h.setSessionCookie(w, session.ID, h.Auth.SessionTTL())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout destroys the server-side session and expires the cookie. A request
// without a session cookie still gets the confirmation page.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := ""
	if cookie, err := r.Cookie(h.CookieName); err == nil {
		sessionID = cookie.Value
	}

	if err := h.Auth.Logout(r.Context(), sessionID); err != nil {
		// Store failure: the session may still be live, so keep the cookie
		// and surface the failure.
		h.renderServiceError(w, r, err)
		return
	}

	h.clearSessionCookie(w)
	renderHTML(w, http.StatusOK, logoutPage())
}
