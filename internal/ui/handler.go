// Package ui renders the HTML pages of the member portal and applies the
// route gates that protect them.
package ui

import (
	"context"
	"errors"
	"net/http"
	"time"

	"member-portal/internal/domain"
	"member-portal/internal/service"

	gomponents "maragu.dev/gomponents"
)

// Handler serves the portal pages. The transport concern here is narrow:
// read form values, call the auth service, and read/write the opaque session
// id cookie. All session state lives server-side.
type Handler struct {
	Auth       *service.AuthService
	CookieName string
	Production bool
}

// NewHandler creates a new Handler.
func NewHandler(auth *service.AuthService, cookieName string, production bool) *Handler {
	return &Handler{
		Auth:       auth,
		CookieName: cookieName,
		Production: production,
	}
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, sessionID string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.Production,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.Production,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func principalFromContext(ctx context.Context) (domain.ContextPrincipal, bool) {
	return domain.PrincipalFromContext(ctx)
}

// renderServiceError maps a service error onto an HTML error page. Anything
// that isn't a typed domain error is an infrastructure failure and renders
// as an opaque 500.
func (h *Handler) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	title := "Unexpected Error"
	message := "An unexpected error occurred while handling this request."

	var notFound *domain.NotFoundError
	var accessDenied *domain.AccessDeniedError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError
	if errors.As(err, &notFound) {
		status = http.StatusNotFound
		title = "Not Found"
		message = notFound.Error()
	} else if errors.As(err, &accessDenied) {
		status = http.StatusForbidden
		title = "Access Denied"
		message = accessDenied.Error()
	} else if errors.As(err, &validation) {
		status = http.StatusBadRequest
		title = "Invalid Request"
		message = validation.Error()
	} else if errors.As(err, &conflict) {
		status = http.StatusConflict
		title = "Conflict"
		message = conflict.Error()
	}

	renderHTML(w, status, errorPage(title, message))
}
