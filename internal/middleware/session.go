package middleware

import (
	"net/http"

	"member-portal/internal/domain"
)

// SessionLoader returns middleware that resolves the session cookie into a
// domain.ContextPrincipal on the request context. A request with no cookie,
// an unknown session id, or an expired session simply continues anonymous;
// deciding what anonymity means for a route is the route gate's job.
//
// The cookie value is treated as an opaque capability: whoever presents a
// live session id is that session's principal.
func SessionLoader(sessions domain.SessionRepository, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil {
				// Unknown or expired session: clear the dead cookie so the
				// browser stops sending it.
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   -1,
				})
				next.ServeHTTP(w, r)
				return
			}

			ctx := domain.WithPrincipal(r.Context(), domain.ContextPrincipal{
				SessionID: session.ID,
				Email:     session.Email,
				Name:      session.Name,
				Role:      session.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
