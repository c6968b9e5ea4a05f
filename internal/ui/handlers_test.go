package ui

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "member-portal/internal/db"
	"member-portal/internal/db/repository"
	"member-portal/internal/domain"
	"member-portal/internal/middleware"
	"member-portal/internal/service"
)

const testCookieName = "portal_session"

type portalFixture struct {
	router   http.Handler
	auth     *service.AuthService
	accounts *repository.AccountRepo
	sessions *repository.SessionRepo
}

func setupPortal(t *testing.T) *portalFixture {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)

	accounts := repository.NewAccountRepo(writeDB)
	sessions := repository.NewSessionRepo(writeDB)
	auth := service.NewAuthService(accounts, sessions, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := chi.NewRouter()
	r.Use(middleware.SessionLoader(sessions, testCookieName))
	MountRoutes(r, NewHandler(auth, testCookieName, false))

	return &portalFixture{router: r, auth: auth, accounts: accounts, sessions: sessions}
}

func (f *portalFixture) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *portalFixture) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName && c.MaxAge >= 0 {
			require.NotEmpty(t, c.Value)
			return c
		}
	}
	t.Fatal("no session cookie on response")
	return nil
}

func (f *portalFixture) signup(t *testing.T, name, email, password string) *http.Cookie {
	t.Helper()
	rec := f.postForm("/signup", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/members", rec.Header().Get("Location"))
	return sessionCookie(t, rec)
}

// makeAdmin promotes the account and its open session directly in the store.
func (f *portalFixture) makeAdmin(t *testing.T, email string, cookie *http.Cookie) {
	t.Helper()
	ctx := context.Background()
	_, err := f.accounts.UpdateRole(ctx, email, domain.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, f.sessions.UpdateRole(ctx, cookie.Value, domain.RoleAdmin))
}

func TestLanding_AnonymousAndSignedIn(t *testing.T) {
	f := setupPortal(t)

	rec := f.get("/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign in")

	cookie := f.signup(t, "Alice", "a@x.com", "secret1")
	rec = f.get("/", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome back, Alice")
}

func TestMembers_AnonymousRedirectsHome(t *testing.T) {
	f := setupPortal(t)

	rec := f.get("/members", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestAdmin_AnonymousRedirectsToLogin(t *testing.T) {
	f := setupPortal(t)

	rec := f.get("/admin", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSignup_EstablishesSession(t *testing.T) {
	f := setupPortal(t)

	cookie := f.signup(t, "Alice", "a@x.com", "secret1")

	rec := f.get("/members", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hello Alice")
}

func TestSignup_FreshUserIsNotAdmin(t *testing.T) {
	f := setupPortal(t)

	// Fresh signup is authenticated but role=user: the admin area must show
	// a 403 page, not bounce to login.
	cookie := f.signup(t, "Alice", "a@x.com", "secret1")

	rec := f.get("/admin", cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access Denied")
}

func TestSignup_DuplicateEmailShowsDistinctNotice(t *testing.T) {
	f := setupPortal(t)
	f.signup(t, "Alice", "a@x.com", "secret1")

	rec := f.postForm("/signup", url.Values{
		"name":     {"Mallory"},
		"email":    {"a@x.com"},
		"password": {"other-secret"},
	}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already registered")
}

func TestSignup_ValidationErrorRendersInline(t *testing.T) {
	f := setupPortal(t)

	rec := f.postForm("/signup", url.Values{
		"name":     {"Alice"},
		"email":    {"a@x.com"},
		"password": {"pw"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least 6 characters")
	// Entered values are preserved for correction.
	assert.Contains(t, rec.Body.String(), "a@x.com")
}

func TestLogin_SuccessRedirectsHome(t *testing.T) {
	f := setupPortal(t)
	f.signup(t, "Alice", "a@x.com", "secret1")

	rec := f.postForm("/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"secret1"},
	}, nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	cookie := sessionCookie(t, rec)

	rec = f.get("/members", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_FailureIsGenericForBothReasons(t *testing.T) {
	f := setupPortal(t)
	f.signup(t, "Alice", "a@x.com", "secret1")

	wrongPass := f.postForm("/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"wrongpass"},
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Contains(t, wrongPass.Body.String(), "invalid email or password")

	unknown := f.postForm("/login", url.Values{
		"email":    {"nobody@x.com"},
		"password": {"secret1"},
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Contains(t, unknown.Body.String(), "invalid email or password")
}

func TestLogout_ReturnsToAnonymousBehavior(t *testing.T) {
	f := setupPortal(t)
	cookie := f.signup(t, "Alice", "a@x.com", "secret1")

	rec := f.get("/logout", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed out")

	// The old cookie now behaves exactly like no cookie at all.
	rec = f.get("/members", cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	// Logging out again without a session still renders the confirmation.
	rec = f.get("/logout", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdmin_ListsAccounts(t *testing.T) {
	f := setupPortal(t)
	cookie := f.signup(t, "Admin", "admin@x.com", "secret1")
	f.makeAdmin(t, "admin@x.com", cookie)
	f.signup(t, "Bob", "b@x.com", "secret1")

	rec := f.get("/admin", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "admin@x.com")
	assert.Contains(t, body, "b@x.com")
}

func TestPromoteDemote_RoundTripViaRoutes(t *testing.T) {
	f := setupPortal(t)
	cookie := f.signup(t, "Admin", "admin@x.com", "secret1")
	f.makeAdmin(t, "admin@x.com", cookie)
	f.signup(t, "Bob", "b@x.com", "secret1")
	ctx := context.Background()

	rec := f.get("/promote/"+url.PathEscape("b@x.com"), cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	account, err := f.accounts.GetByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, account.Role)

	rec = f.get("/demote/"+url.PathEscape("b@x.com"), cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	account, err = f.accounts.GetByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, account.Role)
}

func TestPromote_NonAdminForbidden(t *testing.T) {
	f := setupPortal(t)
	cookie := f.signup(t, "Alice", "a@x.com", "secret1")
	f.signup(t, "Bob", "b@x.com", "secret1")

	rec := f.get("/promote/"+url.PathEscape("b@x.com"), cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	account, err := f.accounts.GetByEmail(context.Background(), "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, account.Role)
}

func TestAdminSelfDemote_LosesAccessImmediately(t *testing.T) {
	f := setupPortal(t)
	cookie := f.signup(t, "Admin", "admin@x.com", "secret1")
	f.makeAdmin(t, "admin@x.com", cookie)

	rec := f.get("/demote/"+url.PathEscape("admin@x.com"), cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	// Same session, no re-login: the admin area is gone.
	rec = f.get("/admin", cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPromote_OtherOpenSessionKeepsStaleRole(t *testing.T) {
	f := setupPortal(t)
	adminCookie := f.signup(t, "Admin", "admin@x.com", "secret1")
	f.makeAdmin(t, "admin@x.com", adminCookie)
	bobCookie := f.signup(t, "Bob", "b@x.com", "secret1")

	rec := f.get("/promote/"+url.PathEscape("b@x.com"), adminCookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	// Bob's open session still carries the role snapshot from signup; the
	// promotion applies to his next sign-in.
	rec = f.get("/admin", bobCookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSignedInUser_SkipsAuthForms(t *testing.T) {
	f := setupPortal(t)
	cookie := f.signup(t, "Alice", "a@x.com", "secret1")

	rec := f.get("/login", cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/members", rec.Header().Get("Location"))

	rec = f.get("/signup", cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/members", rec.Header().Get("Location"))
}

func TestUnknownRouteIs404(t *testing.T) {
	f := setupPortal(t)

	rec := f.get("/no/such/page", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
