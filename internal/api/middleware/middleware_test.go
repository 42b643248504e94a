package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/rohits-web03/roboshow/internal/repositories"
)

const testSecret = "test-secret"

func echoProfile() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(ProfileID(r.Context())))
	})
}

func TestProfileMintsCookie(t *testing.T) {
	h := Profile(testSecret, true)(echoProfile())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, ProfileCookie, c.Name)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	id, ok := parseProfile(c.Value, testSecret)
	require.True(t, ok)
	assert.Equal(t, id, rec.Body.String())
}

func TestProfileKeepsValidCookie(t *testing.T) {
	h := Profile(testSecret, false)(echoProfile())
	token, err := SignProfile("profile-1", testSecret, time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ProfileCookie, Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "profile-1", rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

func TestProfileReplacesBadCookie(t *testing.T) {
	h := Profile(testSecret, false)(echoProfile())
	forged, err := SignProfile("profile-1", "other-secret", time.Now())
	require.NoError(t, err)
	expired, err := SignProfile("profile-1", testSecret, time.Now().Add(-2*profileTTL))
	require.NoError(t, err)

	for name, value := range map[string]string{"forged": forged, "expired": expired, "garbage": "not-a-jwt"} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: ProfileCookie, Value: value})
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.NotEqual(t, "profile-1", rec.Body.String())
			assert.Len(t, rec.Result().Cookies(), 1)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	accounts := repositories.NewAccountRepository(repositories.NewMemoryStore(), repositories.WithHashCost(bcrypt.MinCost))
	ctx := WithProfileID(context.Background(), "p1")
	protected := RequireAuth(accounts, "/login")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/my-projects?tab=all", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?return=%2Fmy-projects%3Ftab%3Dall", rec.Header().Get("Location"))

	_, err := accounts.ForProfile("p1").Register(ctx, "Ada Lovelace", "ada@example.com", "engine1")
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// the session belongs to p1 only
	other := httptest.NewRequest(http.MethodGet, "/my-projects", nil).
		WithContext(WithProfileID(context.Background(), "p2"))
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(rate.NewLimiter(rate.Every(time.Hour), 1))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	serve := func(method string) int {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(method, "/", nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, serve(http.MethodPost))
	assert.Equal(t, http.StatusTooManyRequests, serve(http.MethodPost))
	assert.Equal(t, http.StatusTooManyRequests, serve(http.MethodDelete))
	assert.Equal(t, http.StatusOK, serve(http.MethodGet))
	assert.Equal(t, http.StatusOK, serve(http.MethodOptions))
}

func TestLoggerRecordsStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/upload", nil))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/upload", fields["path"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
}
