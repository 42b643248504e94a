package middleware

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rohits-web03/roboshow/internal/repositories"
)

type contextKey string

const ProfileIDKey contextKey = "profileID"

// ProfileCookie names the cookie that identifies a client profile.
const ProfileCookie = "profile"

const profileTTL = 365 * 24 * time.Hour

type profileClaims struct {
	ProfileID string `json:"profileId"`
	jwt.RegisteredClaims
}

// ProfileID returns the client profile of the request, or "" outside the
// Profile middleware.
func ProfileID(ctx context.Context) string {
	id, _ := ctx.Value(ProfileIDKey).(string)
	return id
}

func WithProfileID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ProfileIDKey, id)
}

func parseProfile(tokenStr, secret string) (string, bool) {
	var claims profileClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.ProfileID == "" {
		return "", false
	}
	return claims.ProfileID, true
}

// SignProfile issues the cookie value for a profile id.
func SignProfile(profileID, secret string, now time.Time) (string, error) {
	claims := &profileClaims{
		ProfileID: profileID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(profileTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Profile attaches the client profile to the request context. Requests
// without a valid cookie get a fresh profile and a new cookie.
func Profile(secret string, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(ProfileCookie); err == nil {
				if id, ok := parseProfile(c.Value, secret); ok {
					next.ServeHTTP(w, r.WithContext(WithProfileID(r.Context(), id)))
					return
				}
			}

			id := uuid.NewString()
			tokenString, err := SignProfile(id, secret, time.Now())
			if err != nil {
				http.Error(w, "Failed to create profile", http.StatusInternalServerError)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     ProfileCookie,
				Value:    tokenString,
				Path:     "/",
				MaxAge:   int(profileTTL.Seconds()),
				Secure:   secure,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			next.ServeHTTP(w, r.WithContext(WithProfileID(r.Context(), id)))
		})
	}
}

// RequireAuth sends visitors without a session to target, remembering
// where they were going in the return parameter.
func RequireAuth(accounts *repositories.AccountRepository, target string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			view := accounts.ForProfile(ProfileID(r.Context()))
			if _, err := view.CurrentUser(r.Context()); err != nil {
				dest := target + "?return=" + url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, dest, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
