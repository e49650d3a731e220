package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/easeboard/easeboard/pkg/audit"
	"github.com/easeboard/easeboard/pkg/identity"
)

const bearerPrefix = "Bearer "

// SessionAuthenticator is middleware that validates Supabase session
// tokens. Tokens are HS256 JWTs signed with the project's shared secret;
// the sub claim carries the user id.
type SessionAuthenticator struct {
	secret []byte
}

// NewSessionAuthenticator creates a new session authenticator middleware
func NewSessionAuthenticator(secret []byte) *SessionAuthenticator {
	return &SessionAuthenticator{secret: secret}
}

// Middleware returns an HTTP middleware that validates session tokens
func (s *SessionAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			rejectSession(w, r, "", "Authorization missing")
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			rejectSession(w, r, "", "Malformed authorization header")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, bearerPrefix)

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			rejectSession(w, r, "", "Invalid session token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			rejectSession(w, r, "", "Invalid session token")
			return
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			rejectSession(w, r, sub, "Invalid subject claim")
			return
		}

		id := &identity.Identity{
			UserID: userID,
		}
		if email, ok := claims["email"].(string); ok {
			id.Email = email
		}
		if role, ok := claims["role"].(string); ok {
			id.Role = role
		}
		if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
			id.IssuedAt = iat.Time
		}
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			id.ExpiresAt = exp.Time
		}
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			id.WithRemoteIP(net.ParseIP(host))
		}

		// jwt.Parse rejects expired tokens already, this guards tokens
		// without an exp claim
		if !id.ExpiresAt.IsZero() && time.Now().After(id.ExpiresAt) {
			rejectSession(w, r, userID.String(), "Token expired")
			return
		}

		r = r.WithContext(identity.Set(r.Context(), id))

		next.ServeHTTP(w, r)
	})
}

func rejectSession(w http.ResponseWriter, r *http.Request, userID, message string) {
	clientIP := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		clientIP = host
	}
	audit.Log(audit.SessionEvent{
		UserID:       userID,
		ClientIP:     clientIP,
		Success:      false,
		ErrorMessage: message,
	})

	body, _ := json.Marshal(map[string]string{"error": message})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write(body)
}
