package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

const (
	msgAuthRequired  = "требуется авторизация"
	msgInvalidToken  = "недействительный или просроченный токен"
	msgAdminRequired = "требуются права администратора"
)

// ErrInvalidToken возвращается при неверной подписи, формате или содержимом токена
var ErrInvalidToken = errors.New("middleware: invalid token")

// Claims содержимое токена доступа
type Claims struct {
	ID   int64       `json:"id"`
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// ParseToken проверяет подпись HS256 и возвращает личность вызывающего
func ParseToken(tokenString string, secret []byte) (domain.Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.ID <= 0 {
		return domain.Identity{}, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}
	if claims.Role != domain.RoleAdmin && claims.Role != domain.RoleSpecialist {
		return domain.Identity{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return domain.Identity{UserID: claims.ID, Role: claims.Role}, nil
}

// IssueToken подписывает токен для пользователя
func IssueToken(identity domain.Identity, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ID: identity.UserID, Role: identity.Role})
	return token.SignedString(secret)
}

// Auth проверяет Bearer токен и кладет личность вызывающего в контекст
func Auth(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(tokenString) == "" {
				handlers.RespondUnauthorized(w, msgAuthRequired)
				return
			}

			identity, err := ParseToken(strings.TrimSpace(tokenString), key)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireAdmin пропускает только администраторов, ставится после Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgAuthRequired)
			return
		}
		if !identity.IsAdmin() {
			handlers.RespondForbidden(w, msgAdminRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithIdentity кладет личность в контекст
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity извлекает личность вызывающего из контекста
func GetIdentity(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}
