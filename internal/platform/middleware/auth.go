package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"ferry/pkg/domain"
	"ferry/pkg/requestcontext"
)

// TokenValidator resolves a bearer token into the acting identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (domain.Actor, error)
}

// RevocationChecker reports whether a credential has been revoked. The redis
// implementation backs this in production; a nil checker disables the check.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RequireAuth rejects requests without a valid bearer token and injects the
// resolved actor into the request context.
func RequireAuth(validator TokenValidator, revocations RevocationChecker, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized - missing token",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeUnauthorized(w, "missing or invalid Authorization header")
				return
			}

			actor, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized - invalid token",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(ctx, actor.TokenID)
				if err != nil {
					// Fail closed: if the revocation store is unreachable we
					// cannot prove the credential is still good.
					logger.ErrorContext(ctx, "revocation check failed",
						"error", err,
						"request_id", requestcontext.RequestID(ctx),
					)
					writeUnauthorized(w, "unable to verify token")
					return
				}
				if revoked {
					writeUnauthorized(w, "token has been revoked")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithActor(ctx, actor)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
