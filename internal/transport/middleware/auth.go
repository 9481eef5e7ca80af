package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/restoration-backend/pkg/ctxutil"
)

type tokenVerifier interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// Auth resolves the operator behind a Bearer token and stores id and role in
// the context. No Authorization header means an anonymous request; routes
// that need an operator reject those via RequireOperator. A header that is
// not a usable Bearer token, or a token that fails verification, is a 401.
func Auth(verifier tokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := extractBearerToken(r)
			if token == "" {
				unauthorized(w, "invalid_request")
				return
			}
			operatorID, role, err := verifier.ValidateToken(r.Context(), token)
			if err != nil {
				unauthorized(w, "invalid_token")
				return
			}

			ctx := ctxutil.WithUserRole(ctxutil.WithUserID(r.Context(), operatorID), role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, reason string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="`+reason+`"`)
	writeProblem(w, http.StatusUnauthorized, problem{Error: "unauthorized", Code: "UNAUTHORIZED"})
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
