package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lumenart/credits/pkg/cryptox"
	"github.com/lumenart/credits/pkg/jwtx"
	"github.com/lumenart/credits/pkg/slogx"
)

// AuthnMiddleware requires a valid Bearer token and injects subject/scopes
// into the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			claims, ok := bearerClaims(w, r, v, log)
			if !ok {
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithAuth(ctx, claims)))
		})
	}
}

// AuthnOrServiceKey accepts either a Bearer token or an X-Service-Key header
// matching the configured argon2id hash. Service-key callers are trusted
// backends and get full admin scopes with no subject.
func AuthnOrServiceKey(v jwtx.Verifier, serviceKeyHash string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			if key := r.Header.Get("X-Service-Key"); key != "" && serviceKeyHash != "" {
				ok, err := cryptox.VerifyServiceKey(key, serviceKeyHash)
				if err != nil || !ok {
					if err != nil {
						log.Error("service key verification failed", "err", err)
					}
					writeBearerError(w, "invalid service key")
					return
				}

				ctx = context.WithValue(ctx, CtxKeyScopes, []string{"admin:read", "admin:write"})
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			claims, ok := bearerClaims(w, r, v, log)
			if !ok {
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithAuth(ctx, claims)))
		})
	}
}

func bearerClaims(w http.ResponseWriter, r *http.Request, v jwtx.Verifier, log *slog.Logger) (jwtx.Claims, bool) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		writeBearerError(w, "missing bearer token")
		return jwtx.Claims{}, false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

	claims, err := v.Verify(raw)
	if err != nil {
		writeBearerError(w, "token verification failed")
		log.Warn("jwt verify failed", "err", err)
		return jwtx.Claims{}, false
	}

	if err := claims.ValidateExpiry(); err != nil {
		writeBearerError(w, "token expired")
		return jwtx.Claims{}, false
	}

	return claims, true
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyScopes, c.Scopes)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
