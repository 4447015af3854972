package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"store-ratings/pkg/token"
	"store-ratings/pkg/utils"

	"go.uber.org/zap"
)

var (
	errMissingToken = errors.New("missing authorization token")
	errBadToken     = errors.New("invalid or expired token")
	errNoIdentity   = errors.New("no authenticated identity")
	errWrongRole    = errors.New("role not allowed")
)

// authenticate verifies the bearer credential on r and returns the request
// context enriched with the asserted identity, or a typed failure. It does
// not touch storage: the token is the whole proof.
func authenticate(r *http.Request, tokens *token.Manager) (context.Context, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, errMissingToken
	}

	claims, err := tokens.Verify(parts[1])
	if err != nil {
		return nil, errBadToken
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, errBadToken
	}

	return utils.SetUserContext(r.Context(), userID, claims.Role), nil
}

// authorize checks the authenticated role on ctx against the allowed set.
// The role is trusted as issued at login; a role change in storage takes
// effect only once the token expires.
func authorize(ctx context.Context, allowed map[string]struct{}) error {
	role, ok := utils.GetRoleFromContext(ctx)
	if !ok {
		return errNoIdentity
	}
	if _, ok := allowed[role]; !ok {
		return errWrongRole
	}
	return nil
}

// Authenticate rejects requests without a valid credential and attaches the
// identity to the request context for downstream handlers.
func Authenticate(tokens *token.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, err := authenticate(r, tokens)
			if err != nil {
				logger.Warn("Authentication failed",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				utils.ResponseUnauthorized(w, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated requests whose role is outside the
// allowed set. Must run after Authenticate.
func RequireRole(logger *zap.Logger, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := authorize(r.Context(), allowed); err != nil {
				if errors.Is(err, errNoIdentity) {
					utils.ResponseUnauthorized(w, "Authentication required")
					return
				}

				logger.Warn("Access denied",
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
