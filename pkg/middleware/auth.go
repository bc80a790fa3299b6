package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"
)

// AuthSession validates the bearer session token and attaches the resolved
// identity (id, username, role) to the request context. Requests without a
// valid session are answered 401 here and never reach the handler.
func AuthSession(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}
			token := parts[1]

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			user, err := userRepo.FindByID(r.Context(), session.UserID)
			if err != nil {
				logger.Error("Failed to resolve session user",
					zap.Error(err),
					zap.String("user_id", session.UserID.Hex()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				// session outlived its account
				logger.Warn("Session for deleted user", zap.String("user_id", session.UserID.Hex()))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			identity := entity.Identity{
				ID:       user.ID,
				Username: user.Username,
				Role:     user.Role,
			}

			ctx := utils.SetIdentityContext(r.Context(), identity)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a route on the admin role. Always composed after
// AuthSession, which put the identity on the context.
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !identity.IsAdmin() {
				logger.Warn("Non-admin access attempt",
					zap.String("user_id", identity.ID.Hex()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
