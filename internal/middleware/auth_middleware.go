package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	appauth "github.com/hostelhub/hostelhub/internal/app/auth"
	"github.com/hostelhub/hostelhub/internal/app/models"
	"github.com/hostelhub/hostelhub/internal/app/models/dto"
	"github.com/hostelhub/hostelhub/internal/pkg/apperrors"
	"github.com/hostelhub/hostelhub/internal/pkg/auth"
	"github.com/hostelhub/hostelhub/internal/store"
)

// identityKey is the gin context key the authenticated identity is
// stored under.
const identityKey = "identity"

// AuthMiddleware validates bearer tokens and loads the caller's
// identity for downstream handlers.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	store      store.Store
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, st store.Store) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		store:      st,
	}
}

// JWTAuth validates the Authorization header and re-fetches the user
// record behind the token's subject. A user deleted after issue makes
// the token unusable, which is the only revocation mechanism.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Authentication failed")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.Validate(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}
			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		identity, err := m.loadIdentity(c, claims.Subject)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication failed")
			errorDetail = errorDetail.WithDetails("User not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// loadIdentity fetches the user document behind a token subject and
// rebuilds the caller identity from the stored record, not from the
// token snapshot.
func (m *AuthMiddleware) loadIdentity(c *gin.Context, subject string) (appauth.Identity, error) {
	oid, err := store.ParseID(subject)
	if err != nil {
		return appauth.Identity{}, apperrors.ErrUserNotFound
	}

	doc, err := m.store.FindOne(c.Request.Context(), store.CollectionUser, bson.M{"_id": oid})
	if err != nil {
		return appauth.Identity{}, apperrors.ErrUserNotFound
	}

	role, ok := models.ParseRole(docString(doc, "role"))
	if !ok {
		role = models.RoleStudent
	}

	return appauth.Identity{
		ID:    subject,
		Name:  docString(doc, "name"),
		Email: docString(doc, "email"),
		Role:  role,
	}, nil
}

func docString(doc bson.M, key string) string {
	if s, ok := doc[key].(string); ok {
		return s
	}
	return ""
}

// RoleRequired rejects callers whose role is not in the allow-list.
// Must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("User identity not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if err := appauth.Require(identity, allowed...); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Forbidden: insufficient role")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// GetIdentity returns the authenticated identity set by JWTAuth.
func GetIdentity(c *gin.Context) (appauth.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return appauth.Identity{}, false
	}
	identity, ok := v.(appauth.Identity)
	return identity, ok
}
