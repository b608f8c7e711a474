package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hostelhub/hostelhub/internal/app/models/dto"
	"github.com/hostelhub/hostelhub/internal/pkg/apperrors"
	"github.com/hostelhub/hostelhub/internal/pkg/auth"
	"github.com/hostelhub/hostelhub/internal/pkg/logger"
	"github.com/hostelhub/hostelhub/internal/store"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authServiceImpl struct {
	store      store.Store
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(st store.Store, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		store:      st,
		jwtService: jwtService,
	}
}

// Login verifies the credentials and issues a bearer token. The
// password comparison is an exact string match against the stored
// value; see the security note in DESIGN.md.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.store.FindOne(ctx, store.CollectionUser, bson.M{"email": req.Email})
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	stored, _ := user["password"].(string)
	if stored == "" || stored != req.Password {
		return nil, apperrors.ErrInvalidCredentials
	}

	id := ""
	if oid, ok := user["_id"].(primitive.ObjectID); ok {
		id = oid.Hex()
	}
	name, _ := user["name"].(string)
	email, _ := user["email"].(string)
	role, _ := user["role"].(string)

	token, expiresIn, err := s.jwtService.Generate(id, name, email, role)
	if err != nil {
		logger.Error().Err(err).Str("email", req.Email).Msg("Token generation failed")
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
