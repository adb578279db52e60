package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-admin/internal/converter"
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/domain/repository"
	"clinic-admin/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	sessions   repository.SessionStore
	jwtService *jwt.JWTService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	sessions repository.SessionStore,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		sessions:   sessions,
		jwtService: jwtService,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	email := normalizeEmail(req.Email)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.userRepo.ExistsByEmail(tx, email)
	if err != nil {
		u.log.Warnf("Failed to check email: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Password:  string(hashedPassword),
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// read-only, no transaction needed
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), normalizeEmail(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(ctx, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message:       "Login success",
		User:          converter.UserToResponse(user),
		TokenResponse: *tokens,
	}, nil
}

// Logout revokes the access token in use and, when given, the refresh token
// issued with it. An unparsable refresh token is ignored.
func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshToken string) error {
	if err := u.sessions.Revoke(ctx, repository.AccessTokenKind, userID, accessTokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	if refreshToken == "" {
		return nil
	}
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken || claims.UserID != userID {
		return nil
	}
	if err := u.sessions.Revoke(ctx, repository.RefreshTokenKind, userID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to revoke refresh token: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.sessions.Exists(ctx, repository.RefreshTokenKind, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !exists {
		// A signed, unexpired refresh token that is no longer stored was
		// already rotated or logged out. Reuse ends every session of the user.
		if err := u.sessions.RevokeAll(ctx, claims.UserID); err != nil {
			u.log.Warnf("Failed to revoke sessions of user %s: %+v", claims.UserID, err)
			return nil, err
		}
		u.log.WithField("user_id", claims.UserID).Warn("Refresh token reused, all sessions revoked")
		return nil, ErrTokenRevoked
	}

	// Rotate: the old refresh token is single use
	if err := u.sessions.Revoke(ctx, repository.RefreshTokenKind, claims.UserID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.UserID, claims.Email)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, email string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.sessions.Save(ctx, repository.AccessTokenKind, userID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}
	if err := u.sessions.Save(ctx, repository.RefreshTokenKind, userID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
