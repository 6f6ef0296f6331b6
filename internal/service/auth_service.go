package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"campusai-be/internal/apperror"
	"campusai-be/internal/dto"
	"campusai-be/internal/entity"
	"campusai-be/internal/pkg/logger"
	"campusai-be/internal/repository/unitofwork"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	factory   unitofwork.RepositoryFactory
	jwtSecret []byte
	logger    logger.ILogger
}

func NewAuthService(factory unitofwork.RepositoryFactory, jwtSecret string, log logger.ILogger) IAuthService {
	return &authService{
		factory:   factory,
		jwtSecret: []byte(jwtSecret),
		logger:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.NewStorage("failed to check username", err)
	}
	if existing != nil {
		return nil, apperror.NewValidation("username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewStorage("failed to hash password", err)
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, apperror.NewStorage("failed to create user", err)
	}

	s.logger.Info("auth", "user registered", map[string]interface{}{"user_id": user.Id})
	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.factory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.NewStorage("failed to look up user", err)
	}
	// Same message for unknown user and wrong password.
	if user == nil {
		return nil, apperror.NewValidation("invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewValidation("invalid username or password")
	}

	return s.issueToken(user)
}

func (s *authService) issueToken(user *entity.User) (*dto.AuthResponse, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, apperror.NewStorage("failed to sign token", err)
	}

	return &dto.AuthResponse{
		Token:    signed,
		UserId:   user.Id,
		Username: user.Username,
	}, nil
}
