package service

import (
	"context"
	"errors"
	"time"

	"packaging-catalog-be/internal/dto"
	"packaging-catalog-be/internal/pkg/logger"
	"packaging-catalog-be/internal/pkg/serverutils"
	"packaging-catalog-be/internal/repository/specification"
	"packaging-catalog-be/internal/repository/unitofwork"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	tokenTTL   time.Duration
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokenTTLHours int, sysLogger logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		tokenTTL:   time.Duration(tokenTTLHours) * time.Hour,
		logger:     sysLogger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	// Same error whether the user is unknown or the password is wrong.
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("auth", "failed login attempt", map[string]interface{}{
			"username": req.Username,
		})
		return nil, ErrInvalidCredentials
	}

	token, err := serverutils.GenerateToken(user.Id.String(), user.Username, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("auth", "admin logged in", map[string]interface{}{
		"username": user.Username,
	})
	return &dto.LoginResponse{
		Token:    token,
		Username: user.Username,
	}, nil
}
