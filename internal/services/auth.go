package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"medequip-system/internal/authz"
	"medequip-system/internal/dto"
	"medequip-system/internal/repositories"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/session"
	"medequip-system/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*session.Session, *dto.ProfileDTO, error)
	Logout(ctx context.Context, sid string) error
	Profile(ctx context.Context) (*dto.ProfileDTO, error)
}

type AuthService struct {
	userRepository repositories.UserRepositoryInterface
	sessions       *session.Store
	logger         *zap.Logger
}

func NewAuthService(
	userRepository repositories.UserRepositoryInterface,
	sessions *session.Store,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepository: userRepository,
		sessions:       sessions,
		logger:         logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*session.Session, *dto.ProfileDTO, error) {
	user, err := s.userRepository.FindByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.ErrInvalidLogin
		}
		return nil, nil, err
	}

	if !utils.CheckPassword(user.Password, payload.Password) {
		s.logger.Warn("login: wrong password", zap.String("email", payload.Email))
		return nil, nil, apperrors.ErrInvalidLogin
	}

	sess, err := s.sessions.Create(ctx, user.ID, user.Role)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("login: session created", zap.Uint64("user_id", user.ID))

	return sess, &dto.ProfileDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, sid string) error {
	return s.sessions.Destroy(ctx, sid)
}

func (s *AuthService) Profile(ctx context.Context) (*dto.ProfileDTO, error) {
	sess := authz.FromContext(ctx)
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepository.FindUser(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}
