package services

import (
	"context"

	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	"medequip-system/internal/repositories"
	"medequip-system/pkg/utils"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context) ([]dto.UserDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type UserService struct {
	userRepository repositories.UserRepositoryInterface
	logger         *zap.Logger
}

func NewUserService(userRepository repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepository: userRepository, logger: logger}
}

func toUserDTO(u *entities.User) *dto.UserDTO {
	return &dto.UserDTO{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

func (s *UserService) GetUsers(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		result = append(result, *toUserDTO(&users[i]))
	}
	return result, nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	id, err := s.userRepository.CreateUser(ctx, entities.User{
		Email:    payload.Email,
		Name:     payload.Name,
		Password: hashed,
		Role:     payload.Role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.Uint64("id", id), zap.String("email", payload.Email))

	user, err := s.userRepository.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserDTO(user), nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	changes := map[string]interface{}{}
	if payload.Email != nil {
		changes["email"] = *payload.Email
	}
	if payload.Name != nil {
		changes["name"] = *payload.Name
	}
	if payload.Role != nil {
		changes["role"] = *payload.Role
	}
	if payload.Password != nil {
		hashed, err := utils.HashPassword(*payload.Password)
		if err != nil {
			return nil, err
		}
		changes["password"] = hashed
	}

	if err := s.userRepository.UpdateUser(ctx, id, changes); err != nil {
		return nil, err
	}

	user, err := s.userRepository.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserDTO(user), nil
}

// DeleteUser removes the account; equipment and requests owned by it go
// with it through the FK cascades.
func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Uint64("id", id))
	return nil
}
