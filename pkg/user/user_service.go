package user

import (
	"Agro-Assistant-Backend/domain"
	"Agro-Assistant-Backend/entities"
	"Agro-Assistant-Backend/internal/utils/mailing"
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Login(ctx context.Context, req domain.LoginRequest) (*entities.User, domain.LoginOutcome, error)
		GetUserByID(ctx context.Context, id uint) (*entities.User, error)
		UpdateUser(ctx context.Context, id uint, req domain.UpdateUserRequest) (*entities.User, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

// Login doubles as signup: an unseen username gets an account created on the
// fly with a derived email, matching the original behavior. Passwords are
// compared as plain text, also original behavior.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*entities.User, domain.LoginOutcome, error) {
	user, err := s.userRepository.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	if user != nil {
		if user.Password != req.Password {
			return nil, "", domain.ErrInvalidCredentials
		}
		return user, domain.LoginExistingUserMatched, nil
	}

	newUser := &entities.User{
		Username:     req.Username,
		Password:     req.Password,
		Email:        fmt.Sprintf("%s@example.com", req.Username),
		Organization: "Home Garden",
	}
	if err := s.userRepository.CreateUser(ctx, newUser); err != nil {
		return nil, "", err
	}

	// Best-effort welcome mail; a failure never blocks the login.
	if err := mailing.SendWelcomeMail(newUser.Email, newUser.Username); err != nil {
		log.Errorf("failed to send welcome mail to %s: %v", newUser.Email, err)
	}

	return newUser, domain.LoginNewUserCreated, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, req domain.UpdateUserRequest) (*entities.User, error) {
	if err := s.userRepository.UpdateUser(ctx, id, &entities.User{
		Username:     req.Username,
		Password:     req.Password,
		Email:        req.Email,
		Organization: req.Organization,
	}); err != nil {
		return nil, err
	}

	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
