// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cadastrolabs/cadastro/internal/config"
	"github.com/cadastrolabs/cadastro/internal/logger"
	"github.com/cadastrolabs/cadastro/internal/store"
	"github.com/cadastrolabs/cadastro/internal/utils"
	"github.com/cadastrolabs/cadastro/internal/validators"
	"github.com/cadastrolabs/cadastro/models"
)

// defaultListLimit caps list queries when the caller does not supply a limit.
const defaultListLimit = 100

// userService is the concrete implementation of UserService.
// It manages user identities and delegates the registration transaction
// (credential + profile + user) to the UserRepository.
type userService struct {
	userRepository store.UserRepository

	// validator checks inbound request DTOs before any work is done.
	validator validators.Validator

	// uuidGenerator assigns identifiers to new users, credentials and profiles.
	uuidGenerator *utils.UUIDGenerator

	// bcryptCost is the bcrypt work factor for password hashing.
	bcryptCost int

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		uuidGenerator:  utils.NewUUIDGenerator(),
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// CreateUser registers a new user identity together with its credential and
// profile in a single transaction. Either all three records are persisted or
// none of them is.
//
// Returns the sanitized user or:
//   - a joined validation error if the request fails validation.
//   - ErrEmailAlreadyInUse if a credential with the same email exists.
//   - ErrUserAlreadyExists if the email or CPF collides with another user.
func (s *userService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Msg("invalid user data provided")
		return models.PublicUser{}, err
	}

	email := normalizeEmail(request.Email)

	passwordHash, err := utils.HashPassword(request.Password, s.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.PublicUser{}, fmt.Errorf("password hashing failed: %w", err)
	}

	credential := models.Credential{
		ID:           s.uuidGenerator.Generate(),
		Email:        email,
		PasswordHash: passwordHash,
	}
	profile := models.Profile{
		ID:    s.uuidGenerator.Generate(),
		Phone: request.Phone,
		Bio:   request.Bio,
	}
	user := models.User{
		ID:    s.uuidGenerator.Generate(),
		Name:  request.Name,
		CPF:   request.CPF,
		Email: email,
	}

	registered, err := s.userRepository.RegisterUser(ctx, credential, profile, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user registration ended with error")

		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.PublicUser{}, ErrEmailAlreadyInUse
		case errors.Is(err, store.ErrUserAlreadyExists):
			return models.PublicUser{}, ErrUserAlreadyExists
		default:
			return models.PublicUser{}, fmt.Errorf("user registration ended with error: %w", err)
		}
	}

	return registered.Public(), nil
}

// GetAllUsers lists users matching the filter. A missing or non-positive
// limit falls back to defaultListLimit so unbounded listings never happen.
func (s *userService) GetAllUsers(ctx context.Context, filter models.UserFilter) ([]models.PublicUser, error) {
	log := logger.FromContext(ctx)

	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Email != "" {
		filter.Email = normalizeEmail(filter.Email)
	}

	users, err := s.userRepository.GetAllUsers(ctx, filter)
	if err != nil {
		log.Err(err).Msg("user listing ended with error")
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}

	return public, nil
}

// FindUser retrieves a single user by the first unique attribute set in
// search (ID, then CPF, then Email).
//
// Returns the sanitized user or ErrUserNotFound when no user matches or no
// search attribute is given at all.
func (s *userService) FindUser(ctx context.Context, search models.UserSearch) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	if search.ID == "" && search.CPF == "" && search.Email == "" {
		log.Error().Msg("no user search attribute provided")
		return models.PublicUser{}, ErrUserNotFound
	}
	if search.Email != "" {
		search.Email = normalizeEmail(search.Email)
	}

	user, err := s.userRepository.FindUser(ctx, search)
	if err != nil {
		log.Err(err).Msg("user search ended with error")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.PublicUser{}, ErrUserNotFound
		}
		return models.PublicUser{}, fmt.Errorf("user search ended with error: %w", err)
	}

	return user.Public(), nil
}

// UpdateUser applies a partial update to the user record.
//
// Returns the sanitized updated user or:
//   - a joined validation error if the update fails validation.
//   - ErrUserNotFound if the user does not exist.
//   - ErrUserAlreadyExists if the new email collides with another user.
func (s *userService) UpdateUser(ctx context.Context, update models.UserUpdate) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Msg("invalid user update provided")
		return models.PublicUser{}, err
	}

	if update.Email != nil {
		normalized := normalizeEmail(*update.Email)
		update.Email = &normalized
	}

	updated, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Str("id", update.ID).Msg("user update ended with error")

		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			return models.PublicUser{}, ErrUserNotFound
		case errors.Is(err, store.ErrUserAlreadyExists):
			return models.PublicUser{}, ErrUserAlreadyExists
		default:
			return models.PublicUser{}, fmt.Errorf("user update ended with error: %w", err)
		}
	}

	return updated.Public(), nil
}

// DeleteUser removes the user record.
//
// Returns ErrUserNotFound if the user does not exist.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Error().Msg("no user ID provided")
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("id", userID).Msg("user deletion ended with error")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}
