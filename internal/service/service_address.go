// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cadastrolabs/cadastro/internal/logger"
	"github.com/cadastrolabs/cadastro/internal/store"
	"github.com/cadastrolabs/cadastro/internal/utils"
	"github.com/cadastrolabs/cadastro/internal/validators"
	"github.com/cadastrolabs/cadastro/models"
)

// addressService is the concrete implementation of AddressService.
// It manages postal addresses and enforces that only the owning user may
// mutate or delete them. Reads are open to any caller.
//
// The principal carried by a token is a credential, not a user, so the
// service resolves the acting user through the principal's email before any
// ownership decision.
type addressService struct {
	addressRepository store.AddressRepository

	// userRepository resolves the acting user from the principal email and
	// is the source of truth for ownership checks.
	userRepository store.UserRepository

	// validator checks inbound request DTOs before any work is done.
	validator validators.Validator

	// uuidGenerator assigns identifiers to new addresses.
	uuidGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

// NewAddressService constructs an AddressService wired to the given
// repositories.
func NewAddressService(addressRepository store.AddressRepository, userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) AddressService {
	return &addressService{
		addressRepository: addressRepository,
		userRepository:    userRepository,
		validator:         validator,
		uuidGenerator:     utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// CreateAddress persists a new address owned by the authenticated principal.
// The owner is always derived from the principal email; a client-supplied
// owner is never accepted.
//
// Returns the created address or:
//   - a joined validation error if the request fails validation.
//   - ErrUserNotFound if no user exists for the principal.
func (s *addressService) CreateAddress(ctx context.Context, principalEmail string, request models.CreateAddressRequest) (models.Address, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Msg("invalid address data provided")
		return models.Address{}, err
	}

	owner, err := s.resolveActingUser(ctx, principalEmail)
	if err != nil {
		return models.Address{}, err
	}

	address := models.Address{
		ID:         s.uuidGenerator.Generate(),
		Street:     request.Street,
		Number:     request.Number,
		City:       request.City,
		State:      request.State,
		ZipCode:    request.ZipCode,
		Country:    request.Country,
		Complement: request.Complement,
		Landmark:   request.Landmark,
		UserID:     owner.ID,
	}

	created, err := s.addressRepository.CreateAddress(ctx, address)
	if err != nil {
		log.Err(err).Str("user_id", owner.ID).Msg("address creation ended with error")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Address{}, ErrUserNotFound
		}
		return models.Address{}, fmt.Errorf("address creation ended with error: %w", err)
	}

	return created, nil
}

// GetAllAddresses lists addresses matching the filter. A missing or
// non-positive limit falls back to defaultListLimit.
func (s *addressService) GetAllAddresses(ctx context.Context, filter models.AddressFilter) ([]models.Address, error) {
	log := logger.FromContext(ctx)

	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	addresses, err := s.addressRepository.GetAllAddresses(ctx, filter)
	if err != nil {
		log.Err(err).Msg("address listing ended with error")
		return nil, fmt.Errorf("address listing ended with error: %w", err)
	}

	return addresses, nil
}

// GetAddress retrieves a single address by ID.
//
// Returns ErrAddressNotFound if the address does not exist.
func (s *addressService) GetAddress(ctx context.Context, addressID string) (models.Address, error) {
	log := logger.FromContext(ctx)

	if addressID == "" {
		log.Error().Msg("no address ID provided")
		return models.Address{}, ErrInvalidDataProvided
	}

	address, err := s.addressRepository.FindAddressByID(ctx, addressID)
	if err != nil {
		log.Err(err).Str("id", addressID).Msg("address search ended with error")
		if errors.Is(err, store.ErrNoAddressWasFound) {
			return models.Address{}, ErrAddressNotFound
		}
		return models.Address{}, fmt.Errorf("address search ended with error: %w", err)
	}

	return address, nil
}

// UpdateAddress applies a partial update to an address after proving that
// the principal owns it.
//
// Returns the updated address or:
//   - a joined validation error if the update fails validation.
//   - ErrAddressNotFound if the address does not exist.
//   - ErrNotResourceOwner if the principal does not own the address.
func (s *addressService) UpdateAddress(ctx context.Context, principalEmail string, update models.AddressUpdate) (models.Address, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Msg("invalid address update provided")
		return models.Address{}, err
	}

	if _, err := s.authorizeOwner(ctx, principalEmail, update.ID); err != nil {
		return models.Address{}, err
	}

	updated, err := s.addressRepository.UpdateAddress(ctx, update)
	if err != nil {
		log.Err(err).Str("id", update.ID).Msg("address update ended with error")
		if errors.Is(err, store.ErrNoAddressWasFound) {
			return models.Address{}, ErrAddressNotFound
		}
		return models.Address{}, fmt.Errorf("address update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteAddress removes an address after proving that the principal owns it.
//
// Returns:
//   - ErrAddressNotFound if the address does not exist.
//   - ErrNotResourceOwner if the principal does not own the address.
func (s *addressService) DeleteAddress(ctx context.Context, principalEmail string, addressID string) error {
	log := logger.FromContext(ctx)

	if addressID == "" {
		log.Error().Msg("no address ID provided")
		return ErrInvalidDataProvided
	}

	if _, err := s.authorizeOwner(ctx, principalEmail, addressID); err != nil {
		return err
	}

	if err := s.addressRepository.DeleteAddress(ctx, addressID); err != nil {
		log.Err(err).Str("id", addressID).Msg("address deletion ended with error")
		if errors.Is(err, store.ErrNoAddressWasFound) {
			return ErrAddressNotFound
		}
		return fmt.Errorf("address deletion ended with error: %w", err)
	}

	return nil
}

// authorizeOwner loads the address and proves that the acting user owns it.
// The check runs before every mutation, so a non-owner learns that the
// address exists but can never touch it.
func (s *addressService) authorizeOwner(ctx context.Context, principalEmail, addressID string) (models.Address, error) {
	log := logger.FromContext(ctx)

	address, err := s.addressRepository.FindAddressByID(ctx, addressID)
	if err != nil {
		log.Err(err).Str("id", addressID).Msg("address ownership check failed")
		if errors.Is(err, store.ErrNoAddressWasFound) {
			return models.Address{}, ErrAddressNotFound
		}
		return models.Address{}, fmt.Errorf("address ownership check failed: %w", err)
	}

	actingUser, err := s.resolveActingUser(ctx, principalEmail)
	if err != nil {
		return models.Address{}, err
	}

	if address.UserID != actingUser.ID {
		log.Error().
			Str("address_id", addressID).
			Str("owner_id", address.UserID).
			Str("principal_user_id", actingUser.ID).
			Msg("principal is not the resource owner")
		return models.Address{}, ErrNotResourceOwner
	}

	return address, nil
}

// resolveActingUser maps the principal email from the verified token to the
// user identity it belongs to.
func (s *addressService) resolveActingUser(ctx context.Context, principalEmail string) (models.User, error) {
	log := logger.FromContext(ctx)

	if principalEmail == "" {
		log.Error().Msg("no principal email provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUser(ctx, models.UserSearch{Email: normalizeEmail(principalEmail)})
	if err != nil {
		log.Err(err).Msg("acting user lookup failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("acting user lookup failed: %w", err)
	}

	return user, nil
}
