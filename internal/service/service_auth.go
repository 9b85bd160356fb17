// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cadastrolabs/cadastro/internal/config"
	"github.com/cadastrolabs/cadastro/internal/logger"
	"github.com/cadastrolabs/cadastro/internal/store"
	"github.com/cadastrolabs/cadastro/internal/utils"
	"github.com/cadastrolabs/cadastro/internal/validators"
	"github.com/cadastrolabs/cadastro/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles credential registration, password verification, and the JWT
// token lifecycle using a CredentialRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	// credentialRepository is the data-access layer used to create and look
	// up authentication records.
	credentialRepository store.CredentialRepository

	// validator checks inbound request DTOs before any work is done.
	validator validators.Validator

	// uuidGenerator assigns identifiers to new credentials.
	uuidGenerator *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// accessTokenTTL controls how long a newly issued access token remains valid.
	accessTokenTTL time.Duration

	// refreshTokenTTL controls how long a newly issued refresh token remains valid.
	refreshTokenTTL time.Duration

	// bcryptCost is the bcrypt work factor for password hashing.
	// Zero selects the library default.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// CredentialRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(credentialRepository store.CredentialRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		credentialRepository: credentialRepository,
		validator:            validator,
		uuidGenerator:        utils.NewUUIDGenerator(),
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenTTL:       cfg.AccessTokenTTL,
		refreshTokenTTL:      cfg.RefreshTokenTTL,
		bcryptCost:           cfg.BcryptCost,
		logger:               logger,
	}
}

// RegisterCredential creates a new authentication record.
//
// The email is normalized (trimmed and lowercased) before any lookup or
// insert, the password is hashed with bcrypt, and persistence is delegated
// to the CredentialRepository. The returned projection never carries the
// password hash.
//
// Returns the sanitized credential or:
//   - a joined validation error if the request fails validation.
//   - ErrEmailAlreadyInUse if a credential with the same email exists.
func (a *authService) RegisterCredential(ctx context.Context, request models.RegisterRequest) (models.PublicCredential, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Msg("invalid registration data provided")
		return models.PublicCredential{}, err
	}

	email := normalizeEmail(request.Email)

	passwordHash, err := utils.HashPassword(request.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.PublicCredential{}, fmt.Errorf("password hashing failed: %w", err)
	}

	credential := models.Credential{
		ID:           a.uuidGenerator.Generate(),
		Email:        email,
		PasswordHash: passwordHash,
	}

	registered, err := a.credentialRepository.CreateCredential(ctx, credential)
	if err != nil {
		log.Err(err).Str("email", email).Msg("credential creation ended with error")
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.PublicCredential{}, ErrEmailAlreadyInUse
		}
		return models.PublicCredential{}, fmt.Errorf("credential creation ended with error: %w", err)
	}

	return registered.Public(), nil
}

// Login authenticates an existing credential and issues a fresh token pair.
//
// The email is normalized before lookup. Both an unknown email and a wrong
// password collapse into ErrInvalidCredentials so the response does not
// reveal which part failed.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Msg("invalid login data provided")
		return models.TokenPair{}, err
	}

	credential, err := a.validateCredentials(ctx, normalizeEmail(request.Email), request.Password)
	if err != nil {
		return models.TokenPair{}, err
	}

	return a.createTokenPair(ctx, credential)
}

// Refresh exchanges a valid refresh token for a new token pair.
//
// The token signature, expiry, and issuer are verified before the principal
// is looked up, so a forged or expired token never triggers a database read.
// A verified token whose principal no longer exists yields ErrUserNotFound.
func (a *authService) Refresh(ctx context.Context, request models.RefreshRequest) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Msg("invalid refresh data provided")
		return models.TokenPair{}, err
	}

	// verify the token before touching storage
	token, err := a.parseToken(ctx, request.RefreshToken, models.TokenTypeRefresh)
	if err != nil {
		return models.TokenPair{}, err
	}

	credential, err := a.credentialRepository.FindCredentialByID(ctx, token.SubjectID)
	if err != nil {
		log.Err(err).Msg("refresh token principal lookup failed")
		if errors.Is(err, store.ErrNoCredentialWasFound) {
			return models.TokenPair{}, ErrUserNotFound
		}
		return models.TokenPair{}, fmt.Errorf("refresh token principal lookup failed: %w", err)
	}

	return a.createTokenPair(ctx, credential)
}

// ParseToken validates and parses a raw access token string.
//
// It verifies the signature and the issuer claim and requires the "type"
// claim to be "access", so a refresh token can never authorize a request.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return a.parseToken(ctx, tokenString, models.TokenTypeAccess)
}

// validateCredentials looks up the credential by normalized email and
// compares the password against the stored bcrypt hash.
func (a *authService) validateCredentials(ctx context.Context, email, password string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	credential, err := a.credentialRepository.FindCredentialByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("credential search by email failed")
		if errors.Is(err, store.ErrNoCredentialWasFound) {
			return models.Credential{}, ErrInvalidCredentials
		}
		return models.Credential{}, fmt.Errorf("credential search by email failed: %w", err)
	}

	if err := utils.VerifyPassword(password, credential.PasswordHash); err != nil {
		log.Error().Str("email", email).Msg("wrong password")
		return models.Credential{}, ErrInvalidCredentials
	}

	return credential, nil
}

// createTokenPair issues a signed access/refresh token pair for the given
// credential. Both tokens carry the credential ID as "sub" and the email as
// a custom claim; they differ only in lifetime and the "type" claim.
func (a *authService) createTokenPair(ctx context.Context, credential models.Credential) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	accessToken, err := utils.GenerateJWTToken(a.tokenIssuer, credential.ID, credential.Email, models.TokenTypeAccess, a.accessTokenTTL, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("access token creation failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken, err := utils.GenerateJWTToken(a.tokenIssuer, credential.ID, credential.Email, models.TokenTypeRefresh, a.refreshTokenTTL, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("refresh token creation failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:  accessToken.SignedString,
		RefreshToken: refreshToken.SignedString,
	}, nil
}

// parseToken verifies a raw token string and requires the given token type.
// Low-level JWT errors are normalised to the service's token sentinels so
// that callers never inspect jwt package errors directly.
func (a *authService) parseToken(ctx context.Context, tokenString string, wantType models.TokenType) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Error().Err(err).Msg("token verification failed")

		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return models.Token{}, ErrTokenMalformed
		default:
			return models.Token{}, ErrTokenInvalid
		}
	}

	if token.Type != wantType {
		log.Error().Str("type", string(token.Type)).Msg("wrong token type")
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}

// normalizeEmail applies the canonical email form used for every lookup and
// insert: surrounding whitespace stripped, all characters lowercased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
