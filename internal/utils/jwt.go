package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cadastrolabs/cadastro/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for a principal.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the credential ID of the principal
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - email:           the principal's login email
//   - type:            "access" or "refresh"
//
// Access and refresh tokens use the same encoding; they differ only in the
// type tag and the configured lifetime. All parameters are required.
//
// Parameters:
//
//	issuer        - identifier of the token issuer (e.g. service name)
//	subjectID     - credential ID of the principal the token is issued for
//	email         - login email of the principal
//	tokenType     - models.TokenTypeAccess or models.TokenTypeRefresh
//	tokenDuration - how long the token remains valid
//	signKey       - secret key used to sign the token with HMAC-SHA256
//
// Returns:
//
//	models.Token - contains the signed token string and the claim set
//	error        - non-nil if parameters are invalid or signing fails
func GenerateJWTToken(issuer, subjectID, email string, tokenType models.TokenType, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subjectID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}
	if tokenType != models.TokenTypeAccess && tokenType != models.TokenTypeRefresh {
		return models.Token{}, errors.New("unknown token type")
	}

	now := time.Now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
		Type:  tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, TokenClaims: claims, SignedString: tokenString, SubjectID: subjectID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// The returned error keeps the underlying jwt/v5 sentinel matchable with
// [errors.Is], so callers can distinguish [jwt.ErrTokenExpired],
// [jwt.ErrTokenMalformed], and signature failures.
//
// Returns:
//
//	models.Token - contains the parsed claims and the extracted subject ID
//	error        - non-nil if validation fails or the subject is missing
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subjectID, err := parsed.GetSubjectID()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	parsed.SubjectID = subjectID

	return *parsed, nil
}

// ParseBearerToken extracts the compact token string from a raw
// "Authorization" header value of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
