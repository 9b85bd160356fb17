package utils

import (
	"testing"
	"time"

	"github.com/cadastrolabs/cadastro/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "cadastro-test"
	testSignKey = "test-sign-key"
	testSubject = "0192d7a4-0000-7000-8000-000000000001"
	testEmail   = "a@x.com"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testSubject, testEmail, models.TokenTypeAccess, time.Minute, testSignKey)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, testSubject, token.SubjectID)
	assert.Equal(t, testEmail, token.Email)
	assert.Equal(t, models.TokenTypeAccess, token.Type)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		subjectID string
		tokenType models.TokenType
		duration  time.Duration
		signKey   string
	}{
		{"empty issuer", "", testSubject, models.TokenTypeAccess, time.Minute, testSignKey},
		{"empty subject", testIssuer, "", models.TokenTypeAccess, time.Minute, testSignKey},
		{"zero duration", testIssuer, testSubject, models.TokenTypeAccess, 0, testSignKey},
		{"empty sign key", testIssuer, testSubject, models.TokenTypeAccess, time.Minute, ""},
		{"unknown type", testIssuer, testSubject, models.TokenType("session"), time.Minute, testSignKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subjectID, testEmail, tt.tokenType, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

// TestValidateAndParseJWTToken_Roundtrip verifies that a freshly issued token
// passes verification and yields the original subject, email, and type.
func TestValidateAndParseJWTToken_Roundtrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testSubject, testEmail, models.TokenTypeRefresh, time.Minute, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, testSubject, parsed.SubjectID)
	assert.Equal(t, testEmail, parsed.Email)
	assert.Equal(t, models.TokenTypeRefresh, parsed.Type)
}

// TestValidateAndParseJWTToken_Expired verifies that an expired token fails
// with the jwt expiration sentinel and nothing else.
func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testSubject, testEmail, models.TokenTypeAccess, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.NotErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testSubject, testEmail, models.TokenTypeAccess, time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "other-key", testIssuer)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("someone-else", testSubject, testEmail, models.TokenTypeAccess, time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not-a-token", testSignKey, testIssuer)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("abc.def.ghi")
	assert.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	assert.Error(t, err)
}
