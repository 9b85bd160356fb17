// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cadastrolabs/cadastro/internal/logger"
	"github.com/cadastrolabs/cadastro/internal/service"
	"github.com/cadastrolabs/cadastro/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerCredentialFn func(ctx context.Context, request models.RegisterRequest) (models.PublicCredential, error)
	loginFn              func(ctx context.Context, request models.LoginRequest) (models.TokenPair, error)
	refreshFn            func(ctx context.Context, request models.RefreshRequest) (models.TokenPair, error)
	parseTokenFn         func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterCredential(ctx context.Context, request models.RegisterRequest) (models.PublicCredential, error) {
	return m.registerCredentialFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) Refresh(ctx context.Context, request models.RefreshRequest) (models.TokenPair, error) {
	return m.refreshFn(ctx, request)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	createUserFn  func(ctx context.Context, request models.CreateUserRequest) (models.PublicUser, error)
	getAllUsersFn func(ctx context.Context, filter models.UserFilter) ([]models.PublicUser, error)
	findUserFn    func(ctx context.Context, search models.UserSearch) (models.PublicUser, error)
	updateUserFn  func(ctx context.Context, update models.UserUpdate) (models.PublicUser, error)
	deleteUserFn  func(ctx context.Context, userID string) error
}

func (m *mockUserService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.PublicUser, error) {
	return m.createUserFn(ctx, request)
}

func (m *mockUserService) GetAllUsers(ctx context.Context, filter models.UserFilter) ([]models.PublicUser, error) {
	return m.getAllUsersFn(ctx, filter)
}

func (m *mockUserService) FindUser(ctx context.Context, search models.UserSearch) (models.PublicUser, error) {
	return m.findUserFn(ctx, search)
}

func (m *mockUserService) UpdateUser(ctx context.Context, update models.UserUpdate) (models.PublicUser, error) {
	return m.updateUserFn(ctx, update)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID string) error {
	return m.deleteUserFn(ctx, userID)
}

// mockAddressService implements service.AddressService for unit tests.
type mockAddressService struct {
	createAddressFn   func(ctx context.Context, principalEmail string, request models.CreateAddressRequest) (models.Address, error)
	getAllAddressesFn func(ctx context.Context, filter models.AddressFilter) ([]models.Address, error)
	getAddressFn      func(ctx context.Context, addressID string) (models.Address, error)
	updateAddressFn   func(ctx context.Context, principalEmail string, update models.AddressUpdate) (models.Address, error)
	deleteAddressFn   func(ctx context.Context, principalEmail string, addressID string) error
}

func (m *mockAddressService) CreateAddress(ctx context.Context, principalEmail string, request models.CreateAddressRequest) (models.Address, error) {
	return m.createAddressFn(ctx, principalEmail, request)
}

func (m *mockAddressService) GetAllAddresses(ctx context.Context, filter models.AddressFilter) ([]models.Address, error) {
	return m.getAllAddressesFn(ctx, filter)
}

func (m *mockAddressService) GetAddress(ctx context.Context, addressID string) (models.Address, error) {
	return m.getAddressFn(ctx, addressID)
}

func (m *mockAddressService) UpdateAddress(ctx context.Context, principalEmail string, update models.AddressUpdate) (models.Address, error) {
	return m.updateAddressFn(ctx, principalEmail, update)
}

func (m *mockAddressService) DeleteAddress(ctx context.Context, principalEmail string, addressID string) error {
	return m.deleteAddressFn(ctx, principalEmail, addressID)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler backed entirely by mocks. Individual tests
// override the service they exercise.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(services, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeErrorResponse parses the structured error body written by writeError.
func decodeErrorResponse(t *testing.T, body []byte) models.ErrorResponse {
	t.Helper()
	var response models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &response))
	return response
}
