package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cadastrolabs/cadastro/internal/logger"
	"github.com/cadastrolabs/cadastro/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	token        string
	refreshToken string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL and configures
// the underlying client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// authedRequest returns a request builder carrying the stored bearer token.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.token)
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.PublicCredential, error) {
	var credential models.PublicCredential

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&credential).
		Post("/api/auth")
	if err != nil {
		return models.PublicCredential{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicCredential{}, err
	}

	return credential, nil
}

// Login implements [ServerAdapter]. The returned access token becomes the
// adapter's bearer token; the refresh token is retained for Refresh.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, error) {
	var pair models.TokenPair

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&pair).
		Post("/api/auth/login")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenPair{}, err
	}

	h.SetToken(pair.AccessToken)
	h.refreshToken = pair.RefreshToken

	return pair, nil
}

// Refresh implements [ServerAdapter].
func (h *httpServerAdapter) Refresh(ctx context.Context) (models.TokenPair, error) {
	if h.refreshToken == "" {
		return models.TokenPair{}, ErrNoRefreshToken
	}

	var pair models.TokenPair

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.RefreshRequest{RefreshToken: h.refreshToken}).
		SetResult(&pair).
		Post("/api/auth/refresh")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenPair{}, err
	}

	h.SetToken(pair.AccessToken)
	h.refreshToken = pair.RefreshToken

	return pair, nil
}

// CreateUser implements [ServerAdapter].
func (h *httpServerAdapter) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&user).
		Post("/api/users")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

// GetUser implements [ServerAdapter].
func (h *httpServerAdapter) GetUser(ctx context.Context, userID string) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", userID).
		SetResult(&user).
		Get("/api/users/{id}")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

// SearchUser implements [ServerAdapter].
func (h *httpServerAdapter) SearchUser(ctx context.Context, search models.UserSearch) (models.PublicUser, error) {
	var user models.PublicUser

	request := h.client.R().
		SetContext(ctx).
		SetResult(&user)
	if search.ID != "" {
		request.SetQueryParam("id", search.ID)
	}
	if search.CPF != "" {
		request.SetQueryParam("cpf", search.CPF)
	}
	if search.Email != "" {
		request.SetQueryParam("email", search.Email)
	}

	resp, err := request.Get("/api/users/search")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("search user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

// ListUsers implements [ServerAdapter].
func (h *httpServerAdapter) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.PublicUser, error) {
	var users []models.PublicUser

	request := h.client.R().
		SetContext(ctx).
		SetResult(&users)
	if filter.Email != "" {
		request.SetQueryParam("email", filter.Email)
	}
	if filter.Offset > 0 {
		request.SetQueryParam("offset", fmt.Sprint(filter.Offset))
	}
	if filter.Limit > 0 {
		request.SetQueryParam("limit", fmt.Sprint(filter.Limit))
	}

	resp, err := request.Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// UpdateUser implements [ServerAdapter].
func (h *httpServerAdapter) UpdateUser(ctx context.Context, update models.UserUpdate) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", update.ID).
		SetBody(update).
		SetResult(&user).
		Patch("/api/users/{id}")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

// DeleteUser implements [ServerAdapter].
func (h *httpServerAdapter) DeleteUser(ctx context.Context, userID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", userID).
		Delete("/api/users/{id}")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateAddress implements [ServerAdapter].
func (h *httpServerAdapter) CreateAddress(ctx context.Context, request models.CreateAddressRequest) (models.Address, error) {
	var address models.Address

	resp, err := h.authedRequest(ctx).
		SetBody(request).
		SetResult(&address).
		Post("/api/addresses")
	if err != nil {
		return models.Address{}, fmt.Errorf("create address request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Address{}, err
	}

	return address, nil
}

// GetAddress implements [ServerAdapter].
func (h *httpServerAdapter) GetAddress(ctx context.Context, addressID string) (models.Address, error) {
	var address models.Address

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", addressID).
		SetResult(&address).
		Get("/api/addresses/{id}")
	if err != nil {
		return models.Address{}, fmt.Errorf("get address request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Address{}, err
	}

	return address, nil
}

// ListAddresses implements [ServerAdapter].
func (h *httpServerAdapter) ListAddresses(ctx context.Context, filter models.AddressFilter) ([]models.Address, error) {
	var addresses []models.Address

	request := h.client.R().
		SetContext(ctx).
		SetResult(&addresses)
	if filter.UserID != "" {
		request.SetQueryParam("user_id", filter.UserID)
	}
	if filter.Offset > 0 {
		request.SetQueryParam("offset", fmt.Sprint(filter.Offset))
	}
	if filter.Limit > 0 {
		request.SetQueryParam("limit", fmt.Sprint(filter.Limit))
	}

	resp, err := request.Get("/api/addresses")
	if err != nil {
		return nil, fmt.Errorf("list addresses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return addresses, nil
}

// UpdateAddress implements [ServerAdapter].
func (h *httpServerAdapter) UpdateAddress(ctx context.Context, update models.AddressUpdate) (models.Address, error) {
	var address models.Address

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", update.ID).
		SetBody(update).
		SetResult(&address).
		Patch("/api/addresses/{id}")
	if err != nil {
		return models.Address{}, fmt.Errorf("update address request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Address{}, err
	}

	return address, nil
}

// DeleteAddress implements [ServerAdapter].
func (h *httpServerAdapter) DeleteAddress(ctx context.Context, addressID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", addressID).
		Delete("/api/addresses/{id}")
	if err != nil {
		return fmt.Errorf("delete address request: %w", err)
	}

	return mapHTTPError(resp)
}

// ServerVersion implements [ServerAdapter].
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}
