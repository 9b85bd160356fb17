package service

import (
	"context"

	"github.com/cadastrolabs/cadastro/models"
)

type AuthService interface {
	RegisterCredential(ctx context.Context, request models.RegisterRequest) (models.PublicCredential, error)
	Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, error)
	Refresh(ctx context.Context, request models.RefreshRequest) (models.TokenPair, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.PublicUser, error)
	GetAllUsers(ctx context.Context, filter models.UserFilter) ([]models.PublicUser, error)
	FindUser(ctx context.Context, search models.UserSearch) (models.PublicUser, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.PublicUser, error)
	DeleteUser(ctx context.Context, userID string) error
}

type AddressService interface {
	CreateAddress(ctx context.Context, principalEmail string, request models.CreateAddressRequest) (models.Address, error)
	GetAllAddresses(ctx context.Context, filter models.AddressFilter) ([]models.Address, error)
	GetAddress(ctx context.Context, addressID string) (models.Address, error)
	UpdateAddress(ctx context.Context, principalEmail string, update models.AddressUpdate) (models.Address, error)
	DeleteAddress(ctx context.Context, principalEmail string, addressID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
