package validators

import (
	"context"
	"errors"
	"net/mail"

	"github.com/cadastrolabs/cadastro/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	FieldCPF      = "cpf"
	FieldStreet   = "street"
	FieldNumber   = "number"
	FieldCity     = "city"
	FieldState    = "state"
	FieldZipCode  = "zip_code"
	FieldCountry  = "country"
	FieldToken    = "refreshToken"
)

const minPasswordLength = 6

// EntityValidator validates the request DTOs of the public API.
// Violations are accumulated, one error per violated field, and joined onto
// [ErrValidationFailed] so the boundary reports all of them at once.
type EntityValidator struct {
}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateCredentialInput(value.Email, value.Password, fields...)
	case *models.RegisterRequest:
		return v.validateCredentialInput(value.Email, value.Password, fields...)

	case models.LoginRequest:
		return v.validateCredentialInput(value.Email, value.Password, fields...)
	case *models.LoginRequest:
		return v.validateCredentialInput(value.Email, value.Password, fields...)

	case models.RefreshRequest:
		return v.validateRefreshRequest(value)
	case *models.RefreshRequest:
		return v.validateRefreshRequest(*value)

	case models.CreateUserRequest:
		return v.validateCreateUserRequest(value, fields...)
	case *models.CreateUserRequest:
		return v.validateCreateUserRequest(*value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(value)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value)

	case models.CreateAddressRequest:
		return v.validateCreateAddressRequest(value, fields...)
	case *models.CreateAddressRequest:
		return v.validateCreateAddressRequest(*value, fields...)

	case models.AddressUpdate:
		return v.validateAddressUpdate(value)
	case *models.AddressUpdate:
		return v.validateAddressUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

func isValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// fail joins the collected per-field violations onto ErrValidationFailed.
// Returns nil when there are none.
func fail(violations []error) error {
	if len(violations) == 0 {
		return nil
	}

	return errors.Join(append([]error{ErrValidationFailed}, violations...)...)
}

func (v *EntityValidator) validateCredentialInput(email, password string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var violations []error
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(email) {
				violations = append(violations, violationFor(email == "", ErrEmptyEmail, ErrInvalidEmail))
			}
		case FieldPassword:
			if len(password) < minPasswordLength {
				violations = append(violations, ErrShortPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return fail(violations)
}

func (v *EntityValidator) validateRefreshRequest(request models.RefreshRequest) error {
	if request.RefreshToken == "" {
		return fail([]error{ErrEmptyToken})
	}

	return nil
}

func (v *EntityValidator) validateCreateUserRequest(request models.CreateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCPF, FieldEmail, FieldPassword}
	}

	var violations []error
	for _, f := range fields {
		switch f {
		case FieldName:
			if request.Name == "" {
				violations = append(violations, ErrEmptyName)
			}
		case FieldCPF:
			if !isValidCPF(request.CPF) {
				violations = append(violations, ErrInvalidCPF)
			}
		case FieldEmail:
			if !isValidEmail(request.Email) {
				violations = append(violations, violationFor(request.Email == "", ErrEmptyEmail, ErrInvalidEmail))
			}
		case FieldPassword:
			if len(request.Password) < minPasswordLength {
				violations = append(violations, ErrShortPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return fail(violations)
}

func (v *EntityValidator) validateUserUpdate(update models.UserUpdate) error {
	if update.Name == nil && update.Email == nil {
		return fail([]error{ErrNothingToUpdate})
	}

	var violations []error
	if update.Name != nil && *update.Name == "" {
		violations = append(violations, ErrEmptyName)
	}
	if update.Email != nil && !isValidEmail(*update.Email) {
		violations = append(violations, violationFor(*update.Email == "", ErrEmptyEmail, ErrInvalidEmail))
	}

	return fail(violations)
}

func (v *EntityValidator) validateCreateAddressRequest(request models.CreateAddressRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStreet, FieldNumber, FieldCity, FieldState, FieldZipCode, FieldCountry}
	}

	var violations []error
	for _, f := range fields {
		switch f {
		case FieldStreet:
			if request.Street == "" {
				violations = append(violations, ErrEmptyStreet)
			}
		case FieldNumber:
			if request.Number <= 0 {
				violations = append(violations, ErrInvalidNumber)
			}
		case FieldCity:
			if request.City == "" {
				violations = append(violations, ErrEmptyCity)
			}
		case FieldState:
			if request.State == "" {
				violations = append(violations, ErrEmptyState)
			}
		case FieldZipCode:
			if request.ZipCode == "" {
				violations = append(violations, ErrEmptyZipCode)
			}
		case FieldCountry:
			if request.Country == "" {
				violations = append(violations, ErrEmptyCountry)
			}
		default:
			return ErrUnknownField
		}
	}

	return fail(violations)
}

func (v *EntityValidator) validateAddressUpdate(update models.AddressUpdate) error {
	if update.Street == nil && update.Number == nil && update.City == nil &&
		update.State == nil && update.ZipCode == nil && update.Country == nil &&
		update.Complement == nil && update.Landmark == nil {
		return fail([]error{ErrNothingToUpdate})
	}

	var violations []error
	if update.Street != nil && *update.Street == "" {
		violations = append(violations, ErrEmptyStreet)
	}
	if update.Number != nil && *update.Number <= 0 {
		violations = append(violations, ErrInvalidNumber)
	}
	if update.City != nil && *update.City == "" {
		violations = append(violations, ErrEmptyCity)
	}
	if update.State != nil && *update.State == "" {
		violations = append(violations, ErrEmptyState)
	}
	if update.ZipCode != nil && *update.ZipCode == "" {
		violations = append(violations, ErrEmptyZipCode)
	}
	if update.Country != nil && *update.Country == "" {
		violations = append(violations, ErrEmptyCountry)
	}

	return fail(violations)
}

func violationFor(isEmpty bool, emptyErr, invalidErr error) error {
	if isEmpty {
		return emptyErr
	}
	return invalidErr
}
