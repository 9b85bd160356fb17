package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPrincipalIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalIDCtxKey, "principal-1")

	id, ok := GetPrincipalIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "principal-1", id)
}

func TestGetPrincipalIDFromContext_Missing(t *testing.T) {
	_, ok := GetPrincipalIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetPrincipalIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalIDCtxKey, 42)

	_, ok := GetPrincipalIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetPrincipalEmailFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalEmailCtxKey, "a@x.com")

	email, ok := GetPrincipalEmailFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "a@x.com", email)
}
