package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, "test-secret")
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Jo@Example.com", "hunter22", "Jo")
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "jo@example.com", reg.Email)

	login, err := svc.Login(ctx, "jo@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, login.UserID)

	_, err = svc.Login(ctx, "jo@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, "jo@example.com", "hunter22", "Jo")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "JO@example.com", "other", "Jo Again")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestValidateToken(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, "test-secret")
	ctx := context.Background()

	reg, err := svc.Register(ctx, "jo@example.com", "hunter22", "Jo")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, claims.UserID)
	assert.Equal(t, "jo@example.com", claims.Email)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// A token signed with a different secret must not validate.
	other := NewAuthService(&fakeUserRepo{}, "other-secret")
	_, err = other.ValidateToken(reg.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
