package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustgate/pkg/apperr"
)

func TestService_GenerateAndValidate(t *testing.T) {
	svc := NewService("test-signing-key", "trustgate", "trustgate-admin")

	token, err := svc.Generate("ops@example.com", RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "trustgate", claims.Issuer)
}

func TestService_RejectsExpiredToken(t *testing.T) {
	svc := NewService("test-signing-key", "trustgate", "trustgate-admin")

	token, err := svc.Generate("ops@example.com", RoleAdmin, -time.Minute)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeUnauthorized, apperr.CodeOf(err))
}

func TestService_RejectsWrongKey(t *testing.T) {
	svc := NewService("test-signing-key", "trustgate", "trustgate-admin")
	other := NewService("different-key", "trustgate", "trustgate-admin")

	token, err := other.Generate("ops@example.com", RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeUnauthorized, apperr.CodeOf(err))
}

func TestService_RejectsGarbage(t *testing.T) {
	svc := NewService("test-signing-key", "trustgate", "trustgate-admin")

	_, err := svc.Validate("not-a-token")
	require.Error(t, err)
}
