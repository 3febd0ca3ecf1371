package utils

import (
	"testing"

	"Backend-VentureHR/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	token, err := GenerateJWT("64f1b2c3d4e5f60718293a4b", "emp@venturehr.io", models.RoleEmployee, "EMP001")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1b2c3d4e5f60718293a4b", claims.UserID)
	assert.Equal(t, "emp@venturehr.io", claims.Email)
	assert.Equal(t, models.RoleEmployee, claims.Role)
	assert.Equal(t, "EMP001", claims.EmployeeCode)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	token, err := GenerateJWT("id", "emp@venturehr.io", models.RoleHR, "")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another_secret")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestParseJWTEmptyToken(t *testing.T) {
	_, err := ParseJWT("")
	assert.Error(t, err)
}

func TestGenerateRandomStringLength(t *testing.T) {
	s := GenerateRandomString(32)
	assert.Len(t, s, 32)
	assert.NotEqual(t, s, GenerateRandomString(32))
}
