package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := CreateToken(userID, "admin")
	assert.NoError(t, err)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Empty(t, claims.Subject)
}

func TestRefreshTokenCarriesSubject(t *testing.T) {
	token, err := CreateRefreshToken(uuid.New(), "user")
	assert.NoError(t, err)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "refresh", claims.Subject)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := CreateToken(uuid.New(), "user")
	assert.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}
