package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/bizdash/pkg/jwt"
)

func TestInspect_LeeClaimsSinSecreto(t *testing.T) {
	tok, err := pkgjwt.Sign("backend-secret", "42", "owner@shop.co.ke", time.Hour)
	require.NoError(t, err)

	claims, err := pkgjwt.Inspect(tok)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "owner@shop.co.ke", claims.Email)
}

func TestExpiresAt_TokenOpaco(t *testing.T) {
	_, ok := pkgjwt.ExpiresAt("not-a-jwt")
	assert.False(t, ok)
	assert.False(t, pkgjwt.Expired("not-a-jwt", time.Now()), "un token opaco nunca se da por expirado")
}

func TestExpired(t *testing.T) {
	tok, err := pkgjwt.Sign("s", "1", "", -time.Minute)
	require.NoError(t, err)
	assert.True(t, pkgjwt.Expired(tok, time.Now()))

	fresh, err := pkgjwt.Sign("s", "1", "", time.Hour)
	require.NoError(t, err)
	assert.False(t, pkgjwt.Expired(fresh, time.Now()))
}

func TestSign_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Sign("", "1", "", time.Hour)
	assert.Error(t, err)
}
