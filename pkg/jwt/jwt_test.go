package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcondori/api-saltenas/pkg/jwt"
)

func TestParse_TokenValido(t *testing.T) {
	token, err := jwt.Generate("secreto", "user-1", "admin", time.Hour)
	require.NoError(t, err)

	subject, role, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
	assert.Equal(t, "admin", role)
}

func TestParse_FirmaConOtroSecret(t *testing.T) {
	token, err := jwt.Generate("secreto-a", "user-1", "admin", time.Hour)
	require.NoError(t, err)

	_, _, err = jwt.Parse("secreto-b", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate("secreto", "user-1", "admin", -time.Minute)
	require.NoError(t, err)

	_, _, err = jwt.Parse("secreto", token)
	assert.Error(t, err)
}

func TestParse_SecretVacio(t *testing.T) {
	_, _, err := jwt.Parse("", "lo-que-sea")
	assert.Error(t, err)
}

func TestParse_Basura(t *testing.T) {
	_, _, err := jwt.Parse("secreto", "no.es.jwt")
	assert.Error(t, err)
}
