package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	tok, err := Generate("s3cret", "user-1", RoleAdmin, "tienda-api", 5)
	require.NoError(t, err)

	userID, role, err := Parse("s3cret", "tienda-api", tok)

	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, RoleAdmin, role)
}

func TestParse_Rechazos(t *testing.T) {
	tok, err := Generate("s3cret", "user-1", RoleAdmin, "tienda-api", 5)
	require.NoError(t, err)
	expired, err := Generate("s3cret", "user-1", RoleAdmin, "tienda-api", -1)
	require.NoError(t, err)

	tests := []struct {
		name, secret, issuer, token string
	}{
		{"secret distinto", "otro", "", tok},
		{"emisor distinto", "s3cret", "otro-emisor", tok},
		{"expirado", "s3cret", "", expired},
		{"basura", "s3cret", "", "no.es.jwt"},
		{"secret vacío", "", "", tok},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.secret, tt.issuer, tt.token)
			assert.Error(t, err)
		})
	}
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", "user-1", RoleAdmin, "", 5)
	assert.Error(t, err)
}
