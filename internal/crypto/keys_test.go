package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecret(t *testing.T) {
	secret1, err := GenerateSecret()
	require.NoError(t, err)
	assert.Len(t, secret1, SecretSize)

	secret2, err := GenerateSecret()
	require.NoError(t, err)

	// Два вызова должны давать разные секреты
	assert.NotEqual(t, secret1, secret2)
}

func TestDeriveCacheKey(t *testing.T) {
	secret, err := GenerateSecret()
	require.NoError(t, err)
	salt, err := GenerateSalt()
	require.NoError(t, err)

	tests := []struct {
		name    string
		errMsg  string
		secret  []byte
		salt    []byte
		wantErr bool
	}{
		{
			name:   "successful derivation",
			secret: secret,
			salt:   salt,
		},
		{
			name:    "empty secret",
			secret:  nil,
			salt:    salt,
			wantErr: true,
			errMsg:  "device secret cannot be empty",
		},
		{
			name:    "empty salt",
			secret:  secret,
			salt:    nil,
			wantErr: true,
			errMsg:  "salt cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveCacheKey(tt.secret, tt.salt)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
				assert.Len(t, key, KeyLen)
			}
		})
	}
}

func TestDeriveCacheKey_Determinism(t *testing.T) {
	secret := []byte("device-secret-for-test-012345678")
	salt := []byte("salt-for-test-0123456789abcdef01")

	key1, err := DeriveCacheKey(secret, salt)
	require.NoError(t, err)

	key2, err := DeriveCacheKey(secret, salt)
	require.NoError(t, err)

	// Одинаковые входы дают одинаковый ключ
	assert.Equal(t, key1, key2)

	// Другая соль дает другой ключ
	otherSalt := []byte("other-salt-0123456789abcdef01234")
	key3, err := DeriveCacheKey(secret, otherSalt)
	require.NoError(t, err)
	assert.NotEqual(t, key1, key3)
}
