package crypto

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncrypt(t *testing.T) {
	// Генерируем валидный ключ (32 bytes)
	validKey := make([]byte, 32)
	_, _ = rand.Read(validKey)

	tests := []struct {
		name      string
		errMsg    string
		plaintext []byte
		key       []byte
		wantErr   bool
	}{
		{
			name:      "successful encryption",
			plaintext: []byte(`{"service_id":"fatsecret","token":"abc"}`),
			key:       validKey,
			wantErr:   false,
		},
		{
			name:      "empty plaintext",
			plaintext: []byte{},
			key:       validKey,
			wantErr:   true,
			errMsg:    "plaintext cannot be empty",
		},
		{
			name:      "invalid key length",
			plaintext: []byte("test"),
			key:       make([]byte, 16), // неправильная длина
			wantErr:   true,
			errMsg:    "encryption key must be 32 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := Encrypt(tt.plaintext, tt.key)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, encrypted)
			} else {
				require.NoError(t, err)
				// nonce (12) + ciphertext + auth_tag (16)
				assert.GreaterOrEqual(t, len(encrypted), 12+len(tt.plaintext)+16)
				assert.NotEqual(t, tt.plaintext, encrypted[12:])
			}
		})
	}
}

func TestDecrypt(t *testing.T) {
	validKey := make([]byte, 32)
	_, _ = rand.Read(validKey)

	plaintext := []byte("test token record")
	validEncrypted, err := Encrypt(plaintext, validKey)
	require.NoError(t, err)

	tests := []struct {
		name      string
		errMsg    string
		encrypted []byte
		key       []byte
		wantErr   bool
	}{
		{
			name:      "successful decryption",
			encrypted: validEncrypted,
			key:       validKey,
			wantErr:   false,
		},
		{
			name:      "encrypted data too short",
			encrypted: make([]byte, 5),
			key:       validKey,
			wantErr:   true,
			errMsg:    "encrypted data too short",
		},
		{
			name:      "wrong key",
			encrypted: validEncrypted,
			key:       make([]byte, 32), // другой ключ (все нули)
			wantErr:   true,
			errMsg:    "failed to decrypt",
		},
		{
			name:      "corrupted data",
			encrypted: append([]byte{}, validEncrypted[:len(validEncrypted)-1]...),
			key:       validKey,
			wantErr:   true,
			errMsg:    "failed to decrypt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decrypted, err := Decrypt(tt.encrypted, tt.key)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, decrypted)
			} else {
				require.NoError(t, err)
				assert.Equal(t, plaintext, decrypted)
			}
		})
	}
}

func TestEncrypt_Randomness(t *testing.T) {
	// Одинаковые данные шифруются по-разному из-за случайного nonce
	key := make([]byte, 32)
	_, _ = rand.Read(key)
	plaintext := []byte("same data")

	encrypted1, err := Encrypt(plaintext, key)
	require.NoError(t, err)

	encrypted2, err := Encrypt(plaintext, key)
	require.NoError(t, err)

	assert.NotEqual(t, encrypted1, encrypted2)
}
