package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id для выведения ключа шифрования кэша
const (
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4
	// KeyLen - длина выходного ключа в байтах
	KeyLen = 32
	// SecretSize - размер device secret в байтах
	SecretSize = 32
	// SaltSize - размер соли в байтах
	SaltSize = 32
)

// GenerateSecret генерирует криптографически случайный device secret.
// Secret создается один раз при первом запуске и хранится рядом с локальной БД.
func GenerateSecret() ([]byte, error) {
	secret := make([]byte, SecretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}
	return secret, nil
}

// GenerateSalt генерирует криптографически случайную соль
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// DeriveCacheKey выводит ключ шифрования durable-кэша из device secret.
// Токены downstream-сервисов не лежат в BoltDB открытым текстом: при
// краже файла БД без device secret они бесполезны.
func DeriveCacheKey(deviceSecret, salt []byte) ([]byte, error) {
	if len(deviceSecret) == 0 {
		return nil, fmt.Errorf("device secret cannot be empty")
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("salt cannot be empty")
	}

	key := argon2.IDKey(deviceSecret, salt, Argon2Time, Argon2Memory, Argon2Threads, KeyLen)
	return key, nil
}
