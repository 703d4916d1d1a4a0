package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SecretsDir - каталог Docker Secrets. Переменная, чтобы тесты могли подменить путь.
var SecretsDir = "/run/secrets"

var (
	ErrSecretNotFound = errors.New("secret not found")
	ErrSecretEmpty    = errors.New("secret is empty")
)

// ReadSecret читает секрет из файла в каталоге Docker Secrets.
func ReadSecret(secretName string) (string, error) {
	filePath := filepath.Join(SecretsDir, secretName)
	secretBytes, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSecretNotFound, filePath)
		}
		return "", fmt.Errorf("failed to read secret file %s: %w", filePath, err)
	}
	secret := strings.TrimSpace(string(secretBytes))
	if secret == "" {
		return "", fmt.Errorf("%w: %s", ErrSecretEmpty, filePath)
	}
	return secret, nil
}

// ReadOptionalSecret как ReadSecret, но отсутствующий или пустой секрет не ошибка.
func ReadOptionalSecret(secretName string) (string, bool, error) {
	secret, err := ReadSecret(secretName)
	if err == nil {
		return secret, true, nil
	}
	if errors.Is(err, ErrSecretNotFound) || errors.Is(err, ErrSecretEmpty) {
		return "", false, nil
	}
	return "", false, err
}
