package util

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost - стоимость bcrypt для хэшей паролей покупателей
const passwordHashCost = bcrypt.DefaultCost

// HashPassword возвращает bcrypt-хэш пароля для хранения в профиле пользователя
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword сверяет пароль с сохранённым хэшем
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
