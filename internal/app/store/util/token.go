package util

import (
	"crypto/rand"
	"math/big"
)

const (
	confirmTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	confirmTokenLength   = 8
)

// NewConfirmToken генерирует одноразовый код подтверждения аккаунта:
// 8 символов, заглавные буквы и цифры
func NewConfirmToken() string {
	buf := make([]byte, confirmTokenLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(confirmTokenAlphabet))))
		if err != nil {
			// crypto/rand на поддерживаемых платформах не возвращает ошибок
			panic(err)
		}
		buf[i] = confirmTokenAlphabet[n.Int64()]
	}
	return string(buf)
}
