package util

import (
	"errors"
	"fmt"
	"time"

	"cuervostore/internal/app/store/entity"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionClaims - полезная нагрузка session токена.
// Токен несёт только идентификаторы: состояние сессии живёт в хранилище,
// удаление сессии при logout делает токен бесполезным
type SessionClaims struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// SessionTokenManager подписывает и проверяет session токены
type SessionTokenManager struct {
	secretKey string
	duration  time.Duration
}

// NewSessionTokenManager создает менеджер session токенов
func NewSessionTokenManager(secretKey string, duration time.Duration) *SessionTokenManager {
	return &SessionTokenManager{
		secretKey: secretKey,
		duration:  duration,
	}
}

// Generate выписывает подписанный токен для сессии
func (m *SessionTokenManager) Generate(session *entity.Session) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		SessionID: session.ID.String(),
		UserID:    session.User.ID.String(),
		Role:      string(session.User.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Validate проверяет подпись и срок токена, возвращает claims
func (m *SessionTokenManager) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidSessionToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, ErrInvalidSessionToken
	}

	return claims, nil
}
