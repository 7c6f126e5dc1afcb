package handler

import (
	"net/http"
	"strings"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/service"
	"cuervostore/internal/app/store/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "session"

// AuthMiddleware проверяет session токен и поднимает сессию из хранилища.
// Подпись токена - только пропуск к сессии: удалённая при logout сессия
// делает токен недействительным
type AuthMiddleware struct {
	tokens      *util.SessionTokenManager
	authService service.AuthServiceInterface
}

// NewAuthMiddleware создает middleware аутентификации
func NewAuthMiddleware(tokens *util.SessionTokenManager, authService service.AuthServiceInterface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:      tokens,
		authService: authService,
	}
}

func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.tokens.Validate(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			c.Abort()
			return
		}

		sessionID, err := uuid.Parse(claims.SessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token claims"})
			c.Abort()
			return
		}

		session, err := m.authService.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer active"})
			c.Abort()
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// RequireRole пропускает только пользователей с одной из перечисленных ролей
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionFrom(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if session.User.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		c.Abort()
	}
}

// sessionFrom достаёт сессию текущего запроса из контекста gin
func sessionFrom(c *gin.Context) *entity.Session {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	session, ok := value.(*entity.Session)
	if !ok {
		return nil
	}
	return session
}
