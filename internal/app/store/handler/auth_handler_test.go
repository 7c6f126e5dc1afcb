package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/repository"
	"cuervostore/internal/app/store/repository/mocks"
	"cuervostore/internal/app/store/service"
	"cuervostore/internal/app/store/util"
	"cuervostore/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitWithWriter("store", "error", io.Discard)
	os.Exit(m.Run())
}

// mailSinkMock молча принимает любые уведомления
type mailSinkMock struct {
	mock.Mock
}

func (m *mailSinkMock) QueueMessage(ctx context.Context, to, subject, body, token string) error {
	return nil
}

func (m *mailSinkMock) Close() error {
	return nil
}

// Хелперы для создания тестового окружения

func newTestAuthHandler() (*AuthHandler, *mocks.MockUserRepository, *mocks.MockSessionRepository, *util.SessionTokenManager) {
	userRepo := new(mocks.MockUserRepository)
	sessionRepo := new(mocks.MockSessionRepository)
	tokens := util.NewSessionTokenManager("test-secret-key", time.Hour)

	authService := service.NewAuthService(userRepo, sessionRepo, new(mailSinkMock), tokens)
	h := NewAuthHandler(authService)

	return h, userRepo, sessionRepo, tokens
}

// setupTestRouter создаёт тестовый Gin router с одним хендлером
func setupTestRouter(method, path string, handlerFunc gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	switch method {
	case http.MethodGet:
		router.GET(path, handlerFunc)
	case http.MethodPost:
		router.POST(path, handlerFunc)
	case http.MethodPut:
		router.PUT(path, handlerFunc)
	case http.MethodDelete:
		router.DELETE(path, handlerFunc)
	}
	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func storedUser(email, password string) *entity.User {
	hash, _ := util.HashPassword(password)
	return &entity.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleBuyer,
		Confirmed:    true,
		CreatedAt:    time.Now(),
	}
}

// ==================== Register Tests ====================

func TestAuthHandler_Register_Success(t *testing.T) {
	// Arrange
	h, userRepo, _, _ := newTestAuthHandler()

	userRepo.On("GetByEmail", mock.Anything, "newuser@example.com").Return(nil, repository.ErrNotFound)
	userRepo.On("GetAll", mock.Anything).Return([]entity.User{})
	userRepo.On("ReplaceAll", mock.Anything, mock.AnythingOfType("[]entity.User")).Return(nil)

	router := setupTestRouter(http.MethodPost, "/auth/register", h.Register)

	// Act
	w := performJSON(t, router, http.MethodPost, "/auth/register", entity.RegisterRequest{
		Name:     "New User",
		Email:    "newuser@example.com",
		Password: "password123",
	})

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp entity.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "newuser@example.com", resp.User.Email)
	assert.Len(t, resp.ConfirmToken, 8)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	// Arrange
	h, userRepo, _, _ := newTestAuthHandler()

	existing := storedUser("taken@example.com", "password123")
	userRepo.On("GetByEmail", mock.Anything, "taken@example.com").Return(existing, nil)

	router := setupTestRouter(http.MethodPost, "/auth/register", h.Register)

	// Act
	w := performJSON(t, router, http.MethodPost, "/auth/register", entity.RegisterRequest{
		Name:     "New User",
		Email:    "taken@example.com",
		Password: "password123",
	})

	// Assert
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	// Arrange - пароль короче восьми символов
	h, _, _, _ := newTestAuthHandler()
	router := setupTestRouter(http.MethodPost, "/auth/register", h.Register)

	// Act
	w := performJSON(t, router, http.MethodPost, "/auth/register", entity.RegisterRequest{
		Name:     "New User",
		Email:    "newuser@example.com",
		Password: "short",
	})

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ==================== Login Tests ====================

func TestAuthHandler_Login_Success(t *testing.T) {
	// Arrange
	h, userRepo, sessionRepo, tokens := newTestAuthHandler()

	user := storedUser("test@example.com", "password123")
	userRepo.On("GetByEmail", mock.Anything, "test@example.com").Return(user, nil)
	sessionRepo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil)

	router := setupTestRouter(http.MethodPost, "/auth/login", h.Login)

	// Act
	w := performJSON(t, router, http.MethodPost, "/auth/login", entity.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var resp entity.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.Session.User.ID)

	_, err := tokens.Validate(resp.SessionToken)
	assert.NoError(t, err)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	// Arrange
	h, userRepo, _, _ := newTestAuthHandler()

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrNotFound)

	router := setupTestRouter(http.MethodPost, "/auth/login", h.Login)

	// Act
	w := performJSON(t, router, http.MethodPost, "/auth/login", entity.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_NotConfirmed(t *testing.T) {
	// Arrange
	h, userRepo, _, _ := newTestAuthHandler()

	user := storedUser("test@example.com", "password123")
	user.Confirmed = false
	userRepo.On("GetByEmail", mock.Anything, "test@example.com").Return(user, nil)

	router := setupTestRouter(http.MethodPost, "/auth/login", h.Login)

	// Act
	w := performJSON(t, router, http.MethodPost, "/auth/login", entity.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})

	// Assert
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthHandler_Login_Banned(t *testing.T) {
	// Arrange
	h, userRepo, _, _ := newTestAuthHandler()

	user := storedUser("test@example.com", "password123")
	user.Banned = true
	userRepo.On("GetByEmail", mock.Anything, "test@example.com").Return(user, nil)

	router := setupTestRouter(http.MethodPost, "/auth/login", h.Login)

	// Act
	w := performJSON(t, router, http.MethodPost, "/auth/login", entity.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})

	// Assert
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// ==================== Confirm Tests ====================

func TestAuthHandler_Confirm_InvalidToken(t *testing.T) {
	// Arrange
	h, userRepo, _, _ := newTestAuthHandler()

	userRepo.On("GetByConfirmToken", mock.Anything, "WRONG000").Return(nil, repository.ErrNotFound)

	router := setupTestRouter(http.MethodPost, "/auth/confirm", h.Confirm)

	// Act
	w := performJSON(t, router, http.MethodPost, "/auth/confirm", entity.ConfirmRequest{Token: "WRONG000"})

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
