//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cuervostore/internal/app/store/entity"
	"cuervostore/internal/app/store/handler"
	"cuervostore/internal/app/store/infrastructure/mailbox"
	"cuervostore/internal/app/store/repository"
	"cuervostore/internal/app/store/service"
	"cuervostore/internal/app/store/util"
	"cuervostore/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// StoreIntegrationTestSuite поднимает полный стек магазина
// поверх in-memory Redis, без внешних зависимостей
type StoreIntegrationTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	kv     *util.KVStore
	router http.Handler
}

// SetupSuite выполняется один раз перед всеми тестами
func (s *StoreIntegrationTestSuite) SetupSuite() {
	logger.InitWithWriter("store", "error", io.Discard)

	mr, err := miniredis.Run()
	require.NoError(s.T(), err)
	s.mr = mr

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.kv = util.NewKVStoreWithClient(client)

	// Репозитории
	userRepo := repository.NewUserRepository(s.kv)
	productRepo := repository.NewProductRepository(s.kv)
	orderRepo := repository.NewOrderRepository(s.kv)
	cartRepo := repository.NewCartRepository(s.kv)
	sessionRepo := repository.NewSessionRepository(s.kv)
	messageRepo := repository.NewMessageRepository(s.kv)

	// Письма складываются в хранилище
	mailer := mailbox.NewMailer(messageRepo)

	tokens := util.NewSessionTokenManager("integration-secret", time.Hour)

	// Сервисы
	authService := service.NewAuthService(userRepo, sessionRepo, mailer, tokens)
	catalogService := service.NewCatalogService(productRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, cartRepo)
	messageService := service.NewMessageService(messageRepo)

	// Демо-данные
	seedService := service.NewSeedService(s.kv, userRepo, productRepo)
	require.NoError(s.T(), seedService.Seed(context.Background()))

	// Handlers и router
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService, messageService)
	authMiddleware := handler.NewAuthMiddleware(tokens, authService)

	s.router = handler.SetupRoutes(authHandler, catalogHandler, cartHandler, orderHandler, authMiddleware)
}

// TearDownSuite выполняется один раз после всех тестов
func (s *StoreIntegrationTestSuite) TearDownSuite() {
	if s.kv != nil {
		s.kv.Close()
	}
	if s.mr != nil {
		s.mr.Close()
	}
}

// do выполняет запрос к тестовому роутеру
func (s *StoreIntegrationTestSuite) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.T().Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// login входит под существующим пользователем и возвращает session токен
func (s *StoreIntegrationTestSuite) login(email, password string) string {
	w := s.do(http.MethodPost, "/auth/login", "", entity.LoginRequest{
		Email:    email,
		Password: password,
	})
	require.Equal(s.T(), http.StatusOK, w.Code, "login as %s failed: %s", email, w.Body.String())

	var resp entity.LoginResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.SessionToken
}

// ==================== Seed Tests ====================

func (s *StoreIntegrationTestSuite) TestSeededCatalogIsVisible() {
	w := s.do(http.MethodGet, "/products", "", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	var resp entity.ProductListResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.GreaterOrEqual(s.T(), resp.Total, 6, "seed ships six approved demo products")
}

func (s *StoreIntegrationTestSuite) TestSeededDemoUsersCanLogin() {
	for _, creds := range []struct {
		email, password string
	}{
		{"admin@cuervostore.mx", "admin123"},
		{"ana@demo.com", "demo123"},
		{"carlos@demo.com", "demo123"},
	} {
		token := s.login(creds.email, creds.password)
		assert.NotEmpty(s.T(), token)
	}
}

// ==================== Full Purchase Flow ====================

func (s *StoreIntegrationTestSuite) TestFullPurchaseFlow() {
	t := s.T()
	email := fmt.Sprintf("buyer-%d@example.com", time.Now().UnixNano())

	// Регистрация: код подтверждения возвращается в ответе
	w := s.do(http.MethodPost, "/auth/register", "", entity.RegisterRequest{
		Name:     "Flow Buyer",
		Email:    email,
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var regResp entity.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &regResp))
	require.Len(t, regResp.ConfirmToken, 8)

	// Вход до подтверждения запрещён
	w = s.do(http.MethodPost, "/auth/login", "", entity.LoginRequest{Email: email, Password: "password123"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Подтверждение
	w = s.do(http.MethodPost, "/auth/confirm", "", entity.ConfirmRequest{Token: regResp.ConfirmToken})
	require.Equal(t, http.StatusOK, w.Code)

	// Повторное использование кода не проходит
	w = s.do(http.MethodPost, "/auth/confirm", "", entity.ConfirmRequest{Token: regResp.ConfirmToken})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	token := s.login(email, "password123")

	// Берём товар из каталога
	w = s.do(http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var catalog entity.ProductListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalog))
	require.NotEmpty(t, catalog.Products)

	product := catalog.Products[0]
	stockBefore := product.Stock

	// Кладём в корзину дважды - количество сливается
	w = s.do(http.MethodPost, "/cart/items", token, entity.AddCartItemRequest{ProductID: product.ID, Qty: 1})
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(http.MethodPost, "/cart/items", token, entity.AddCartItemRequest{ProductID: product.ID, Qty: 1})
	require.Equal(t, http.StatusOK, w.Code)

	var cart entity.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Qty)
	assert.Equal(t, product.Price*2, cart.Total)

	// Оформляем заказ
	w = s.do(http.MethodPost, "/orders/checkout", token, entity.CheckoutRequest{
		Address: "Av. Reforma 1, CDMX",
		Payment: entity.PaymentRequest{
			CardNumber: "4111111111111234",
			Holder:     "FLOW BUYER",
			Expiry:     "12/30",
			CVV:        "123",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order entity.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	assert.Equal(t, product.Price*2, order.Total)
	assert.Equal(t, "****1234", order.Payment.CardNumber)

	// Корзина очищена
	w = s.do(http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)

	// Остаток товара списан
	w = s.do(http.MethodGet, "/products/"+product.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var after entity.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
	assert.Equal(t, stockBefore-2, after.Stock)

	// Заказ виден в списке покупателя
	w = s.do(http.MethodGet, "/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orders entity.OrderListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Equal(t, 1, orders.Total)
	assert.Equal(t, order.ID, orders.Orders[0].ID)
}

// ==================== Seller / Moderation Flow ====================

func (s *StoreIntegrationTestSuite) TestSellerModerationFlow() {
	t := s.T()

	sellerToken := s.login("ana@demo.com", "demo123")
	adminToken := s.login("admin@cuervostore.mx", "admin123")

	// Продавец создаёт товар - он ждёт модерации
	w := s.do(http.MethodPost, "/products", sellerToken, entity.CreateProductRequest{
		Title:       "Hand-tooled leather wallet",
		Description: "Full-grain leather, hand stitched",
		Price:       39.9,
		Stock:       4,
		Category:    "leather",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created entity.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, entity.ProductStatusPending, created.Status)

	// В публичной выдаче товара нет
	w = s.do(http.MethodGet, "/products?q=wallet", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var found entity.ProductListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.Zero(t, found.Total)

	// Продавец видит его в своих товарах
	w = s.do(http.MethodGet, "/products/mine", sellerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.NotZero(t, found.Total)

	// Покупатель не может модерировать
	buyerToken := s.login("carlos@demo.com", "demo123")
	w = s.do(http.MethodPut, "/products/"+created.ID.String()+"/status", buyerToken,
		entity.SetProductStatusRequest{Status: entity.ProductStatusApproved})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Админ одобряет - товар появляется в выдаче
	w = s.do(http.MethodPut, "/products/"+created.ID.String()+"/status", adminToken,
		entity.SetProductStatusRequest{Status: entity.ProductStatusApproved})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/products?q=wallet", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.Equal(t, 1, found.Total)
}

// ==================== Session Tests ====================

func (s *StoreIntegrationTestSuite) TestLogoutInvalidatesToken() {
	t := s.T()

	token := s.login("carlos@demo.com", "demo123")

	w := s.do(http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Подпись токена всё ещё верна, но сессии больше нет
	w = s.do(http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// ==================== Mailbox Tests ====================

func (s *StoreIntegrationTestSuite) TestAdminSeesQueuedMail() {
	t := s.T()
	email := fmt.Sprintf("mail-%d@example.com", time.Now().UnixNano())

	w := s.do(http.MethodPost, "/auth/register", "", entity.RegisterRequest{
		Name:     "Mail User",
		Email:    email,
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var regResp entity.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &regResp))

	adminToken := s.login("admin@cuervostore.mx", "admin123")

	w = s.do(http.MethodGet, "/messages", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var messages entity.MessageListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))

	var found bool
	for _, msg := range messages.Messages {
		if msg.To == email {
			found = true
			assert.Equal(t, regResp.ConfirmToken, msg.Token)
		}
	}
	assert.True(t, found, "confirmation mail for %s should be queued", email)

	// Обычному пользователю почтовый ящик недоступен
	buyerToken := s.login("carlos@demo.com", "demo123")
	w = s.do(http.MethodGet, "/messages", buyerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StoreIntegrationTestSuite))
}
