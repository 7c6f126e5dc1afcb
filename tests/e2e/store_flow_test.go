//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"cuervostore/internal/app/store/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseURL - адрес запущенного магазина.
// Для E2E тестов сервис должен быть запущен вместе с Redis
func baseURL() string {
	if url := os.Getenv("STORE_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

func postJSON(t *testing.T, client *http.Client, path, token string, body interface{}, out interface{}) *http.Response {
	t.Helper()
	return doJSON(t, client, http.MethodPost, path, token, body, out)
}

func doJSON(t *testing.T, client *http.Client, method, path, token string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, baseURL()+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)

	if out != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// TestFullStoreFlow тестирует полный цикл покупки:
// 1. Регистрация нового покупателя
// 2. Подтверждение аккаунта по коду
// 3. Вход
// 4. Просмотр каталога
// 5. Корзина и оформление заказа
// 6. Просмотр своих заказов
// 7. Logout и проверка что токен больше не работает
func TestFullStoreFlow(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}

	email := fmt.Sprintf("e2e-buyer-%d@example.com", time.Now().UnixNano())
	password := "securepassword123"

	// ==================== Step 1: Register ====================
	t.Log("Step 1: Registering new buyer")

	var regResp entity.RegisterResponse
	resp := postJSON(t, client, "/auth/register", "", entity.RegisterRequest{
		Name:     "E2E Buyer",
		Email:    email,
		Password: password,
	}, &regResp)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, regResp.ConfirmToken, 8)

	// ==================== Step 2: Confirm ====================
	t.Log("Step 2: Confirming account")

	resp = postJSON(t, client, "/auth/confirm", "", entity.ConfirmRequest{Token: regResp.ConfirmToken}, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// ==================== Step 3: Login ====================
	t.Log("Step 3: Logging in")

	var loginResp entity.LoginResponse
	resp = postJSON(t, client, "/auth/login", "", entity.LoginRequest{
		Email:    email,
		Password: password,
	}, &loginResp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, loginResp.SessionToken)

	token := loginResp.SessionToken

	// ==================== Step 4: Browse catalog ====================
	t.Log("Step 4: Browsing catalog")

	var catalog entity.ProductListResponse
	resp = doJSON(t, client, http.MethodGet, "/products", "", nil, &catalog)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, catalog.Products, "catalog should have seeded products")

	product := catalog.Products[0]

	// ==================== Step 5: Cart and checkout ====================
	t.Log("Step 5: Adding to cart and checking out")

	var cart entity.CartResponse
	resp = postJSON(t, client, "/cart/items", token, entity.AddCartItemRequest{
		ProductID: product.ID,
		Qty:       2,
	}, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, cart.Count)

	var order entity.Order
	resp = postJSON(t, client, "/orders/checkout", token, entity.CheckoutRequest{
		Address: "Av. Reforma 1, CDMX",
		Payment: entity.PaymentRequest{
			CardNumber: "4111111111111234",
			Holder:     "E2E BUYER",
			Expiry:     "12/30",
			CVV:        "123",
		},
	}, &order)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	assert.Equal(t, product.Price*2, order.Total)
	assert.Equal(t, "****1234", order.Payment.CardNumber)

	// ==================== Step 6: Orders list ====================
	t.Log("Step 6: Listing own orders")

	var orders entity.OrderListResponse
	resp = doJSON(t, client, http.MethodGet, "/orders", token, nil, &orders)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, orders.Total)
	assert.Equal(t, order.ID, orders.Orders[0].ID)

	// ==================== Step 7: Logout ====================
	t.Log("Step 7: Logging out")

	resp = postJSON(t, client, "/auth/logout", token, nil, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, client, http.MethodGet, "/auth/me", token, nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "token must die with the session")
}

// TestHealthAndMetrics проверяет служебные эндпоинты
func TestHealthAndMetrics(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}

	resp, err := client.Get(baseURL() + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := client.Get(baseURL() + "/metrics")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}
