package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"pizzeria-pos/models"
)

func TestRegister(t *testing.T) {
	router, _ := setupRouter(t, "auth_register")

	payload := map[string]interface{}{
		"name":     "João Silva",
		"email":    "joao@example.com",
		"password": "segredo123",
		"role":     "CUSTOMER",
		"phone":    "88999990000",
	}

	t.Run("creates a user and returns a token", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/auth/register", "", payload)
		assert.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.NotEmpty(t, body["token"])
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/auth/register", "", payload)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
			"name":     "Hacker",
			"email":    "hacker@example.com",
			"password": "segredo123",
			"role":     "SUPERUSER",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
			"name":     "Ana",
			"email":    "ana@example.com",
			"password": "123",
			"role":     "CUSTOMER",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	router, db := setupRouter(t, "auth_login")
	createUser(t, db, "Maria Caixa", "maria@example.com", models.RoleCashier)

	t.Run("valid credentials return a token", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
			"email":    "maria@example.com",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.NotEmpty(t, body["token"])
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
			"email":    "maria@example.com",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
			"email":    "ghost@example.com",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetProfile(t *testing.T) {
	router, db := setupRouter(t, "auth_profile")
	_, token := createUser(t, db, "João Silva", "joao@example.com", models.RoleCustomer)

	rec := performRequest(router, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "joao@example.com", user["email"])
	assert.Nil(t, user["password"])
}
