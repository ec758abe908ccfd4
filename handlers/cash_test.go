package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"pizzeria-pos/models"
)

func TestCashSessionLifecycle(t *testing.T) {
	router, db := setupRouter(t, "cash_lifecycle")
	_, staffToken := createUser(t, db, "Maria Caixa", "maria@example.com", models.RoleCashier)
	_, customerToken := createUser(t, db, "João Silva", "joao@example.com", models.RoleCustomer)

	t.Run("open creates an OPEN entry", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/cash/open", staffToken, map[string]interface{}{
			"amount": 150.00,
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		entry := body["entry"].(map[string]interface{})
		assert.Equal(t, string(models.CashOpen), entry["type"])
		assert.Equal(t, "Abertura do caixa", entry["description"])
	})

	t.Run("double open is rejected", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/cash/open", staffToken, map[string]interface{}{
			"amount": 10.00,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("close ends the session", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/cash/close", staffToken, map[string]interface{}{
			"amount":      150.00,
			"description": "Fim do turno",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		entry := body["entry"].(map[string]interface{})
		assert.Equal(t, string(models.CashClose), entry["type"])
		assert.Equal(t, "Fim do turno", entry["description"])
	})

	t.Run("close without an open session is rejected", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/cash/close", staffToken, map[string]interface{}{
			"amount": 0.0,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("customers cannot touch the ledger", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/cash/open", customerToken, map[string]interface{}{
			"amount": 1.00,
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetCashLog(t *testing.T) {
	router, db := setupRouter(t, "cash_log")
	_, staffToken := createUser(t, db, "Maria Caixa", "maria@example.com", models.RoleCashier)

	entries := []models.CashLog{
		{Type: models.CashOpen, Amount: 100.00, Description: "Abertura do caixa"},
		{Type: models.CashOrder, Amount: 67.30, Description: "Pedido confirmado"},
		{Type: models.CashOrderPrinted, Amount: 0, Description: "Comanda impressa"},
		{Type: models.CashOrder, Amount: -67.30, Description: "Pedido cancelado"},
	}
	for i := range entries {
		assert.NoError(t, db.Create(&entries[i]).Error)
	}

	t.Run("lists everything with a running balance", func(t *testing.T) {
		rec := performRequest(router, http.MethodGet, "/api/cash/log", staffToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.EqualValues(t, 4, body["count"])
		assert.InDelta(t, 100.00, body["balance"].(float64), 0.001)
	})

	t.Run("filters by entry type without narrowing the balance", func(t *testing.T) {
		rec := performRequest(router, http.MethodGet, "/api/cash/log?type=ORDER", staffToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.EqualValues(t, 2, body["count"])
		assert.InDelta(t, 100.00, body["balance"].(float64), 0.001)
	})

	t.Run("zero-amount entries do not hide the ledger balance", func(t *testing.T) {
		rec := performRequest(router, http.MethodGet, "/api/cash/log?type=ORDER_PRINTED", staffToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.EqualValues(t, 1, body["count"])
		assert.InDelta(t, 100.00, body["balance"].(float64), 0.001)
	})
}
