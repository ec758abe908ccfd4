package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"pizzeria-pos/models"
)

func TestDeliveryAreas(t *testing.T) {
	router, db := setupRouter(t, "delivery_areas")
	_, adminToken := createUser(t, db, "Dono", "dono@example.com", models.RoleAdmin)
	_, customerToken := createUser(t, db, "João Silva", "joao@example.com", models.RoleCustomer)

	t.Run("admin creates an area", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/delivery-areas", adminToken, map[string]interface{}{
			"name":         "Centro",
			"city":         "Juazeiro do Norte",
			"state":        "CE",
			"delivery_fee": 7.00,
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		area := body["area"].(map[string]interface{})
		assert.InDelta(t, 7.00, area["delivery_fee"].(float64), 0.001)
		assert.True(t, area["is_active"].(bool))
	})

	t.Run("duplicate name in the same city conflicts", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/delivery-areas", adminToken, map[string]interface{}{
			"name":         "Centro",
			"city":         "Juazeiro do Norte",
			"state":        "CE",
			"delivery_fee": 9.00,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("negative fee is rejected", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/delivery-areas", adminToken, map[string]interface{}{
			"name":         "Brumado",
			"city":         "Juazeiro do Norte",
			"state":        "CE",
			"delivery_fee": -3.00,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("customers cannot create areas", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/api/delivery-areas", customerToken, map[string]interface{}{
			"name":         "Salesianos",
			"city":         "Juazeiro do Norte",
			"state":        "CE",
			"delivery_fee": 8.00,
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("public list shows only active areas", func(t *testing.T) {
		inactive := models.DeliveryArea{Name: "Área Antiga", City: "Juazeiro do Norte", State: "CE", DeliveryFee: 5.00, IsActive: false}
		assert.NoError(t, db.Create(&inactive).Error)

		rec := performRequest(router, http.MethodGet, "/api/delivery-areas", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.EqualValues(t, 1, body["count"])
		area := body["areas"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "Centro", area["name"])
	})
}

func TestDeliveryFeeComesFromTheArea(t *testing.T) {
	router, db := setupRouter(t, "delivery_fee_resolution")
	customer, customerToken := createUser(t, db, "João Silva", "joao@example.com", models.RoleCustomer)

	pizza := models.Combo{Name: "Pizza Grande", Price: 22.90, IsPizza: true, IsActive: true}
	assert.NoError(t, db.Create(&pizza).Error)

	area := models.DeliveryArea{Name: "Centro", City: "Juazeiro do Norte", State: "CE", DeliveryFee: 7.00, IsActive: true}
	assert.NoError(t, db.Create(&area).Error)

	inArea := models.Address{UserID: customer.ID, Street: "Rua das Flores", Number: "123", Neighborhood: "Centro", City: "Juazeiro do Norte", State: "CE"}
	outside := models.Address{UserID: customer.ID, Street: "Sítio Distante", Number: "s/n", Neighborhood: "Zona Rural", City: "Juazeiro do Norte", State: "CE"}
	assert.NoError(t, db.Create(&inArea).Error)
	assert.NoError(t, db.Create(&outside).Error)

	placeOrder := func(addressID string, fee float64) *httptest.ResponseRecorder {
		return performRequest(router, http.MethodPost, "/api/orders", customerToken, map[string]interface{}{
			"delivery_type":  "DELIVERY",
			"payment_method": "PIX",
			"address_id":     addressID,
			"delivery_fee":   fee,
			"items": []map[string]interface{}{
				{"combo_id": pizza.ID, "quantity": 1},
			},
		})
	}

	t.Run("the registered area fee overrides the client value", func(t *testing.T) {
		rec := placeOrder(inArea.ID, 0.01)
		assert.Equal(t, http.StatusCreated, rec.Code)

		order := decodeBody(t, rec)["order"].(map[string]interface{})
		assert.InDelta(t, 29.90, order["total"].(float64), 0.001)
	})

	t.Run("addresses outside every area fall back to the client fee", func(t *testing.T) {
		rec := placeOrder(outside.ID, 12.00)
		assert.Equal(t, http.StatusCreated, rec.Code)

		order := decodeBody(t, rec)["order"].(map[string]interface{})
		assert.InDelta(t, 34.90, order["total"].(float64), 0.001)
	})

	t.Run("negative fees are rejected", func(t *testing.T) {
		rec := placeOrder(outside.ID, -5.00)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
