package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pizzeria-pos/config"
	"pizzeria-pos/middleware"
	"pizzeria-pos/models"
	"pizzeria-pos/routes"
)

// setupRouter wires the full route table against a fresh in-memory
// SQLite database. Each test passes a distinct name so state never
// leaks between test functions.
func setupRouter(t *testing.T, dbName string) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}

	err = testDB.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Combo{},
		&models.PizzaFlavor{},
		&models.Order{},
		&models.OrderItem{},
		&models.CashLog{},
		&models.Notification{},
		&models.DeliveryPerson{},
		&models.DeliveryArea{},
	)
	if err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}

	originalDB := config.DB
	config.SetTestDB(testDB)
	t.Cleanup(func() {
		config.SetTestDB(originalDB)
	})

	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupRoutes(r)
	return r, testDB
}

// createUser seeds a user with the given role and returns it together
// with a valid bearer token
func createUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole) (models.User, string) {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        "(88) 98888-7777",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	token, err := middleware.GenerateToken(&user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return user, token
}

// seedPendingOrder creates a combo and a PENDING delivery order whose
// items total 62.30 with a 5.00 delivery fee (total 67.30)
func seedPendingOrder(t *testing.T, db *gorm.DB, customer models.User) models.Order {
	t.Helper()

	pizza := models.Combo{Name: "Pizza Grande", Price: 22.90, IsPizza: true, IsActive: true, AllowCustomization: true}
	drink := models.Combo{Name: "Refrigerante 2L", Price: 16.50, IsActive: true}
	if err := db.Create(&pizza).Error; err != nil {
		t.Fatalf("failed to seed combo: %v", err)
	}
	if err := db.Create(&drink).Error; err != nil {
		t.Fatalf("failed to seed combo: %v", err)
	}

	addr := models.Address{
		UserID:       customer.ID,
		Street:       "Rua das Flores",
		Number:       "123",
		Neighborhood: "Centro",
		City:         "Juazeiro do Norte",
		State:        "CE",
		ZipCode:      "63000-000",
	}
	if err := db.Create(&addr).Error; err != nil {
		t.Fatalf("failed to seed address: %v", err)
	}

	order := models.Order{
		UserID:        customer.ID,
		AddressID:     &addr.ID,
		Status:        models.StatusPending,
		Total:         67.30,
		DeliveryType:  models.DeliveryTypeDelivery,
		PaymentMethod: models.PaymentPix,
		Items: []models.OrderItem{
			{ComboID: pizza.ID, Quantity: 2, Price: 22.90, SelectedFlavors: `["trad-5",{"id":"esp-6"}]`},
			{ComboID: drink.ID, Quantity: 1, Price: 16.50},
		},
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	return order
}

func performRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return out
}
