package handlers

import (
	"net/http"
	"time"

	"pizzeria-pos/config"
	"pizzeria-pos/middleware"
	"pizzeria-pos/models"
	"pizzeria-pos/statemachine"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	DeliveryType  models.DeliveryType  `json:"delivery_type" binding:"required"`
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required"`
	AddressID     string               `json:"address_id"`
	// DeliveryFee only applies when the address matches no registered
	// delivery area; otherwise the area's fee wins.
	DeliveryFee float64 `json:"delivery_fee"`
	Notes         string               `json:"notes"`
	Items         []struct {
		ComboID         string `json:"combo_id" binding:"required"`
		Quantity        int    `json:"quantity" binding:"required,min=1"`
		SelectedFlavors string `json:"selected_flavors"`
		Extras          string `json:"extras"`
		Observations    string `json:"observations"`
	} `json:"items" binding:"required,min=1"`
}

// PlaceOrder creates a new order (customer only)
// resolveDeliveryFee looks up the registered area fee for the address's
// neighborhood. The client value only applies for addresses outside any
// registered area.
func resolveDeliveryFee(addr *models.Address, requested float64) float64 {
	var area models.DeliveryArea
	err := config.DB.First(&area,
		"name = ? AND city = ? AND state = ? AND is_active = ?",
		addr.Neighborhood, addr.City, addr.State, true).Error
	if err == nil {
		return area.DeliveryFee
	}
	return requested
}

func PlaceOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.DeliveryType != models.DeliveryTypeDelivery && req.DeliveryType != models.DeliveryTypePickup {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_type must be DELIVERY or PICKUP"})
		return
	}

	var addressID *string
	var deliveryFee float64
	if req.DeliveryType == models.DeliveryTypeDelivery {
		if req.AddressID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "address_id is required for DELIVERY orders"})
			return
		}
		if req.DeliveryFee < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_fee must not be negative"})
			return
		}
		var addr models.Address
		if err := config.DB.First(&addr, "id = ? AND user_id = ?", req.AddressID, customerID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Address not found"})
			return
		}
		addressID = &addr.ID
		deliveryFee = resolveDeliveryFee(&addr, req.DeliveryFee)
	}

	// Build order items from the current menu, snapshotting prices
	var orderItems []models.OrderItem
	var total float64

	for _, reqItem := range req.Items {
		var combo models.Combo
		if err := config.DB.First(&combo, "id = ?", reqItem.ComboID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Combo not found: " + reqItem.ComboID})
			return
		}
		if !combo.IsActive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Combo '" + combo.Name + "' is not available"})
			return
		}
		total += combo.Price * float64(reqItem.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ComboID:         combo.ID,
			Quantity:        reqItem.Quantity,
			Price:           combo.Price,
			SelectedFlavors: reqItem.SelectedFlavors,
			Extras:          reqItem.Extras,
			Observations:    reqItem.Observations,
		})
	}

	if req.DeliveryType == models.DeliveryTypeDelivery {
		total += deliveryFee
	}

	order := models.Order{
		UserID:        customerID,
		AddressID:     addressID,
		Status:        models.StatusPending,
		Total:         total,
		DeliveryType:  req.DeliveryType,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Items:         orderItems,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	config.DB.Preload("Items.Combo").Preload("Address").First(&order, "id = ?", order.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetMyOrders returns all orders for the logged-in customer
func GetMyOrders(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items.Combo").Preload("Address").
		Where("user_id = ?", customerID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order's full detail
func GetOrderDetail(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.
		Preload("Items.Combo").
		Preload("Address").
		First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	elapsed := time.Since(order.CreatedAt).Minutes()
	c.JSON(http.StatusOK, gin.H{
		"order":           order,
		"minutes_elapsed": int(elapsed),
	})
}

// CancelOrder cancels an order (customer can cancel while PENDING)
func CancelOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, "customer"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot cancel order",
			"reason":        err.Error(),
			"current_state": order.Status,
		})
		return
	}

	now := time.Now()
	res := config.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, order.Status).
		Updates(map[string]interface{}{
			"status":       models.StatusCancelled,
			"cancelled_at": now,
			"cancelled_by": customerID,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Order status changed concurrently"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": order.ID})
}

// GetOrders returns all orders for the POS dashboard — staff only
func GetOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items.Combo").Preload("User").Preload("Address")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	query.Order("created_at desc").Find(&orders)

	// Dashboard summary: counts per status
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

// GetOrderHistory returns every order with full joins — staff only
func GetOrderHistory(c *gin.Context) {
	var orders []models.Order
	query := config.DB.
		Preload("Items.Combo").
		Preload("User").
		Preload("Address")

	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("user_id = ?", customerID)
	}

	query.Order("created_at desc").Find(&orders)

	var totalRevenue float64
	for _, o := range orders {
		if o.Status == models.StatusConfirmed || o.Status == models.StatusDelivering || o.Status == models.StatusDelivered {
			totalRevenue += o.Total
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":         len(orders),
		"total_revenue": totalRevenue,
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves a confirmed order through the delivery leg
// (CONFIRMED → DELIVERING → DELIVERED) — staff only
func UpdateOrderStatus(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, "staff"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Status == models.StatusCancelled {
		now := time.Now()
		updates["cancelled_at"] = now
		updates["cancelled_by"] = userID
	}

	res := config.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, order.Status).
		Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Order status changed concurrently"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": order.Status,
		"current_status":  req.Status,
	})
}
