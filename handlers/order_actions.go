package handlers

import (
	"log"
	"net/http"
	"time"

	"pizzeria-pos/config"
	"pizzeria-pos/middleware"
	"pizzeria-pos/models"
	"pizzeria-pos/printing"
	"pizzeria-pos/statemachine"

	"github.com/gin-gonic/gin"
)

// sideEffect records the outcome of one best-effort step taken after
// the primary status mutation. Effects never fail the main operation;
// the response lists their outcomes so partial failure stays visible.
type sideEffect struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func attempt(name string, fn func() error) sideEffect {
	if err := fn(); err != nil {
		log.Printf("⚠️ side effect %q failed (non-critical): %v", name, err)
		return sideEffect{Name: name, OK: false, Error: err.Error()}
	}
	return sideEffect{Name: name, OK: true}
}

// OrderAction applies accept, reject or print to an order.
// POST /api/orders/:id/:action — ADMIN, MANAGER or CASHIER only.
func OrderAction(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.
		Preload("Items.Combo").
		Preload("User").
		Preload("Address").
		First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	switch c.Param("action") {
	case "accept":
		acceptOrder(c, &order, userID)
	case "reject":
		rejectOrder(c, &order, userID)
	case "print":
		printOrder(c, &order)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unrecognized action. Must be: accept, reject or print"})
	}
}

// acceptOrder transitions PENDING → CONFIRMED and fires the accept
// side effects: customer notification, cash ledger entry for the full
// amount, and the automatic-print ledger entry.
func acceptOrder(c *gin.Context, order *models.Order, userID string) {
	if err := statemachine.CanTransition(order.Status, models.StatusConfirmed, "staff"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	// Conditional update: a concurrent accept/reject loses the race and
	// gets a Conflict instead of silently re-running the side effects.
	now := time.Now()
	res := config.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, models.StatusPending).
		Updates(map[string]interface{}{
			"status":       models.StatusConfirmed,
			"confirmed_at": now,
			"confirmed_by": userID,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Order is no longer PENDING"})
		return
	}
	order.Status = models.StatusConfirmed
	order.ConfirmedAt = &now
	order.ConfirmedBy = &userID

	effects := []sideEffect{
		attempt("notification", func() error {
			return config.DB.Create(&models.Notification{
				UserID:  order.UserID,
				Type:    "ORDER_UPDATE",
				Source:  notificationSource(order),
				Title:   "Pedido Confirmado",
				Message: "Seu pedido #" + order.Number() + " foi confirmado e está sendo preparado!",
				OrderID: &order.ID,
			}).Error
		}),
		attempt("cash_log", func() error {
			return config.DB.Create(&models.CashLog{
				Type:        models.CashOrder,
				Amount:      order.Total,
				Description: "Pedido confirmado - #" + order.Number(),
				OrderID:     &order.ID,
			}).Error
		}),
		// Automatic print on accept
		attempt("print_log", func() error {
			return config.DB.Create(&models.CashLog{
				Type:        models.CashOrderPrinted,
				Amount:      0,
				Description: "Pedido impresso automaticamente - #" + order.Number(),
				OrderID:     &order.ID,
			}).Error
		}),
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Order accepted successfully",
		"order_id":     order.ID,
		"status":       order.Status,
		"side_effects": effects,
	})
}

// rejectOrder transitions PENDING → CANCELLED and appends the negative
// cash ledger entry plus the customer notification.
func rejectOrder(c *gin.Context, order *models.Order, userID string) {
	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, "staff"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	now := time.Now()
	res := config.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, order.Status).
		Updates(map[string]interface{}{
			"status":       models.StatusCancelled,
			"cancelled_at": now,
			"cancelled_by": userID,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Order status changed concurrently"})
		return
	}
	order.Status = models.StatusCancelled
	order.CancelledAt = &now
	order.CancelledBy = &userID

	effects := []sideEffect{
		attempt("notification", func() error {
			return config.DB.Create(&models.Notification{
				UserID:  order.UserID,
				Type:    "ORDER_UPDATE",
				Source:  notificationSource(order),
				Title:   "Pedido Cancelado",
				Message: "Seu pedido #" + order.Number() + " foi cancelado. Entre em contato conosco para mais informações.",
				OrderID: &order.ID,
			}).Error
		}),
		attempt("cash_log", func() error {
			return config.DB.Create(&models.CashLog{
				Type:        models.CashOrder,
				Amount:      -order.Total,
				Description: "Pedido cancelado - #" + order.Number(),
				OrderID:     &order.ID,
			}).Error
		}),
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Order rejected successfully",
		"order_id":     order.ID,
		"status":       order.Status,
		"side_effects": effects,
	})
}

// printOrder records the print in the cash log and returns a snapshot
// for the caller to render. Never mutates order status.
func printOrder(c *gin.Context, order *models.Order) {
	if err := config.DB.Create(&models.CashLog{
		Type:        models.CashOrderPrinted,
		Amount:      0,
		Description: "Pedido impresso - #" + order.Number(),
		OrderID:     &order.ID,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record print"})
		return
	}

	snap := printing.BuildSnapshot(order, loadFlavorMap())
	c.JSON(http.StatusOK, gin.H{
		"message": "Order data prepared for printing",
		"order":   snap,
	})
}

func notificationSource(order *models.Order) models.NotificationSource {
	if order.IfoodOrderID != nil {
		return models.SourceIfood
	}
	return models.SourceSystem
}
