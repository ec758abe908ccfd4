package handlers

import (
	"net/http"

	"pizzeria-pos/config"
	"pizzeria-pos/middleware"
	"pizzeria-pos/models"

	"github.com/gin-gonic/gin"
)

// GetNotifications returns the caller's notifications, unread first
// then newest, capped at 50
func GetNotifications(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var notifications []models.Notification
	config.DB.
		Where("user_id = ?", userID).
		Order("read asc").
		Order("created_at desc").
		Limit(50).
		Find(&notifications)

	c.JSON(http.StatusOK, gin.H{"count": len(notifications), "notifications": notifications})
}

// MarkNotificationRead flags one of the caller's notifications as read
func MarkNotificationRead(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var notification models.Notification
	if err := config.DB.First(&notification, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	if notification.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This notification does not belong to you"})
		return
	}

	config.DB.Model(&notification).Update("read", true)
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read", "id": notification.ID})
}
