package handlers

import (
	"net/http"

	"pizzeria-pos/config"
	"pizzeria-pos/models"

	"github.com/gin-gonic/gin"
)

// ListDeliveryAreas returns active delivery areas (public — the
// checkout screen needs them before login)
func ListDeliveryAreas(c *gin.Context) {
	var areas []models.DeliveryArea
	config.DB.
		Where("is_active = ?", true).
		Order("city asc").
		Order("name asc").
		Find(&areas)

	c.JSON(http.StatusOK, gin.H{"count": len(areas), "areas": areas})
}

type DeliveryAreaRequest struct {
	Name        string   `json:"name" binding:"required"`
	City        string   `json:"city" binding:"required"`
	State       string   `json:"state" binding:"required"`
	ZipCode     string   `json:"zip_code"`
	DeliveryFee *float64 `json:"delivery_fee" binding:"required"`
	IsActive    *bool    `json:"is_active"`
}

// CreateDeliveryArea adds a delivery area — admin/manager only
func CreateDeliveryArea(c *gin.Context) {
	var req DeliveryAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *req.DeliveryFee < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_fee must not be negative"})
		return
	}

	var existing models.DeliveryArea
	if err := config.DB.
		First(&existing, "name = ? AND city = ? AND state = ?", req.Name, req.City, req.State).
		Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An area with this name already exists in this city"})
		return
	}

	area := models.DeliveryArea{
		Name:        req.Name,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		DeliveryFee: *req.DeliveryFee,
		IsActive:    true,
	}
	if req.IsActive != nil {
		area.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&area).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create delivery area"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Delivery area created", "area": area})
}
