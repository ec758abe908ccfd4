package handlers

import (
	"net/http"

	"pizzeria-pos/config"
	"pizzeria-pos/middleware"
	"pizzeria-pos/models"

	"github.com/gin-gonic/gin"
)

type AddressRequest struct {
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	ZipCode      string `json:"zip_code"`
	IsDefault    bool   `json:"is_default"`
}

// ListAddresses returns the caller's addresses, default first then newest
func ListAddresses(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var addresses []models.Address
	config.DB.
		Where("user_id = ?", userID).
		Order("is_default desc").
		Order("created_at desc").
		Find(&addresses)

	c.JSON(http.StatusOK, gin.H{"count": len(addresses), "addresses": addresses})
}

// CreateAddress saves a delivery address for the caller. Marking it as
// default clears the flag on the caller's other addresses.
func CreateAddress(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.IsDefault {
		config.DB.Model(&models.Address{}).
			Where("user_id = ? AND is_default = ?", userID, true).
			Update("is_default", false)
	}

	address := models.Address{
		UserID:       userID,
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		IsDefault:    req.IsDefault,
	}
	if err := config.DB.Create(&address).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create address"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Address created", "address": address})
}
