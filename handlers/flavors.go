package handlers

import (
	"net/http"

	"pizzeria-pos/config"
	"pizzeria-pos/models"

	"github.com/gin-gonic/gin"
)

// ListFlavors returns pizza flavors (public)
func ListFlavors(c *gin.Context) {
	var flavors []models.PizzaFlavor
	query := config.DB

	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if active := c.Query("active"); active == "true" {
		query = query.Where("is_active = ?", true)
	}

	query.Order("name asc").Find(&flavors)
	c.JSON(http.StatusOK, gin.H{"count": len(flavors), "flavors": flavors})
}

type FlavorRequest struct {
	Name     string            `json:"name" binding:"required"`
	Type     models.FlavorType `json:"type" binding:"required"`
	IsActive *bool             `json:"is_active"`
}

// CreateFlavor adds a pizza flavor — admin/manager only
func CreateFlavor(c *gin.Context) {
	var req FlavorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validTypes := map[models.FlavorType]bool{
		models.FlavorTradicional: true,
		models.FlavorEspecial:    true,
		models.FlavorPremium:     true,
	}
	if !validTypes[req.Type] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type. Must be: TRADICIONAL, ESPECIAL or PREMIUM"})
		return
	}

	flavor := models.PizzaFlavor{
		Name:     req.Name,
		Type:     req.Type,
		IsActive: true,
	}
	if req.IsActive != nil {
		flavor.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&flavor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create flavor"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Flavor created", "flavor": flavor})
}

// UpdateFlavor modifies a pizza flavor — admin/manager only
func UpdateFlavor(c *gin.Context) {
	var flavor models.PizzaFlavor
	if err := config.DB.First(&flavor, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flavor not found"})
		return
	}

	var req FlavorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flavor.Name = req.Name
	flavor.Type = req.Type
	if req.IsActive != nil {
		flavor.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&flavor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update flavor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Flavor updated", "flavor": flavor})
}

// DeleteFlavor removes a pizza flavor — admin/manager only. Printed
// tickets keep resolving historical references through the legacy table
// or the raw ID fallback.
func DeleteFlavor(c *gin.Context) {
	var flavor models.PizzaFlavor
	if err := config.DB.First(&flavor, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flavor not found"})
		return
	}

	if err := config.DB.Delete(&flavor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete flavor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Flavor deleted", "id": flavor.ID})
}
