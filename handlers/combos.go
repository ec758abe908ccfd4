package handlers

import (
	"net/http"

	"pizzeria-pos/config"
	"pizzeria-pos/models"

	"github.com/gin-gonic/gin"
)

// ListCombos returns the menu (public)
func ListCombos(c *gin.Context) {
	var combos []models.Combo
	query := config.DB.Preload("Category")

	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if c.Query("pizza") == "true" {
		query = query.Where("is_pizza = ?", true)
	}
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	query.Order("name asc").Find(&combos)
	c.JSON(http.StatusOK, gin.H{"count": len(combos), "combos": combos})
}

// GetCombo returns a single menu item (public)
func GetCombo(c *gin.Context) {
	var combo models.Combo
	if err := config.DB.Preload("Category").First(&combo, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Combo not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"combo": combo})
}

type ComboRequest struct {
	Name               string  `json:"name" binding:"required"`
	Description        string  `json:"description"`
	Price              float64 `json:"price" binding:"required,gt=0"`
	Image              string  `json:"image"`
	CategoryID         string  `json:"category_id"`
	IsPizza            bool    `json:"is_pizza"`
	AllowCustomization bool    `json:"allow_customization"`
	IsActive           *bool   `json:"is_active"`
}

// CreateCombo adds a menu item — admin/manager only
func CreateCombo(c *gin.Context) {
	var req ComboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.CategoryID != "" {
		var category models.Category
		if err := config.DB.First(&category, "id = ?", req.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
			return
		}
	}

	combo := models.Combo{
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		Image:              req.Image,
		CategoryID:         req.CategoryID,
		IsPizza:            req.IsPizza,
		AllowCustomization: req.AllowCustomization,
		IsActive:           true,
	}
	if req.IsActive != nil {
		combo.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&combo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create combo"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Combo created", "combo": combo})
}

// UpdateCombo modifies a menu item — admin/manager only
func UpdateCombo(c *gin.Context) {
	var combo models.Combo
	if err := config.DB.First(&combo, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Combo not found"})
		return
	}

	var req ComboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	combo.Name = req.Name
	combo.Description = req.Description
	combo.Price = req.Price
	combo.Image = req.Image
	combo.CategoryID = req.CategoryID
	combo.IsPizza = req.IsPizza
	combo.AllowCustomization = req.AllowCustomization
	if req.IsActive != nil {
		combo.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&combo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update combo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Combo updated", "combo": combo})
}

// ListCategories returns menu categories (public)
func ListCategories(c *gin.Context) {
	var categories []models.Category
	config.DB.Order("sort_order asc, name asc").Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

type CategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

// CreateCategory adds a menu category — admin/manager only
func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{Name: req.Name, SortOrder: req.SortOrder}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}
