package handlers

import (
	"net/http"

	"pizzeria-pos/config"
	"pizzeria-pos/models"

	"github.com/gin-gonic/gin"
)

// ListDeliveryPersons returns all registered motoboys — admin/manager only
func ListDeliveryPersons(c *gin.Context) {
	var persons []models.DeliveryPerson
	query := config.DB

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	query.Order("created_at desc").Find(&persons)
	c.JSON(http.StatusOK, gin.H{"count": len(persons), "delivery_persons": persons})
}

type DeliveryPersonRequest struct {
	Name     string                      `json:"name" binding:"required"`
	Phone    string                      `json:"phone" binding:"required"`
	Plate    string                      `json:"plate"`
	Status   models.DeliveryPersonStatus `json:"status"`
	IsActive *bool                       `json:"is_active"`
}

// CreateDeliveryPerson registers a motoboy — admin/manager only
func CreateDeliveryPerson(c *gin.Context) {
	var req DeliveryPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Phone is the operational identifier, keep it unique
	var existing models.DeliveryPerson
	if result := config.DB.Where("phone = ?", req.Phone).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A delivery person with this phone already exists"})
		return
	}

	person := models.DeliveryPerson{
		Name:     req.Name,
		Phone:    req.Phone,
		Plate:    req.Plate,
		Status:   models.DeliveryPersonOffline,
		IsActive: true,
	}
	if req.Status != "" {
		person.Status = req.Status
	}
	if req.IsActive != nil {
		person.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&person).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create delivery person"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Delivery person created", "delivery_person": person})
}

// UpdateDeliveryPerson modifies a motoboy's record — admin/manager only
func UpdateDeliveryPerson(c *gin.Context) {
	var person models.DeliveryPerson
	if err := config.DB.First(&person, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery person not found"})
		return
	}

	var req DeliveryPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person.Name = req.Name
	person.Phone = req.Phone
	person.Plate = req.Plate
	if req.Status != "" {
		person.Status = req.Status
	}
	if req.IsActive != nil {
		person.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&person).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery person"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delivery person updated", "delivery_person": person})
}

type DeliveryPersonStatusRequest struct {
	Status models.DeliveryPersonStatus `json:"status" binding:"required"`
}

// UpdateDeliveryPersonStatus flips a motoboy between AVAILABLE,
// DELIVERING and OFFLINE — admin/manager only
func UpdateDeliveryPersonStatus(c *gin.Context) {
	var person models.DeliveryPerson
	if err := config.DB.First(&person, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery person not found"})
		return
	}

	var req DeliveryPersonStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validStatuses := map[models.DeliveryPersonStatus]bool{
		models.DeliveryPersonAvailable:  true,
		models.DeliveryPersonDelivering: true,
		models.DeliveryPersonOffline:    true,
	}
	if !validStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be: AVAILABLE, DELIVERING or OFFLINE"})
		return
	}

	config.DB.Model(&person).Update("status", req.Status)
	c.JSON(http.StatusOK, gin.H{
		"message":         "Status updated",
		"delivery_person": person.ID,
		"status":          req.Status,
	})
}
