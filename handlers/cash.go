package handlers

import (
	"net/http"

	"pizzeria-pos/config"
	"pizzeria-pos/models"

	"github.com/gin-gonic/gin"
)

type CashRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// lastCashSession returns the most recent OPEN/CLOSE row, if any
func lastCashSession() *models.CashLog {
	var last models.CashLog
	err := config.DB.
		Where("type IN ?", []models.CashLogType{models.CashOpen, models.CashClose}).
		Order("created_at desc, id desc").
		First(&last).Error
	if err != nil {
		return nil
	}
	return &last
}

// OpenCash appends an OPEN entry to the ledger — staff only
func OpenCash(c *gin.Context) {
	var req CashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if last := lastCashSession(); last != nil && last.Type == models.CashOpen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cash register is already open"})
		return
	}

	desc := req.Description
	if desc == "" {
		desc = "Abertura do caixa"
	}
	entry := models.CashLog{
		Type:        models.CashOpen,
		Amount:      req.Amount,
		Description: desc,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open cash register"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Cash register opened", "entry": entry})
}

// CloseCash appends a CLOSE entry to the ledger — staff only
func CloseCash(c *gin.Context) {
	var req CashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	last := lastCashSession()
	if last == nil || last.Type != models.CashOpen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cash register is not open"})
		return
	}

	desc := req.Description
	if desc == "" {
		desc = "Fechamento do caixa"
	}
	entry := models.CashLog{
		Type:        models.CashClose,
		Amount:      req.Amount,
		Description: desc,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close cash register"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Cash register closed", "entry": entry})
}

// GetCashLog returns ledger entries, newest first — staff only.
// The ledger is append-only: no update or delete surface exists.
func GetCashLog(c *gin.Context) {
	var entries []models.CashLog
	query := config.DB

	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}

	query.Order("created_at desc, id desc").Find(&entries)

	// The balance always covers the whole ledger, not the filtered view
	var balance float64
	config.DB.Model(&models.CashLog{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&balance)

	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"balance": balance,
		"entries": entries,
	})
}
