package handlers

import (
	"encoding/base64"
	"log"
	"net/http"

	"pizzeria-pos/config"
	"pizzeria-pos/models"
	"pizzeria-pos/printing"

	"github.com/gin-gonic/gin"
)

type PrintRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PrintType string `json:"print_type" binding:"required"`
	// Format selects the encoding of the returned content:
	// "" or "text" (download), "html" (browser print dialog),
	// "escpos" (raw bytes for a serial thermal printer, base64).
	Format string `json:"format"`
}

// loadFlavorMap reads the dynamic flavor table once per request. The
// printing package overlays it on the legacy fixed table.
func loadFlavorMap() map[string]string {
	var flavors []models.PizzaFlavor
	if err := config.DB.Find(&flavors).Error; err != nil {
		log.Printf("⚠️ failed to load flavor table, tickets fall back to legacy names: %v", err)
	}
	m := make(map[string]string, len(flavors))
	for _, f := range flavors {
		m[f.ID] = f.Name
	}
	return m
}

// PrintTicket renders a kitchen ticket or fiscal receipt for an order.
// POST /api/print
func PrintTicket(c *gin.Context) {
	var req PrintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	printType := printing.PrintType(req.PrintType)
	if !printing.ValidPrintType(printType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid print_type. Must be: kitchen or receipt"})
		return
	}

	var order models.Order
	if err := config.DB.
		Preload("Items.Combo").
		Preload("User").
		Preload("Address").
		First(&order, "id = ?", req.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	snap := printing.BuildSnapshot(&order, loadFlavorMap())
	doc, err := printing.BuildDocument(snap, printType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"message": "Order data prepared",
		"order":   snap,
		"content": printing.RenderText(doc),
	}
	switch req.Format {
	case "html":
		title := "Comanda Cozinha - Pedido #" + snap.Number
		if printType == printing.PrintReceipt {
			title = "Cupom Fiscal - Pedido #" + snap.Number
		}
		resp["html"] = printing.RenderHTML(doc, title)
	case "escpos":
		resp["escpos"] = base64.StdEncoding.EncodeToString(printing.RenderESCPOS(doc))
	}

	c.JSON(http.StatusOK, resp)
}
