package handlers

import (
	"net/http"

	"pizzeria-pos/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo returns the full order state machine for
// informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{"DELIVERED", "CANCELLED"},
		"description":     "Pizzeria Order Lifecycle State Machine",
	})
}
