package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// memorySnapshot exposes the diagnostic view of a session's memory without
// ever returning stored content.
func (a *App) memorySnapshot(c *gin.Context) {
	sessionID, ok := sessionIDFromContext(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	snapshot := a.sessions.Get(sessionID).Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"memory_stats": snapshot,
	})
}

// wipeMemory clears all session memory for privacy. Idempotent.
func (a *App) wipeMemory(c *gin.Context) {
	sessionID, ok := sessionIDFromContext(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	a.sessions.Get(sessionID).Wipe()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Memory cleared successfully",
	})
}
