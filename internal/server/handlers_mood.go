package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mabotse-Mosima/serene/internal/mood"
)

type moodRecordRequest struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
}

func (a *App) recordMood(c *gin.Context) {
	sessionID, ok := sessionIDFromContext(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if a.moods == nil {
		writeError(c, http.StatusServiceUnavailable, "Mood tracking is not available")
		return
	}

	var payload moodRecordRequest
	if !mustJSON(c, &payload) {
		return
	}
	level, valid := mood.Normalize(payload.Mood)
	if !valid {
		writeError(c, http.StatusBadRequest, "Unknown mood value")
		return
	}

	entry, err := a.moods.Record(c.Request.Context(), sessionID, level, strings.TrimSpace(payload.Note), a.now())
	if err != nil {
		log.Printf("mood record failed: %v", err)
		writeError(c, http.StatusInternalServerError, "Failed to save mood")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (a *App) listMoods(c *gin.Context) {
	sessionID, ok := sessionIDFromContext(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entries := a.loadMoodHistory(c, sessionID)
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

func (a *App) clearMoods(c *gin.Context) {
	sessionID, ok := sessionIDFromContext(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if a.moods != nil {
		if err := a.moods.Clear(c.Request.Context(), sessionID); err != nil {
			log.Printf("mood clear failed: %v", err)
			writeError(c, http.StatusInternalServerError, "Failed to clear mood history")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (a *App) moodAnalytics(c *gin.Context) {
	sessionID, ok := sessionIDFromContext(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entries := a.loadMoodHistory(c, sessionID)
	c.JSON(http.StatusOK, mood.Compute(entries, a.now()))
}

// loadMoodHistory degrades to an empty history when storage is unavailable
// or failing; analytics then render their empty state instead of an error.
func (a *App) loadMoodHistory(c *gin.Context, sessionID string) []mood.Entry {
	if a.moods == nil {
		return nil
	}
	entries, err := a.moods.List(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("mood history load failed, serving empty state: %v", err)
		return nil
	}
	return entries
}
