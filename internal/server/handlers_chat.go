package server

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mabotse-Mosima/serene/internal/companion"
)

type chatRequest struct {
	Messages []companion.ChatTurn `json:"messages"`
}

// chat streams the companion's reply word by word, simulating typing the way
// the browser client expects. The scripted engine is the default responder;
// when an external AI backend is configured it is tried first and the
// scripted engine remains the fallback.
func (a *App) chat(c *gin.Context) {
	sessionID, ok := sessionIDFromContext(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload chatRequest
	if !mustJSON(c, &payload) {
		return
	}

	session := a.sessions.Get(sessionID)
	reply := a.generateReply(c.Request.Context(), session, payload.Messages)

	a.streamWords(c, reply)
}

func (a *App) generateReply(ctx context.Context, session *companion.Session, history []companion.ChatTurn) string {
	if a.ai != nil {
		answer, err := a.ai.Query(ctx, AIModelRequest{Conversation: history})
		if err == nil && strings.TrimSpace(answer.Text) != "" {
			// The external backend does not maintain conversation memory;
			// run extraction anyway so the session keeps learning.
			session.Respond(history)
			return strings.TrimSpace(answer.Text)
		}
		if err != nil {
			log.Printf("ai backend failed, falling back to scripted responder: %v", err)
		}
	}
	return session.Respond(history)
}

// streamWords writes the reply one word at a time with a small delay between
// chunks, flushing after each write.
func (a *App) streamWords(c *gin.Context, reply string) {
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)

	flusher, canFlush := c.Writer.(http.Flusher)
	delay := time.Duration(a.cfg.StreamDelayMS) * time.Millisecond

	for _, word := range strings.Fields(reply) {
		if _, err := c.Writer.WriteString(word + " "); err != nil {
			return
		}
		if canFlush {
			flusher.Flush()
		}
		if delay > 0 {
			select {
			case <-c.Request.Context().Done():
				return
			case <-time.After(delay):
			}
		}
	}
}
