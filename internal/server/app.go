package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mabotse-Mosima/serene/internal/companion"
	"github.com/Mabotse-Mosima/serene/internal/config"
	"github.com/Mabotse-Mosima/serene/internal/mood"
)

type App struct {
	cfg      config.Config
	db       *pgxpool.Pool
	sessions *companion.Manager
	moods    *mood.Store
	ai       AIClient
	now      func() time.Time
}

func New(cfg config.Config, db *pgxpool.Pool) *App {
	app := &App{
		cfg:      cfg,
		db:       db,
		sessions: companion.NewManager(time.Duration(cfg.SessionTTLMinutes) * time.Minute),
		now:      time.Now,
	}
	if db != nil {
		app.moods = mood.NewStore(db)
	}
	if strings.EqualFold(strings.TrimSpace(cfg.ResponderProvider), "huggingface") {
		app.ai = NewHuggingFaceClient(cfg)
	}
	return app
}

func (a *App) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", a.health)

	api := router.Group(a.cfg.APIPrefix)
	api.POST("/session", a.createSession)

	authed := api.Group("")
	authed.Use(a.sessionMiddleware())

	authed.POST("/chat", a.chat)
	authed.GET("/memory", a.memorySnapshot)
	authed.DELETE("/memory", a.wipeMemory)
	authed.POST("/moods", a.recordMood)
	authed.GET("/moods", a.listMoods)
	authed.DELETE("/moods", a.clearMoods)
	authed.GET("/moods/analytics", a.moodAnalytics)
	authed.GET("/selfhelp/coping-strategies", a.copingStrategies)
	authed.GET("/selfhelp/breathing", a.breathingExercise)
	authed.GET("/selfhelp/resources", a.supportResources)

	return router
}

func (a *App) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "serene-api",
	})
}

func (a *App) createSession(c *gin.Context) {
	sessionID := uuid.NewString()
	ttl := time.Duration(a.cfg.SessionTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 4 * time.Hour
	}
	expiresAt := a.now().Add(ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sessionID,
		"iss": a.cfg.JWTIssuer,
		"iat": a.now().Unix(),
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(a.cfg.JWTSecret))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":      signed,
		"session_id": sessionID,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
	})
}

func (a *App) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			writeError(c, http.StatusUnauthorized, "Bearer token required")
			return
		}
		tokenString := strings.TrimSpace(authHeader[len("Bearer "):])
		if tokenString == "" {
			writeError(c, http.StatusUnauthorized, "Bearer token required")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if token.Method == nil || token.Method.Alg() != a.cfg.JWTAlgorithm {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(a.cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			writeError(c, http.StatusUnauthorized, "Invalid session token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			writeError(c, http.StatusUnauthorized, "Invalid token payload")
			return
		}
		if a.cfg.JWTIssuer != "" {
			issuer, _ := claims["iss"].(string)
			if issuer != a.cfg.JWTIssuer {
				writeError(c, http.StatusUnauthorized, "Invalid token issuer")
				return
			}
		}
		sub, _ := claims["sub"].(string)
		sub = strings.TrimSpace(sub)
		if sub == "" {
			writeError(c, http.StatusUnauthorized, "Token subject missing")
			return
		}

		c.Set("sessionID", sub)
		c.Next()
	}
}

func sessionIDFromContext(c *gin.Context) (string, bool) {
	raw, ok := c.Get("sessionID")
	if !ok {
		return "", false
	}
	id, ok := raw.(string)
	return id, ok && id != ""
}

func writeError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

func mustJSON(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}
