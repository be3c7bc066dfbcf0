package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"moodsync/apps/backend/internal/companion"
	"moodsync/apps/backend/internal/config"
	"moodsync/apps/backend/internal/logger"
	"moodsync/apps/backend/internal/users"
)

var features = []string{"AI Support", "Mood Detection", "Emotional Wellness"}

type App struct {
	cfg       config.Config
	log       *logger.Logger
	gateway   *companion.Gateway
	directory *users.Directory
	startedAt time.Time
}

func New(cfg config.Config, log *logger.Logger, gateway *companion.Gateway, directory *users.Directory) *App {
	if log == nil {
		log = logger.NewNop()
	}
	return &App{
		cfg:       cfg,
		log:       log,
		gateway:   gateway,
		directory: directory,
		startedAt: time.Now(),
	}
}

func (a *App) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), a.requestIDMiddleware(), a.accessLogMiddleware())
	if a.cfg.OTelEnabled {
		router.Use(otelgin.Middleware(a.cfg.AppName))
	}
	router.Use(cors.New(a.corsConfig()))

	router.GET("/", a.root)
	router.GET("/health", a.health)
	router.GET("/liveness", a.liveness)
	router.GET("/readiness", a.readiness)

	router.POST("/register", a.register)
	router.POST("/login", a.login)
	router.GET("/users", a.listUsers)

	api := router.Group("/api")
	for _, task := range companion.Tasks {
		api.POST("/"+task.Name, a.companionReply(task))
	}

	return router
}

func (a *App) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if a.cfg.IsProduction() {
		cfg.AllowOrigins = a.cfg.CORSAllowOrigins
	} else {
		cfg.AllowAllOrigins = true
	}
	return cfg
}

func (a *App) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "MoodSync Server is running!",
		"version":  a.cfg.AppVersion,
		"features": features,
	})
}

// Endpoints lists the routes logged at startup.
func Endpoints() []string {
	endpoints := []string{
		"GET  /health",
		"GET  /liveness",
		"GET  /readiness",
		"POST /register",
		"POST /login",
		"GET  /users (debug)",
	}
	for _, task := range companion.Tasks {
		endpoints = append(endpoints, "POST /api/"+task.Name)
	}
	return endpoints
}
