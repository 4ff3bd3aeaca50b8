package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hukuhuku/shot-tracker/config"
	"github.com/hukuhuku/shot-tracker/controllers"
	"github.com/hukuhuku/shot-tracker/middlewares"
	"github.com/hukuhuku/shot-tracker/repositories"
	"github.com/hukuhuku/shot-tracker/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, services and controllers over the given
// database and registers every route.
func SetupRouter(db *gorm.DB, verifier services.TokenVerifier) *gin.Engine {
	shotSvc := services.NewShotService(repositories.NewShotRepository(db))
	settingSvc := services.NewSettingService(repositories.NewUserSettingRepository(db))

	shotCtrl := controllers.NewShotController(shotSvc)
	settingCtrl := controllers.NewSettingController(settingSvc)

	r := gin.Default()
	r.Use(cors.New(corsConfig()))

	r.GET("/healthz", healthz(db))

	api := r.Group("/api")

	authed := api.Group("")
	authed.Use(middlewares.AuthMiddleware(verifier))
	{
		authed.GET("/shots", shotCtrl.GetShots)
		authed.POST("/shots", shotCtrl.CreateOrUpdateShot)

		authed.GET("/settings", settingCtrl.GetSetting)
		authed.POST("/settings", settingCtrl.SaveSetting)
	}

	// Unauthenticated demo route, local development only.
	if os.Getenv("DEV_MODE") == "true" {
		devCtrl := controllers.NewDevController(shotSvc)
		api.GET("/dev/shots", devCtrl.GetShots)
	}

	return r
}

func corsConfig() cors.Config {
	origins := []string{"http://localhost:5173"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// SetupDefaultRouter builds the router over the global connection opened
// by config.InitDB, choosing the verifier from the environment.
func SetupDefaultRouter() *gin.Engine {
	return SetupRouter(config.DB, services.NewVerifierFromEnv())
}
