// controllers/setting_controller.go
package controllers

import (
	"net/http"

	"github.com/hukuhuku/shot-tracker/middlewares"
	"github.com/hukuhuku/shot-tracker/services"

	"github.com/gin-gonic/gin"
)

type SettingController struct {
	Settings *services.SettingService
}

func NewSettingController(s *services.SettingService) *SettingController {
	return &SettingController{Settings: s}
}

type settingRequest struct {
	GoalPct *int `json:"goalPct" binding:"omitempty,gte=0,lte=100"`
}

// GetSetting returns the caller's goal percentage; null when unset.
func (sc *SettingController) GetSetting(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	goalPct, err := sc.Settings.Get(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goalPct": goalPct})
}

// SaveSetting overwrites the caller's goal percentage; a null body value
// clears it.
func (sc *SettingController) SaveSetting(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	var req settingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goalPct, err := sc.Settings.Set(userID, req.GoalPct)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goalPct": goalPct})
}
