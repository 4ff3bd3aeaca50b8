// controllers/dev_controller.go
package controllers

import (
	"net/http"

	"github.com/hukuhuku/shot-tracker/services"

	"github.com/gin-gonic/gin"
)

// DevController serves the unauthenticated demo route. It is only
// registered when DEV_MODE=true; see routes.SetupRouter.
type DevController struct {
	Shots *services.ShotService
}

func NewDevController(s *services.ShotService) *DevController {
	return &DevController{Shots: s}
}

// GetShots reads any user's history by userId query param, bypassing
// token verification. Read-only, for poking at local data.
func (d *DevController) GetShots(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'userId' query param"})
		return
	}

	records, err := d.Shots.History(userID, nil, nil, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]shotResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, toShotResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}
