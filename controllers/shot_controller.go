// controllers/shot_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/hukuhuku/shot-tracker/middlewares"
	"github.com/hukuhuku/shot-tracker/models"
	"github.com/hukuhuku/shot-tracker/services"
	"github.com/hukuhuku/shot-tracker/utils"

	"github.com/gin-gonic/gin"
)

type ShotController struct {
	Shots *services.ShotService
}

func NewShotController(s *services.ShotService) *ShotController {
	return &ShotController{Shots: s}
}

type shotRequest struct {
	Date     string `json:"date"` // YYYY-MM-DD, defaults to today
	ZoneID   string `json:"zoneId" binding:"required"`
	Category string `json:"category" binding:"required"`
	Makes    int    `json:"makes" binding:"gte=0"`
	Attempts int    `json:"attempts" binding:"gte=0"`
}

type shotResponse struct {
	ID       uint   `json:"id"`
	UserID   string `json:"userId"`
	Date     string `json:"date"`
	ZoneID   string `json:"zoneId"`
	Category string `json:"category"`
	Makes    int    `json:"makes"`
	Attempts int    `json:"attempts"`
}

func toShotResponse(r models.ShotRecord) shotResponse {
	return shotResponse{
		ID:       r.ID,
		UserID:   r.UserID,
		Date:     utils.FormatDate(r.Date),
		ZoneID:   r.ZoneID,
		Category: r.Category,
		Makes:    r.Makes,
		Attempts: r.Attempts,
	}
}

// parseDateQuery reads an optional YYYY-MM-DD query param. ok is false
// after an invalid value (a 400 has already been written).
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	d, err := utils.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid '" + name + "'. Use YYYY-MM-DD"})
		return nil, false
	}
	return &d, true
}

// GetShots returns the caller's shot history. Query precedence:
// date > start_date/end_date range > all records.
func (sc *ShotController) GetShots(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}
	start, ok := parseDateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end_date")
	if !ok {
		return
	}

	records, err := sc.Shots.History(userID, date, start, end)
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

// CreateOrUpdateShot upserts one day's result for a court zone. The user
// ID always comes from the verified token, never the request body.
func (sc *ShotController) CreateOrUpdateShot(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	var req shotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.ShotInput{
		ZoneID:   req.ZoneID,
		Category: req.Category,
		Makes:    req.Makes,
		Attempts: req.Attempts,
	}
	if req.Date != "" {
		d, err := utils.ParseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'date'. Use YYYY-MM-DD"})
			return
		}
		input.Date = &d
	}

	record, err := sc.Shots.RecordShots(userID, input)
	if err != nil {
		if errors.Is(err, services.ErrMakesExceedAttempts) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toShotResponse(*record))
}
